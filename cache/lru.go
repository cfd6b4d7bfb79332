// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package cache provides a small LRU cache wrapper used to avoid rebuilding
// the validator-selection alias table on every call when the underlying
// stake distribution hasn't changed between queries within the same epoch.
package cache

import (
	lru "github.com/hashicorp/golang-lru"
)

// LRU extends golang-lru.Cache with a load-on-miss convenience method.
type LRU struct {
	*lru.Cache
}

// NewLRU creates an LRU cache holding at most maxSize entries. A floor of 16
// avoids thrashing for callers that pass an unreasonably small size.
func NewLRU(maxSize int) *LRU {
	if maxSize < 16 {
		maxSize = 16
	}
	c, _ := lru.New(maxSize)
	return &LRU{c}
}

// Loader computes the value for a cache miss.
type Loader func(key interface{}) (interface{}, error)

// GetOrLoad returns the cached value for key, computing and storing it via
// loader on a miss.
func (l *LRU) GetOrLoad(key interface{}, loader Loader) (interface{}, error) {
	if v, ok := l.Get(key); ok {
		return v, nil
	}
	v, err := loader(key)
	if err != nil {
		return nil, err
	}
	l.Add(key, v)
	return v, nil
}
