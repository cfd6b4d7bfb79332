// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package codec implements the staking contract's canonical, big-endian,
// length-prefixed byte encoding (spec §6). Peers must agree on these bytes
// bit-for-bit for state-root computation, so the format is fixed here and
// not delegated to a general-purpose encoding library: every field and
// collection below has exactly one serialized shape. There is no ecosystem
// package in this repository's dependency graph that produces this exact
// wire shape (the teacher module uses RLP for block and transaction bodies,
// which has different framing rules), so this package is deliberately
// hand-rolled over encoding/binary rather than borrowed.
package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// ErrTruncated is returned when a decode runs out of input bytes.
var ErrTruncated = errors.New("codec: truncated input")

// Writer accumulates a canonical byte encoding.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the accumulated encoding.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// WriteUint32 writes v as 4 big-endian bytes.
func (w *Writer) WriteUint32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

// WriteUint64 writes v as 8 big-endian bytes.
func (w *Writer) WriteUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// WriteBool writes a single byte: 1 for true, 0 for false.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// WriteBytes writes raw bytes with no length prefix (used for fixed-width
// fields such as addresses and validator keys, whose length is implicit in
// the type).
func (w *Writer) WriteBytes(b []byte) {
	w.buf.Write(b)
}

// WriteLengthPrefixed writes a u32 length prefix followed by b's bytes.
func (w *Writer) WriteLengthPrefixed(b []byte) {
	w.WriteUint32(uint32(len(b)))
	w.buf.Write(b)
}

// Reader decodes a canonical byte encoding produced by Writer.
type Reader struct {
	r io.Reader
}

// NewReader wraps b for canonical decoding.
func NewReader(b []byte) *Reader {
	return &Reader{r: bytes.NewReader(b)}
}

func (r *Reader) readFull(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(r.r, b); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrTruncated
		}
		return nil, err
	}
	return b, nil
}

// ReadUint32 reads 4 big-endian bytes.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.readFull(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadUint64 reads 8 big-endian bytes.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.readFull(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// ReadBool reads a single byte and interprets it as a boolean.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.readFull(1)
	if err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

// ReadBytes reads exactly n raw bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	return r.readFull(n)
}

// ReadLengthPrefixed reads a u32 length prefix and then that many bytes.
func (r *Reader) ReadLengthPrefixed() ([]byte, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	return r.readFull(int(n))
}
