// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package vrfseed wraps a verifiable-random-function output as the seed for
// deterministic, consensus-critical randomness (spec §4.G). The VRF itself
// — proof generation and the underlying curve math — is explicitly out of
// scope (spec §1); this package only needs two things from it: a way to
// turn a seed into a reproducible byte stream, and an optional passthrough
// to verify a real VRF proof against the same primitive the teacher module
// uses for block backer signatures (block/vrf_signature.go).
package vrfseed

import (
	"encoding/binary"
	"errors"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/vechain/go-ecvrf"
)

// UseCase tags the purpose a derived randomness stream is used for, so the
// same seed produces independent streams for independent consumers.
type UseCase uint8

// ValidatorSelection is the use case tag for drawing validator slot
// assignments (spec §4.G). Additional use cases may be added by future
// protocol features without perturbing this one's derivation.
const ValidatorSelection UseCase = 1

// Seed is an opaque VRF output used as deterministic randomness.
type Seed struct {
	beta []byte
}

// New wraps raw VRF output bytes as a Seed.
func New(beta []byte) Seed {
	cp := make([]byte, len(beta))
	copy(cp, beta)
	return Seed{beta: cp}
}

// Bytes returns the seed's raw bytes.
func (s Seed) Bytes() []byte {
	return s.beta
}

// ErrInvalidSignature is returned when VRF proof verification fails.
var ErrInvalidSignature = errors.New("vrfseed: invalid vrf proof")

// Verify checks a VRF proof against alpha (the message) and returns the
// seed it produces, using the same secp256k1-sha256-tai VRF construction
// the teacher module verifies backer signatures with.
func Verify(pub []byte, alpha, proof []byte) (Seed, error) {
	vrf := ecvrf.NewSecp256k1Sha256Tai()
	pubkey, err := crypto.DecompressPubkey(pub)
	if err != nil {
		return Seed{}, err
	}
	beta, err := vrf.Verify(pubkey, alpha, proof)
	if err != nil {
		return Seed{}, ErrInvalidSignature
	}
	return New(beta), nil
}

// Rng is a deterministic pseudo-random stream derived from a Seed, a use
// case, and a nonce (spec §4.G: "rng = S.rng(use_case, nonce)"). Every node
// that derives an Rng from the same (seed, use_case, nonce) and draws from
// it in the same order observes byte-identical output — this is the
// consensus-critical guarantee the alias sampler depends on.
type Rng struct {
	seed    []byte
	useCase UseCase
	nonce   uint64
	counter uint64
}

// Rng derives a deterministic stream from s for the given use case and
// nonce.
func (s Seed) Rng(useCase UseCase, nonce uint64) *Rng {
	return &Rng{seed: s.beta, useCase: useCase, nonce: nonce}
}

// next returns the next 32 bytes of the stream: Keccak256(seed || useCase ||
// nonce || counter), then advances the counter. Using Keccak256 here keeps
// the derivation on the same hash primitive the teacher module already
// depends on for address recovery (go-ethereum/crypto), rather than
// introducing a second hash function.
func (r *Rng) next() []byte {
	buf := make([]byte, 0, len(r.seed)+1+8+8)
	buf = append(buf, r.seed...)
	buf = append(buf, byte(r.useCase))
	buf = binary.BigEndian.AppendUint64(buf, r.nonce)
	buf = binary.BigEndian.AppendUint64(buf, r.counter)
	r.counter++
	return crypto.Keccak256(buf)
}

// Index draws a uniform integer in [0, n). It consumes exactly one 32-byte
// draw from the stream, per the consensus-critical byte-accounting
// requirement in spec §4.G.
func (r *Rng) Index(n int) int {
	if n <= 0 {
		return 0
	}
	h := r.next()
	v := binary.BigEndian.Uint64(h[:8])
	return int(v % uint64(n))
}

// Fraction draws a uniform integer in [0, denom). It consumes exactly one
// 32-byte draw from the stream.
func (r *Rng) Fraction(denom uint64) uint64 {
	if denom == 0 {
		return 0
	}
	h := r.next()
	v := binary.BigEndian.Uint64(h[8:16])
	return v % denom
}
