// SPDX-FileCopyrightText: (C) 2025 shamo33
// SPDX-License-Identifier: Apache 2.0

// Package kcipher2 implements the KCipher-2 stream cipher (ISO/IEC 18033-4).
//
// KCipher-2 takes a 128-bit key and a 128-bit initialization vector and
// produces a deterministic pseudorandom keystream in 8-byte blocks. Because
// encryption is a plain XOR against the keystream, the same operation both
// encrypts and decrypts. The State wrapper turns the 8-bytes-per-clock
// generator into byte-granular, resumable stream operations.
package kcipher2

import (
	"crypto/cipher"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/bits"
)

const (
	// KeySize is the KCipher-2 key size in bytes.
	KeySize = 16
	// IVSize is the KCipher-2 initialization vector size in bytes.
	IVSize = 16

	// blockSize is the number of keystream bytes produced per clock.
	blockSize = 8

	// setupRounds is the number of mixing clocks performed during Setup.
	setupRounds = 24
)

// State holds the full cipher state: the expanded key, the two non-linear
// feedback shift registers, the four internal FSM registers, and the
// buffered output block. A State is exclusively owned by its caller; two
// goroutines may use distinct States concurrently, but concurrent use of
// one State is undefined.
type State struct {
	ik [12]uint32 // expanded key
	iv [4]uint32  // initialization vector words
	a  [5]uint32  // FSR-A
	b  [11]uint32 // FSR-B

	l1, l2, r1, r2 uint32 // internal FSM registers

	sh, sl uint32 // buffered keystream block, high and low words
	cnt    int    // bytes of (sh, sl) already consumed, in [0, 8)

	ready bool
}

var (
	_ cipher.Stream = (*State)(nil)
	_ io.Reader     = (*State)(nil)
)

// New allocates a State. The State is unusable until Setup is called.
func New() *State {
	return new(State)
}

// Setup keys the cipher: it ingests the IV, expands the key, loads the
// shift registers, runs the 24 mixing rounds, and primes the first output
// block. It may be called again at any time to rekey the State.
func (s *State) Setup(key, iv []byte) error {
	if len(key) != KeySize {
		return fmt.Errorf("kcipher2: invalid key size %d", len(key))
	}
	if len(iv) != IVSize {
		return fmt.Errorf("kcipher2: invalid iv size %d", len(iv))
	}

	for i := range s.iv {
		s.iv[i] = binary.BigEndian.Uint32(iv[4*i:])
	}

	// Key expansion, an AES-style schedule producing twelve words.
	for i := 0; i < 4; i++ {
		s.ik[i] = binary.BigEndian.Uint32(key[4*i:])
	}
	s.ik[4] = s.ik[0] ^ subWord(bits.RotateLeft32(s.ik[3], 8)) ^ 0x01000000
	s.ik[5] = s.ik[1] ^ s.ik[4]
	s.ik[6] = s.ik[2] ^ s.ik[5]
	s.ik[7] = s.ik[3] ^ s.ik[6]
	s.ik[8] = s.ik[4] ^ subWord(bits.RotateLeft32(s.ik[7], 8)) ^ 0x02000000
	s.ik[9] = s.ik[5] ^ s.ik[8]
	s.ik[10] = s.ik[6] ^ s.ik[9]
	s.ik[11] = s.ik[7] ^ s.ik[10]

	s.a = [5]uint32{s.ik[4], s.ik[3], s.ik[2], s.ik[1], s.ik[0]}
	s.b = [11]uint32{
		s.ik[10], s.ik[11], s.iv[0], s.iv[1], s.ik[8], s.ik[9],
		s.iv[2], s.iv[3], s.ik[7], s.ik[5], s.ik[6],
	}

	s.l1, s.l2, s.r1, s.r2 = 0, 0, 0, 0
	s.cnt = 0

	for i := 0; i < setupRounds; i++ {
		s.clockSetup()
	}
	s.genStream()
	s.ready = true
	return nil
}

// Crypt XORs src with the keystream into dst, advancing the cipher by
// len(src) bytes. dst must be at least as long as src. dst and src may be
// the same slice for in-place operation; partial overlap is undefined.
// Before Setup, or after Destroy, Crypt writes nothing and does not advance
// the state.
func (s *State) Crypt(dst, src []byte) {
	if !s.ready || len(src) == 0 || len(dst) < len(src) {
		return
	}
	s.process(dst, src)
}

// Stream writes len(dst) raw keystream bytes into dst, advancing the
// cipher. Before Setup, or after Destroy, Stream writes nothing.
func (s *State) Stream(dst []byte) {
	if !s.ready || len(dst) == 0 {
		return
	}
	s.process(dst, nil)
}

// XORKeyStream implements crypto/cipher.Stream. It panics if dst is
// shorter than src or if the State has not been keyed with Setup.
func (s *State) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("kcipher2: output smaller than input")
	}
	if !s.ready {
		panic("kcipher2: XORKeyStream before Setup")
	}
	if len(src) == 0 {
		return
	}
	s.process(dst, src)
}

// Read implements io.Reader, filling p with raw keystream. On a keyed State
// it never fails: the keystream has no end. Read on an unkeyed State reports
// an error.
func (s *State) Read(p []byte) (int, error) {
	if !s.ready {
		return 0, errors.New("kcipher2: read before Setup")
	}
	if len(p) == 0 {
		return 0, nil
	}
	s.process(p, nil)
	return len(p), nil
}

// Destroy zeroes the state so key material does not linger in memory and
// marks the State unusable. A destroyed State may be re-keyed with Setup.
func (s *State) Destroy() {
	*s = State{}
}

// process drives the stream buffer: a prefix from the partially consumed
// block, whole 8-byte blocks, and a tail that leaves (sh, sl) primed with
// cnt bytes consumed. src is nil for raw keystream output. The invariant
// maintained across calls is that (sh, sl) always holds the next block to
// emit starting at offset cnt.
func (s *State) process(dst, src []byte) {
	n := len(dst)
	if src != nil {
		n = len(src)
	}
	off := 0

	if s.cnt > 0 {
		take := blockSize - s.cnt
		if take > n {
			take = n
		}
		for i := 0; i < take; i++ {
			ks := s.keystreamByte(s.cnt + i)
			if src != nil {
				dst[off+i] = src[off+i] ^ ks
			} else {
				dst[off+i] = ks
			}
		}
		off += take
		if s.cnt+take == blockSize {
			s.clockUpdate()
			s.cnt = 0
		} else {
			s.cnt += take
			return
		}
	}

	for n-off >= blockSize {
		if src != nil {
			hi := binary.BigEndian.Uint32(src[off:]) ^ s.sh
			lo := binary.BigEndian.Uint32(src[off+4:]) ^ s.sl
			binary.BigEndian.PutUint32(dst[off:], hi)
			binary.BigEndian.PutUint32(dst[off+4:], lo)
		} else {
			binary.BigEndian.PutUint32(dst[off:], s.sh)
			binary.BigEndian.PutUint32(dst[off+4:], s.sl)
		}
		s.clockUpdate()
		off += blockSize
	}

	if rem := n - off; rem > 0 {
		for i := 0; i < rem; i++ {
			ks := s.keystreamByte(i)
			if src != nil {
				dst[off+i] = src[off+i] ^ ks
			} else {
				dst[off+i] = ks
			}
		}
		s.cnt = rem
	}
}

// keystreamByte returns byte i of the buffered block, MSB of sh first.
func (s *State) keystreamByte(i int) byte {
	if i < 4 {
		return byte(s.sh >> (24 - 8*uint(i)))
	}
	return byte(s.sl >> (24 - 8*uint(i-4)))
}

// clockSetup performs one mixing round: the regular transition with the
// non-linear output folded back into both shift registers. Used only
// during Setup; it emits no keystream.
func (s *State) clockSetup() {
	l1, l2, r1, r2 := s.nextFSM()
	na4, nb10 := s.feedback()
	na4 ^= nlf(s.b[0], s.r2, s.r1, s.a[4])
	nb10 ^= nlf(s.b[10], s.l2, s.l1, s.a[0])
	s.shift(na4, nb10)
	s.l1, s.l2, s.r1, s.r2 = l1, l2, r1, r2
}

// clockUpdate performs one keystream round: the regular transition followed
// by generation of the next output block.
func (s *State) clockUpdate() {
	l1, l2, r1, r2 := s.nextFSM()
	na4, nb10 := s.feedback()
	s.shift(na4, nb10)
	s.l1, s.l2, s.r1, s.r2 = l1, l2, r1, r2
	s.genStream()
}

// nextFSM computes the next internal registers from the pre-clock state.
func (s *State) nextFSM() (l1, l2, r1, r2 uint32) {
	r1 = subWord(s.l2 + s.b[9])
	r2 = subWord(s.r1)
	l1 = subWord(s.r2 + s.b[4])
	l2 = subWord(s.l1)
	return
}

// feedback computes the new last words of both shift registers from the
// pre-clock state. B's feedback is dynamically controlled by bits 30 and 31
// of A[2]: bit 30 selects the alpha_1 or alpha_2 multiplier for B[0], bit
// 31 selects alpha_3 or identity for B[8].
func (s *State) feedback() (na4, nb10 uint32) {
	na4 = mulAlpha0(s.a[0]) ^ s.a[3]

	var t1, t2 uint32
	if s.a[2]&0x40000000 != 0 {
		t1 = mulAlpha1(s.b[0])
	} else {
		t1 = mulAlpha2(s.b[0])
	}
	if s.a[2]&0x80000000 != 0 {
		t2 = mulAlpha3(s.b[8])
	} else {
		t2 = s.b[8]
	}
	nb10 = t1 ^ s.b[1] ^ s.b[6] ^ t2
	return
}

// shift advances both FSRs by one word, installing the new feedback words.
func (s *State) shift(na4, nb10 uint32) {
	copy(s.a[:], s.a[1:])
	s.a[4] = na4
	copy(s.b[:], s.b[1:])
	s.b[10] = nb10
}

// genStream produces the next 8-byte output block from the post-clock state.
func (s *State) genStream() {
	s.sh = nlf(s.b[10], s.l2, s.l1, s.a[0])
	s.sl = nlf(s.b[0], s.r2, s.r1, s.a[4])
}

// nlf is the non-linear output function (a + b) ^ c ^ d, with the addition
// modulo 2^32.
func nlf(a, b, c, d uint32) uint32 {
	return (a + b) ^ c ^ d
}

// subWord applies the byte substitution and MDS mixing to a word via the
// folded tables, one lookup per byte.
func subWord(u uint32) uint32 {
	return sbox0[byte(u)] ^ sbox1[byte(u>>8)] ^ sbox2[byte(u>>16)] ^ sbox3[byte(u>>24)]
}

func mulAlpha0(u uint32) uint32 { return u<<8 ^ alpha0[u>>24] }
func mulAlpha1(u uint32) uint32 { return u<<8 ^ alpha1[u>>24] }
func mulAlpha2(u uint32) uint32 { return u<<8 ^ alpha2[u>>24] }
func mulAlpha3(u uint32) uint32 { return u<<8 ^ alpha3[u>>24] }
