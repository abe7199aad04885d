// SPDX-FileCopyrightText: (C) 2025 shamo33
// SPDX-License-Identifier: Apache 2.0

package kcipher2

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// Reference keystreams produced by the cipher specification's test key/IV
// pairs, 64 bytes each.
const (
	zeroKeystreamHex = "f871ebef945b7272e40c04941dff0537" +
		"0b981a59fbc8ac57566d3b02c179dbb4" +
		"3b46f1f033554c725de68bcc9872858f" +
		"575496024062f0e9f932c998226db6ba"

	refKeyHex       = "a37b7d012c897f273c0e6f3a6b7b55e3"
	refIVHex        = "00112233445566778899aabbccddeeff"
	refKeystreamHex = "4a5dcad8aaeaaa9b576f3ea57c8ce1fe" +
		"3be08aeda0fd10e1af375c7413d05a64" +
		"382ba5919d78f59e2f493316086199c4" +
		"441aa9c48b43c54bbc7e050e2e4f8d20"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func newKeyed(t *testing.T, key, iv []byte) *State {
	t.Helper()
	s := New()
	if err := s.Setup(key, iv); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	return s
}

func TestKeystreamVectors(t *testing.T) {
	tests := []struct {
		name      string
		key, iv   string
		keystream string
	}{
		{
			name:      "all zero",
			key:       "00000000000000000000000000000000",
			iv:        "00000000000000000000000000000000",
			keystream: zeroKeystreamHex,
		},
		{
			name:      "reference pair",
			key:       refKeyHex,
			iv:        refIVHex,
			keystream: refKeystreamHex,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newKeyed(t, mustHex(t, tt.key), mustHex(t, tt.iv))
			got := make([]byte, 64)
			s.Stream(got)
			want := mustHex(t, tt.keystream)
			if !bytes.Equal(got, want) {
				t.Fatalf("keystream = %x, want %x", got, want)
			}
		})
	}
}

func TestSetupRejectsBadSizes(t *testing.T) {
	key := make([]byte, KeySize)
	iv := make([]byte, IVSize)

	s := New()
	if err := s.Setup(key[:15], iv); err == nil {
		t.Fatal("Setup accepted a 15-byte key")
	}
	if err := s.Setup(key, iv[:8]); err == nil {
		t.Fatal("Setup accepted an 8-byte iv")
	}
	if err := s.Setup(append(key, 0), iv); err == nil {
		t.Fatal("Setup accepted a 17-byte key")
	}
}

func TestEncryptDecryptSymmetry(t *testing.T) {
	key := mustHex(t, refKeyHex)
	iv := mustHex(t, refIVHex)

	plaintext := make([]byte, 257) // deliberately not a multiple of 8
	for i := range plaintext {
		plaintext[i] = byte(i * 7)
	}

	ct := make([]byte, len(plaintext))
	newKeyed(t, key, iv).Crypt(ct, plaintext)

	if bytes.Equal(ct, plaintext) {
		t.Fatal("ciphertext equals plaintext")
	}

	pt := make([]byte, len(ct))
	newKeyed(t, key, iv).Crypt(pt, ct)
	if !bytes.Equal(pt, plaintext) {
		t.Fatalf("round trip = %x, want %x", pt, plaintext)
	}
}

func TestKnownCiphertext(t *testing.T) {
	// 32-byte plaintext 00 01 .. 1f under the all-zero key and IV.
	plaintext := make([]byte, 32)
	for i := range plaintext {
		plaintext[i] = byte(i)
	}
	want := mustHex(t, "f870e9ec905e7475ec050e9f11f20b381b89084aefddba404e742119dd64c5ab")

	zero := make([]byte, KeySize)
	ct := make([]byte, 32)
	newKeyed(t, zero, zero).Crypt(ct, plaintext)
	if !bytes.Equal(ct, want) {
		t.Fatalf("ciphertext = %x, want %x", ct, want)
	}

	pt := make([]byte, 32)
	newKeyed(t, zero, zero).Crypt(pt, ct)
	if !bytes.Equal(pt, plaintext) {
		t.Fatalf("decrypt = %x, want %x", pt, plaintext)
	}
}

func TestCryptMatchesKeystream(t *testing.T) {
	key := mustHex(t, refKeyHex)
	iv := mustHex(t, refIVHex)

	plaintext := make([]byte, 100)
	for i := range plaintext {
		plaintext[i] = byte(0xa5 ^ i)
	}

	ks := make([]byte, len(plaintext))
	newKeyed(t, key, iv).Stream(ks)

	ct := make([]byte, len(plaintext))
	newKeyed(t, key, iv).Crypt(ct, plaintext)

	for i := range plaintext {
		if ct[i] != plaintext[i]^ks[i] {
			t.Fatalf("byte %d: ct=%02x, want pt^ks=%02x", i, ct[i], plaintext[i]^ks[i])
		}
	}
}

func TestChunkingIndependence(t *testing.T) {
	key := mustHex(t, refKeyHex)
	iv := mustHex(t, refIVHex)

	whole := make([]byte, 64)
	newKeyed(t, key, iv).Stream(whole)

	ones := make([]int, 64)
	for i := range ones {
		ones[i] = 1
	}
	partitions := [][]int{
		{8, 8, 8, 8, 8, 8, 8, 8},
		ones,
		{3, 5, 7, 11, 13, 17, 8},
		{64},
	}
	for _, part := range partitions {
		s := newKeyed(t, key, iv)
		var got []byte
		for _, n := range part {
			chunk := make([]byte, n)
			s.Stream(chunk)
			got = append(got, chunk...)
		}
		if !bytes.Equal(got, whole) {
			t.Fatalf("partition %v: keystream = %x, want %x", part, got, whole)
		}
	}
}

func TestBoundaryResumption(t *testing.T) {
	key := make([]byte, KeySize)
	iv := make([]byte, IVSize)

	whole := make([]byte, 40)
	newKeyed(t, key, iv).Stream(whole)

	for _, split := range []int{0, 1, 7, 8, 9, 15, 16, 17} {
		s := newKeyed(t, key, iv)
		got := make([]byte, 40)
		s.Stream(got[:split])
		s.Stream(got[split:])
		if !bytes.Equal(got, whole) {
			t.Fatalf("split at %d: keystream = %x, want %x", split, got, whole)
		}
	}
}

func TestZeroLengthCallsAreNoOps(t *testing.T) {
	key := make([]byte, KeySize)
	iv := make([]byte, IVSize)

	whole := make([]byte, 24)
	newKeyed(t, key, iv).Stream(whole)

	s := newKeyed(t, key, iv)
	got := make([]byte, 24)
	s.Stream(nil)
	s.Stream(got[:5])
	s.Stream([]byte{})
	s.Crypt(nil, nil)
	s.Stream(got[5:8])
	s.Stream(nil)
	s.Stream(got[8:])
	if !bytes.Equal(got, whole) {
		t.Fatalf("keystream with interleaved empty calls = %x, want %x", got, whole)
	}
}

func TestUnkeyedStateIsInert(t *testing.T) {
	s := New()
	out := []byte{0xde, 0xad, 0xbe, 0xef}
	s.Stream(out)
	if !bytes.Equal(out, []byte{0xde, 0xad, 0xbe, 0xef}) {
		t.Fatalf("Stream on unkeyed state wrote output: %x", out)
	}
	s.Crypt(out, []byte{1, 2, 3, 4})
	if !bytes.Equal(out, []byte{0xde, 0xad, 0xbe, 0xef}) {
		t.Fatalf("Crypt on unkeyed state wrote output: %x", out)
	}
	if _, err := s.Read(out); err == nil {
		t.Fatal("Read on unkeyed state did not fail")
	}
}

func TestDestroyZeroizes(t *testing.T) {
	key := mustHex(t, refKeyHex)
	iv := mustHex(t, refIVHex)
	s := newKeyed(t, key, iv)
	s.Stream(make([]byte, 13))

	s.Destroy()
	if *s != (State{}) {
		t.Fatalf("state not zeroed after Destroy: %+v", *s)
	}

	out := []byte{1, 2, 3}
	s.Stream(out)
	if !bytes.Equal(out, []byte{1, 2, 3}) {
		t.Fatalf("Stream on destroyed state wrote output: %x", out)
	}

	// A destroyed state can be keyed again.
	if err := s.Setup(key, iv); err != nil {
		t.Fatalf("Setup after Destroy: %v", err)
	}
	got := make([]byte, 16)
	s.Stream(got)
	want := mustHex(t, refKeystreamHex)[:16]
	if !bytes.Equal(got, want) {
		t.Fatalf("keystream after rekey = %x, want %x", got, want)
	}
}

func TestInPlaceCrypt(t *testing.T) {
	key := make([]byte, KeySize)
	iv := make([]byte, IVSize)

	plaintext := []byte("thirteen bytes then some more, 31")
	buf := append([]byte(nil), plaintext...)

	want := make([]byte, len(buf))
	newKeyed(t, key, iv).Crypt(want, plaintext)

	s := newKeyed(t, key, iv)
	s.Crypt(buf, buf)
	if !bytes.Equal(buf, want) {
		t.Fatalf("in-place ciphertext = %x, want %x", buf, want)
	}
}

func TestXORKeyStreamAndRead(t *testing.T) {
	key := make([]byte, KeySize)
	iv := make([]byte, IVSize)

	ks := make([]byte, 32)
	newKeyed(t, key, iv).Stream(ks)

	s := newKeyed(t, key, iv)
	got := make([]byte, 32)
	s.XORKeyStream(got, make([]byte, 32))
	if !bytes.Equal(got, ks) {
		t.Fatalf("XORKeyStream over zeros = %x, want %x", got, ks)
	}

	s = newKeyed(t, key, iv)
	n, err := s.Read(got)
	if err != nil || n != len(got) {
		t.Fatalf("Read = (%d, %v), want (%d, nil)", n, err, len(got))
	}
	if !bytes.Equal(got, ks) {
		t.Fatalf("Read keystream = %x, want %x", got, ks)
	}
}

func TestDeterminism(t *testing.T) {
	key := mustHex(t, refKeyHex)
	iv := mustHex(t, refIVHex)

	a := make([]byte, 48)
	b := make([]byte, 48)
	newKeyed(t, key, iv).Stream(a)
	newKeyed(t, key, iv).Stream(b)
	if !bytes.Equal(a, b) {
		t.Fatalf("same key/iv produced different keystreams:\n%x\n%x", a, b)
	}
}

func BenchmarkStream(b *testing.B) {
	s := New()
	if err := s.Setup(make([]byte, KeySize), make([]byte, IVSize)); err != nil {
		b.Fatal(err)
	}
	buf := make([]byte, 4096)
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Stream(buf)
	}
}
