// SPDX-FileCopyrightText: (C) 2025 shamo33
// SPDX-License-Identifier: Apache 2.0

// Package cryptor implements the file encryption engine: it drives the
// KCipher-2 stream cipher over files in fixed-size buffers, prepending a
// fresh random IV to every encrypted file and consuming it again on
// decryption.
package cryptor

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/shamo33/cryptor/kcipher2"
)

// BufferSize is the number of bytes processed per read/write round.
const BufferSize = 512000

var errShortCiphertext = errors.New("input shorter than the initialization vector")

// progress prints a percent indicator on stderr, throttled so fast
// operations do not flood the terminal. The final 100% line is always
// printed.
type progress struct {
	verb    string
	total   int64
	done    int64
	limiter *rate.Limiter
	out     io.Writer
}

func newProgress(verb string, total int64) *progress {
	return &progress{
		verb:    verb,
		total:   total,
		limiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 1),
		out:     os.Stderr,
	}
}

func (p *progress) add(n int64) {
	p.done += n
	if p.total <= 0 || !p.limiter.Allow() {
		return
	}
	fmt.Fprintf(p.out, "\r%s (%3d %%) ...", p.verb, p.done*100/p.total)
}

func (p *progress) finish() {
	fmt.Fprintf(p.out, "\r%s (100 %%) completed!\n", p.verb)
}

// GenerateKeyIV fills buf with cryptographically random bytes suitable for
// use as a key or IV.
func GenerateKeyIV(buf []byte) error {
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("generate random material: %w", err)
	}
	return nil
}

// WriteKeyFile creates a key file holding 16 fresh random bytes and returns
// the key.
func WriteKeyFile(path string) ([]byte, error) {
	key := make([]byte, kcipher2.KeySize)
	if err := GenerateKeyIV(key); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, key, 0o600); err != nil {
		return nil, fmt.Errorf("write keyfile: %w", err)
	}
	return key, nil
}

// ReadKeyFile reads a key file, which must hold exactly 16 bytes.
func ReadKeyFile(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keyfile: %w", err)
	}
	if len(key) != kcipher2.KeySize {
		return nil, fmt.Errorf("invalid keyfile %s: got %d bytes, want %d", path, len(key), kcipher2.KeySize)
	}
	return key, nil
}

// EncryptFile encrypts src into dst under key. A fresh random IV is written
// as the first 16 bytes of dst, followed by the stream-encrypted contents
// of src.
func EncryptFile(src, dst string, key []byte) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open infile: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat infile: %w", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("open outfile: %w", err)
	}
	defer out.Close()

	iv := make([]byte, kcipher2.IVSize)
	if err := GenerateKeyIV(iv); err != nil {
		return err
	}
	if _, err := out.Write(iv); err != nil {
		return fmt.Errorf("write iv: %w", err)
	}

	state := kcipher2.New()
	defer state.Destroy()
	if err := state.Setup(key, iv); err != nil {
		return err
	}

	slog.Debug("encrypting", "src", src, "dst", dst, "size", info.Size())
	if err := pump(state, in, out, newProgress("encrypting", info.Size())); err != nil {
		return err
	}
	return out.Sync()
}

// DecryptFile decrypts src into dst under key. The first 16 bytes of src
// are the IV; inputs shorter than that are rejected.
func DecryptFile(src, dst string, key []byte) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open infile: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat infile: %w", err)
	}
	if info.Size() < int64(kcipher2.IVSize) {
		return fmt.Errorf("invalid infile %s: %w", src, errShortCiphertext)
	}

	iv := make([]byte, kcipher2.IVSize)
	if _, err := io.ReadFull(in, iv); err != nil {
		return fmt.Errorf("read iv: %w", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("open outfile: %w", err)
	}
	defer out.Close()

	state := kcipher2.New()
	defer state.Destroy()
	if err := state.Setup(key, iv); err != nil {
		return err
	}

	slog.Debug("decrypting", "src", src, "dst", dst, "size", info.Size())
	if err := pump(state, in, out, newProgress("decrypting", info.Size()-int64(kcipher2.IVSize))); err != nil {
		return err
	}
	return out.Sync()
}

// pump streams r through the cipher into w, BufferSize bytes at a time.
// The cipher's resumable buffering makes the chunking invisible in the
// output.
func pump(state *kcipher2.State, r io.Reader, w io.Writer, prog *progress) error {
	buf := make([]byte, BufferSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			state.Crypt(buf[:n], buf[:n])
			if _, werr := w.Write(buf[:n]); werr != nil {
				return fmt.Errorf("write outfile: %w", werr)
			}
			prog.add(int64(n))
		}
		if err == io.EOF {
			prog.finish()
			return nil
		}
		if err != nil {
			return fmt.Errorf("read infile: %w", err)
		}
	}
}
