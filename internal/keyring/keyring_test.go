// SPDX-FileCopyrightText: (C) 2025 shamo33
// SPDX-License-Identifier: Apache 2.0

package keyring

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
)

func openTestKeyring(t *testing.T) *Keyring {
	t.Helper()
	k, err := Open("sqlite", filepath.Join(t.TempDir(), "keys.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return k
}

func TestOpenValidation(t *testing.T) {
	if _, err := Open("sqlite", ""); err == nil {
		t.Fatal("Open accepted an empty dsn")
	}
	if _, err := Open("oracle", "dsn"); err == nil {
		t.Fatal("Open accepted an unsupported database type")
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	k := openTestKeyring(t)

	material := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	if err := k.Put("backup", material); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := k.Get("backup")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, material) {
		t.Fatalf("Get = %x, want %x", got, material)
	}
}

func TestPutValidation(t *testing.T) {
	k := openTestKeyring(t)

	if err := k.Put("", make([]byte, 16)); err == nil {
		t.Fatal("Put accepted an empty name")
	}
	if err := k.Put("short", make([]byte, 8)); err == nil {
		t.Fatal("Put accepted 8-byte material")
	}
	if err := k.Put("dup", make([]byte, 16)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := k.Put("dup", make([]byte, 16)); err == nil {
		t.Fatal("Put accepted a duplicate name")
	}
}

func TestListAndRemove(t *testing.T) {
	k := openTestKeyring(t)

	for _, name := range []string{"first", "second", "third"} {
		if err := k.Put(name, make([]byte, 16)); err != nil {
			t.Fatalf("Put(%q): %v", name, err)
		}
	}

	keys, err := k.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(keys) != 3 {
		t.Fatalf("List returned %d keys, want 3", len(keys))
	}
	if keys[0].Name != "first" || keys[2].Name != "third" {
		t.Fatalf("List order = %q, %q, %q", keys[0].Name, keys[1].Name, keys[2].Name)
	}

	if err := k.Remove("second"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := k.Get("second"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after Remove = %v, want ErrNotFound", err)
	}
	if err := k.Remove("second"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Remove of missing key = %v, want ErrNotFound", err)
	}

	keys, err = k.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("List after Remove returned %d keys, want 2", len(keys))
	}
}

func TestGetMissing(t *testing.T) {
	k := openTestKeyring(t)
	if _, err := k.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get = %v, want ErrNotFound", err)
	}
}
