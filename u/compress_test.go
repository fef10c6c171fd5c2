package u

import (
	"os"
	"path/filepath"
	"testing"
)

func roundTrip(t *testing.T, name string, data []byte) {
	path := filepath.Join(t.TempDir(), name)
	err := WriteFileCompressed(path, data)
	if err != nil {
		t.Fatalf("WriteFileCompressed(%q) failed with '%s'", name, err)
	}
	got, err := ReadFileMaybeCompressed(path)
	if err != nil {
		t.Fatalf("ReadFileMaybeCompressed(%q) failed with '%s'", name, err)
	}
	if string(got) != string(data) {
		t.Fatalf("%q: expected %q, got %q", name, data, got)
	}
}

func TestCompressRoundTrip(t *testing.T) {
	data := []byte("samosa,10,2.5\ntacos,15,3.75\n")
	roundTrip(t, "inventory.txt", data)
	roundTrip(t, "inventory.txt.gz", data)
	roundTrip(t, "inventory.txt.zst", data)
	roundTrip(t, "inventory.txt.br", data)
}

func TestFileHelpers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	if PathExists(path) || FileExists(path) {
		t.Fatalf("'%s' should not exist yet", path)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed with '%s'", err)
	}
	if !PathExists(path) || !FileExists(path) || DirExists(path) {
		t.Fatalf("'%s' should be a regular file", path)
	}
	if !DirExists(dir) || FileExists(dir) {
		t.Fatalf("'%s' should be a directory", dir)
	}
}
