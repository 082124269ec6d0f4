package swf

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestParseFileSaveFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.swf")
	out := filepath.Join(dir, "out.swf")

	original := saveToBytes(t, sampleMovie(t, CompZlib, Tag{Code: 9, Data: []byte{1, 2, 3}}))
	if err := os.WriteFile(in, original, 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := ParseFile(in)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.SaveFile(out); err != nil {
		t.Fatal(err)
	}
	resaved, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(resaved, original) {
		t.Fatal("file roundtrip changed bytes")
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "nope.swf")); err == nil {
		t.Fatal("expected error")
	}
}

func TestSaveFileLegacyVersionError(t *testing.T) {
	dir := t.TempDir()
	file := saveToBytes(t, sampleMovie(t, CompNone, Tag{Code: 1}))
	m, err := Parse(bytes.NewReader(file))
	if err != nil {
		t.Fatal(err)
	}
	m.header.Version = 5 // force the legacy save error
	out := filepath.Join(dir, "out.swf")
	if err := m.SaveFile(out); err == nil {
		t.Fatal("expected error")
	}
}
