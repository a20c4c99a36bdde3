package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/swypelab/swyft/pkg/dictionary"
)

func TestCompileFromWordFreq(t *testing.T) {
	dir := t.TempDir()
	freq := "the\t1000\nhello\t50\nworld\t40\n"
	if err := os.WriteFile(filepath.Join(dir, "word_freq.txt"), []byte(freq), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	out := filepath.Join(dir, "dict.bin")
	if err := Compile(dir, out); err != nil {
		t.Fatalf("Compile: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading asset: %v", err)
	}
	asset, err := dictionary.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(asset.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(asset.Entries))
	}
}

func TestCompileNoInput(t *testing.T) {
	dir := t.TempDir()
	if err := Compile(dir, filepath.Join(dir, "dict.bin")); err != ErrNoInput {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
}

func TestCompileFromWordList(t *testing.T) {
	dir := t.TempDir()
	list := "cat\ndog\nbird\n"
	if err := os.WriteFile(filepath.Join(dir, "word_list.txt"), []byte(list), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	out := filepath.Join(dir, "dict.bin")
	if err := Compile(dir, out); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	data, _ := os.ReadFile(out)
	asset, err := dictionary.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(asset.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(asset.Entries))
	}
}
