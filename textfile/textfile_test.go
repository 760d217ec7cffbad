package textfile

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	lines, err := Load(filepath.Join(t.TempDir(), "new.txt"))
	if err != nil || lines != nil {
		t.Errorf("Expected empty document, got %q (%v)", lines, err)
	}
}

func TestLoadStripsLineEndings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crlf.txt")
	if err := os.WriteFile(path, []byte("one\r\ntwo\n\nthree"), 0644); err != nil {
		t.Fatal(err)
	}

	lines, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"one", "two", "", "three"}; !slices.Equal(lines, want) {
		t.Errorf("Expected %q, got %q", want, lines)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("a much longer previous content\n"), 0644); err != nil {
		t.Fatal(err)
	}

	lines := []string{"package main", "", "\tfunc main() {}"}
	n, err := Save(path, lines)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "package main\n\n\tfunc main() {}\n" || n != len(data) {
		t.Errorf("got %q (%d bytes reported)", data, n)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(loaded, lines) {
		t.Errorf("Expected %q, got %q", lines, loaded)
	}
}

func TestFileSaveWithoutPath(t *testing.T) {
	var f File
	if _, err := f.Save([]string{"x"}); !errors.Is(err, ErrNoFilename) {
		t.Errorf("Expected ErrNoFilename, got %v", err)
	}

	f.Path = filepath.Join(t.TempDir(), "named.txt")
	if n, err := f.Save([]string{"x"}); err != nil || n != 2 {
		t.Errorf("got %d, %v", n, err)
	}
}

func TestLoadUnreadable(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("Expected error loading a directory")
	}
}
