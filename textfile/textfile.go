// Package textfile loads and saves plain text documents, one row per line.
package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ErrNoFilename is returned when saving a document that has no path yet.
var ErrNoFilename = errors.New("no filename")

const maxLineLength = 16 * 1024 * 1024

// Load reads the file at path and returns its lines without line endings.
// A file that does not exist yet loads as an empty document.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open file '%s': %w", path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		// Remove trailing carriage returns
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading file '%s': %w", path, err)
	}
	return lines, nil
}

// Encode joins lines with newlines, ending the last one too.
func Encode(lines []string) []byte {
	totalSize := 0
	for _, line := range lines {
		totalSize += len(line) + 1
	}
	buf := make([]byte, 0, totalSize)
	for _, line := range lines {
		buf = append(buf, line...)
		buf = append(buf, '\n')
	}
	return buf
}

// Save writes lines to path, replacing its contents, and returns the number
// of bytes written.
func Save(path string, lines []string) (int, error) {
	buf := Encode(lines)

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	// Truncate first so a shorter document leaves no stale tail.
	if err := file.Truncate(int64(len(buf))); err != nil {
		return 0, err
	}
	n, err := file.Write(buf)
	if err != nil {
		return n, err
	}
	if n != len(buf) {
		return n, fmt.Errorf("partial write: %d/%d bytes", n, len(buf))
	}
	return n, nil
}

// File is a document destination. The zero value has no path; saving it
// fails with ErrNoFilename until Path is set.
type File struct {
	Path string
}

// Save writes lines to the file's path.
func (f *File) Save(lines []string) (int, error) {
	if f.Path == "" {
		return 0, ErrNoFilename
	}
	return Save(f.Path, lines)
}
