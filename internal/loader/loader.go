// Package loader turns local bill files of various formats into the plain
// text the comparison pipeline works on.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Options tune format-specific extraction.
type Options struct {
	// PDFFallbackPdftotext shells out to pdftotext when the native PDF
	// reader cannot extract text.
	PDFFallbackPdftotext bool
}

// SupportedExtensions lists the file extensions Load accepts.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// IsSupported reports whether the filename's extension can be loaded.
func IsSupported(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Load reads a bill file and flattens it to plain text.
func Load(path string, opts Options) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return FromReader(f, path, opts)
}

// FromReader flattens a document to plain text, dispatching on the
// filename's extension.
func FromReader(r io.Reader, filename string, opts Options) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".txt":
		return readText(r)
	case ".md", ".markdown":
		return readMarkdown(r)
	case ".html", ".htm":
		return readHTML(r)
	case ".pdf":
		return readPDF(r, opts)
	case ".docx":
		return readDOCX(r)
	default:
		return "", fmt.Errorf("unsupported file extension: %s", ext)
	}
}

func readText(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var buf strings.Builder
	for scanner.Scan() {
		buf.WriteString(strings.TrimRight(scanner.Text(), "\r"))
		buf.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}
	return buf.String(), nil
}
