package loader

import (
	"fmt"
	"io"

	"github.com/dgallion1/billtracer/internal/fetch"
)

// readHTML reuses the mirror extractor so a saved page and a fetched page
// flatten identically.
func readHTML(r io.Reader) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read html: %w", err)
	}
	return fetch.HTMLToText(string(raw)), nil
}
