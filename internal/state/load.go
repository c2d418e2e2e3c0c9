package state

import (
	"fmt"

	fsutil "github.com/kk-code-lab/cellfit/internal/fs"
)

// LoadDocument decodes raw input and prepares it for viewing.
func LoadDocument(name string, data []byte, tabWidth int) (*Document, error) {
	text, err := fsutil.DecodeText(data)
	if err != nil {
		return nil, fmt.Errorf("cannot load %s: %w", name, err)
	}
	return NewDocument(name, text, tabWidth), nil
}
