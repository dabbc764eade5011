// Package sourcefile reads .grug source files into memory, the "Source
// Reader" component of spec §2 (file I/O is this package's only concern;
// it does no tokenizing).
package sourcefile

import (
	"fmt"
	"os"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Read reads path fully and strips a leading UTF-8 byte-order mark, if any.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return stripBOM(data), nil
}

func stripBOM(data []byte) string {
	if len(data) >= len(bom) && data[0] == bom[0] && data[1] == bom[1] && data[2] == bom[2] {
		data = data[len(bom):]
	}
	return string(data)
}

// Write writes source text to path, creating or truncating the file.
func Write(path string, source string) error {
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
