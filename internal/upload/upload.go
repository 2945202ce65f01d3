// Package upload holds the user-selected audio artifact handed to the
// audio-processing service.
package upload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SupportedFormats is the advisory extension filter for audio uploads.
// The remote service remains the authority on what it accepts.
var SupportedFormats = []string{".mp3", ".wav", ".m4a", ".flac"}

var ErrEmptyFile = errors.New("audio file is empty")

// Request is a single audio upload: the raw payload plus the name it was
// selected under.
type Request struct {
	Filename string
	Data     []byte
}

// Open reads the file at path into a Request.
func Open(path string) (Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Request{}, fmt.Errorf("read audio file: %w", err)
	}
	if len(data) == 0 {
		return Request{}, fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}
	return Request{Filename: filepath.Base(path), Data: data}, nil
}

// IsAudioFile checks if the file has a supported audio extension
func IsAudioFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, format := range SupportedFormats {
		if ext == format {
			return true
		}
	}
	return false
}
