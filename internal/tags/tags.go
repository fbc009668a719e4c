// Package tags reads and rewrites the title of MP3 and FLAC files and
// exposes each file to the title pipeline as a host item.
package tags

import (
	"errors"
	"path/filepath"
	"strings"
)

// File extensions supported by the tags package.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
)

// id3Magic is the magic bytes for ID3v2 header detection.
const id3Magic = "ID3"

// ErrUnsupportedFormat is returned for files that are neither MP3 nor FLAC.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Tag holds the metadata the title pipeline needs.
type Tag struct {
	Path        string
	Title       string
	Artist      string
	AlbumArtist string
}

// IsSupported returns true if the path has a writable extension.
func IsSupported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtMP3, ExtFLAC:
		return true
	}
	return false
}

// splitArtists splits a multi-valued artist tag on the separators taggers
// commonly use.
func splitArtists(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == '/' || r == 0
	})
}
