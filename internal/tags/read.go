package tags

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/dhowden/tag"
)

// fallbackReaders parse a format directly when dhowden/tag rejects a file,
// as it does for some UTF-16 ID3 frames and some FLAC layouts.
var fallbackReaders = map[string]func(path string) (*Tag, error){
	ExtMP3:  readMP3WithID3v2Fallback,
	ExtFLAC: readFLACWithVorbisFallback,
}

// Read reads title and artist metadata from a music file. A file without a
// title tag yields an empty Title.
func Read(path string) (*Tag, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsSupported(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		if fallback, ok := fallbackReaders[ext]; ok {
			return fallback(path)
		}
		return nil, err
	}

	return newTag(path, m.Title(), m.Artist(), m.AlbumArtist()), nil
}

// newTag builds a Tag, using artist when no album artist is set.
func newTag(path, title, artist, albumArtist string) *Tag {
	if albumArtist == "" {
		albumArtist = artist
	}
	return &Tag{Path: path, Title: title, Artist: artist, AlbumArtist: albumArtist}
}

func readMP3WithID3v2Fallback(path string) (*Tag, error) {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer t.Close()

	return newTag(path, t.Title(), t.Artist(), id3TextFrame(t, "TPE2")), nil
}

// id3TextFrame returns the text of the first frameID frame, or "".
func id3TextFrame(t *id3v2.Tag, frameID string) string {
	for _, fr := range t.GetFrames(frameID) {
		if tf, ok := fr.(id3v2.TextFrame); ok {
			return tf.Text
		}
	}
	return ""
}
