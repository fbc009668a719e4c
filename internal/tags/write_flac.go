package tags

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
)

// parseFLAC reads a FLAC stream, skipping an ID3v2 tag some encoders put in
// front of it. Saving the result drops that tag.
func parseFLAC(path string) (*flac.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	skip, err := leadingID3Size(data)
	if err != nil {
		return nil, err
	}
	return flac.ParseBytes(bytes.NewReader(data[skip:]))
}

// writeFLACTitle replaces every TITLE comment of a FLAC file with a single
// one. The vendor string and other comments keep their order.
func writeFLACTitle(path, title string) error {
	f, err := parseFLAC(path)
	if err != nil {
		return fmt.Errorf("parse file: %w", err)
	}

	old, idx, err := vorbisComments(f)
	if err != nil {
		return fmt.Errorf("parse comments: %w", err)
	}

	cmts := flacvorbis.New()
	if old != nil {
		cmts.Vendor = old.Vendor
		for _, c := range old.Comments {
			key, _, _ := strings.Cut(c, "=")
			if !strings.EqualFold(key, flacvorbis.FIELD_TITLE) {
				cmts.Comments = append(cmts.Comments, c)
			}
		}
	}
	if err := cmts.Add(flacvorbis.FIELD_TITLE, title); err != nil {
		return fmt.Errorf("add title: %w", err)
	}

	block := cmts.Marshal()
	if idx >= 0 {
		f.Meta[idx] = &block
	} else {
		f.Meta = append(f.Meta, &block)
	}

	if err := f.Save(path); err != nil {
		return fmt.Errorf("save file: %w", err)
	}
	return nil
}
