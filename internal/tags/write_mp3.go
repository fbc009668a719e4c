package tags

import (
	"errors"
	"fmt"

	"github.com/bogem/id3v2/v2"
)

// writeMP3Title sets the TIT2 frame of an MP3 file, saving the tag as
// ID3v2.4 with UTF-8 text. An ID3v2.2 tag, which id3v2 cannot edit, is
// dropped and replaced.
func writeMP3Title(path, title string) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if errors.Is(err, id3v2.ErrUnsupportedVersion) {
		if err := stripLeadingID3(path); err != nil {
			return fmt.Errorf("strip unsupported ID3v2 tag: %w", err)
		}
		tag, err = id3v2.Open(path, id3v2.Options{Parse: true})
	}
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer tag.Close()

	tag.SetVersion(4)
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetTitle(title)

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tags: %w", err)
	}
	return nil
}
