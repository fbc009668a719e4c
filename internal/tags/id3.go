package tags

import (
	"errors"
	"fmt"
	"os"
)

const (
	id3HeaderLen  = 10
	id3FooterFlag = 0x10
)

var errTruncatedID3 = errors.New("ID3v2 tag runs past end of file")

// leadingID3Size returns how many bytes an ID3v2 tag occupies at the start
// of data, header and footer included. It returns 0 when data does not start
// with a tag.
func leadingID3Size(data []byte) (int, error) {
	if len(data) < id3HeaderLen || string(data[:3]) != id3Magic {
		return 0, nil
	}

	// Syncsafe: 7 significant bits per byte. The size covers the extended
	// header but not the 10-byte header or footer.
	n := int(data[6]&0x7f)<<21 | int(data[7]&0x7f)<<14 | int(data[8]&0x7f)<<7 | int(data[9]&0x7f)
	n += id3HeaderLen
	if data[5]&id3FooterFlag != 0 {
		n += id3HeaderLen
	}
	if n >= len(data) {
		return 0, fmt.Errorf("%w: %d of %d bytes", errTruncatedID3, n, len(data))
	}
	return n, nil
}

// stripLeadingID3 rewrites path without its leading ID3v2 tag, keeping the
// file mode. Files without one are left untouched.
func stripLeadingID3(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	n, err := leadingID3Size(data)
	if err != nil || n == 0 {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data[n:], info.Mode().Perm())
}
