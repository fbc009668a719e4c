package tags

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteTitle replaces the title tag of a music file, keeping every other
// tag. The file must already exist. This operation modifies the file in place.
func WriteTitle(path, title string) error {
	// Check file exists
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ExtMP3:
		return writeMP3Title(path, title)
	case ExtFLAC:
		return writeFLACTitle(path, title)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}
