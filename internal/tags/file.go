package tags

import (
	"github.com/llehouerou/titleformat/internal/host"
)

// File exposes a music file's title to the pipeline. Files are never
// finalized.
type File struct {
	tag *Tag
}

// OpenFile reads the tags of path.
func OpenFile(path string) (*File, error) {
	t, err := Read(path)
	if err != nil {
		return nil, err
	}
	return &File{tag: t}, nil
}

func (f *File) Path() string { return f.tag.Path }

func (f *File) Value() string { return f.tag.Title }

func (f *File) SetValue(v string) error {
	if err := WriteTitle(f.tag.Path, v); err != nil {
		return err
	}
	f.tag.Title = v
	return nil
}

func (f *File) IsFinalized() bool { return false }

// PerformerNames returns the artist and album artist entries. Duplicates are
// left for the pipeline to fold.
func (f *File) PerformerNames() []string {
	names := splitArtists(f.tag.Artist)
	return append(names, splitArtists(f.tag.AlbumArtist)...)
}

var _ host.Item = (*File)(nil)
