package tags

import (
	"strings"

	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
)

// readFLACWithVorbisFallback reads FLAC metadata straight from the Vorbis
// comment block when dhowden/tag fails.
func readFLACWithVorbisFallback(path string) (*Tag, error) {
	f, err := parseFLAC(path)
	if err != nil {
		return nil, err
	}

	t := &Tag{Path: path}
	cmts, _, err := vorbisComments(f)
	if err != nil {
		return nil, err
	}
	if cmts == nil {
		return t, nil
	}

	return newTag(path,
		firstComment(cmts, flacvorbis.FIELD_TITLE),
		firstComment(cmts, flacvorbis.FIELD_ARTIST),
		firstComment(cmts, "ALBUMARTIST"),
	), nil
}

// vorbisComments returns the parsed comment block and its index in f.Meta,
// or a nil block and -1 when the file has none.
func vorbisComments(f *flac.File) (*flacvorbis.MetaDataBlockVorbisComment, int, error) {
	for i, meta := range f.Meta {
		if meta.Type == flac.VorbisComment {
			cmts, err := flacvorbis.ParseFromMetaDataBlock(*meta)
			if err != nil {
				return nil, -1, err
			}
			return cmts, i, nil
		}
	}
	return nil, -1, nil
}

// firstComment returns the first value of key, matched case-insensitively.
func firstComment(cmts *flacvorbis.MetaDataBlockVorbisComment, key string) string {
	for _, c := range cmts.Comments {
		k, v, ok := strings.Cut(c, "=")
		if ok && strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}
