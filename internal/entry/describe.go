package entry

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-enry/go-enry/v2"
)

// DirectoryType is the type column value for directories.
const DirectoryType = "/"

// FormatSize renders a byte count with decimal (SI) units, e.g. "1.2 MB".
func FormatSize(bytes uint64) string {
	return humanize.Bytes(bytes)
}

// GuessType returns a "type/subtype" guess for path based on its name.
// The extension table of the mime package is consulted first; source files
// it does not know are resolved through enry's language detection.
func GuessType(path string) (string, bool) {
	if ext := filepath.Ext(path); ext != "" {
		if t := mime.TypeByExtension(ext); t != "" {
			if mediaType, _, err := mime.ParseMediaType(t); err == nil {
				return mediaType, true
			}
			mediaType, _, _ := strings.Cut(t, ";")
			return strings.TrimSpace(mediaType), true
		}
	}
	if lang, _ := enry.GetLanguageByExtension(path); lang != "" {
		return enry.GetMIMEType(path, lang), true
	}
	return "", false
}

// typeLabel reduces a guessed MIME type to the value shown in the type
// column: the subtype, else the main type, else empty.
func typeLabel(guess string, ok bool) string {
	if !ok {
		return ""
	}
	top, sub, _ := strings.Cut(guess, "/")
	if sub != "" {
		return sub
	}
	return top
}
