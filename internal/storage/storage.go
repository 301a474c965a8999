package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
)

// MaxUploadBytes caps the combined size of an upload request.
const MaxUploadBytes = 50 << 20

var ErrUnsupportedType = errors.New("unsupported file type")

// Design files cover both artwork and source documents.
var allowedExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".pdf": true, ".ai": true, ".psd": true, ".eps": true, ".svg": true,
	".doc": true, ".docx": true, ".zip": true,
}

// AllowedExt reports whether the filename carries an accepted extension.
func AllowedExt(name string) bool {
	return allowedExts[strings.ToLower(filepath.Ext(name))]
}

// FileStore holds uploaded design files. Save returns an opaque reference
// that the rest of the system treats as a black box; URL resolves it to
// something a browser can fetch.
type FileStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (ref string, err error)
	Delete(ctx context.Context, ref string) error
	URL(ref string) string
}
