package storage

import (
	"context"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
	"github.com/rs/zerolog/log"
)

// DiskStore keeps uploads under a local directory, served back via the
// /uploads static route. References are the generated filenames.
type DiskStore struct {
	Dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{Dir: dir}, nil
}

func (d *DiskStore) Save(_ context.Context, filename string, r io.Reader) (string, error) {
	if !AllowedExt(filename) {
		return "", ErrUnsupportedType
	}
	ext := strings.ToLower(filepath.Ext(filename))
	ref := uuid.New().String() + ext
	path := filepath.Join(d.Dir, ref)

	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", err
	}

	// Raster artwork gets a small jpeg preview for the admin screens.
	// Preview generation is best-effort; the original is authoritative.
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif":
		if err := d.writePreview(path, ref, ext); err != nil {
			log.Warn().Err(err).Str("ref", ref).Msg("design preview generation failed")
		}
	}
	return ref, nil
}

func (d *DiskStore) writePreview(path, ref, ext string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var img image.Image
	switch ext {
	case ".png":
		img, err = png.Decode(f)
	case ".gif":
		img, err = gif.Decode(f)
	default:
		img, err = jpeg.Decode(f)
	}
	if err != nil {
		return err
	}

	small := resize.Resize(400, 0, img, resize.Lanczos3)
	out, err := os.Create(filepath.Join(d.Dir, previewName(ref)))
	if err != nil {
		return err
	}
	defer out.Close()
	return jpeg.Encode(out, small, &jpeg.Options{Quality: 80})
}

func (d *DiskStore) Delete(_ context.Context, ref string) error {
	// The preview may or may not exist; its removal never fails the call.
	_ = os.Remove(filepath.Join(d.Dir, previewName(ref)))
	return os.Remove(filepath.Join(d.Dir, ref))
}

func (d *DiskStore) URL(ref string) string { return "/uploads/" + ref }

func previewName(ref string) string {
	return strings.TrimSuffix(ref, filepath.Ext(ref)) + "_preview.jpg"
}
