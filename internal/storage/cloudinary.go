package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore uploads design files to Cloudinary. References are the
// asset public IDs returned by the upload API.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStore(cloudURL string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromURL(cloudURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryStore{cld: cld}, nil
}

func (c *CloudinaryStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if !AllowedExt(filename) {
		return "", ErrUnsupportedType
	}
	res, err := c.cld.Upload.Upload(ctx, r, uploader.UploadParams{})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	return res.PublicID, nil
}

func (c *CloudinaryStore) Delete(ctx context.Context, ref string) error {
	_, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: ref})
	return err
}

func (c *CloudinaryStore) URL(ref string) string {
	img, err := c.cld.Image(ref)
	if err != nil {
		return ""
	}
	u, err := img.String()
	if err != nil {
		return ""
	}
	return u
}
