package assets

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Deleter removes a hosted asset by its public id.
type Deleter interface {
	DeleteByPublicID(ctx context.Context, publicID string) error
}

// CloudinaryStore deletes assets from a Cloudinary account. It is constructed
// once at startup from explicit credentials.
type CloudinaryStore struct {
	client *cloudinary.Cloudinary
}

func NewCloudinaryStore(cloudName, apiKey, apiSecret string) (*CloudinaryStore, error) {
	client, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}
	return &CloudinaryStore{client: client}, nil
}

func (s *CloudinaryStore) DeleteByPublicID(ctx context.Context, publicID string) error {
	_, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}

// PublicIDFromURL derives a Cloudinary public id from a delivery URL: the
// final path segment with its extension stripped. Returns false for URLs that
// are not hosted on Cloudinary.
//
// The record only stores delivery URLs, so assets uploaded into a folder
// (whose public id includes the folder prefix) cannot be derived from the
// last segment alone; deleting those fails and is logged by the reconciler.
func PublicIDFromURL(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || !strings.Contains(u.Host, "cloudinary") {
		return "", false
	}

	segment := path.Base(u.Path)
	if segment == "." || segment == "/" {
		return "", false
	}
	if i := strings.LastIndexByte(segment, '.'); i > 0 {
		segment = segment[:i]
	}
	return segment, true
}
