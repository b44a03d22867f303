package storage

import (
	"context"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/config"
)

// CloudinaryStore uploads media to Cloudinary. Audio and slide files go up as
// raw assets; everything else as auto-detected media.
type CloudinaryStore struct {
	uploader *uploader.API
}

func NewCloudinaryStore(cloudName, apiKey, apiSecret string) (*CloudinaryStore, error) {
	cfg, err := config.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	up, err := uploader.NewWithConfiguration(cfg)
	if err != nil {
		return nil, err
	}
	return &CloudinaryStore{uploader: up}, nil
}

func (s *CloudinaryStore) Save(ctx context.Context, folder, filename string, r io.Reader) (string, error) {
	resourceType := "auto"
	if strings.Contains(folder, "audio") || strings.Contains(folder, "slides") {
		resourceType = "raw"
	}
	publicID := strings.TrimSuffix(filename, pathExt(filename))
	result, err := s.uploader.Upload(ctx, r, uploader.UploadParams{
		Folder:       folder,
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}

func pathExt(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return ""
}
