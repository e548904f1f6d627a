package services

import (
	"bytes"
	"image"
	"io"

	"github.com/disintegration/imaging"

	"newsorbit-api/config"
	"newsorbit-api/models"
	"newsorbit-api/storage"
)

type UploadService interface {
	ProcessImage(r io.Reader, filename string, size int64) (string, error)
}

type uploadService struct {
	store storage.BlobStore
	cfg   config.UploadConfig
}

func NewUploadService(store storage.BlobStore, cfg config.UploadConfig) UploadService {
	return &uploadService{store: store, cfg: cfg}
}

// ProcessImage runs the sequential upload pipeline: validate, decode,
// downscale wide images, re-encode as JPEG, store. A failure at any stage
// rejects the whole upload.
func (s *uploadService) ProcessImage(r io.Reader, filename string, size int64) (string, error) {
	if size > s.cfg.MaxFileSize {
		return "", models.ErrorUpload{Message: "file exceeds the maximum upload size"}
	}
	if !storage.AllowedExtension(filename) {
		return "", models.ErrorUpload{Message: "only JPG and PNG files are allowed"}
	}

	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return "", models.ErrorUpload{Message: "upload failed, check connection"}
	}

	img = s.downscale(img)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(s.cfg.JPEGQuality)); err != nil {
		return "", models.ErrorUpload{Message: "upload failed, check connection"}
	}

	// Re-encoding always produces a JPEG regardless of the source format.
	name := storage.ObjectName(".jpg")
	url, err := s.store.Save(name, buf.Bytes())
	if err != nil {
		return "", models.ErrorUpload{Message: "upload failed, check connection"}
	}

	return url, nil
}

// downscale caps the long edge at the configured width, preserving aspect
// ratio. Smaller images pass through untouched.
func (s *uploadService) downscale(img image.Image) image.Image {
	if img.Bounds().Dx() <= s.cfg.MaxImageWidth {
		return img
	}
	return imaging.Resize(img, s.cfg.MaxImageWidth, 0, imaging.Lanczos)
}
