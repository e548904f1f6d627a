package services_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsorbit-api/config"
	"newsorbit-api/models"
	"newsorbit-api/services"
)

type recordingBlobStore struct {
	name string
	data []byte
	err  error
}

func (s *recordingBlobStore) Save(name string, data []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.name = name
	s.data = data
	return "/uploads/" + name, nil
}

func uploadConfig() config.UploadConfig {
	return config.UploadConfig{
		MaxFileSize:   5 * 1024 * 1024,
		MaxImageWidth: 1000,
		JPEGQuality:   70,
	}
}

func jpegBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 10 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestProcessImageDownscalesWideImages(t *testing.T) {
	store := &recordingBlobStore{}
	svc := services.NewUploadService(store, uploadConfig())

	data := jpegBytes(t, 2000, 500)
	url, err := svc.ProcessImage(bytes.NewReader(data), "photo.jpg", int64(len(data)))
	require.NoError(t, err)
	assert.Contains(t, url, "/uploads/")

	stored, _, err := image.Decode(bytes.NewReader(store.data))
	require.NoError(t, err)
	assert.Equal(t, 1000, stored.Bounds().Dx())
	assert.Equal(t, 250, stored.Bounds().Dy(), "aspect ratio preserved")
}

func TestProcessImageKeepsSmallImages(t *testing.T) {
	store := &recordingBlobStore{}
	svc := services.NewUploadService(store, uploadConfig())

	data := jpegBytes(t, 640, 480)
	_, err := svc.ProcessImage(bytes.NewReader(data), "small.jpeg", int64(len(data)))
	require.NoError(t, err)

	stored, _, err := image.Decode(bytes.NewReader(store.data))
	require.NoError(t, err)
	assert.Equal(t, 640, stored.Bounds().Dx())
}

func TestProcessImageRejectsBadExtension(t *testing.T) {
	svc := services.NewUploadService(&recordingBlobStore{}, uploadConfig())

	data := jpegBytes(t, 100, 100)
	_, err := svc.ProcessImage(bytes.NewReader(data), "notes.pdf", int64(len(data)))

	var uerr models.ErrorUpload
	assert.ErrorAs(t, err, &uerr)
}

func TestProcessImageRejectsOversizedFile(t *testing.T) {
	svc := services.NewUploadService(&recordingBlobStore{}, uploadConfig())

	data := jpegBytes(t, 100, 100)
	_, err := svc.ProcessImage(bytes.NewReader(data), "big.jpg", 6*1024*1024)

	var uerr models.ErrorUpload
	assert.ErrorAs(t, err, &uerr)
}

func TestProcessImageRejectsGarbage(t *testing.T) {
	svc := services.NewUploadService(&recordingBlobStore{}, uploadConfig())

	_, err := svc.ProcessImage(bytes.NewReader([]byte("not an image")), "x.jpg", 12)

	var uerr models.ErrorUpload
	assert.ErrorAs(t, err, &uerr)
}

func TestProcessImageStoreFailureRejectsWholeUpload(t *testing.T) {
	store := &recordingBlobStore{err: errors.New("bucket unreachable")}
	svc := services.NewUploadService(store, uploadConfig())

	data := jpegBytes(t, 100, 100)
	_, err := svc.ProcessImage(bytes.NewReader(data), "photo.jpg", int64(len(data)))

	var uerr models.ErrorUpload
	assert.ErrorAs(t, err, &uerr)
}
