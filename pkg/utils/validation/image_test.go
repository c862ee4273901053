package validation

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func header(name string, size int64, contentType string) *multipart.FileHeader {
	h := &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   textproto.MIMEHeader{},
	}
	if contentType != "" {
		h.Header.Set("Content-Type", contentType)
	}
	return h
}

func TestValidateImage(t *testing.T) {
	t.Run("accepts jpeg", func(t *testing.T) {
		assert.NoError(t, ValidateImage(header("ev.jpg", 1024, "image/jpeg")))
	})

	t.Run("accepts webp regardless of case", func(t *testing.T) {
		assert.NoError(t, ValidateImage(header("EV.WEBP", 1024, "image/webp")))
	})

	t.Run("rejects nil file", func(t *testing.T) {
		assert.ErrorIs(t, ValidateImage(nil), ErrFileRequired)
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		assert.ErrorIs(t, ValidateImage(header("ev.jpg", MaxImageSize+1, "image/jpeg")), ErrFileSize)
	})

	t.Run("rejects disallowed extension", func(t *testing.T) {
		assert.ErrorIs(t, ValidateImage(header("ev.gif", 1024, "image/gif")), ErrFileType)
	})

	t.Run("rejects mismatched content type", func(t *testing.T) {
		assert.ErrorIs(t, ValidateImage(header("ev.jpg", 1024, "application/pdf")), ErrFileType)
	})
}

func TestValidateImages(t *testing.T) {
	t.Run("rejects more than limit", func(t *testing.T) {
		files := make([]*multipart.FileHeader, MaxImageCount+1)
		for i := range files {
			files[i] = header("ev.jpg", 1024, "image/jpeg")
		}
		assert.ErrorIs(t, ValidateImages(files), ErrTooManyFiles)
	})

	t.Run("surfaces first invalid file", func(t *testing.T) {
		files := []*multipart.FileHeader{
			header("ev.jpg", 1024, "image/jpeg"),
			header("plan.pdf", 1024, "application/pdf"),
		}
		assert.ErrorIs(t, ValidateImages(files), ErrFileType)
	})

	t.Run("accepts empty list", func(t *testing.T) {
		assert.NoError(t, ValidateImages(nil))
	})
}
