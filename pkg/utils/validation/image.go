package validation

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var (
	ErrFileSize     = errors.New("file size exceeds limit of 10MB")
	ErrFileType     = errors.New("invalid file type. Allowed types: JPG, PNG, WEBP")
	ErrFileRequired = errors.New("no file provided")
	ErrTooManyFiles = errors.New("maximum 20 files allowed")
)

const (
	MaxImageSize  = 10 * 1024 * 1024 // 10MB
	MaxImageCount = 20
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

func ValidateImage(file *multipart.FileHeader) error {
	if file == nil {
		return ErrFileRequired
	}

	if file.Size > MaxImageSize {
		return ErrFileSize
	}

	// Uzantı ve content-type birlikte kontrol edilir
	ext := filepath.Ext(strings.ToLower(file.Filename))
	if !allowedExtensions[ext] {
		return ErrFileType
	}
	if ct := file.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return ErrFileType
	}

	return nil
}

// ValidateImages ilan yüklemelerindeki çoklu dosyalar için
func ValidateImages(files []*multipart.FileHeader) error {
	if len(files) > MaxImageCount {
		return ErrTooManyFiles
	}
	for _, f := range files {
		if err := ValidateImage(f); err != nil {
			return err
		}
	}
	return nil
}
