package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const maxImageBytes = 5 * 1024 * 1024

const dataURLPrefix = "data:image/png;base64,"

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

var imageFilenameRe = regexp.MustCompile(`^[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12}\.png$`)

// ImageStore persists diagram PNGs on disk under opaque generated filenames.
// Filenames are the only reference recorded in the database, and reads are
// gated by an allow-list pattern so the store can never serve an arbitrary
// path.
type ImageStore struct {
	dir string
}

func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &ImageStore{dir: dir}, nil
}

// SavePNG decodes a data-URL-encoded PNG and writes it under a fresh
// filename, which it returns.
func (s *ImageStore) SavePNG(dataURL string) (string, error) {
	if !strings.HasPrefix(dataURL, dataURLPrefix) {
		return "", ErrInvalidImage
	}

	data, err := base64.StdEncoding.DecodeString(dataURL[len(dataURLPrefix):])
	if err != nil {
		return "", ErrInvalidImage
	}
	if len(data) > maxImageBytes || !bytes.HasPrefix(data, pngMagic) {
		return "", ErrInvalidImage
	}

	filename := uuid.New().String() + ".png"
	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return filename, nil
}

// Path validates the filename against the allow-list pattern and returns the
// full on-disk path, or ErrNotFound when the file does not exist.
func (s *ImageStore) Path(filename string) (string, error) {
	if !imageFilenameRe.MatchString(filename) {
		return "", ErrNotFound
	}
	path := filepath.Join(s.dir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", ErrNotFound
	}
	return path, nil
}

// Remove deletes a stored image. Best effort: a missing file is not an error.
func (s *ImageStore) Remove(filename string) {
	if imageFilenameRe.MatchString(filename) {
		_ = os.Remove(filepath.Join(s.dir, filename))
	}
}
