// Package storage keeps uploaded catalog images on local disk, one
// directory per resource kind.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/programadorfullstackmern/carbarpart-api/internal/models"
)

// ImageStore writes uploads for one resource kind under its own directory,
// naming files "<prefijo>-<uuid><ext>" so concurrent uploads never collide.
type ImageStore struct {
	dir      string
	prefijo  string
	maxBytes int64
	tipos    map[string]bool
}

// NewImageStore creates the directory if needed. tipos lists the accepted
// Content-Type values of the upload part.
func NewImageStore(dir, prefijo string, maxBytes int64, tipos []string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de subidas: %w", err)
	}
	admitidos := make(map[string]bool, len(tipos))
	for _, t := range tipos {
		admitidos[t] = true
	}
	return &ImageStore{dir: dir, prefijo: prefijo, maxBytes: maxBytes, tipos: admitidos}, nil
}

// Save stores the uploaded file and returns the stored filename.
func (s *ImageStore) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > s.maxBytes {
		return "", fmt.Errorf("el archivo excede el tamaño máximo de %d bytes", s.maxBytes)
	}
	if tipo := fh.Header.Get("Content-Type"); !s.tipos[tipo] {
		return "", fmt.Errorf("tipo de archivo no permitido: %s", tipo)
	}

	nombre := s.Filename(fh.Filename)
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, nombre))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(filepath.Join(s.dir, nombre))
		return "", err
	}
	return nombre, nil
}

// Filename derives the stored name for an upload, keeping the original
// extension only.
func (s *ImageStore) Filename(original string) string {
	return s.prefijo + "-" + uuid.NewString() + filepath.Ext(original)
}

// Remove deletes a stored image. The placeholder image and empty names are
// left alone; a file already gone is not an error.
func (s *ImageStore) Remove(nombre string) error {
	if nombre == "" || nombre == models.ImagenDefault {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, nombre)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Dir returns the directory the store writes to.
func (s *ImageStore) Dir() string {
	return s.dir
}
