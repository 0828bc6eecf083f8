// Package media stores uploaded audio and image files. The production
// backend is Supabase Storage; tests use the in-memory implementation.
package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"

	"github.com/gracefm/radio-api/pkg/config"
	apperrors "github.com/gracefm/radio-api/pkg/errors"
)

// Collections group uploads under predictable prefixes inside the bucket.
const (
	CollectionAudio  = "audio_file"
	CollectionCover  = "cover_image"
	CollectionImage  = "image"
	CollectionAvatar = "avatar"
)

// Conversions are the named image sizes the apps request.
const (
	ConversionThumb  = "thumb"
	ConversionSmall  = "small"
	ConversionBanner = "banner"
	ConversionMobile = "mobile"
)

// conversionWidths maps a conversion name to its render width in pixels.
var conversionWidths = map[string]int{
	ConversionThumb:  150,
	ConversionSmall:  400,
	ConversionBanner: 1200,
	ConversionMobile: 640,
}

// Storage persists uploaded files and resolves their public URLs
type Storage interface {
	Store(ctx context.Context, collection string, file *multipart.FileHeader) (string, error)
	Remove(ctx context.Context, publicURL string) error
}

// VariantURL resolves the URL for a named image conversion. Supabase
// resizes on the fly through its render endpoint, so a variant is the
// public URL rewritten to /render/image/ with a width parameter. URLs
// from other backends and unknown conversions pass through unchanged.
func VariantURL(publicURL, conversion string) string {
	width, ok := conversionWidths[conversion]
	if !ok || publicURL == "" {
		return publicURL
	}
	const objectSegment = "/storage/v1/object/public/"
	if !strings.Contains(publicURL, objectSegment) {
		return publicURL
	}
	rendered := strings.Replace(publicURL, objectSegment, "/storage/v1/render/image/public/", 1)
	return fmt.Sprintf("%s?width=%d", rendered, width)
}

type supabaseStorage struct {
	client  *storage.Client
	baseURL string
	bucket  string
}

// NewSupabaseStorage creates a Supabase-backed storage client
func NewSupabaseStorage(cfg config.StorageConfig) Storage {
	baseURL := strings.TrimRight(cfg.SupabaseURL, "/")
	return &supabaseStorage{
		client:  storage.NewClient(baseURL+"/storage/v1", cfg.SupabaseKey, nil),
		baseURL: baseURL,
		bucket:  cfg.Bucket,
	}
}

func (s *supabaseStorage) Store(ctx context.Context, collection string, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", apperrors.ValidationError("file", "could not be read")
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return "", apperrors.ValidationError("file", "could not be read")
	}

	ext := filepath.Ext(fileHeader.Filename)
	objectPath := fmt.Sprintf("%s/%s%s", collection, uuid.NewString(), ext)

	contentType := fileHeader.Header.Get("Content-Type")
	options := storage.FileOptions{ContentType: &contentType}

	if _, err := s.client.UploadFile(s.bucket, objectPath, &buf, options); err != nil {
		return "", apperrors.ExternalServiceError("storage", err)
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, objectPath), nil
}

func (s *supabaseStorage) Remove(_ context.Context, publicURL string) error {
	if publicURL == "" {
		return nil
	}
	objectPath, ok := s.objectPath(publicURL)
	if !ok {
		return nil
	}
	if _, err := s.client.RemoveFile(s.bucket, []string{objectPath}); err != nil {
		return apperrors.ExternalServiceError("storage", err)
	}
	return nil
}

// objectPath extracts "<collection>/<file>" from a public URL this storage
// produced. Foreign URLs are left alone.
func (s *supabaseStorage) objectPath(publicURL string) (string, bool) {
	prefix := fmt.Sprintf("%s/storage/v1/object/public/%s/", s.baseURL, s.bucket)
	if !strings.HasPrefix(publicURL, prefix) {
		return "", false
	}
	return strings.TrimPrefix(publicURL, prefix), true
}

// MemoryStorage keeps uploads in a map. Test double for Storage.
type MemoryStorage struct {
	mu    sync.Mutex
	Files map[string][]byte
}

// NewMemoryStorage creates an empty in-memory store
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{Files: make(map[string][]byte)}
}

func (m *MemoryStorage) Store(_ context.Context, collection string, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("memory://%s/%s%s", collection, uuid.NewString(), filepath.Ext(fileHeader.Filename))
	m.mu.Lock()
	m.Files[url] = data
	m.mu.Unlock()
	return url, nil
}

func (m *MemoryStorage) Remove(_ context.Context, publicURL string) error {
	m.mu.Lock()
	delete(m.Files, publicURL)
	m.mu.Unlock()
	return nil
}
