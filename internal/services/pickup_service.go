package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/scrapwale/scrapwale-be/internal/models"
	"github.com/scrapwale/scrapwale-be/internal/storage"
)

// ErrUnsupportedImage is returned for uploads that are not a known image type.
var ErrUnsupportedImage = errors.New("unsupported image type")

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// PickupServiceProvider defines the interface for pickup-request services.
type PickupServiceProvider interface {
	CreatePickup(pickup models.Pickup) models.Pickup
	GetAllPickups() []models.Pickup
	UpdateStatus(id int, status string) (models.Pickup, error)
	SaveImage(file multipart.File, filename string) (string, error)
}

// PickupService provides business logic for pickup requests, including
// persistence of uploaded images.
type PickupService struct {
	store     *storage.Store
	events    EventServiceProvider
	uploadDir string
}

// NewPickupService creates a new PickupService. uploadDir is where images
// are written; they are served back under /uploads.
func NewPickupService(store *storage.Store, events EventServiceProvider, uploadDir string) *PickupService {
	return &PickupService{store: store, events: events, uploadDir: uploadDir}
}

// CreatePickup stores a new pickup request with status pending.
func (s *PickupService) CreatePickup(pickup models.Pickup) models.Pickup {
	created := s.store.CreatePickup(pickup)
	s.events.Record("pickup.created", "info",
		fmt.Sprintf("Pickup #%d requested by %s for %s", created.ID, created.Name, strings.Join(created.Materials, ", ")))
	return created
}

// GetAllPickups returns every pickup request in insertion order.
func (s *PickupService) GetAllPickups() []models.Pickup {
	return s.store.AllPickups()
}

// UpdateStatus sets the status of an existing pickup request.
func (s *PickupService) UpdateStatus(id int, status string) (models.Pickup, error) {
	updated, err := s.store.UpdatePickupStatus(id, status)
	if err != nil {
		return models.Pickup{}, err
	}

	s.events.Record("pickup.status", "info",
		fmt.Sprintf("Pickup #%d marked %s", updated.ID, updated.Status))
	return updated, nil
}

// SaveImage writes an uploaded image under the upload directory with a
// generated filename and returns the web path to store on the record.
func (s *PickupService) SaveImage(file multipart.File, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExtensions[ext] {
		return "", ErrUnsupportedImage
	}

	name := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(s.uploadDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	return "/uploads/" + name, nil
}
