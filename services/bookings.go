package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"revive_physio_go/models"
)

// BookingFile persists course bookings as a single JSON array. Appending is
// a read-modify-write of the whole file with no locking, so two concurrent
// submissions can interleave and one record can be silently lost.
type BookingFile struct {
	Path string
}

func NewBookingFile(dataDir string) *BookingFile {
	return &BookingFile{Path: filepath.Join(dataDir, "bookings.json")}
}

// List returns all persisted bookings. A missing file means no bookings yet.
func (b *BookingFile) List() ([]models.BookingRecord, error) {
	raw, err := os.ReadFile(b.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.BookingRecord{}, nil
		}
		return nil, fmt.Errorf("read bookings file: %w", err)
	}

	var records []models.BookingRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse bookings file: %w", err)
	}
	return records, nil
}

// Append reads the existing array, appends the record, and rewrites the
// whole file.
func (b *BookingFile) Append(rec models.BookingRecord) error {
	records, err := b.List()
	if err != nil {
		return err
	}

	records = append(records, rec)

	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bookings: %w", err)
	}
	if err := os.WriteFile(b.Path, raw, 0644); err != nil {
		return fmt.Errorf("write bookings file: %w", err)
	}
	return nil
}
