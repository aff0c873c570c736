package models

import (
	"time"
)

// Gallery entry kinds. A plain single-image entry has an empty Type to stay
// wire-compatible with existing gallery.json files.
const (
	EntryTypeBeforeAfter = "before-after"
)

// ImageFile is the stored-file metadata shared by both entry variants.
type ImageFile struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	URL          string `json:"url"`
	Size         int64  `json:"size"`
}

// GalleryEntry is a tagged variant: either a single image (Filename,
// OriginalName, URL, Size set) or a before/after pair (Type set to
// "before-after", BeforeImage/AfterImage set). Use the constructors below
// rather than building the struct by hand.
type GalleryEntry struct {
	ID           string     `json:"id"`
	Type         string     `json:"type,omitempty"`
	Filename     string     `json:"filename,omitempty"`
	OriginalName string     `json:"originalName,omitempty"`
	URL          string     `json:"url,omitempty"`
	Size         int64      `json:"size,omitempty"`
	BeforeImage  *ImageFile `json:"beforeImage,omitempty"`
	AfterImage   *ImageFile `json:"afterImage,omitempty"`
	Category     string     `json:"category,omitempty"`
	UploadedAt   time.Time  `json:"uploadedAt"`
}

func NewSingleEntry(id string, file ImageFile, category string, uploadedAt time.Time) GalleryEntry {
	return GalleryEntry{
		ID:           id,
		Filename:     file.Filename,
		OriginalName: file.OriginalName,
		URL:          file.URL,
		Size:         file.Size,
		Category:     category,
		UploadedAt:   uploadedAt,
	}
}

func NewBeforeAfterEntry(id string, before, after ImageFile, category string, uploadedAt time.Time) GalleryEntry {
	return GalleryEntry{
		ID:          id,
		Type:        EntryTypeBeforeAfter,
		BeforeImage: &before,
		AfterImage:  &after,
		Category:    category,
		UploadedAt:  uploadedAt,
	}
}

func (e *GalleryEntry) IsBeforeAfter() bool {
	return e.Type == EntryTypeBeforeAfter
}

// Files returns the stored filenames belonging to the entry, whichever
// variant it is.
func (e *GalleryEntry) Files() []string {
	if e.IsBeforeAfter() {
		var files []string
		if e.BeforeImage != nil {
			files = append(files, e.BeforeImage.Filename)
		}
		if e.AfterImage != nil {
			files = append(files, e.AfterImage.Filename)
		}
		return files
	}
	return []string{e.Filename}
}

type GalleryListResponse struct {
	Success bool           `json:"success"`
	Images  []GalleryEntry `json:"images"`
}

type GalleryUploadResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Image   GalleryEntry `json:"image"`
}
