package models

import (
	"errors"
	"io"
	"testing"

	"photovault/db"
)

func TestUploadMediaDispatch(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "owner@example.com")

	uploads := []MediaUpload{
		{Name: "pic.png", MimeType: "image/png", Open: openString("png bytes")},
		{Name: "clip.mp4", MimeType: "video/mp4", Open: openString("mp4 bytes")},
		{Name: "notes.pdf", MimeType: "application/pdf", Open: openString("pdf bytes")},
	}
	res, err := UploadMedia(user, nil, uploads)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if res.Photos != 1 || res.Videos != 1 {
		t.Errorf("created %d photos, %d videos, want 1 and 1", res.Photos, res.Videos)
	}
	if len(res.Skipped) != 1 || res.Skipped[0] != "notes.pdf" {
		t.Errorf("skipped = %v, want [notes.pdf]", res.Skipped)
	}
	if len(res.Failed) != 0 {
		t.Errorf("failed = %v, want none", res.Failed)
	}

	photos, err := ActivePhotos(user.ID)
	if err != nil {
		t.Fatalf("list photos: %v", err)
	}
	if len(photos) != 1 {
		t.Fatalf("got %d photos, want 1", len(photos))
	}
	if photos[0].AlbumID != nil {
		t.Error("photo has an album, want none")
	}
	if !photos[0].Active {
		t.Error("photo not active after upload")
	}
	if photos[0].Size == 0 {
		t.Error("photo size not recorded")
	}

	videos, err := ActiveVideos(user.ID)
	if err != nil {
		t.Fatalf("list videos: %v", err)
	}
	if len(videos) != 1 {
		t.Fatalf("got %d videos, want 1", len(videos))
	}
	if videos[0].AlbumID != nil {
		t.Error("video has an album, want none")
	}
	if !videos[0].Active {
		t.Error("video not active after upload")
	}
}

func TestUploadMediaIntoAlbum(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "owner@example.com")
	album, err := AlbumCreate(user, "Holidays")
	if err != nil {
		t.Fatalf("create album: %v", err)
	}

	res, err := UploadMedia(user, album, []MediaUpload{
		{Name: "pic.jpg", MimeType: "image/jpeg", Open: openString("jpeg bytes")},
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if res.Photos != 1 {
		t.Fatalf("created %d photos, want 1", res.Photos)
	}
	photos, _ := album.ActivePhotos()
	if len(photos) != 1 {
		t.Fatalf("album has %d photos, want 1", len(photos))
	}
}

func TestUploadMediaForeignAlbum(t *testing.T) {
	setupTestDB(t)
	owner := createTestUser(t, "owner@example.com")
	stranger := createTestUser(t, "stranger@example.com")
	album, err := AlbumCreate(owner, "Private")
	if err != nil {
		t.Fatalf("create album: %v", err)
	}

	_, err = UploadMedia(stranger, album, []MediaUpload{
		{Name: "pic.jpg", MimeType: "image/jpeg", Open: openString("jpeg bytes")},
	})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("got %v, want ErrForbidden", err)
	}
	photos, _ := ActivePhotos(stranger.ID)
	if len(photos) != 0 {
		t.Error("photo created despite foreign album")
	}
}

func TestUploadMediaFailedSave(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "owner@example.com")

	res, err := UploadMedia(user, nil, []MediaUpload{
		{Name: "broken.jpg", MimeType: "image/jpeg", Open: func() (io.ReadCloser, error) {
			return nil, errors.New("device yanked")
		}},
		{Name: "ok.png", MimeType: "image/png", Open: openString("png bytes")},
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if len(res.Failed) != 1 || res.Failed[0] != "broken.jpg" {
		t.Errorf("failed = %v, want [broken.jpg]", res.Failed)
	}
	if res.Photos != 1 {
		t.Errorf("created %d photos, want 1 (later file persists)", res.Photos)
	}

	// The record of the failed file must not linger
	var count int64
	db.Instance.Model(&Photo{}).Count(&count)
	if count != 1 {
		t.Errorf("photo rows = %d, want 1", count)
	}
}

func TestMediaTypeFrom(t *testing.T) {
	tests := []struct {
		mimeType string
		want     uint
	}{
		{"image/png", MediaTypeImage},
		{"image/jpeg", MediaTypeImage},
		{"video/mp4", MediaTypeVideo},
		{"video/quicktime", MediaTypeVideo},
		{"application/pdf", MediaTypeOther},
		{"", MediaTypeOther},
	}
	for _, tt := range tests {
		if got := MediaTypeFrom(tt.mimeType); got != tt.want {
			t.Errorf("MediaTypeFrom(%q) = %d, want %d", tt.mimeType, got, tt.want)
		}
	}
}
