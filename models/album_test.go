package models

import (
	"errors"
	"testing"

	"photovault/db"
)

func TestAlbumCreate(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "owner@example.com")

	album, err := AlbumCreate(user, "Holidays")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if album.UserID != user.ID {
		t.Errorf("album owner = %d, want %d", album.UserID, user.ID)
	}

	if _, err = AlbumCreate(user, ""); !errors.Is(err, ErrInvalid) {
		t.Errorf("empty title: got %v, want ErrInvalid", err)
	}
}

func TestAlbumForOwner(t *testing.T) {
	setupTestDB(t)
	owner := createTestUser(t, "owner@example.com")
	stranger := createTestUser(t, "stranger@example.com")
	album, err := AlbumCreate(owner, "Private")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err = AlbumForOwner(stranger, album.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign album: got %v, want ErrForbidden", err)
	}
	if _, err = AlbumForOwner(owner, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing album: got %v, want ErrNotFound", err)
	}
}

func TestAlbumDeleteOrphansMedia(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "owner@example.com")
	album, err := AlbumCreate(user, "Holidays")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	photo := createTestPhoto(t, user, "a.jpg", 1000)
	video := createTestVideo(t, user, "b.mp4", 1001)
	db.Instance.Model(photo).Update("album_id", album.ID)
	db.Instance.Model(video).Update("album_id", album.ID)
	// Binned state must survive album deletion
	if err = PhotoSoftDelete(user, photo.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	if err = AlbumDelete(user, album.ID); err != nil {
		t.Fatalf("album delete: %v", err)
	}

	var gotPhoto Photo
	if err = db.Instance.First(&gotPhoto, photo.ID).Error; err != nil {
		t.Fatalf("photo gone after album delete: %v", err)
	}
	if gotPhoto.AlbumID != nil {
		t.Error("photo still references deleted album")
	}
	if gotPhoto.Active {
		t.Error("photo no longer binned after album delete")
	}

	var gotVideo Video
	if err = db.Instance.First(&gotVideo, video.ID).Error; err != nil {
		t.Fatalf("video gone after album delete: %v", err)
	}
	if gotVideo.AlbumID != nil {
		t.Error("video still references deleted album")
	}
	if !gotVideo.Active {
		t.Error("video active state changed by album delete")
	}

	var count int64
	db.Instance.Model(&Album{}).Where("id = ?", album.ID).Count(&count)
	if count != 0 {
		t.Error("album record still exists")
	}
}

func TestAlbumCoverPhoto(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "owner@example.com")
	album, err := AlbumCreate(user, "Holidays")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	earliest := createTestPhoto(t, user, "early.jpg", 100)
	middle := createTestPhoto(t, user, "mid.jpg", 200)
	latest := createTestPhoto(t, user, "late.jpg", 300)
	for _, p := range []*Photo{earliest, middle, latest} {
		db.Instance.Model(p).Update("album_id", album.ID)
	}
	// Binned photos can't be covers
	if err = PhotoSoftDelete(user, earliest.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	cover := album.CoverPhoto()
	if cover == nil {
		t.Fatal("no cover photo")
	}
	if cover.ID != middle.ID {
		t.Errorf("cover = %d, want earliest active %d", cover.ID, middle.ID)
	}
	if album.ActivePhotoCount() != 2 {
		t.Errorf("active count = %d, want 2", album.ActivePhotoCount())
	}
}
