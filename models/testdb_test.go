package models

import (
	"io"
	"strings"
	"testing"

	"photovault/config"
	"photovault/db"
	"photovault/storage"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func bytesReader(s string) io.Reader {
	return strings.NewReader(s)
}

func openString(s string) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(s)), nil
	}
}

// setupTestDB points db.Instance at a fresh in-memory database with a
// disk bucket in a temp dir, so every test starts from a clean slate.
func setupTestDB(t *testing.T) {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("cannot open test db: %v", err)
	}
	db.Instance = database
	config.DEFAULT_BUCKET_DIR = t.TempDir()
	storage.Init()
	Init()
}

func createTestUser(t *testing.T, email string) *User {
	t.Helper()
	user, err := UserCreate("Test", email, "secret123")
	if err != nil {
		t.Fatalf("cannot create user %s: %v", email, err)
	}
	return &user
}

func createTestPhoto(t *testing.T, user *User, name string, uploadedAt int64) *Photo {
	t.Helper()
	photo := Photo{
		UserID:     user.ID,
		BucketID:   *user.BucketID,
		Name:       name,
		MimeType:   "image/jpeg",
		UploadedAt: uploadedAt,
		Active:     true,
	}
	if err := db.Instance.Create(&photo).Error; err != nil {
		t.Fatalf("cannot create photo: %v", err)
	}
	return &photo
}

func createTestVideo(t *testing.T, user *User, name string, uploadedAt int64) *Video {
	t.Helper()
	video := Video{
		UserID:     user.ID,
		BucketID:   *user.BucketID,
		Name:       name,
		MimeType:   "video/mp4",
		UploadedAt: uploadedAt,
		Active:     true,
	}
	if err := db.Instance.Create(&video).Error; err != nil {
		t.Fatalf("cannot create video: %v", err)
	}
	return &video
}
