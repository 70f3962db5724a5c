package gallery

import (
	"testing"
	"time"

	"photovault/config"
	"photovault/db"
	"photovault/models"
	"photovault/storage"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *models.User {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("cannot open test db: %v", err)
	}
	db.Instance = database
	config.DEFAULT_BUCKET_DIR = t.TempDir()
	storage.Init()
	models.Init()
	user, err := models.UserCreate("Test", "owner@example.com", "secret123")
	if err != nil {
		t.Fatalf("cannot create user: %v", err)
	}
	return &user
}

func addPhoto(t *testing.T, user *models.User, name string, uploadedAt time.Time) {
	t.Helper()
	photo := models.Photo{
		UserID:     user.ID,
		BucketID:   *user.BucketID,
		Name:       name,
		MimeType:   "image/jpeg",
		UploadedAt: uploadedAt.Unix(),
		Active:     true,
	}
	if err := db.Instance.Create(&photo).Error; err != nil {
		t.Fatalf("cannot create photo: %v", err)
	}
}

func TestDateGroups(t *testing.T) {
	user := setupTestDB(t)
	addPhoto(t, user, "jan2-morning.jpg", time.Date(2024, 1, 2, 10, 0, 0, 0, time.Local))
	addPhoto(t, user, "jan2-late.jpg", time.Date(2024, 1, 2, 11, 0, 0, 0, time.Local))
	addPhoto(t, user, "jan1.jpg", time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local))

	groups, err := DateGroups(user.ID)
	if err != nil {
		t.Fatalf("DateGroups: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Date != "2024-01-02" || groups[1].Date != "2024-01-01" {
		t.Errorf("group order = [%s %s], want [2024-01-02 2024-01-01]", groups[0].Date, groups[1].Date)
	}
	if len(groups[0].Photos) != 2 {
		t.Fatalf("first group has %d photos, want 2", len(groups[0].Photos))
	}
	// Most recent upload first within the day
	if groups[0].Photos[0].Name != "jan2-late.jpg" || groups[0].Photos[1].Name != "jan2-morning.jpg" {
		t.Errorf("first group order = [%s %s], want late before morning",
			groups[0].Photos[0].Name, groups[0].Photos[1].Name)
	}
}

func TestDateGroupsSkipsBinned(t *testing.T) {
	user := setupTestDB(t)
	addPhoto(t, user, "keep.jpg", time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local))
	addPhoto(t, user, "binned.jpg", time.Date(2024, 3, 1, 13, 0, 0, 0, time.Local))
	var binned models.Photo
	db.Instance.First(&binned, "name = ?", "binned.jpg")
	if err := models.PhotoSoftDelete(user, binned.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	groups, err := DateGroups(user.ID)
	if err != nil {
		t.Fatalf("DateGroups: %v", err)
	}
	if len(groups) != 1 || len(groups[0].Photos) != 1 {
		t.Fatalf("groups = %+v, want one group with one photo", groups)
	}
	if groups[0].Photos[0].Name != "keep.jpg" {
		t.Errorf("kept photo = %s, want keep.jpg", groups[0].Photos[0].Name)
	}
}

func TestSearchStates(t *testing.T) {
	user := setupTestDB(t)
	addPhoto(t, user, "match.jpg", time.Date(2024, 1, 2, 10, 0, 0, 0, time.Local))

	tests := []struct {
		name      string
		query     string
		wantState SearchState
		wantCount int
	}{
		{"no query", "", SearchNone, 0},
		{"malformed", "not-a-date", SearchInvalid, 0},
		{"impossible calendar date", "2024-02-30", SearchInvalid, 0},
		{"zero matches", "2023-06-15", SearchDone, 0},
		{"match", "2024-01-02", SearchDone, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Search(user.ID, tt.query)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if result.State != tt.wantState {
				t.Errorf("state = %d, want %d", result.State, tt.wantState)
			}
			if len(result.Photos) != tt.wantCount {
				t.Errorf("got %d photos, want %d", len(result.Photos), tt.wantCount)
			}
		})
	}
}
