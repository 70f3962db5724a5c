package models

import (
	"photovault/db"
)

type Album struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index:user_album_created,priority:1"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt int64  `gorm:"index:user_album_created,priority:2"`
	Title     string `gorm:"type:varchar(100)"`
}

func AlbumCreate(actor *User, title string) (*Album, error) {
	if title == "" {
		return nil, ErrInvalid
	}
	album := Album{
		Title:  title,
		UserID: actor.ID,
	}
	if err := db.Instance.Create(&album).Error; err != nil {
		return nil, err
	}
	return &album, nil
}

func AlbumForOwner(actor *User, id uint64) (*Album, error) {
	var album Album
	err := db.Instance.First(&album, id).Error
	if err != nil {
		return nil, ErrNotFound
	}
	if album.UserID != actor.ID {
		return nil, ErrForbidden
	}
	return &album, nil
}

func AlbumsForUser(userID uint64) (albums []Album, err error) {
	err = db.Instance.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&albums).Error
	return
}

// AlbumDelete hard-deletes the album and orphans its media: photos and
// videos keep their records and active/binned state, only the album
// reference is cleared.
func AlbumDelete(actor *User, id uint64) error {
	album, err := AlbumForOwner(actor, id)
	if err != nil {
		return err
	}
	if err = db.Instance.Model(&Photo{}).Where("album_id = ?", album.ID).
		Update("album_id", nil).Error; err != nil {
		return err
	}
	if err = db.Instance.Model(&Video{}).Where("album_id = ?", album.ID).
		Update("album_id", nil).Error; err != nil {
		return err
	}
	return db.Instance.Delete(album).Error
}

// ActivePhotos returns the album's active photos, earliest upload first
func (a *Album) ActivePhotos() (photos []Photo, err error) {
	err = db.Instance.
		Where("album_id = ? AND active = ?", a.ID, true).
		Order("uploaded_at ASC").
		Find(&photos).Error
	return
}

// CoverPhoto is the earliest-uploaded active photo, or nil for an
// album with no active photos.
func (a *Album) CoverPhoto() *Photo {
	var photo Photo
	err := db.Instance.
		Where("album_id = ? AND active = ?", a.ID, true).
		Order("uploaded_at ASC").
		First(&photo).Error
	if err != nil {
		return nil
	}
	return &photo
}

func (a *Album) ActivePhotoCount() int64 {
	var count int64
	db.Instance.Model(&Photo{}).
		Where("album_id = ? AND active = ?", a.ID, true).
		Count(&count)
	return count
}
