package models

import (
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"photovault/db"
	"photovault/storage"

	"gorm.io/gorm"
)

type Photo struct {
	ID         uint64 `gorm:"primaryKey"`
	UserID     uint64 `gorm:"not null;index:user_photo_active,priority:1"`
	User       User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AlbumID    *uint64
	Album      *Album `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	BucketID   uint64
	Bucket     storage.Bucket `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	RemoteID   string         `gorm:"type:varchar(300)"`
	Name       string         `gorm:"type:varchar(300)"`
	MimeType   string         `gorm:"type:varchar(50)"`
	Size       int64
	UploadedAt int64 `gorm:"index:user_photo_active,priority:3"`
	CreatedAt  int64
	Active     bool `gorm:"not null;default:true;index:user_photo_active,priority:2"`
	Favourite  bool `gorm:"not null;default:false"`
}

// GetPath returns the storage path of the photo, e.g. user/3/27.jpg
func (p *Photo) GetPath() string {
	return "user/" + strconv.FormatUint(p.UserID, 10) + "/" +
		strconv.FormatUint(p.ID, 10) + strings.ToLower(filepath.Ext(p.Name))
}

func (p *Photo) BeforeSave(tx *gorm.DB) (err error) {
	p.Name = cleanName(p.Name)
	return
}

// cleanName restricts file names to a safe character set
func cleanName(in string) string {
	var name strings.Builder
	for i, c := range in {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') ||
			(c == '.' && i > 0) || (c == '-') || (c == '_') {

			name.WriteRune(c)
		} else {
			name.WriteString("_")
		}
	}
	return name.String()
}

// PhotoForOwner loads a photo by id only, then checks ownership, so that
// a missing record and a foreign record fail differently.
func PhotoForOwner(actor *User, id uint64) (*Photo, error) {
	var photo Photo
	err := db.Instance.First(&photo, id).Error
	if err != nil {
		return nil, ErrNotFound
	}
	if photo.UserID != actor.ID {
		return nil, ErrForbidden
	}
	return &photo, nil
}

func PhotoSoftDelete(actor *User, id uint64) error {
	photo, err := PhotoForOwner(actor, id)
	if err != nil {
		return err
	}
	return db.Instance.Model(photo).Update("active", false).Error
}

func PhotoRestore(actor *User, id uint64) error {
	photo, err := PhotoForOwner(actor, id)
	if err != nil {
		return err
	}
	return db.Instance.Model(photo).Update("active", true).Error
}

func PhotoToggleFavourite(actor *User, id uint64) error {
	photo, err := PhotoForOwner(actor, id)
	if err != nil {
		return err
	}
	return db.Instance.Model(photo).Update("favourite", !photo.Favourite).Error
}

// PhotoDeletePermanently removes the record and releases the stored
// bytes. No state precondition: a photo can be purged from any state.
func PhotoDeletePermanently(actor *User, id uint64) error {
	photo, err := PhotoForOwner(actor, id)
	if err != nil {
		return err
	}
	if err = db.Instance.Joins("Bucket").First(photo).Error; err != nil {
		return err
	}
	if err = db.Instance.Delete(photo).Error; err != nil {
		return err
	}
	if store := storage.StorageFrom(&photo.Bucket); store != nil {
		if err = store.Delete(photo.GetPath()); err != nil {
			log.Printf("Photo: %d, delete error: %s", id, err.Error())
		}
		if err = store.DeleteRemoteFile(photo.GetPath()); err != nil {
			log.Printf("Remote Photo: %d, delete error: %s", id, err.Error())
		}
	}
	return nil
}

func ActivePhotos(userID uint64) (photos []Photo, err error) {
	err = db.Instance.
		Where("user_id = ? AND active = ?", userID, true).
		Order("uploaded_at DESC").
		Find(&photos).Error
	return
}

func BinnedPhotos(userID uint64) (photos []Photo, err error) {
	err = db.Instance.
		Where("user_id = ? AND active = ?", userID, false).
		Order("uploaded_at DESC").
		Find(&photos).Error
	return
}

func FavouritePhotos(userID uint64) (photos []Photo, err error) {
	err = db.Instance.
		Where("user_id = ? AND active = ? AND favourite = ?", userID, true, true).
		Order("uploaded_at DESC").
		Find(&photos).Error
	return
}

// PhotosBetween returns the user's photos uploaded in [from, to)
func PhotosBetween(userID uint64, from, to int64) (photos []Photo, err error) {
	err = db.Instance.
		Where("user_id = ? AND uploaded_at >= ? AND uploaded_at < ?", userID, from, to).
		Order("uploaded_at DESC").
		Find(&photos).Error
	return
}
