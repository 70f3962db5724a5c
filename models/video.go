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

type Video struct {
	ID         uint64 `gorm:"primaryKey"`
	UserID     uint64 `gorm:"not null;index:user_video_active,priority:1"`
	User       User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AlbumID    *uint64
	Album      *Album `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	BucketID   uint64
	Bucket     storage.Bucket `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	RemoteID   string         `gorm:"type:varchar(300)"`
	Name       string         `gorm:"type:varchar(300)"`
	MimeType   string         `gorm:"type:varchar(50)"`
	Size       int64
	UploadedAt int64 `gorm:"index:user_video_active,priority:3"`
	Active     bool  `gorm:"not null;default:true;index:user_video_active,priority:2"`
	Favourite  bool  `gorm:"not null;default:false"`
}

// GetPath returns the storage path of the video, e.g. user/3/v12.mp4
func (v *Video) GetPath() string {
	return "user/" + strconv.FormatUint(v.UserID, 10) + "/v" +
		strconv.FormatUint(v.ID, 10) + strings.ToLower(filepath.Ext(v.Name))
}

func (v *Video) BeforeSave(tx *gorm.DB) (err error) {
	v.Name = cleanName(v.Name)
	return
}

func VideoForOwner(actor *User, id uint64) (*Video, error) {
	var video Video
	err := db.Instance.First(&video, id).Error
	if err != nil {
		return nil, ErrNotFound
	}
	if video.UserID != actor.ID {
		return nil, ErrForbidden
	}
	return &video, nil
}

func VideoSoftDelete(actor *User, id uint64) error {
	video, err := VideoForOwner(actor, id)
	if err != nil {
		return err
	}
	return db.Instance.Model(video).Update("active", false).Error
}

func VideoRestore(actor *User, id uint64) error {
	video, err := VideoForOwner(actor, id)
	if err != nil {
		return err
	}
	return db.Instance.Model(video).Update("active", true).Error
}

func VideoToggleFavourite(actor *User, id uint64) error {
	video, err := VideoForOwner(actor, id)
	if err != nil {
		return err
	}
	return db.Instance.Model(video).Update("favourite", !video.Favourite).Error
}

func VideoDeletePermanently(actor *User, id uint64) error {
	video, err := VideoForOwner(actor, id)
	if err != nil {
		return err
	}
	if err = db.Instance.Joins("Bucket").First(video).Error; err != nil {
		return err
	}
	if err = db.Instance.Delete(video).Error; err != nil {
		return err
	}
	if store := storage.StorageFrom(&video.Bucket); store != nil {
		if err = store.Delete(video.GetPath()); err != nil {
			log.Printf("Video: %d, delete error: %s", id, err.Error())
		}
		if err = store.DeleteRemoteFile(video.GetPath()); err != nil {
			log.Printf("Remote Video: %d, delete error: %s", id, err.Error())
		}
	}
	return nil
}

func ActiveVideos(userID uint64) (videos []Video, err error) {
	err = db.Instance.
		Where("user_id = ? AND active = ?", userID, true).
		Order("uploaded_at DESC").
		Find(&videos).Error
	return
}

func BinnedVideos(userID uint64) (videos []Video, err error) {
	err = db.Instance.
		Where("user_id = ? AND active = ?", userID, false).
		Order("uploaded_at DESC").
		Find(&videos).Error
	return
}
