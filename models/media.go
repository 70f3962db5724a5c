package models

import (
	"io"
	"log"
	"strings"
	"time"

	"photovault/db"
	"photovault/storage"

	"github.com/google/uuid"
)

const (
	MediaTypeOther = 0
	MediaTypeImage = 1
	MediaTypeVideo = 2
)

func MediaTypeFrom(mimeType string) uint {
	if strings.HasPrefix(mimeType, "image/") {
		return MediaTypeImage
	}
	if strings.HasPrefix(mimeType, "video/") {
		return MediaTypeVideo
	}
	return MediaTypeOther
}

// MediaUpload is one file of an upload batch. Open is called when the
// bytes are actually persisted, so file handles stay scoped per file.
type MediaUpload struct {
	Name     string
	MimeType string
	Open     func() (io.ReadCloser, error)
}

type UploadResult struct {
	Photos  int
	Videos  int
	Skipped []string // unsupported content type
	Failed  []string // storage or db error
}

// UploadMedia dispatches a batch of uploaded files by content type:
// image/* becomes a Photo, video/* a Video, anything else is skipped
// and reported back. Files are persisted sequentially; an earlier
// file stays persisted when a later one fails (no rollback).
func UploadMedia(actor *User, album *Album, uploads []MediaUpload) (res UploadResult, err error) {
	if album != nil && album.UserID != actor.ID {
		return res, ErrForbidden
	}
	if actor.BucketID == nil {
		return res, ErrInvalid
	}
	var bucket storage.Bucket
	if err = db.Instance.First(&bucket, *actor.BucketID).Error; err != nil {
		return res, err
	}
	store := storage.StorageFrom(&bucket)
	if store == nil {
		return res, ErrInvalid
	}
	var albumID *uint64
	if album != nil {
		albumID = &album.ID
	}
	now := time.Now().Unix()
	for _, upload := range uploads {
		switch MediaTypeFrom(upload.MimeType) {
		case MediaTypeImage:
			photo := Photo{
				UserID:     actor.ID,
				AlbumID:    albumID,
				BucketID:   bucket.ID,
				RemoteID:   uuid.NewString(),
				Name:       upload.Name,
				MimeType:   upload.MimeType,
				UploadedAt: now,
				Active:     true,
			}
			if dbErr := db.Instance.Create(&photo).Error; dbErr != nil {
				res.Failed = append(res.Failed, upload.Name)
				continue
			}
			size, saveErr := saveUpload(store, photo.GetPath(), upload)
			if saveErr != nil {
				log.Printf("Photo upload %s: %v", upload.Name, saveErr)
				if delErr := db.Instance.Delete(&photo).Error; delErr != nil {
					log.Printf("Photo: %d, cleanup error: %s", photo.ID, delErr.Error())
				}
				res.Failed = append(res.Failed, upload.Name)
				continue
			}
			db.Instance.Model(&photo).Update("size", size)
			res.Photos++
		case MediaTypeVideo:
			video := Video{
				UserID:     actor.ID,
				AlbumID:    albumID,
				BucketID:   bucket.ID,
				RemoteID:   uuid.NewString(),
				Name:       upload.Name,
				MimeType:   upload.MimeType,
				UploadedAt: now,
				Active:     true,
			}
			if dbErr := db.Instance.Create(&video).Error; dbErr != nil {
				res.Failed = append(res.Failed, upload.Name)
				continue
			}
			size, saveErr := saveUpload(store, video.GetPath(), upload)
			if saveErr != nil {
				log.Printf("Video upload %s: %v", upload.Name, saveErr)
				if delErr := db.Instance.Delete(&video).Error; delErr != nil {
					log.Printf("Video: %d, cleanup error: %s", video.ID, delErr.Error())
				}
				res.Failed = append(res.Failed, upload.Name)
				continue
			}
			db.Instance.Model(&video).Update("size", size)
			res.Videos++
		default:
			res.Skipped = append(res.Skipped, upload.Name)
		}
	}
	return res, nil
}

func saveUpload(store storage.StorageAPI, path string, upload MediaUpload) (int64, error) {
	reader, err := upload.Open()
	if err != nil {
		return 0, err
	}
	defer reader.Close()
	return store.Save(path, reader)
}
