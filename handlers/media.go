package handlers

import (
	"net/http"
	"strconv"
	"time"

	"photovault/db"
	"photovault/models"
	"photovault/storage"

	"github.com/gin-gonic/gin"
)

const presignViewURLFor = time.Hour * 24 * 7

type MediaFetchRequest struct {
	ID       uint64 `form:"id" binding:"required"`
	Type     string `form:"type" binding:"required"`
	Download uint   `form:"download"`
}

// MediaFetch serves the stored bytes of one photo or video. Disk
// buckets stream the file, S3 buckets redirect to a presigned URL.
func MediaFetch(c *gin.Context, user *models.User) {
	r := MediaFetchRequest{}
	if err := c.ShouldBindQuery(&r); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	var path, name, mimeType string
	var bucketID uint64
	switch r.Type {
	case "photo":
		photo, err := models.PhotoForOwner(user, r.ID)
		if err != nil {
			c.String(http.StatusNotFound, "not found")
			return
		}
		path, name, mimeType, bucketID = photo.GetPath(), photo.Name, photo.MimeType, photo.BucketID
	case "video":
		video, err := models.VideoForOwner(user, r.ID)
		if err != nil {
			c.String(http.StatusNotFound, "not found")
			return
		}
		path, name, mimeType, bucketID = video.GetPath(), video.Name, video.MimeType, video.BucketID
	default:
		c.String(http.StatusBadRequest, "unknown media type")
		return
	}
	var bucket storage.Bucket
	if err := db.Instance.First(&bucket, bucketID).Error; err != nil {
		c.String(http.StatusNotFound, "not found")
		return
	}
	if bucket.IsS3() {
		url := bucket.CreateS3DownloadURI(path, presignViewURLFor)
		if url == "" {
			c.String(http.StatusInternalServerError, "cannot sign URL")
			return
		}
		maxAge := int64(presignViewURLFor / time.Second)
		c.Header("cache-control", "private, max-age="+strconv.FormatInt(maxAge, 10))
		c.Redirect(http.StatusFound, url)
		return
	}
	store := storage.StorageFrom(&bucket)
	if store == nil {
		c.String(http.StatusInternalServerError, "storage unavailable")
		return
	}
	c.Header("cache-control", "private, max-age=604800")
	c.Header("content-type", mimeType)
	if r.Download == 1 {
		c.Header("content-disposition", "attachment; filename=\""+name+"\"")
	}
	// Handles byte ranges too
	store.Serve(path, c.Request, c.Writer)
}
