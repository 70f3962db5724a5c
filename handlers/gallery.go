package handlers

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"photovault/auth"
	"photovault/gallery"
	"photovault/models"

	"github.com/gin-gonic/gin"
)

func GalleryView(c *gin.Context, user *models.User) {
	groups, err := gallery.DateGroups(user.ID)
	if err != nil {
		flashError(c, err)
		groups = nil
	}
	albums, _ := models.AlbumsForUser(user.ID)
	render(c, "gallery.tmpl", gin.H{
		"groups": groups,
		"albums": albums,
	})
}

// GalleryUpload accepts a multipart batch of photos and videos, with an
// optional target album owned by the uploader.
func GalleryUpload(c *gin.Context, user *models.User) {
	uploadTo(c, user, c.PostForm("album_select"), "/")
}

func uploadTo(c *gin.Context, user *models.User, albumParam, redirect string) {
	session := auth.LoadSession(c)
	form, err := c.MultipartForm()
	if err != nil {
		session.Flash("No files were uploaded.")
		c.Redirect(http.StatusFound, redirect)
		return
	}
	var album *models.Album
	if albumParam != "" {
		albumID, parseErr := strconv.ParseUint(albumParam, 10, 64)
		if parseErr != nil {
			session.Flash("Unknown album.")
			c.Redirect(http.StatusFound, redirect)
			return
		}
		album, err = models.AlbumForOwner(user, albumID)
		if err != nil {
			flashError(c, err)
			c.Redirect(http.StatusFound, redirect)
			return
		}
	}
	files := form.File["media_files"]
	uploads := make([]models.MediaUpload, 0, len(files))
	for _, file := range files {
		file := file
		uploads = append(uploads, models.MediaUpload{
			Name:     file.Filename,
			MimeType: file.Header.Get("Content-Type"),
			Open: func() (io.ReadCloser, error) {
				return file.Open()
			},
		})
	}
	result, err := models.UploadMedia(user, album, uploads)
	if err != nil {
		flashError(c, err)
		c.Redirect(http.StatusFound, redirect)
		return
	}
	if len(result.Skipped) > 0 {
		session.Flash("Skipped unsupported files: " + strings.Join(result.Skipped, ", "))
	}
	if len(result.Failed) > 0 {
		session.Flash("Failed to store: " + strings.Join(result.Failed, ", "))
	}
	c.Redirect(http.StatusFound, redirect)
}

func RecentlyAddedView(c *gin.Context, user *models.User) {
	photos, err := models.ActivePhotos(user.ID)
	if err != nil {
		flashError(c, err)
	}
	render(c, "recently_added.tmpl", gin.H{"photos": photos})
}

func FavouritesView(c *gin.Context, user *models.User) {
	photos, err := models.FavouritePhotos(user.ID)
	if err != nil {
		flashError(c, err)
	}
	render(c, "favourites.tmpl", gin.H{"photos": photos})
}

func BinView(c *gin.Context, user *models.User) {
	photos, err := models.BinnedPhotos(user.ID)
	if err != nil {
		flashError(c, err)
	}
	videos, err := models.BinnedVideos(user.ID)
	if err != nil {
		flashError(c, err)
	}
	render(c, "bin.tmpl", gin.H{"photos": photos, "videos": videos})
}

func VideosView(c *gin.Context, user *models.User) {
	videos, err := models.ActiveVideos(user.ID)
	if err != nil {
		flashError(c, err)
	}
	render(c, "videos.tmpl", gin.H{"videos": videos})
}

func SearchView(c *gin.Context, user *models.User) {
	result, err := gallery.Search(user.ID, c.Query("query_date"))
	if err != nil {
		flashError(c, err)
	}
	render(c, "search.tmpl", gin.H{
		"queryDate": result.Query,
		"noQuery":   result.State == gallery.SearchNone,
		"invalid":   result.State == gallery.SearchInvalid,
		"photos":    result.Photos,
	})
}
