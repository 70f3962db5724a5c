package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"photovault/auth"
	"photovault/models"

	"github.com/gin-gonic/gin"
)

type albumEntry struct {
	Album      models.Album
	Cover      *models.Photo
	PhotoCount int64
}

func AlbumListView(c *gin.Context, user *models.User) {
	albums, err := models.AlbumsForUser(user.ID)
	if err != nil {
		flashError(c, err)
	}
	entries := make([]albumEntry, 0, len(albums))
	for _, album := range albums {
		album := album
		entries = append(entries, albumEntry{
			Album:      album,
			Cover:      album.CoverPhoto(),
			PhotoCount: album.ActivePhotoCount(),
		})
	}
	render(c, "albums.tmpl", gin.H{"albums": entries})
}

func AlbumCreateView(c *gin.Context, user *models.User) {
	render(c, "album_create.tmpl", gin.H{})
}

func AlbumCreate(c *gin.Context, user *models.User) {
	title := c.PostForm("album_title")
	if _, err := models.AlbumCreate(user, title); err != nil {
		if errors.Is(err, models.ErrInvalid) {
			auth.LoadSession(c).Flash("Album title cannot be empty.")
		} else {
			flashError(c, err)
		}
	}
	c.Redirect(http.StatusFound, "/albums")
}

func AlbumDelete(c *gin.Context, user *models.User) {
	id, err := paramID(c)
	if err == nil {
		err = models.AlbumDelete(user, id)
	}
	if err != nil {
		flashError(c, err)
	}
	c.Redirect(http.StatusFound, "/albums")
}

func AlbumDetailView(c *gin.Context, user *models.User) {
	id, err := paramID(c)
	if err != nil {
		flashError(c, err)
		c.Redirect(http.StatusFound, "/albums")
		return
	}
	album, err := models.AlbumForOwner(user, id)
	if err != nil {
		flashError(c, err)
		c.Redirect(http.StatusFound, "/albums")
		return
	}
	photos, err := album.ActivePhotos()
	if err != nil {
		flashError(c, err)
	}
	render(c, "album_detail.tmpl", gin.H{
		"album":  album,
		"photos": photos,
	})
}

// AlbumUpload adds a batch of files directly into the album
func AlbumUpload(c *gin.Context, user *models.User) {
	id, err := paramID(c)
	if err != nil {
		flashError(c, err)
		c.Redirect(http.StatusFound, "/albums")
		return
	}
	uploadTo(c, user, strconv.FormatUint(id, 10), "/album/"+c.Param("id"))
}
