package handlers

import (
	"net/http"

	"photovault/models"

	"github.com/gin-gonic/gin"
)

// PhotoDelete moves a photo to the bin (soft delete)
func PhotoDelete(c *gin.Context, user *models.User) {
	id, err := paramID(c)
	if err == nil {
		err = models.PhotoSoftDelete(user, id)
	}
	if err != nil {
		flashError(c, err)
	}
	c.Redirect(http.StatusFound, "/")
}

func PhotoRestore(c *gin.Context, user *models.User) {
	id, err := paramID(c)
	if err == nil {
		err = models.PhotoRestore(user, id)
	}
	if err != nil {
		flashError(c, err)
	}
	c.Redirect(http.StatusFound, "/bin")
}

func PhotoDeletePermanently(c *gin.Context, user *models.User) {
	id, err := paramID(c)
	if err == nil {
		err = models.PhotoDeletePermanently(user, id)
	}
	if err != nil {
		flashError(c, err)
	}
	c.Redirect(http.StatusFound, "/bin")
}

func PhotoFavourite(c *gin.Context, user *models.User) {
	id, err := paramID(c)
	if err == nil {
		err = models.PhotoToggleFavourite(user, id)
	}
	if err != nil {
		flashError(c, err)
	}
	redirectAfter(c, "/")
}
