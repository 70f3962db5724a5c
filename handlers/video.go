package handlers

import (
	"net/http"

	"photovault/models"

	"github.com/gin-gonic/gin"
)

// VideoDelete moves a video to the bin (soft delete)
func VideoDelete(c *gin.Context, user *models.User) {
	id, err := paramID(c)
	if err == nil {
		err = models.VideoSoftDelete(user, id)
	}
	if err != nil {
		flashError(c, err)
	}
	c.Redirect(http.StatusFound, "/videos")
}

func VideoRestore(c *gin.Context, user *models.User) {
	id, err := paramID(c)
	if err == nil {
		err = models.VideoRestore(user, id)
	}
	if err != nil {
		flashError(c, err)
	}
	c.Redirect(http.StatusFound, "/bin")
}

func VideoDeletePermanently(c *gin.Context, user *models.User) {
	id, err := paramID(c)
	if err == nil {
		err = models.VideoDeletePermanently(user, id)
	}
	if err != nil {
		flashError(c, err)
	}
	c.Redirect(http.StatusFound, "/bin")
}

func VideoFavourite(c *gin.Context, user *models.User) {
	id, err := paramID(c)
	if err == nil {
		err = models.VideoToggleFavourite(user, id)
	}
	if err != nil {
		flashError(c, err)
	}
	redirectAfter(c, "/videos")
}
