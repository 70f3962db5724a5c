package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"photovault/auth"
	"photovault/models"

	"github.com/gin-gonic/gin"
)

func paramID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, models.ErrNotFound
	}
	return id, nil
}

// flashError queues a user-visible message for a failed lifecycle
// operation. All failures are terminal for the request; the caller
// redirects afterwards.
func flashError(c *gin.Context, err error) {
	session := auth.LoadSession(c)
	switch {
	case errors.Is(err, models.ErrForbidden):
		session.Flash("You do not have permission to do that.")
	case errors.Is(err, models.ErrNotFound):
		session.Flash("That item could not be found.")
	case errors.Is(err, models.ErrInvalid):
		session.Flash("Invalid request.")
	default:
		session.Flash("Something went wrong, please try again.")
	}
}

// redirectAfter sends the browser back where it came from, falling
// back to the given page (favourite toggles happen on several pages)
func redirectAfter(c *gin.Context, fallback string) {
	to := c.Request.Referer()
	if to == "" {
		to = fallback
	}
	c.Redirect(http.StatusFound, to)
}

func render(c *gin.Context, template string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	session := auth.LoadSession(c)
	data["flashes"] = session.TakeFlashes()
	c.HTML(http.StatusOK, template, data)
}
