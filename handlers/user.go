package handlers

import (
	"net/http"

	"photovault/auth"
	"photovault/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type SignupRequest struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func SignupView(c *gin.Context) {
	render(c, "signup.tmpl", gin.H{})
}

func Signup(c *gin.Context) {
	r := SignupRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		session := auth.LoadSession(c)
		session.Flash("All fields are required.")
		c.Redirect(http.StatusFound, "/signup")
		return
	}
	user, err := models.UserCreate(r.Name, r.Email, r.Password)
	if err != nil {
		session := auth.LoadSession(c)
		session.Flash("Could not create the account. Is the email already in use?")
		c.Redirect(http.StatusFound, "/signup")
		return
	}
	auth.LoadSession(c).LoginUser(&user)
	c.Redirect(http.StatusFound, "/")
}

func LoginView(c *gin.Context) {
	render(c, "login.tmpl", gin.H{})
}

func Login(c *gin.Context) {
	r := LoginRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		session := auth.LoadSession(c)
		session.Flash("Email and password are required.")
		c.Redirect(http.StatusFound, "/login")
		return
	}
	user, success := models.UserLogin(r.Email, r.Password)
	if !success {
		session := auth.LoadSession(c)
		session.Flash("Wrong email or password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}
	auth.LoadSession(c).LoginUser(&user)
	c.Redirect(http.StatusFound, "/")
}

func Logout(c *gin.Context, user *models.User) {
	auth.LoadSession(c).LogoutUser()
	c.Redirect(http.StatusFound, "/login")
}
