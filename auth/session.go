package auth

import (
	"photovault/db"
	"photovault/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const userIdKey = "id"

type Session struct {
	sessions.Session
}

func LoadSession(c *gin.Context) *Session {
	return &Session{
		Session: sessions.Default(c),
	}
}

func (s *Session) LoginUser(user *models.User) {
	s.Set(userIdKey, user.ID)
	s.Save()
}

func (s *Session) LogoutUser() {
	s.Delete(userIdKey)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	s.Save()
}

func (s *Session) User() (user models.User) {
	id := s.Get(userIdKey)
	if id == nil {
		return
	}
	uid, ok := id.(uint64)
	if !ok {
		return
	}
	user.ID = uid
	if db.Instance.First(&user).Error != nil {
		user.ID = 0
	}
	return
}

// Flash queues a message for the next rendered page
func (s *Session) Flash(message string) {
	s.AddFlash(message)
	s.Save()
}

// TakeFlashes drains the queued messages
func (s *Session) TakeFlashes() []string {
	flashes := s.Flashes()
	if len(flashes) > 0 {
		s.Save()
	}
	result := make([]string, 0, len(flashes))
	for _, f := range flashes {
		if msg, ok := f.(string); ok {
			result = append(result, msg)
		}
	}
	return result
}
