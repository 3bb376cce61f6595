// Package session holds the process-local record of who is logged in.
// A Session is never persisted; it is passed explicitly to whatever needs it.
package session

import "github.com/dmitrijs2005/capitalchronicles/internal/models"

type Session struct {
	username string
	data     models.UserData
}

func New() *Session {
	return &Session{}
}

// Start records username as the current user with a private copy of data.
func (s *Session) Start(username string, data models.UserData) {
	s.username = username
	s.data = data.Clone()
}

// Clear forgets the current user.
func (s *Session) Clear() {
	s.username = ""
	s.data = models.UserData{}
}

func (s *Session) LoggedIn() bool {
	return s.username != ""
}

func (s *Session) Username() string {
	return s.username
}

// Data returns a copy of the current user's data.
func (s *Session) Data() models.UserData {
	return s.data.Clone()
}

// SetData replaces the current user's data with a copy of d.
func (s *Session) SetData(d models.UserData) {
	s.data = d.Clone()
}
