package cli

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/capitalchronicles/internal/common"
	"github.com/dmitrijs2005/capitalchronicles/internal/navigator"
)

// userMessage turns service errors into the text shown to the user. Both
// login failures map to the same message.
func userMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid username or password."
	case errors.Is(err, common.ErrUsernameTaken):
		return "Username already taken."
	case errors.Is(err, common.ErrEmptyTitle):
		return "Please enter a quest name."
	case errors.Is(err, common.ErrIndexOutOfRange):
		return "No quest with that number."
	case errors.Is(err, common.ErrInvalidInput):
		return "Invalid input: " + strings.TrimPrefix(err.Error(), common.ErrInvalidInput.Error()+": ")
	case errors.Is(err, common.ErrPersistenceUnavailable):
		return "Could not save your data: storage is unavailable."
	case errors.Is(err, common.ErrNotLoggedIn), errors.Is(err, navigator.ErrNotAuthenticated):
		return "Please log in first."
	case errors.Is(err, navigator.ErrTransitionNotAllowed):
		return "You can't go there from here."
	}
	return "Error: " + err.Error()
}
