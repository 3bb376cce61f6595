package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/capitalchronicles/internal/common"
	"github.com/dmitrijs2005/capitalchronicles/internal/models"
	"github.com/dmitrijs2005/capitalchronicles/internal/session"
	"github.com/google/uuid"
)

// QuestService manages the quest list of the user held by a session.
// Indices are 0-based positions in the list and shift after Delete.
type QuestService interface {
	Add(ctx context.Context, title string) (models.Quest, error)
	Toggle(ctx context.Context, index int) (models.Quest, error)
	Delete(ctx context.Context, index int) (models.Quest, error)
	List() []models.Quest
	SavingsReport() string
}

type questService struct {
	accounts AccountService
	session  *session.Session
}

func NewQuestService(accounts AccountService, sess *session.Session) QuestService {
	return &questService{accounts: accounts, session: sess}
}

func (s *questService) Add(ctx context.Context, title string) (models.Quest, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Quest{}, common.ErrEmptyTitle
	}
	data, err := s.current()
	if err != nil {
		return models.Quest{}, err
	}

	q := models.Quest{ID: uuid.NewString(), Title: title}
	data.Goals = append(data.Goals, q)
	err = s.commit(ctx, data)
	return q, err
}

func (s *questService) Toggle(ctx context.Context, index int) (models.Quest, error) {
	data, err := s.current()
	if err != nil {
		return models.Quest{}, err
	}
	if err := checkIndex(index, len(data.Goals)); err != nil {
		return models.Quest{}, err
	}

	data.Goals[index].Completed = !data.Goals[index].Completed
	err = s.commit(ctx, data)
	return data.Goals[index], err
}

func (s *questService) Delete(ctx context.Context, index int) (models.Quest, error) {
	data, err := s.current()
	if err != nil {
		return models.Quest{}, err
	}
	if err := checkIndex(index, len(data.Goals)); err != nil {
		return models.Quest{}, err
	}

	q := data.Goals[index]
	data.Goals = append(data.Goals[:index], data.Goals[index+1:]...)
	err = s.commit(ctx, data)
	return q, err
}

// List returns a snapshot of the current user's quests.
func (s *questService) List() []models.Quest {
	if !s.session.LoggedIn() {
		return nil
	}
	return s.session.Data().Goals
}

func (s *questService) SavingsReport() string {
	data := s.session.Data()
	done, total := data.Progress()
	return fmt.Sprintf("Current Savings: $%.2f\n\nQuests completed: %d/%d", data.Savings, done, total)
}

func (s *questService) current() (models.UserData, error) {
	if !s.session.LoggedIn() {
		return models.UserData{}, common.ErrNotLoggedIn
	}
	return s.session.Data(), nil
}

// commit backfills missing quest ids, updates the session and persists.
// The session keeps the change even when persisting fails.
func (s *questService) commit(ctx context.Context, data models.UserData) error {
	for i := range data.Goals {
		if data.Goals[i].ID == "" {
			data.Goals[i].ID = uuid.NewString()
		}
	}
	if data.Goals == nil {
		data.Goals = []models.Quest{}
	}
	s.session.SetData(data)
	return s.accounts.SaveUserData(ctx, s.session.Username(), data)
}

func checkIndex(index, n int) error {
	if index < 0 || index >= n {
		return fmt.Errorf("%w: %d (have %d)", common.ErrIndexOutOfRange, index, n)
	}
	return nil
}
