package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/capitalchronicles/internal/common"
)

// AddQuest prompts for a title and appends a quest.
func (a *App) AddQuest(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Add your own quest:", a.out)
	if err != nil {
		return err
	}
	q, err := a.quests.Add(ctx, title)
	if err != nil {
		return a.fail(ctx, "add quest", err)
	}
	a.logger.Debug(ctx, "quest added", "id", q.ID)
	a.println("Added: " + q.String())
	return nil
}

func (a *App) ToggleQuest(ctx context.Context, number string) error {
	i, err := questIndex(number)
	if err != nil {
		return a.fail(ctx, "toggle quest", err)
	}
	q, err := a.quests.Toggle(ctx, i)
	if err != nil {
		return a.fail(ctx, "toggle quest", err)
	}
	a.logger.Debug(ctx, "quest toggled", "id", q.ID, "completed", q.Completed)
	a.println(fmt.Sprintf("%d. %s", i+1, q))
	return nil
}

func (a *App) DeleteQuest(ctx context.Context, number string) error {
	i, err := questIndex(number)
	if err != nil {
		return a.fail(ctx, "delete quest", err)
	}
	q, err := a.quests.Delete(ctx, i)
	if err != nil {
		return a.fail(ctx, "delete quest", err)
	}
	a.logger.Debug(ctx, "quest deleted", "id", q.ID)
	a.println("Deleted: " + q.Title)
	return nil
}

// ListQuests prints the quests numbered from 1.
func (a *App) ListQuests(context.Context) error {
	quests := a.quests.List()
	if len(quests) == 0 {
		a.println("No quests yet. Type 'add' to create one.")
		return nil
	}
	var b strings.Builder
	for i, q := range quests {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	fmt.Fprint(a.out, b.String())
	return nil
}

func (a *App) Savings(context.Context) error {
	a.println(a.quests.SavingsReport())
	return nil
}

// questIndex converts a 1-based quest number to a list index.
func questIndex(number string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(number))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a quest number", common.ErrInvalidInput, number)
	}
	return n - 1, nil
}
