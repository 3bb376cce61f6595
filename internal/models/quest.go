package models

import "fmt"

// Quest is a user-declared savings goal. ID is optional so documents written
// before ids existed still load; the list position remains the addressing key.
type Quest struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

func (q Quest) String() string {
	mark := " "
	if q.Completed {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %s", mark, q.Title)
}
