// Package models defines the persisted account document and its parts.
package models

import "sort"

// Account is one entry of the account document. The username is the key of
// the enclosing Accounts map and is not repeated inside the record.
type Account struct {
	PasswordHash string   `json:"password_hash"`
	Data         UserData `json:"data"`
}

// UserData is the per-user blob loaded on login and written back on every
// mutation.
type UserData struct {
	Goals   []Quest `json:"goals"`
	Savings float64 `json:"savings"`
}

// Accounts maps username to Account. Keys are unique by construction.
type Accounts map[string]Account

// Clone returns a deep copy so callers can hand out snapshots safely.
func (a Accounts) Clone() Accounts {
	out := make(Accounts, len(a))
	for name, acc := range a {
		acc.Data = acc.Data.Clone()
		out[name] = acc
	}
	return out
}

// Usernames returns the keys in sorted order.
func (a Accounts) Usernames() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (d UserData) Clone() UserData {
	if d.Goals != nil {
		d.Goals = append(make([]Quest, 0, len(d.Goals)), d.Goals...)
	}
	return d
}

// Progress reports how many goals are completed out of the total.
func (d UserData) Progress() (completed, total int) {
	for _, q := range d.Goals {
		if q.Completed {
			completed++
		}
	}
	return completed, len(d.Goals)
}
