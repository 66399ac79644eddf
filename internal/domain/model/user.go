// Package model defines the domain types shared across services and adapters.
package model

import "time"

// User represents an authenticated or guest account.
type User struct {
	ID        string
	Email     string
	Name      string
	IsGuest   bool
	CreatedAt time.Time
	LastLogin time.Time
}

// DisplayName returns the name to show in prompts and greetings.
// Guest users without a stored name fall back to the generic Persian "کاربر".
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return "کاربر"
}
