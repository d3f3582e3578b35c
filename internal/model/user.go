package model

import "time"

type User struct {
	ID       int64
	Email    string `validate:"required,contains=@"`
	Login    string `validate:"required,nowhitespace"`
	Name     string
	Birthday time.Time `validate:"notfuture"`
}

func (u User) Validate() error {
	return validateStruct(u)
}

// WithDefaultName fills a blank name with the login.
func (u User) WithDefaultName() User {
	if isBlank(u.Name) {
		u.Name = u.Login
	}
	return u
}

// Friendship is a directed edge owner -> target. Confirmed is derived from the
// presence of the reverse edge and is never stored.
type Friendship struct {
	OwnerID   int64
	TargetID  int64
	Confirmed bool
}
