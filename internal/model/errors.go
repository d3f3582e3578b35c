package model

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrAlreadyFriends  = errors.New("already friends")
	ErrInvalidArgument = errors.New("invalid argument")
)
