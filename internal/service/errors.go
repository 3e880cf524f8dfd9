package service

import "errors"

var (
	ErrInvalidPayload    = errors.New("name and username are required")
	ErrUsernameTaken     = errors.New("username already taken")
	ErrInvalidCredential = errors.New("unknown or missing username")
	ErrInvalidTodo       = errors.New("title and deadline are required")
	ErrNotFound          = errors.New("not found")
)
