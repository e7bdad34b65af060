package service

import "errors"

var (
	ErrPresentationNotFound = errors.New("presentation not found")
	ErrSessionNotFound      = errors.New("editing session not found")
	ErrReadOnlySession      = errors.New("editing session is read-only")
	ErrInvalidEdit          = errors.New("invalid edit")
)
