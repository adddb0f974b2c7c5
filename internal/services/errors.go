package services

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrDuplicateSeason    = errors.New("statistics already exist for this goalkeeper and season")
	ErrTaskNotInSession   = errors.New("task does not belong to this session")
	ErrInvalidImage       = errors.New("invalid image payload")
)
