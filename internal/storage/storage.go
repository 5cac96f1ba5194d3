package storage

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrWaitlistFull         = errors.New("waitlist is full")
)
