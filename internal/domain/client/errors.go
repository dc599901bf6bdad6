package client

import "errors"

var (
	// ErrNotFound indicates no client matches the given identifier.
	ErrNotFound = errors.New("client not found")
	// ErrDuplicateFaceToken indicates the face token is already registered
	// to another client.
	ErrDuplicateFaceToken = errors.New("face token already registered")
)
