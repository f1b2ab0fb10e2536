// Package repository defines the storage contracts for the application's
// entities and the error values shared by its implementations. Sentinel
// errors let handlers map storage failures onto HTTP statuses without
// inspecting implementation details.
package repository

import "errors"

// ErrNotFound is returned when a referenced id is absent from the store.
// Handlers translate it into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrUsernameTaken is returned by CreateUser when the username is already
// registered. Handlers translate it into an HTTP 409 response.
var ErrUsernameTaken = errors.New("username already exists")
