// Package repository defines data access for the platform's domain
// entities.  This file holds sentinel errors shared across repositories so
// handlers can distinguish failure scenarios: ErrForbidden maps to HTTP
// 403, ErrConflict to 409.
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when an operation cannot proceed because of
// conflicting state, such as deleting a trip that still has bookings.
var ErrConflict = errors.New("conflict")
