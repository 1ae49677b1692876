package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist in the database.
var ErrNotFound = errors.New("not found")

// ErrDuplicatePair is returned when creating a contact exchange for an
// (athlete, official) pair that already has one. It surfaces the
// uq_athlete_official unique constraint, which is what makes concurrent
// duplicate requests safe.
var ErrDuplicatePair = errors.New("exchange already exists for pair")
