package store

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound indicates an entity was not located.
	ErrNotFound = errors.New("store: not found")
	// ErrEmailTaken is returned when users.email already holds the address.
	ErrEmailTaken = errors.New("store: email already registered")
)

const uniqueViolation = "23505"

func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
