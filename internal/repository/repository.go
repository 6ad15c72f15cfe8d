// Package repository holds the pgx-backed persistence layer. Repositories
// translate driver errors into the two sentinels below; everything above
// this package matches on them with errors.Is.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound: the referenced row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate: a uniqueness constraint was violated.
	ErrDuplicate = errors.New("already exists")
)

const uniqueViolation = "23505"

// translate maps pgx errors onto the package sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	return err
}
