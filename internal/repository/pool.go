package repository

import "github.com/jmoiron/sqlx"

// Pool hands out a working database handle or fails with a typed
// configuration/connectivity error. Repositories acquire per operation so a
// pool torn down between requests is transparently re-created.
type Pool interface {
	Acquire() (*sqlx.DB, error)
}

// StaticPool wraps an already-open handle. Used by tests and tooling.
type StaticPool struct {
	DB *sqlx.DB
}

// Acquire returns the wrapped handle.
func (p StaticPool) Acquire() (*sqlx.DB, error) {
	return p.DB, nil
}
