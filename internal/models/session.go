package models

import "time"

// AdminSession is a time-boxed opaque token proving the holder supplied the
// shared admin password. Validity is re-checked against the store on every
// gated request; rows past their expiry are swept opportunistically.
type AdminSession struct {
	Token     string    `db:"token" json:"token"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
}

// Expired reports whether the session is no longer valid at the given time.
func (s AdminSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
