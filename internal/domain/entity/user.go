// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a CMS author account. Accounts are created once by the seed step
// and only ever read afterwards; there is no self-service registration.
type User struct {
	ID           int64     // Database identifier, also embedded in session token claims.
	Username     string    // Unique login identifier.
	PasswordHash string    // bcrypt hash of the login password. Never exposed outward.
	Name         string    // Display name shown as the post author.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
