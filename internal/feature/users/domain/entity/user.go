// Package entity defines the domain entities for the users feature.
package entity

// User represents a registered account in the system.
// The access key is the opaque identifier clients present on every call
// after creation; it substitutes for a session token.
type User struct {
	// ID is the unique identifier for the user, assigned by storage.
	ID uint `gorm:"primaryKey"`

	// FirstName is the user's given name.
	FirstName string `gorm:"size:255;not null"`

	// LastName is the user's family name.
	LastName string `gorm:"size:255;not null"`

	// Email is the user's email address.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the user's password as supplied at creation.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the creation timestamp, formatted server-side as
	// "2006-01-02 15:04:05" and never modified afterwards.
	CreatedAt string `gorm:"size:32;not null"`

	// Key is the server-generated access key.
	// It is unique and immutable once assigned.
	Key string `gorm:"uniqueIndex;size:64;not null"`
}

// TableName maps the entity to the "user" table.
func (User) TableName() string {
	return "user"
}
