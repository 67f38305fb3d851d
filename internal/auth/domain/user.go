package domain

import "time"

// User is the identity record. An empty HashedPassword marks an identity
// provisioned solely via Google sign-in; it can never pass local password
// authentication.
type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	HashedPassword string    `json:"-" gorm:"not null;default:''"` // Never return password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
}

// TableName keeps the table naming of the persisted layout.
func (User) TableName() string { return "users" }
