package ports

import (
	"context"

	"suqia/internal/core/domain/model/account"
	"suqia/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user identity records.
type UserRepository interface {
	// Add persists a new user. Adding a second user with the same email
	// fails with a ValueIsInvalidError built from the unique violation.
	Add(ctx context.Context, aggregate *account.User) error

	// Update saves an existing user's mutable fields (profile, region,
	// lockout). The email is immutable.
	Update(ctx context.Context, aggregate *account.User) error

	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)

	// GetByEmail retrieves a user by its normalized login email.
	GetByEmail(ctx context.Context, email string) (*account.User, error)

	// Delete removes the user record.
	Delete(ctx context.Context, id kernel.UUID) error
}
