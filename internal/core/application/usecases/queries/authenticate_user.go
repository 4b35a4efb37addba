package queries

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"suqia/internal/core/domain/model/account"
	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/pkg/errs"
	"suqia/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrAuthenticateUserQueryIsNotConstructed = errors.New(
	"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
)

// PasswordVerifier checks a plain password against a stored hash.
type PasswordVerifier interface {
	Verify(hash, password string) error
}

// AuthenticateUserQuery verifies credentials and resolves the caller's
// identity for token issuing.
type AuthenticateUserQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserQuery creates a credential check query.
func NewAuthenticateUserQuery(email, password string) (AuthenticateUserQuery, error) {
	if err := errors.Join(
		validateRequired("email", email),
		validateRequired("password", password),
	); err != nil {
		return AuthenticateUserQuery{}, err
	}

	return AuthenticateUserQuery{
		email:    strings.ToLower(strings.TrimSpace(email)),
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func validateRequired(paramName, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// Email returns the normalized login email.
func (q AuthenticateUserQuery) Email() string {
	return q.email
}

// Password returns the plain password to verify.
func (q AuthenticateUserQuery) Password() string {
	return q.password
}

// AuthenticateUserQueryResponse identifies the authenticated caller.
// ActorID is the customer or driver record for those roles and the user
// id for admins. RegionID is zero for admins.
type AuthenticateUserQueryResponse struct {
	UserID   kernel.UUID
	ActorID  kernel.UUID
	Role     account.Role
	FullName string
	RegionID kernel.UUID
}

// AuthenticateUserQueryHandler checks credentials against stored users.
type AuthenticateUserQueryHandler struct {
	db       *gorm.DB
	verifier PasswordVerifier
}

// NewAuthenticateUserQueryHandler creates a handler for login checks.
func NewAuthenticateUserQueryHandler(
	db *gorm.DB,
	verifier PasswordVerifier,
) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{db: db, verifier: verifier}
}

// Handle resolves the user by email and verifies the password. Unknown
// emails and wrong passwords fail the same way so callers cannot probe
// which emails are registered.
func (h AuthenticateUserQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateUserQuery,
) (AuthenticateUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			u.id,
			u.password_hash,
			u.role,
			u.full_name,
			u.region_id,
			u.locked_until,
			c.id,
			d.id
		FROM users u
		LEFT JOIN customers c ON c.user_id = u.id
		LEFT JOIN drivers d ON d.user_id = u.id
		WHERE u.email = ?
	`, query.Email()).Rows()
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return AuthenticateUserQueryResponse{}, err
		}
		return AuthenticateUserQueryResponse{}, errs.NewValueIsInvalidError("credentials")
	}

	var userID uuid.UUID
	var passwordHash, roleName, fullName string
	var lockedUntil sql.NullTime
	var regionID, customerID, driverID uuid.NullUUID

	if err = rows.Scan(
		&userID,
		&passwordHash,
		&roleName,
		&fullName,
		&regionID,
		&lockedUntil,
		&customerID,
		&driverID,
	); err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	if err = h.verifier.Verify(passwordHash, query.Password()); err != nil {
		return AuthenticateUserQueryResponse{}, errs.NewValueIsInvalidError("credentials")
	}

	// Locked accounts answer like bad credentials; a lockout is not probeable.
	if lockedUntil.Valid && lockedUntil.Time.After(time.Now()) {
		return AuthenticateUserQueryResponse{}, errs.NewValueIsInvalidError("credentials")
	}

	role, err := account.RoleFromString(roleName)
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	response := AuthenticateUserQueryResponse{
		Role:     role,
		FullName: fullName,
	}
	if response.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return AuthenticateUserQueryResponse{}, err
	}
	response.ActorID = response.UserID
	if regionID.Valid {
		if response.RegionID, err = kernel.UUIDFromBytes(regionID.UUID[:]); err != nil {
			return AuthenticateUserQueryResponse{}, err
		}
	}

	switch role {
	case account.RoleCustomer:
		if !customerID.Valid {
			return AuthenticateUserQueryResponse{}, errs.NewValueIsInvalidError("credentials")
		}
		if response.ActorID, err = kernel.UUIDFromBytes(customerID.UUID[:]); err != nil {
			return AuthenticateUserQueryResponse{}, err
		}
	case account.RoleDriver:
		if !driverID.Valid {
			return AuthenticateUserQueryResponse{}, errs.NewValueIsInvalidError("credentials")
		}
		if response.ActorID, err = kernel.UUIDFromBytes(driverID.UUID[:]); err != nil {
			return AuthenticateUserQueryResponse{}, err
		}
	}

	return response, nil
}
