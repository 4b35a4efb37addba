package auth

import (
	"errors"
	"time"

	"suqia/internal/core/domain/model/account"
	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/core/domain/services"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenIsInvalid is returned for tokens that fail signature,
	// expiry, or claim checks.
	ErrTokenIsInvalid = errors.New("token is invalid")
)

// Claims is the JWT payload. ActorID identifies the customer or driver
// record (the user id for admins); RegionID is empty for admins.
type Claims struct {
	Role     string `json:"role"`
	ActorID  string `json:"actorId"`
	RegionID string `json:"regionId,omitempty"`
	FullName string `json:"fullName,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and parses HS256 access tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service signing with the given secret.
func NewTokenService(secret string, ttl time.Duration) TokenService {
	return TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs an access token for the authenticated caller.
func (s TokenService) Issue(
	userID kernel.UUID,
	actorID kernel.UUID,
	role account.Role,
	regionID kernel.UUID,
	fullName string,
) (string, error) {
	if err := role.Validate(); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	claims := Claims{
		Role:     role.String(),
		ActorID:  actorID.String(),
		FullName: fullName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	if role != account.RoleAdmin {
		claims.RegionID = regionID.String()
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse validates a token and rebuilds the caller's principal from its
// claims.
func (s TokenService) Parse(tokenString string) (services.Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenIsInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return services.Principal{}, ErrTokenIsInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return services.Principal{}, ErrTokenIsInvalid
	}

	role, err := account.RoleFromString(claims.Role)
	if err != nil {
		return services.Principal{}, ErrTokenIsInvalid
	}

	actorID, err := kernel.UUIDFromString(claims.ActorID)
	if err != nil {
		return services.Principal{}, ErrTokenIsInvalid
	}

	if role == account.RoleAdmin {
		principal, err := services.NewAdminPrincipal(actorID)
		if err != nil {
			return services.Principal{}, ErrTokenIsInvalid
		}
		return principal, nil
	}

	regionID, err := kernel.UUIDFromString(claims.RegionID)
	if err != nil {
		return services.Principal{}, ErrTokenIsInvalid
	}

	principal, err := services.NewPrincipal(role, actorID, regionID)
	if err != nil {
		return services.Principal{}, ErrTokenIsInvalid
	}
	return principal, nil
}
