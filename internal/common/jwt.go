package common

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTTL    = 24 * time.Hour
	tokenIssuer = "gocms"

	RoleAdmin = "admin"
)

// Identity is the authenticated caller carried inside a token.
type Identity struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Claims represents the data stored in a JWT token.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed bearer tokens. The signing secret
// is loaded once at startup; the clock is injectable for tests.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return NewTokenServiceWithClock(secret, time.Now)
}

func NewTokenServiceWithClock(secret string, now func() time.Time) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    TokenTTL,
		now:    now,
	}
}

// Issue produces a signed token embedding the identity, expiring TokenTTL
// from now.
func (s *TokenService) Issue(identity Identity) (string, error) {
	issuedAt := s.now()
	claims := &Claims{
		Username: identity.Username,
		Role:     identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			Issuer:    tokenIssuer,
			Subject:   "admin-auth",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// Validate decodes and verifies a token, rejecting it once the clock is past
// the embedded expiry. There is no revocation list; a leaked token stays
// valid until it expires.
func (s *TokenService) Validate(tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, NewAuthError(AuthTokenExpired, "token expired")
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, NewAuthError(AuthSignatureInvalid, "token signature invalid")
		default:
			return nil, NewAuthError(AuthTokenMalformed, "token malformed")
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(AuthTokenMalformed, "token malformed")
	}

	return &Identity{Username: claims.Username, Role: claims.Role}, nil
}
