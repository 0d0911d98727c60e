package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"warta/config"
	"warta/internal/domain/service"
)

// devSecret matches the original deployment's fallback signing key. Shipping
// a compiled-in secret is a known defect kept for development parity; set
// auth.secret in any real environment.
const devSecret = "your-secret-key-min-32-characters!!"

// sessionTTL is the absolute lifetime of a session token. Tokens are not
// tracked server-side, so there is no revocation before expiry.
const sessionTTL = 7 * 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) service.TokenService {
	secret := cfg.Auth.Secret
	if secret == "" {
		secret = devSecret
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    sessionTTL,
		now:    time.Now,
	}
}

// Issue creates a compact HS256 token carrying the identity claims.
func (s *jwtService) Issue(claims *service.Claims) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":   claims.UserID,
		"username": claims.Username,
		"name":     claims.Name,
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	})

	return token.SignedString(s.secret)
}

// Verify validates the token's signature and expiry. Every failure mode
// collapses into ok=false; the access gate never learns why.
func (s *jwtService) Verify(tokenString string) (*service.Claims, bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, false
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}

	userID, ok := mapClaims["userId"].(float64)
	if !ok {
		return nil, false
	}
	username, _ := mapClaims["username"].(string)
	name, _ := mapClaims["name"].(string)

	return &service.Claims{
		UserID:   int64(userID),
		Username: username,
		Name:     name,
	}, true
}
