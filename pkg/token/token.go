package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// The two authentication realms use the same signing key but distinct
// audiences, so a dashboard token can never pass superadmin verification
// and vice versa.
const (
	AudienceDashboard  = "recetasapi"
	AudienceSuperadmin = "recetasapi:superadmin"

	issuer = "recetasapi"
)

// UserClaims is the payload of a tenant-user session token.
type UserClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// AdminClaims is the payload of a superadmin session token. Superadmins are
// a separate realm: separate cookie, separate audience, separate table.
type AdminClaims struct {
	AdminID uuid.UUID `json:"admin_id"`
	Email   string    `json:"email"`
	jwt.RegisteredClaims
}

// Service signs and verifies session tokens with HMAC-SHA256.
type Service struct {
	secret []byte
}

// New creates a token service. The secret should be at least 32 bytes.
func New(secret string) (*Service, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &Service{secret: []byte(secret)}, nil
}

// GenerateUser signs a dashboard session token valid for ttl.
func (s *Service) GenerateUser(userID uuid.UUID, role, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := UserClaims{
		UserID: userID,
		Role:   role,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{AudienceDashboard},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return s.sign(claims)
}

// GenerateAdmin signs a superadmin console token valid for ttl.
func (s *Service) GenerateAdmin(adminID uuid.UUID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := AdminClaims{
		AdminID: adminID,
		Email:   email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID.String(),
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{AudienceSuperadmin},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return s.sign(claims)
}

// ParseUser verifies a dashboard token and returns its claims.
func (s *Service) ParseUser(tokenString string) (*UserClaims, error) {
	var claims UserClaims
	if err := s.parse(tokenString, &claims, AudienceDashboard); err != nil {
		return nil, err
	}
	return &claims, nil
}

// ParseAdmin verifies a superadmin token and returns its claims.
func (s *Service) ParseAdmin(tokenString string) (*AdminClaims, error) {
	var claims AdminClaims
	if err := s.parse(tokenString, &claims, AudienceSuperadmin); err != nil {
		return nil, err
	}
	return &claims, nil
}

func (s *Service) sign(claims jwt.Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Service) parse(tokenString string, claims jwt.Claims, audience string) error {
	tok, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(audience),
		jwt.WithIssuer(issuer),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrExpiredToken
		}
		return errors.Join(ErrInvalidToken, err)
	}
	if !tok.Valid {
		return ErrInvalidToken
	}
	return nil
}
