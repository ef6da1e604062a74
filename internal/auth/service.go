package auth

import (
	"fmt"
	"time"

	"shiftboard-backend/internal/database/models"
	apperrors "shiftboard-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost the rest of the system was provisioned with.
const bcryptCost = 12

// UserRepository is the subset of the user repository the auth service needs
type UserRepository interface {
	GetByEmail(email string) (*models.User, error)
}

// AuthService issues and validates the identity tokens that every API
// request carries. The rest of the system trusts the resulting Identity
// completely and performs no credential checks of its own.
type AuthService struct {
	secret   []byte
	tokenTTL time.Duration
	userRepo UserRepository
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CompanyID string `json:"company_id"`
	jwt.RegisteredClaims
}

// Identity is the verified (user, role, company) bundle attached to
// every authenticated request.
type Identity struct {
	UserID    uuid.UUID
	Role      models.UserRole
	CompanyID uuid.UUID
	Name      string
}

// IsManager reports whether the identity carries the MANAGER role
func (i Identity) IsManager() bool {
	return i.Role == models.UserRoleManager
}

// LoginResponse is returned on successful authentication
type LoginResponse struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CompanyID string    `json:"company_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewAuthService creates a new auth service
func NewAuthService(secret string, tokenTTL time.Duration, userRepo UserRepository) *AuthService {
	if tokenTTL == 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		userRepo: userRepo,
	}
}

// Login verifies credentials and issues a signed token
func (s *AuthService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil || user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{
		Token:     token,
		UserID:    user.ID.String(),
		Name:      user.Name,
		Role:      string(user.Role),
		CompanyID: user.CompanyID.String(),
		ExpiresAt: expiresAt,
	}, nil
}

// GenerateJWT creates a signed HS256 token for the given user
func (s *AuthService) GenerateJWT(user *models.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)
	claims := &AuthClaims{
		UserID:    user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		Role:      string(user.Role),
		CompanyID: user.CompanyID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateJWT parses and validates a token string
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token claims")
}

// IdentityFromClaims converts validated claims into an Identity
func IdentityFromClaims(claims *AuthClaims) (Identity, error) {
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid user_id claim: %w", err)
	}
	companyID, err := uuid.Parse(claims.CompanyID)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid company_id claim: %w", err)
	}
	role := models.UserRole(claims.Role)
	if !role.Valid() {
		return Identity{}, fmt.Errorf("invalid role claim: %q", claims.Role)
	}
	return Identity{
		UserID:    userID,
		Role:      role,
		CompanyID: companyID,
		Name:      claims.Name,
	}, nil
}

// HashPassword hashes a raw password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
