package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hirepipe/hirepipe/internal/store"
)

// AuthStore is the account storage needed by the auth workflows.
type AuthStore interface {
	FindUserByEmail(email string) *store.User
	AddUser(u *store.User)
	AddTenant(t *store.Tenant)
}

// TokenSigner mints a session token for a reviewer.
type TokenSigner func(uid, tid, email string, ttl time.Duration) (string, error)

// AuthService registers and authenticates reviewers.
type AuthService struct {
	store     AuthStore
	now       func() time.Time
	idGen     func(prefix string) string
	signToken TokenSigner
	tokenTTL  time.Duration
}

// AuthResult is the outcome of a successful register or login.
type AuthResult struct {
	Token    string `json:"token"`
	TenantID string `json:"tenant_id"`
	UserID   string `json:"user_id"`
}

// NewAuthService constructs the service with a 30-day token TTL.
func NewAuthService(st AuthStore, signer TokenSigner) *AuthService {
	return &AuthService{
		store:     st,
		now:       func() time.Time { return time.Now().UTC() },
		idGen:     shortID,
		signToken: signer,
		tokenTTL:  30 * 24 * time.Hour,
	}
}

func shortID(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// Register creates a tenant plus its first reviewer and returns a session
// token. Email collisions are a conflict error.
func (s *AuthService) Register(email, password, tenantName string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, NewInvalidError("email/password required")
	}
	if s.store.FindUserByEmail(email) != nil {
		return nil, NewConflictError("email exists")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	tenantID := s.idGen("t")
	s.store.AddTenant(&store.Tenant{ID: tenantID, Name: tenantName})
	userID := s.idGen("u")
	s.store.AddUser(&store.User{
		ID:        userID,
		Email:     email,
		PassHash:  hash,
		TenantID:  tenantID,
		CreatedAt: s.now(),
	})
	token, err := s.signToken(userID, tenantID, email, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, TenantID: tenantID, UserID: userID}, nil
}

// Login verifies credentials and returns a fresh session token. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, NewInvalidError("email/password required")
	}
	u := s.store.FindUserByEmail(email)
	if u == nil {
		return nil, NewUnauthorizedError("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword(u.PassHash, []byte(password)); err != nil {
		return nil, NewUnauthorizedError("invalid credentials")
	}
	token, err := s.signToken(u.ID, u.TenantID, u.Email, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, TenantID: u.TenantID, UserID: u.ID}, nil
}
