// internal/domain/account/service.go
package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/your-org/gamevault-backend/internal/infrastructure/storage"
)

// Signup and login outcomes, surfaced one message at a time.
var (
	ErrMissingFields    = errors.New("Please fill in all fields")
	ErrPasswordMismatch = errors.New("Passwords do not match")
	ErrPasswordTooShort = errors.New("Password must be at least 6 characters")
	ErrEmailTaken       = errors.New("Email already registered")

	// ErrInvalidCredentials is deliberately the same for an unknown
	// identifier and a wrong password.
	ErrInvalidCredentials = errors.New("Invalid email/username or password")
)

const minPasswordLength = 6

// Service handles signup, login and the current-session record.
type Service struct {
	store storage.Store
}

// NewService creates a new account service
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// SignupRequest carries the signup form fields.
type SignupRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Signup validates the request, appends a credential record and makes the new
// user the current session. Validation failures come back as a single error,
// checked in form order.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*Session, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" || req.ConfirmPassword == "" {
		return nil, ErrMissingFields
	}
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if len(req.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	credentials, err := s.credentials(ctx)
	if err != nil {
		return nil, err
	}
	for _, cred := range credentials {
		if cred.Email == req.Email {
			return nil, ErrEmailTaken
		}
	}

	credentials = append(credentials, Credential{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err := storage.WriteJSON(ctx, s.store, storage.KeyCredentials, credentials); err != nil {
		return nil, err
	}

	session := Session{Username: req.Username, Email: req.Email}
	if err := s.setSession(ctx, session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Login scans the credential list for a record matching the identifier (email
// or username) and password, and makes it the current session.
func (s *Service) Login(ctx context.Context, identifier, password string) (*Session, error) {
	credentials, err := s.credentials(ctx)
	if err != nil {
		return nil, err
	}

	for _, cred := range credentials {
		if (cred.Email == identifier || cred.Username == identifier) && cred.Password == password {
			session := Session{Username: cred.Username, Email: cred.Email}
			if err := s.setSession(ctx, session); err != nil {
				return nil, err
			}
			return &session, nil
		}
	}

	return nil, ErrInvalidCredentials
}

// Logout deletes the current session record.
func (s *Service) Logout(ctx context.Context) error {
	return s.store.Delete(ctx, storage.KeySession)
}

// Current returns the session record, or nil when nobody is logged in.
func (s *Service) Current(ctx context.Context) (*Session, error) {
	value, ok, err := s.store.Read(ctx, storage.KeySession)
	if err != nil {
		return nil, err
	}
	if !ok || value == "" {
		return nil, nil
	}

	var session Session
	if err := json.Unmarshal([]byte(value), &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

func (s *Service) credentials(ctx context.Context) ([]Credential, error) {
	var credentials []Credential
	if err := storage.ReadJSON(ctx, s.store, storage.KeyCredentials, &credentials); err != nil {
		return nil, err
	}
	return credentials, nil
}

func (s *Service) setSession(ctx context.Context, session Session) error {
	return storage.WriteJSON(ctx, s.store, storage.KeySession, session)
}
