// Package auth implements the demo credential check and an in-memory session
// table. There is no user database: one hardcoded test account always works,
// and signup accepts any complete registration for the session's lifetime.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
)

// Demo account accepted by Login.
const (
	TestEmail    = "test@example.com"
	TestPassword = "password123"
	TestName     = "Test User"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("missing required fields")
)

type User struct {
	Email string
	Name  string
}

type Service struct {
	mu       sync.Mutex
	sessions map[string]User
	accounts map[string]account // signup accounts, keyed by email
}

type account struct {
	password string
	name     string
}

func NewService() *Service {
	return &Service{
		sessions: make(map[string]User),
		accounts: make(map[string]account),
	}
}

// Login checks the demo credentials or a previously signed-up account and
// returns a bearer token.
func (s *Service) Login(email, password string) (string, User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", User{}, ErrMissingFields
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var user User
	switch {
	case email == TestEmail && password == TestPassword:
		user = User{Email: email, Name: TestName}
	default:
		acct, ok := s.accounts[email]
		if !ok || acct.password != password {
			return "", User{}, ErrInvalidCredentials
		}
		user = User{Email: email, Name: acct.name}
	}

	token := newToken()
	s.sessions[token] = user
	return token, user, nil
}

// Signup registers a new account and logs it in. Any complete registration is
// accepted.
func (s *Service) Signup(email, password, name string) (string, User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" || strings.TrimSpace(name) == "" {
		return "", User{}, ErrMissingFields
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts[email] = account{password: password, name: strings.TrimSpace(name)}
	user := User{Email: email, Name: strings.TrimSpace(name)}
	token := newToken()
	s.sessions[token] = user
	return token, user, nil
}

// Verify resolves a bearer token to its session user.
func (s *Service) Verify(token string) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.sessions[token]
	return user, ok
}

// Logout drops the session. Unknown tokens are a no-op.
func (s *Service) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

func newToken() string {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(b)
}
