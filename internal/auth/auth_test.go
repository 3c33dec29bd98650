package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginDemoAccount(t *testing.T) {
	s := NewService()

	token, user, err := s.Login(TestEmail, TestPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, TestEmail, user.Email)
	assert.Equal(t, TestName, user.Name)

	got, ok := s.Verify(token)
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := NewService()

	_, _, err := s.Login(TestEmail, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = s.Login("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = s.Login("", "")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestLoginNormalizesEmail(t *testing.T) {
	s := NewService()

	_, user, err := s.Login("  Test@Example.COM ", TestPassword)
	require.NoError(t, err)
	assert.Equal(t, TestEmail, user.Email)
}

func TestSignupThenLogin(t *testing.T) {
	s := NewService()

	token, user, err := s.Signup("new@example.com", "secret", "New User")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "New User", user.Name)

	_, got, err := s.Login("new@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	_, _, err = s.Login("new@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignupRejectsIncomplete(t *testing.T) {
	s := NewService()

	for _, tc := range []struct{ email, password, name string }{
		{"", "secret", "Name"},
		{"a@b.com", "", "Name"},
		{"a@b.com", "secret", "   "},
	} {
		_, _, err := s.Signup(tc.email, tc.password, tc.name)
		assert.ErrorIs(t, err, ErrMissingFields)
	}
}

func TestLogout(t *testing.T) {
	s := NewService()

	token, _, err := s.Login(TestEmail, TestPassword)
	require.NoError(t, err)

	s.Logout(token)
	_, ok := s.Verify(token)
	assert.False(t, ok)

	// Unknown tokens are a no-op.
	s.Logout("missing")
}

func TestTokensAreUnique(t *testing.T) {
	s := NewService()

	t1, _, err := s.Login(TestEmail, TestPassword)
	require.NoError(t, err)
	t2, _, err := s.Login(TestEmail, TestPassword)
	require.NoError(t, err)
	assert.NotEqual(t, t1, t2)
}
