package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymgate/internal/shared/config"
	"gymgate/internal/shared/logger"
)

type fakeVerifier struct {
	lastPassword string
	lastHash     string
	calls        int
	err          error
}

func (f *fakeVerifier) Verify(password, hash string) error {
	f.lastPassword = password
	f.lastHash = hash
	f.calls++
	return f.err
}

type fakeIssuer struct {
	token string
	err   error
}

func (f *fakeIssuer) Generate(username string) (string, int64, error) {
	if f.err != nil {
		return "", 0, f.err
	}
	return f.token, 3600, nil
}

func loginConfig() *config.AuthConfig {
	return &config.AuthConfig{
		AdminUsername:     "frontdesk",
		AdminPasswordHash: "$2a$10$hash",
	}
}

func TestLogin_Success(t *testing.T) {
	verifier := &fakeVerifier{}
	uc := NewLoginUseCase(loginConfig(), verifier, &fakeIssuer{token: "tok"}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), LoginCommand{Username: "frontdesk", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "tok", result.AccessToken)
	assert.Equal(t, "Bearer", result.TokenType)
	assert.Equal(t, int64(3600), result.ExpiresIn)
	assert.Equal(t, "secret", verifier.lastPassword)
	assert.Equal(t, "$2a$10$hash", verifier.lastHash)
}

func TestLogin_WrongPassword(t *testing.T) {
	verifier := &fakeVerifier{err: errors.New("password verification failed")}
	uc := NewLoginUseCase(loginConfig(), verifier, &fakeIssuer{token: "tok"}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), LoginCommand{Username: "frontdesk", Password: "nope"})

	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, result)
}

func TestLogin_WrongUsernameStillVerifiesHash(t *testing.T) {
	verifier := &fakeVerifier{}
	uc := NewLoginUseCase(loginConfig(), verifier, &fakeIssuer{token: "tok"}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), LoginCommand{Username: "intruder", Password: "secret"})

	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, result)
	// A wrong username must cost the same as a wrong password.
	assert.Equal(t, 1, verifier.calls)
}

func TestLogin_IssuerFailure(t *testing.T) {
	verifier := &fakeVerifier{}
	uc := NewLoginUseCase(loginConfig(), verifier, &fakeIssuer{err: errors.New("boom")}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), LoginCommand{Username: "frontdesk", Password: "secret"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, result)
}
