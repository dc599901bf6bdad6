package usecases

import (
	"context"
	"crypto/subtle"
	"fmt"

	"gymgate/internal/shared/config"
	"gymgate/internal/shared/logger"
)

var ErrInvalidCredentials = fmt.Errorf("invalid credentials")

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type passwordVerifier interface {
	Verify(password, hash string) error
}

type tokenIssuer interface {
	Generate(username string) (string, int64, error)
}

// LoginUseCase authenticates the front-desk operator against the
// credentials in config and issues a short-lived API token. There is no
// staff table: the deployment has a single operator account.
type LoginUseCase struct {
	cfg    *config.AuthConfig
	hasher passwordVerifier
	tokens tokenIssuer
	logger logger.Interface
}

func NewLoginUseCase(cfg *config.AuthConfig, hasher passwordVerifier, tokens tokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		cfg:    cfg,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

func (uc *LoginUseCase) Execute(_ context.Context, cmd LoginCommand) (*LoginResult, error) {
	usernameMatch := subtle.ConstantTimeCompare([]byte(cmd.Username), []byte(uc.cfg.AdminUsername)) == 1

	// Always run the hash comparison so a wrong username costs the same as
	// a wrong password.
	passwordErr := uc.hasher.Verify(cmd.Password, uc.cfg.AdminPasswordHash)

	if !usernameMatch || passwordErr != nil {
		uc.logger.Warnw("rejected login attempt", "username", cmd.Username)
		return nil, ErrInvalidCredentials
	}

	token, expiresIn, err := uc.tokens.Generate(cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Infow("operator logged in", "username", cmd.Username)
	return &LoginResult{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
