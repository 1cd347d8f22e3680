package auth

import (
	"strings"

	"go.uber.org/zap"

	"gocms/internal/common"
	"gocms/internal/config"
)

// Service authenticates administrative callers against the single configured
// administrator record and issues bearer tokens for them.
type Service struct {
	adminUsername string
	adminPassword string
	tokens        *common.TokenService
	log           *zap.SugaredLogger
}

func NewService(cfg *config.Config, tokens *common.TokenService, log *zap.SugaredLogger) *Service {
	return &Service{
		adminUsername: cfg.Auth.AdminUsername,
		adminPassword: cfg.Auth.AdminPassword,
		tokens:        tokens,
		log:           log,
	}
}

// Login verifies the submitted credentials and returns a signed token plus
// the authenticated identity.
func (s *Service) Login(username, password string) (string, *common.Identity, error) {
	if err := common.RequireField("username", username); err != nil {
		return "", nil, err
	}
	if err := common.RequireField("password", password); err != nil {
		return "", nil, err
	}

	username = strings.TrimSpace(username)
	if username != s.adminUsername || !common.VerifyCredential(password, s.adminPassword) {
		s.log.Infow("login rejected", "username", username)
		return "", nil, common.NewAuthError(common.AuthInvalidCredentials, "invalid username or password")
	}

	identity := common.Identity{Username: username, Role: common.RoleAdmin}
	token, err := s.tokens.Issue(identity)
	if err != nil {
		return "", nil, err
	}

	s.log.Infow("login succeeded", "username", username)
	return token, &identity, nil
}

// ValidateToken decodes a token and returns the identity it carries.
func (s *Service) ValidateToken(token string) (*common.Identity, error) {
	if err := common.RequireField("token", token); err != nil {
		return nil, err
	}
	return s.tokens.Validate(token)
}
