package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/help_hualien/internal/config"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks

// ErrInvalidToken - токен отсутствует, просрочен, отозван или подписан не тем ключом
var ErrInvalidToken = errors.New("invalid token")

// Identity - вызывающий, подтвержденный провайдером идентификации
type Identity struct {
	UID   string
	Name  string
	Email string
}

// Verifier проверяет bearer-токен и возвращает личность вызывающего
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// NewVerifier собирает проверку токенов из конфигурации: Firebase, если он настроен,
// и тестовый обход поверх него, только если AUTH_DEV_BYPASS явно включен.
func NewVerifier(ctx context.Context, cfg *config.Config, log *logrus.Logger) (Verifier, error) {
	var verifier Verifier
	if cfg.FirebaseConfigured() {
		fb, err := NewFirebaseVerifier(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("could not init firebase verifier: %w", err)
		}
		verifier = fb
	}

	if cfg.AuthDevBypass {
		log.Warnf("AUTH_DEV_BYPASS is enabled: token %q is accepted without verification", DevBypassToken)
		return NewDevBypassVerifier(verifier), nil
	}

	if verifier == nil {
		return nil, errors.New("no identity provider configured")
	}
	return verifier, nil
}
