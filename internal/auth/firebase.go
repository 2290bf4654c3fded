package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/shenikar/help_hualien/internal/config"
	"google.golang.org/api/option"
)

// idTokenVerifier - часть клиента firebase auth, которая нам нужна
type idTokenVerifier interface {
	VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// FirebaseVerifier проверяет ID-токены Firebase, включая отзыв
type FirebaseVerifier struct {
	client idTokenVerifier
}

// NewFirebaseVerifier создает клиент Firebase Auth по учетным данным из конфигурации.
// Без явных учетных данных используются Application Default Credentials.
func NewFirebaseVerifier(ctx context.Context, cfg *config.Config) (*FirebaseVerifier, error) {
	var opts []option.ClientOption
	switch {
	case cfg.FirebaseCredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.FirebaseCredentialsJSON)))
	case cfg.FirebaseCredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to init firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to init firebase auth client: %w", err)
	}

	return &FirebaseVerifier{client: client}, nil
}

// Verify проверяет подпись и отзыв токена
func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	decoded, err := v.client.VerifyIDTokenAndCheckRevoked(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return identityFromToken(decoded), nil
}

func identityFromToken(token *fbauth.Token) *Identity {
	identity := &Identity{UID: token.UID}
	if name, ok := token.Claims["name"].(string); ok {
		identity.Name = name
	}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	// У анонимных и телефонных аккаунтов имени нет
	if identity.Name == "" {
		identity.Name = defaultName(token.UID)
	}
	return identity
}

func defaultName(uid string) string {
	prefix := uid
	if len(prefix) > 5 {
		prefix = prefix[:5]
	}
	return "user-" + prefix
}
