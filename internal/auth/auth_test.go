package auth

import (
	"bytes"
	"context"
	"errors"
	"testing"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/shenikar/help_hualien/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokenVerifier struct {
	token *fbauth.Token
	err   error
}

func (f *fakeTokenVerifier) VerifyIDTokenAndCheckRevoked(_ context.Context, _ string) (*fbauth.Token, error) {
	return f.token, f.err
}

type recordingVerifier struct {
	tokens   []string
	identity *Identity
}

func (r *recordingVerifier) Verify(_ context.Context, token string) (*Identity, error) {
	r.tokens = append(r.tokens, token)
	return r.identity, nil
}

func TestFirebaseVerifier_Verify(t *testing.T) {
	v := &FirebaseVerifier{client: &fakeTokenVerifier{token: &fbauth.Token{
		UID:    "U1abcdef",
		Claims: map[string]interface{}{"name": "王小明", "email": "ming@example.com"},
	}}}

	identity, err := v.Verify(context.Background(), "id-token")

	require.NoError(t, err)
	assert.Equal(t, &Identity{UID: "U1abcdef", Name: "王小明", Email: "ming@example.com"}, identity)
}

func TestFirebaseVerifier_DefaultName(t *testing.T) {
	v := &FirebaseVerifier{client: &fakeTokenVerifier{token: &fbauth.Token{UID: "abcdefghij", Claims: map[string]interface{}{}}}}

	identity, err := v.Verify(context.Background(), "id-token")

	require.NoError(t, err)
	assert.Equal(t, "user-abcde", identity.Name)
	assert.Equal(t, "user-ab", defaultName("ab"))
}

func TestFirebaseVerifier_Rejected(t *testing.T) {
	v := &FirebaseVerifier{client: &fakeTokenVerifier{err: errors.New("ID token has been revoked")}}

	identity, err := v.Verify(context.Background(), "id-token")

	require.Error(t, err)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDevBypassVerifier_SentinelToken(t *testing.T) {
	v := NewDevBypassVerifier(nil)

	identity, err := v.Verify(context.Background(), DevBypassToken)

	require.NoError(t, err)
	assert.Equal(t, "test-user", identity.UID)
	assert.Equal(t, "test-user@test.com", identity.Email)
}

func TestDevBypassVerifier_NoNextRejectsOtherTokens(t *testing.T) {
	_, err := NewDevBypassVerifier(nil).Verify(context.Background(), "something-else")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDevBypassVerifier_DelegatesOtherTokens(t *testing.T) {
	expected := &Identity{UID: "V1", Name: "志工"}
	next := &recordingVerifier{identity: expected}

	identity, err := NewDevBypassVerifier(next).Verify(context.Background(), "real-token")

	require.NoError(t, err)
	assert.Equal(t, expected, identity)
	assert.Equal(t, []string{"real-token"}, next.tokens)

	_, err = NewDevBypassVerifier(next).Verify(context.Background(), DevBypassToken)
	require.NoError(t, err)
	assert.Len(t, next.tokens, 1, "sentinel token must not reach the real provider")
}

func TestNewVerifier_BypassOnlyWhenEnabled(t *testing.T) {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})

	_, err := NewVerifier(context.Background(), &config.Config{}, log)
	require.Error(t, err, "no provider and no bypass must not produce a verifier")

	v, err := NewVerifier(context.Background(), &config.Config{AuthDevBypass: true}, log)
	require.NoError(t, err)
	identity, err := v.Verify(context.Background(), DevBypassToken)
	require.NoError(t, err)
	assert.Equal(t, "test-user", identity.UID)
}
