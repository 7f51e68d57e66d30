package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := NewService([]byte("test-signing-key"))

	tok, err := svc.Issue("a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	email, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestVerifyWrongSigningKey(t *testing.T) {
	issuer := NewService([]byte("key-one"))
	verifier := NewService([]byte("key-two"))

	tok, err := issuer.Issue("a@x.com")
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestVerifyMalformedToken(t *testing.T) {
	svc := NewService([]byte("test-signing-key"))

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Verify(tok)
		assert.Equal(t, ErrInvalidToken, err, "token %q", tok)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := &Service{
		signingKey: []byte("test-signing-key"),
		now:        func() time.Time { return time.Now().Add(-2 * TokenExpiry) },
	}

	tok, err := svc.Issue("a@x.com")
	require.NoError(t, err)

	_, err = NewService([]byte("test-signing-key")).Verify(tok)
	assert.Equal(t, ErrExpiredToken, err)
}

func TestVerifyTokenWithoutEmailClaim(t *testing.T) {
	svc := NewService([]byte("test-signing-key"))

	tok, err := svc.Issue("")
	require.NoError(t, err)

	_, err = svc.Verify(tok)
	assert.Equal(t, ErrInvalidToken, err)
}
