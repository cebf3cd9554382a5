package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCodecRoundTrip(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("super-secret", time.Hour)
	token, expiresAt, err := codec.Issue("a@x.com")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Subject)
	assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Unix())

	subject, err := codec.Subject(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", subject)
}

func TestTokenCodecRejectsExpired(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("secret", time.Hour)
	issuedAt := time.Now().Add(-2 * time.Hour)
	codec.now = func() time.Time { return issuedAt }
	token, _, err := codec.Issue("u@x.com")
	require.NoError(t, err)

	codec.now = time.Now
	_, err = codec.Decode(token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenCodecRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	token, _, err := NewTokenCodec("right-secret", time.Hour).Issue("u@x.com")
	require.NoError(t, err)

	_, err = NewTokenCodec("wrong-secret", time.Hour).Decode(token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenCodecRejectsMalformed(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("k", time.Hour)
	for _, token := range []string{"", "not.a.jwt", "abc"} {
		_, err := codec.Decode(token)
		require.ErrorIs(t, err, ErrTokenInvalid, "token %q", token)
	}
}

func TestTokenCodecRejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	secret := "shared"
	claims := jwt.RegisteredClaims{
		Subject:   "u@x.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewTokenCodec(secret, time.Hour).Decode(token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenCodecRequiresExpiryAndSubject(t *testing.T) {
	t.Parallel()

	secret := "shared"
	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "u@x.com"}).SignedString([]byte(secret))
	require.NoError(t, err)
	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	codec := NewTokenCodec(secret, time.Hour)
	_, err = codec.Decode(noExp)
	require.ErrorIs(t, err, ErrTokenInvalid)
	_, err = codec.Decode(noSub)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenCodecProperties(t *testing.T) {
	codec := NewTokenCodec("property-secret", time.Hour)
	expired := NewTokenCodec("property-secret", -time.Minute)

	properties := gopter.NewProperties(nil)

	properties.Property("decode(issue(sub)) keeps the subject", prop.ForAll(
		func(subject string) bool {
			token, _, err := codec.Issue(subject)
			if err != nil {
				return false
			}
			claims, err := codec.Decode(token)
			return err == nil && claims.Subject == subject
		},
		gen.Identifier(),
	))

	properties.Property("tokens issued already expired never decode", prop.ForAll(
		func(subject string) bool {
			token, _, err := expired.Issue(subject)
			if err != nil {
				return false
			}
			_, err = codec.Decode(token)
			return err != nil
		},
		gen.Identifier(),
	))

	properties.TestingRun(t)
}
