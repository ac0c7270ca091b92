package jwt

import (
	"encoding/base64"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func newTestJWT(t *testing.T, clock *fakeClock) *JWT {
	t.Helper()
	j, err := New("test-signature-secret", time.Hour, WithClock(clock.Now))
	require.NoError(t, err)
	return j
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New("", time.Hour)
	assert.Error(t, err)

	_, err = New("secret", 0)
	assert.Error(t, err)
}

func TestSignAndParse(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	j := newTestJWT(t, clock)

	token, issued, err := j.SignToken("admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", issued.Subject)
	assert.Equal(t, clock.t, issued.IssuedAt)
	assert.Equal(t, clock.t.Add(time.Hour), issued.Expires)

	claims, err := j.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.True(t, claims.Expires.Equal(issued.Expires))
	assert.True(t, claims.IssuedAt.Equal(issued.IssuedAt))
}

func TestSignRejectsEmptySubject(t *testing.T) {
	j := newTestJWT(t, &fakeClock{t: time.Now()})
	_, _, err := j.SignToken("")
	assert.Error(t, err)
}

func TestExpiryBoundary(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	j := newTestJWT(t, clock)

	token, issued, err := j.SignToken("admin")
	require.NoError(t, err)

	for _, tc := range []struct {
		name    string
		at      time.Time
		expired bool
	}{
		{"just issued", issued.IssuedAt, false},
		{"one second before expiry", issued.Expires.Add(-time.Second), false},
		{"at expiry", issued.Expires, true},
		{"after expiry", issued.Expires.Add(time.Minute), true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			clock.t = tc.at
			_, err := j.ParseToken(token)
			if tc.expired {
				assert.ErrorIs(t, err, ErrExpired)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTamperedSignature(t *testing.T) {
	j := newTestJWT(t, &fakeClock{t: time.Now()})

	token, _, err := j.SignToken("admin")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	require.NoError(t, err)
	sig[0] ^= 0xff
	parts[2] = base64.RawURLEncoding.EncodeToString(sig)

	_, err = j.ParseToken(strings.Join(parts, "."))
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestTamperedPayload(t *testing.T) {
	j := newTestJWT(t, &fakeClock{t: time.Now()})

	token, _, err := j.SignToken("admin")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"root","exp":4102444800}`))

	_, err = j.ParseToken(strings.Join(parts, "."))
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestWrongKey(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	other, err := New("another-secret", time.Hour, WithClock(clock.Now))
	require.NoError(t, err)

	token, _, err := other.SignToken("admin")
	require.NoError(t, err)

	_, err = newTestJWT(t, clock).ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestMalformed(t *testing.T) {
	j := newTestJWT(t, &fakeClock{t: time.Now()})

	for _, token := range []string{"", "garbage", "garbage.token.here", "a.b"} {
		_, err := j.ParseToken(token)
		assert.ErrorIs(t, err, ErrMalformed, "token %q", token)
	}
}

func TestRejectsOtherAlgorithms(t *testing.T) {
	j := newTestJWT(t, &fakeClock{t: time.Now()})

	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = j.ParseToken(none)
	assert.ErrorIs(t, err, ErrInvalidSignature)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-signature-secret"))
	require.NoError(t, err)
	_, err = j.ParseToken(hs512)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestMissingClaims(t *testing.T) {
	j := newTestJWT(t, &fakeClock{t: time.Now()})

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "admin"}).SignedString([]byte("test-signature-secret"))
	require.NoError(t, err)
	_, err = j.ParseToken(noExp)
	assert.ErrorIs(t, err, ErrMalformed)

	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("test-signature-secret"))
	require.NoError(t, err)
	_, err = j.ParseToken(noSub)
	assert.ErrorIs(t, err, ErrMalformed)
}
