package identity

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/thejurists/site-api/internal/core/domain"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	signed, err := Issue("secret", "google-oauth2|1234", time.Hour)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	id, err := Verify("secret", signed)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if id != "google-oauth2|1234" {
		t.Fatalf("unexpected identity %q", id)
	}
}

func TestVerify_Rejects(t *testing.T) {
	expired, err := Issue("secret", "alice", -time.Minute)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	noSubject, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	noExpiry, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "alice",
	}).SignedString([]byte("secret"))
	wrongAlg, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	good, _ := Issue("secret", "alice", time.Hour)

	cases := map[string]struct {
		secret string
		token  string
	}{
		"expired":      {"secret", expired},
		"no subject":   {"secret", noSubject},
		"no expiry":    {"secret", noExpiry},
		"wrong alg":    {"secret", wrongAlg},
		"wrong secret": {"other", good},
		"garbage":      {"secret", "not.a.jwt"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			id, err := Verify(tc.secret, tc.token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
			if !id.IsAnonymous() {
				t.Fatalf("rejected token must yield anonymous, got %q", id)
			}
		})
	}
}

func TestIssue_RejectsAnonymous(t *testing.T) {
	if _, err := Issue("secret", domain.Anonymous, time.Hour); !errors.Is(err, domain.ErrAnonymousCaller) {
		t.Fatalf("expected ErrAnonymousCaller, got %v", err)
	}
}
