package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/thejurists/site-api/internal/core/domain"
	"github.com/thejurists/site-api/internal/identity"
)

func run(t *testing.T, mw echo.MiddlewareFunc, header string, next echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, mw(next)(c)
}

func TestIdentity_ValidToken(t *testing.T) {
	signed, err := identity.Issue("secret", "alice", time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	called := false
	rec, err := run(t, Identity("secret"), "Bearer "+signed, func(c echo.Context) error {
		called = true
		if Caller(c) != "alice" {
			t.Fatalf("caller not set, got %q", Caller(c))
		}
		return c.NoContent(http.StatusOK)
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestIdentity_MissingHeaderIsAnonymous(t *testing.T) {
	_, err := run(t, Identity("secret"), "", func(c echo.Context) error {
		if !Caller(c).IsAnonymous() {
			t.Fatalf("expected anonymous caller, got %q", Caller(c))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestIdentity_Rejects(t *testing.T) {
	cases := map[string]string{
		"bad scheme":   "Token abc",
		"no token":     "Bearer",
		"bad token":    "Bearer not.a.jwt",
		"wrong secret": "",
	}
	other, _ := identity.Issue("other", "alice", time.Hour)
	cases["wrong secret"] = "Bearer " + other

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, Identity("secret"), header, func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %v", err)
			}
		})
	}
}

func TestRequireCaller(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPut, "/", nil), httptest.NewRecorder())

	h := RequireCaller()(func(c echo.Context) error { return nil })
	if err := h(c); !errors.Is(err, domain.ErrAnonymousCaller) {
		t.Fatalf("expected ErrAnonymousCaller, got %v", err)
	}

	SetCaller(c, "alice")
	if err := h(c); err != nil {
		t.Fatalf("authenticated caller rejected: %v", err)
	}
}
