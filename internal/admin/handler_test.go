package admin

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

func mustHash(t *testing.T, secret string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("could not hash %q: %v", secret, err)
	}
	return string(hashed)
}

func TestSignin_IssuesSignedToken(t *testing.T) {
	repo := NewInMemoryRepository([]Admin{{ID: 1, Username: "boss", Password: mustHash(t, "hunter2")}})
	handler := NewHandler(NewService(repo, ""), "test-secret")
	app := fiber.New()
	handler.RegisterPublicRoutes(app)

	req := httptest.NewRequest("POST", "/signin", strings.NewReader(`{"username": "boss", "password": "wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", res.StatusCode)
	}

	req2 := httptest.NewRequest("POST", "/signin", strings.NewReader(`{"username": "nobody", "password": "hunter2"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown admin, got %d", res2.StatusCode)
	}

	req3 := httptest.NewRequest("POST", "/signin", strings.NewReader(`{"username": "boss", "password": "hunter2"}`))
	req3.Header.Set("Content-Type", "application/json")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for signin, got %d", res3.StatusCode)
	}

	b3, _ := io.ReadAll(res3.Body)
	body := string(b3)
	if !strings.Contains(body, `"token":"`) {
		t.Fatalf("signin response missing token: %s", body)
	}

	// the token must verify against the configured secret and carry the
	// admin identity
	start := strings.Index(body, `"token":"`) + len(`"token":"`)
	end := strings.Index(body[start:], `"`)
	raw := body[start : start+end]
	tok, err := jwt.Parse(raw, func(tok *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || claims["username"] != "boss" {
		t.Fatalf("unexpected claims %+v", tok.Claims)
	}
}

func TestValidatePIN(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	handler := NewHandler(NewService(repo, mustHash(t, "4321")), "test-secret")
	app := fiber.New()
	handler.RegisterProtectedRoutes(app)

	req := httptest.NewRequest("POST", "/validate-pin", strings.NewReader(`{"pin": "4321"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for correct pin, got %d", res.StatusCode)
	}

	req2 := httptest.NewRequest("POST", "/validate-pin", strings.NewReader(`{"pin": "0000"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong pin, got %d", res2.StatusCode)
	}
}

func TestValidatePIN_NoHashConfigured(t *testing.T) {
	service := NewService(NewInMemoryRepository(nil), "")
	if err := service.ValidatePIN("anything"); err != ErrInvalidPIN {
		t.Fatalf("expected ErrInvalidPIN when no hash is configured, got %v", err)
	}
}
