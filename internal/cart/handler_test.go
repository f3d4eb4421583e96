package cart

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/nars-shop/nars-backend/internal/session"
)

func makeAppWithCartHandler(store session.Store) *fiber.App {
	handler := NewHandler(NewService(store), store)
	app := fiber.New()
	app.Use(session.Load(store))
	handler.RegisterPublicRoutes(app)
	return app
}

func cartCookie(t *testing.T, res *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range res.Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", session.CookieName)
	return nil
}

func TestCartRoutes_AnonymousFlow(t *testing.T) {
	store := session.NewMemoryStore()
	app := makeAppWithCartHandler(store)

	// first add creates an anonymous session and sets the cookie
	req := httptest.NewRequest("POST", "/cart/add", strings.NewReader(`{"id": 1, "name": "Velvet Lipstick", "price": 50, "quantity": 2}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for first add, got %d", res.StatusCode)
	}
	cookie := cartCookie(t, res)

	req2 := httptest.NewRequest("POST", "/cart/add", strings.NewReader(`{"id": 2, "name": "Matte Primer", "price": 30, "quantity": 1}`))
	req2.Header.Set("Content-Type", "application/json")
	req2.AddCookie(cookie)
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for second add, got %d", res2.StatusCode)
	}

	req3 := httptest.NewRequest("GET", "/cart", nil)
	req3.AddCookie(cookie)
	res3, _ := app.Test(req3)
	b3, _ := io.ReadAll(res3.Body)
	if !strings.Contains(string(b3), `"Velvet Lipstick"`) || !strings.Contains(string(b3), `"Matte Primer"`) {
		t.Fatalf("cart missing items: %s", b3)
	}

	req4 := httptest.NewRequest("PUT", "/cart/update", strings.NewReader(`{"productId": 1, "quantity": 5}`))
	req4.Header.Set("Content-Type", "application/json")
	req4.AddCookie(cookie)
	res4, _ := app.Test(req4)
	if res4.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for update, got %d", res4.StatusCode)
	}
	b4, _ := io.ReadAll(res4.Body)
	if !strings.Contains(string(b4), `"quantity":5`) {
		t.Fatalf("expected quantity 5 after update, got %s", b4)
	}

	req5 := httptest.NewRequest("DELETE", "/cart/remove/1", nil)
	req5.AddCookie(cookie)
	res5, _ := app.Test(req5)
	if res5.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for remove, got %d", res5.StatusCode)
	}
	b5, _ := io.ReadAll(res5.Body)
	if strings.Contains(string(b5), `"Velvet Lipstick"`) {
		t.Fatalf("expected product 1 removed, got %s", b5)
	}
	if !strings.Contains(string(b5), `"Matte Primer"`) {
		t.Fatalf("remove dropped the wrong item: %s", b5)
	}
}

func TestAddItem_Validation(t *testing.T) {
	store := session.NewMemoryStore()
	app := makeAppWithCartHandler(store)

	req := httptest.NewRequest("POST", "/cart/add", strings.NewReader(`{"id": 0, "quantity": 2}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing product id, got %d", res.StatusCode)
	}

	req2 := httptest.NewRequest("POST", "/cart/add", strings.NewReader(`{"id": 1, "quantity": 0}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for zero quantity, got %d", res2.StatusCode)
	}
}

func TestGetCart_WithoutSession(t *testing.T) {
	store := session.NewMemoryStore()
	app := makeAppWithCartHandler(store)

	req := httptest.NewRequest("GET", "/cart", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for empty cart read, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"cart":[]`) {
		t.Fatalf("expected empty cart, got %s", b)
	}
}
