package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieName is the storefront session cookie.
const CookieName = "nars_session"

const localsKey = "session"

// Load reads the session cookie and, when a session exists in the store,
// attaches it to the request locals. Requests without a valid session pass
// through untouched so public routes keep working.
func Load(store Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(CookieName)
		if id == "" {
			return c.Next()
		}
		sess, err := store.Get(c.Context(), id)
		if err != nil {
			return c.Next()
		}
		c.Locals(localsKey, sess)
		return c.Next()
	}
}

// Require rejects the request before any database work when no
// authenticated session is attached.
func Require() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := FromCtx(c); !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not authenticated"})
		}
		return c.Next()
	}
}

// FromCtx returns the session attached by Load, if any.
func FromCtx(c *fiber.Ctx) (Session, bool) {
	sess, ok := c.Locals(localsKey).(Session)
	return sess, ok
}

// SetCookie writes the session cookie alongside a freshly stored session.
func SetCookie(c *fiber.Ctx, id string) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    id,
		Expires:  time.Now().Add(TTL),
		HTTPOnly: true,
	})
}

// ClearCookie expires the session cookie on logout.
func ClearCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
}
