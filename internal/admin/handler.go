package admin

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Handler serves the back-office auth endpoints. Signin issues a JWT the
// dashboard sends as a bearer token; everything past the public routes sits
// behind the jwtware middleware wired in cmd/admin.
type Handler struct {
	service   *Service
	jwtSecret string
}

type signinRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type pinRequest struct {
	PIN string `json:"pin"`
}

func NewHandler(service *Service, jwtSecret string) *Handler {
	return &Handler{service: service, jwtSecret: jwtSecret}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/signin", h.signin)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/validate-pin", h.validatePIN)
	app.Get("/logout", h.logout)
}

func (h *Handler) signin(c *fiber.Ctx) error {
	payload := new(signinRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	a, err := h.service.Authenticate(payload.Username, payload.Password)
	if err != nil {
		if err == ErrInvalidCredentials {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid username or password"})
		}
		log.Printf("admin signin failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred during signin"})
	}

	claims := jwt.MapClaims{
		"admin_id": a.ID,
		"username": a.Username,
		"exp":      time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		log.Printf("could not sign admin token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "Signin successful",
		"username": a.Username,
		"token":    signed,
	})
}

func (h *Handler) validatePIN(c *fiber.Ctx) error {
	payload := new(pinRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.service.ValidatePIN(payload.PIN); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid pin"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Pin validated successfully"})
}

// logout only acknowledges; the bearer token is discarded client-side.
func (h *Handler) logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "message": "Logout successful"})
}
