package user

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/nars-shop/nars-backend/internal/session"
)

// Handler serves the storefront auth endpoints. It owns the session
// lifecycle: signin creates the server-side session and sets the cookie,
// logout destroys both.
type Handler struct {
	service  *Service
	sessions session.Store
}

type signupRequest struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Address   string `json:"address"`
	Mobile    string `json:"mobile"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewHandler(service *Service, sessions session.Store) *Handler {
	return &Handler{service: service, sessions: sessions}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/signup", h.signup)
	app.Post("/signin", h.signin)
	app.Get("/logout", h.logout)
	app.Get("/user", h.currentUser)
}

func (h *Handler) signup(c *fiber.Ctx) error {
	payload := new(signupRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if payload.isMissingRequiredFields() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
	}

	_, err := h.service.Register(User{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Address:   payload.Address,
		Contact:   payload.Mobile,
		Email:     payload.Email,
		Password:  payload.Password,
	})
	if err != nil {
		if err == ErrEmailExists {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already exists"})
		}
		log.Printf("signup failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred during signup"})
	}

	return c.JSON(fiber.Map{"message": "Signup successful"})
}

func (h *Handler) signin(c *fiber.Ctx) error {
	payload := new(signinRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	u, loginID, err := h.service.Authenticate(payload.Email, payload.Password)
	if err != nil {
		if err == ErrInvalidCredentials {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
		}
		log.Printf("signin failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred during signin"})
	}

	sess := session.Session{
		ID:        session.NewID(),
		UserID:    u.ID,
		FirstName: u.FirstName,
		Email:     u.Email,
		LoginID:   loginID,
	}
	if err := h.sessions.Put(c.Context(), sess); err != nil {
		log.Printf("could not store session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred during signin"})
	}
	session.SetCookie(c, sess.ID)

	return c.JSON(fiber.Map{"success": true, "message": "Signin successful", "firstName": u.FirstName})
}

func (h *Handler) logout(c *fiber.Ctx) error {
	sess, ok := session.FromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "No active session found"})
	}

	if err := h.service.Logout(sess.LoginID); err != nil {
		log.Printf("could not record logout time: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while recording logout time"})
	}
	if err := h.sessions.Delete(c.Context(), sess.ID); err != nil {
		log.Printf("could not destroy session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred during logout"})
	}
	session.ClearCookie(c)

	return c.JSON(fiber.Map{"success": true, "message": "Logout successful"})
}

func (h *Handler) currentUser(c *fiber.Ctx) error {
	sess, ok := session.FromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	return c.JSON(fiber.Map{"success": true, "firstName": sess.FirstName})
}

func (r signupRequest) isMissingRequiredFields() bool {
	return r.FirstName == "" || r.LastName == "" || r.Address == "" || r.Mobile == "" || r.Email == "" || r.Password == ""
}
