package cart

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/nars-shop/nars-backend/internal/session"
)

// Handler serves the session cart endpoints. Adding to the cart before
// signing in is allowed: a fresh anonymous session is created on first use
// and sign-in later fills in the user reference.
type Handler struct {
	service  *Service
	sessions session.Store
}

type updateRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

func NewHandler(service *Service, sessions session.Store) *Handler {
	return &Handler{service: service, sessions: sessions}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/cart/add", h.addItem)
	app.Get("/cart", h.getCart)
	app.Put("/cart/update", h.updateItem)
	app.Delete("/cart/remove/:productId", h.removeItem)
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	item := new(session.CartItem)
	if err := c.BodyParser(item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if item.ProductID <= 0 || item.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "product id and quantity are required"})
	}

	sess, ok := session.FromCtx(c)
	if !ok {
		sess = session.Session{ID: session.NewID()}
		session.SetCookie(c, sess.ID)
	}

	updated, err := h.service.Add(c.Context(), sess, *item)
	if err != nil {
		log.Printf("could not add cart item: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while updating the cart"})
	}
	return c.JSON(fiber.Map{"success": true, "cart": updated.Cart})
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	sess, _ := session.FromCtx(c)
	if sess.Cart == nil {
		sess.Cart = []session.CartItem{}
	}
	return c.JSON(fiber.Map{"cart": sess.Cart})
}

func (h *Handler) updateItem(c *fiber.Ctx) error {
	payload := new(updateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	sess, ok := session.FromCtx(c)
	if !ok {
		return c.JSON(fiber.Map{"success": true, "cart": []session.CartItem{}})
	}

	updated, err := h.service.UpdateQuantity(c.Context(), sess, payload.ProductID, payload.Quantity)
	if err != nil {
		log.Printf("could not update cart item: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while updating the cart"})
	}
	return c.JSON(fiber.Map{"success": true, "cart": updated.Cart})
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	sess, ok := session.FromCtx(c)
	if !ok {
		return c.JSON(fiber.Map{"success": true, "cart": []session.CartItem{}})
	}

	updated, err := h.service.Remove(c.Context(), sess, productID)
	if err != nil {
		log.Printf("could not remove cart item: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while updating the cart"})
	}
	return c.JSON(fiber.Map{"success": true, "cart": updated.Cart})
}
