package rating

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/nars-shop/nars-backend/internal/session"
)

// Handler serves the rating submission endpoint, registered behind
// session.Require.
type Handler struct {
	service *Service
}

type submitRequest struct {
	// JSON object keys are strings even when they carry product ids
	Ratings  map[string]int `json:"ratings"`
	Feedback string         `json:"feedback"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/submit-ratings/:orderId", h.submitRatings)
}

func (h *Handler) submitRatings(c *fiber.Ctx) error {
	sess, _ := session.FromCtx(c)
	orderID, err := strconv.Atoi(c.Params("orderId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order id"})
	}

	payload := new(submitRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ratings := make(map[int]int, len(payload.Ratings))
	for key, value := range payload.Ratings {
		productID, err := strconv.Atoi(key)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id in ratings"})
		}
		ratings[productID] = value
	}

	err = h.service.Submit(Submission{
		OrderID:  orderID,
		UserID:   sess.UserID,
		Ratings:  ratings,
		Feedback: payload.Feedback,
	})
	if err != nil {
		switch err {
		case ErrNotRatable:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order or order cannot be rated"})
		case ErrNoRatings, ErrInvalidValue, ErrUnknownProduct:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			log.Printf("could not submit ratings for order %d: %v", orderID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while submitting ratings"})
		}
	}

	return c.JSON(fiber.Map{"success": true, "message": "Ratings and feedback submitted successfully"})
}
