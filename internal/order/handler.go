package order

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/nars-shop/nars-backend/internal/cart"
	"github.com/nars-shop/nars-backend/internal/session"
)

// Handler serves the storefront order endpoints. All of them sit behind
// session.Require, so a session is always attached by the time they run.
type Handler struct {
	service     *Service
	cartService *cart.Service
}

type placeOrderRequest struct {
	BillingInfo   BillingInfo `json:"billingInfo"`
	PaymentMethod string      `json:"paymentMethod"`
	CartItems     []LineItem  `json:"cartItems"`
	Subtotal      float64     `json:"subtotal"`
	Delivery      float64     `json:"delivery"`
	Total         float64     `json:"total"`
}

func NewHandler(service *Service, cartService *cart.Service) *Handler {
	return &Handler{service: service, cartService: cartService}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/place-order", h.placeOrder)
	app.Get("/order/:orderId", h.getOrder)
	app.Get("/order-tracking/:orderId", h.getTracking)
	app.Get("/order-history", h.getHistory)
	app.Get("/all-orders", h.getAllOrders)
	app.Post("/cancel-order/:orderId", h.cancelOrder)
}

func (h *Handler) placeOrder(c *fiber.Ctx) error {
	sess, _ := session.FromCtx(c)

	payload := new(placeOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if len(payload.CartItems) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cart is empty"})
	}
	if payload.BillingInfo.FullName == "" || payload.BillingInfo.PhoneNumber == "" || payload.BillingInfo.Address == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required billing fields"})
	}

	created, err := h.service.Place(Order{
		UserID:        sess.UserID,
		Billing:       payload.BillingInfo,
		PaymentMethod: payload.PaymentMethod,
		Subtotal:      payload.Subtotal,
		DeliveryFee:   payload.Delivery,
		Total:         payload.Total,
		Items:         payload.CartItems,
	})
	if err != nil {
		if err == ErrEmptyCart {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cart is empty"})
		}
		log.Printf("could not place order for user %d: %v", sess.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while placing the order"})
	}

	// the order now owns the items; an error here only leaves a stale cart
	if _, err := h.cartService.Clear(c.Context(), sess); err != nil {
		log.Printf("warning: could not clear cart for session %s: %v", sess.ID, err)
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"orderId":        created.ID,
		"trackingNumber": created.TrackingNumber,
	})
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	sess, _ := session.FromCtx(c)
	orderID, err := strconv.Atoi(c.Params("orderId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order id"})
	}

	ord, err := h.service.GetDetail(orderID, sess.UserID)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		log.Printf("could not fetch order %d: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while fetching order details"})
	}
	return c.JSON(ord)
}

func (h *Handler) getTracking(c *fiber.Ctx) error {
	sess, _ := session.FromCtx(c)
	orderID, err := strconv.Atoi(c.Params("orderId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order id"})
	}

	tracking, err := h.service.GetTracking(orderID, sess.UserID)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		log.Printf("could not fetch tracking for order %d: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while fetching order tracking"})
	}
	return c.JSON(tracking)
}

func (h *Handler) getHistory(c *fiber.Ctx) error {
	sess, _ := session.FromCtx(c)

	entries, err := h.service.History(sess.UserID)
	if err != nil {
		log.Printf("could not fetch order history for user %d: %v", sess.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while fetching order history"})
	}
	return c.JSON(entries)
}

func (h *Handler) getAllOrders(c *fiber.Ctx) error {
	sess, _ := session.FromCtx(c)

	orders, err := h.service.ListByUser(sess.UserID)
	if err != nil {
		log.Printf("could not fetch orders for user %d: %v", sess.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while fetching orders"})
	}
	return c.JSON(orders)
}

func (h *Handler) cancelOrder(c *fiber.Ctx) error {
	sess, _ := session.FromCtx(c)
	orderID, err := strconv.Atoi(c.Params("orderId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order id"})
	}

	if err := h.service.Cancel(orderID, sess.UserID); err != nil {
		if err == ErrNotCancelable {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Order not found or cannot be cancelled"})
		}
		log.Printf("could not cancel order %d: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while cancelling the order"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Order cancelled successfully"})
}
