package order

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler serves the back-office order management endpoints. Routes
// are registered behind the admin JWT middleware.
type AdminHandler struct {
	service *Service
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

type dateUpdateRequest struct {
	OrderDate string `json:"order_date"`
}

func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/orders", h.listOrders)
	app.Delete("/orders/:id/salesreport", h.removeFromSalesReport)
	app.Put("/orders/:id/status", h.updateStatus)
	app.Put("/orders/:id/cancel", h.cancelOrder)
	app.Put("/orders/:id", h.updateOrderDate)
}

func (h *AdminHandler) listOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListInSalesReport()
	if err != nil {
		log.Printf("could not fetch orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while fetching orders"})
	}
	return c.JSON(orders)
}

func (h *AdminHandler) removeFromSalesReport(c *fiber.Ctx) error {
	orderID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order id"})
	}

	if err := h.service.RemoveFromSalesReport(orderID); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		log.Printf("could not remove order %d from sales report: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error removing order from sales report"})
	}
	return c.JSON(fiber.Map{"message": "Order removed from sales report successfully"})
}

func (h *AdminHandler) updateStatus(c *fiber.Ctx) error {
	orderID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order id"})
	}

	payload := new(statusUpdateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	status, ok := ParseStatus(payload.Status)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown status"})
	}

	if err := h.service.Transition(orderID, status); err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		case ErrInvalidTransition:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status transition"})
		default:
			log.Printf("could not update status of order %d: %v", orderID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error updating order status"})
		}
	}
	return c.JSON(fiber.Map{"message": "Order status updated successfully", "status": string(status)})
}

func (h *AdminHandler) cancelOrder(c *fiber.Ctx) error {
	orderID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order id"})
	}

	if err := h.service.Transition(orderID, StatusCancelled); err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		case ErrInvalidTransition:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Order cannot be cancelled"})
		default:
			log.Printf("could not cancel order %d: %v", orderID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error cancelling order"})
		}
	}
	return c.JSON(fiber.Map{"message": "Order cancelled successfully"})
}

func (h *AdminHandler) updateOrderDate(c *fiber.Ctx) error {
	orderID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order id"})
	}

	payload := new(dateUpdateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if payload.OrderDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "order_date is required"})
	}

	if err := h.service.SetOrderDate(orderID, payload.OrderDate); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		log.Printf("could not update date of order %d: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error updating order date"})
	}
	return c.JSON(fiber.Map{"message": "Order date updated successfully"})
}
