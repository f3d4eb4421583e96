package report

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// Handler serves the admin dashboard aggregates, registered behind the
// admin JWT middleware.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/sales-report", h.salesReport)
	app.Get("/sales-data", h.salesData)
	app.Get("/total-products", h.totalProducts)
	app.Get("/top-products", h.topProducts)
	app.Get("/rated-products-count", h.ratedProductsCount)
}

func (h *Handler) salesReport(c *fiber.Ctx) error {
	entries, err := h.service.LoginEntries()
	if err != nil {
		log.Printf("could not fetch sales report: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while fetching sales report data"})
	}
	return c.JSON(entries)
}

func (h *Handler) salesData(c *fiber.Ctx) error {
	data, err := h.service.SalesData(TimeFrame(c.Query("timeFrame")))
	if err != nil {
		log.Printf("could not fetch sales data: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching sales data"})
	}
	return c.JSON(data)
}

func (h *Handler) totalProducts(c *fiber.Ctx) error {
	count, err := h.service.TotalProducts()
	if err != nil {
		log.Printf("could not fetch total products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching total products"})
	}
	return c.JSON(fiber.Map{"totalProducts": count})
}

func (h *Handler) topProducts(c *fiber.Ctx) error {
	products, err := h.service.TopProducts()
	if err != nil {
		log.Printf("could not fetch top products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching top products"})
	}
	return c.JSON(products)
}

func (h *Handler) ratedProductsCount(c *fiber.Ctx) error {
	count, err := h.service.RatedProductsCount(TimeFrame(c.Query("timeFrame")))
	if err != nil {
		log.Printf("could not fetch rated products count: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching rated products count"})
	}
	return c.JSON(fiber.Map{"ratedProductsCount": count})
}
