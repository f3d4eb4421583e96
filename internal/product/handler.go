package product

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Handler serves the public storefront catalog reads.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/products", h.listProducts)
	app.Get("/products/category/:categoryName", h.listByCategory)
	app.Get("/limited-items", h.listLimited)
	app.Get("/categories", h.listCategories)
}

func (h *Handler) listProducts(c *fiber.Ctx) error {
	products, err := h.service.List()
	if err != nil {
		log.Printf("could not fetch products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while fetching products"})
	}
	return c.JSON(products)
}

func (h *Handler) listByCategory(c *fiber.Ctx) error {
	products, err := h.service.ListByCategory(c.Params("categoryName"))
	if err != nil {
		log.Printf("could not fetch products by category: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while fetching products by category"})
	}
	return c.JSON(products)
}

func (h *Handler) listLimited(c *fiber.Ctx) error {
	products, err := h.service.ListLimited()
	if err != nil {
		log.Printf("could not fetch limited items: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while fetching limited items"})
	}
	return c.JSON(products)
}

func (h *Handler) listCategories(c *fiber.Ctx) error {
	categories, err := h.service.Categories()
	if err != nil {
		log.Printf("could not fetch categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An error occurred while fetching categories"})
	}
	return c.JSON(categories)
}

// AdminHandler serves the back-office catalog CRUD.
type AdminHandler struct {
	service *Service
}

func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/products", h.listPage)
	app.Post("/products", h.createProduct)
	app.Put("/products/:id", h.updateProduct)
	app.Delete("/products/:id", h.deleteProduct)
}

func (h *AdminHandler) listPage(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	result, err := h.service.ListPage(page, limit)
	if err != nil {
		log.Printf("could not fetch product page: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching products"})
	}
	return c.JSON(result)
}

func (h *AdminHandler) createProduct(c *fiber.Ctx) error {
	payload := new(Product)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if payload.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	created, err := h.service.Create(*payload)
	if err != nil {
		log.Printf("could not add product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error adding product"})
	}
	return c.JSON(fiber.Map{
		"message":        "Product added successfully",
		"id":             created.ID,
		"reference_code": created.ReferenceCode,
	})
}

func (h *AdminHandler) updateProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	payload := new(Product)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.service.Update(id, *payload); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		log.Printf("could not update product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error updating product"})
	}
	return c.JSON(fiber.Map{"message": "Product updated successfully"})
}

func (h *AdminHandler) deleteProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	if err := h.service.Delete(id); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		log.Printf("could not delete product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error deleting product"})
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
