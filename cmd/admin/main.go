package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/joho/godotenv"

	"github.com/nars-shop/nars-backend/internal/admin"
	"github.com/nars-shop/nars-backend/internal/config"
	"github.com/nars-shop/nars-backend/internal/database"
	"github.com/nars-shop/nars-backend/internal/order"
	"github.com/nars-shop/nars-backend/internal/product"
	"github.com/nars-shop/nars-backend/internal/report"
)

// main wires the back-office service. Signin is public; every other route
// requires the bearer token issued there.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer db.Close()
	if err := database.EnsureSchema(db); err != nil {
		log.Fatalf("could not ensure schema: %v", err)
	}

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	adminHandler := admin.NewHandler(admin.NewService(admin.NewPostgresRepository(db), cfg.AdminPINHash), cfg.JWTSecret)
	adminHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	adminHandler.RegisterProtectedRoutes(app)

	productHandler := product.NewAdminHandler(product.NewService(product.NewPostgresRepository(db)))
	productHandler.RegisterProtectedRoutes(app)

	orderHandler := order.NewAdminHandler(order.NewService(order.NewPostgresRepository(db)))
	orderHandler.RegisterProtectedRoutes(app)

	reportHandler := report.NewHandler(report.NewService(report.NewPostgresRepository(db)))
	reportHandler.RegisterProtectedRoutes(app)

	log.Printf("admin API listening on %s", cfg.AdminAddr)
	if err := app.Listen(cfg.AdminAddr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
