package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/nars-shop/nars-backend/internal/cart"
	"github.com/nars-shop/nars-backend/internal/config"
	"github.com/nars-shop/nars-backend/internal/database"
	"github.com/nars-shop/nars-backend/internal/order"
	"github.com/nars-shop/nars-backend/internal/product"
	"github.com/nars-shop/nars-backend/internal/rating"
	"github.com/nars-shop/nars-backend/internal/session"
	"github.com/nars-shop/nars-backend/internal/user"
)

// main wires the storefront service: Postgres for persisted state, Redis
// for the cookie-keyed sessions that hold the in-progress cart.
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

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	sessions := session.NewRedisStore(rdb)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
	}))
	app.Use(session.Load(sessions))

	userHandler := user.NewHandler(user.NewService(user.NewPostgresRepository(db)), sessions)
	userHandler.RegisterPublicRoutes(app)

	productHandler := product.NewHandler(product.NewService(product.NewPostgresRepository(db)))
	productHandler.RegisterPublicRoutes(app)

	cartService := cart.NewService(sessions)
	cartHandler := cart.NewHandler(cartService, sessions)
	cartHandler.RegisterPublicRoutes(app)

	// everything past this point needs an authenticated session
	app.Use(session.Require())

	orderHandler := order.NewHandler(order.NewService(order.NewPostgresRepository(db)), cartService)
	orderHandler.RegisterProtectedRoutes(app)

	ratingHandler := rating.NewHandler(rating.NewService(rating.NewPostgresRepository(db)))
	ratingHandler.RegisterProtectedRoutes(app)

	log.Printf("shop API listening on %s", cfg.ShopAddr)
	if err := app.Listen(cfg.ShopAddr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
