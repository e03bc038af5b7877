package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/joho/godotenv"

	"github.com/DevaseeshKumar/Store/internal/cart"
	"github.com/DevaseeshKumar/Store/internal/category"
	"github.com/DevaseeshKumar/Store/internal/config"
	"github.com/DevaseeshKumar/Store/internal/order"
	"github.com/DevaseeshKumar/Store/internal/product"
	"github.com/DevaseeshKumar/Store/internal/storage"
	"github.com/DevaseeshKumar/Store/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLog)

	db, err := storage.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := storage.RunMigrations(db, cfg.MigrationsPath); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	userService := user.NewService(user.NewPostgresRepository(db))
	userHandler := user.NewHandler(userService, cfg.JWTSecret)

	productService := product.NewService(product.NewPostgresRepository(db))
	productHandler := product.NewHandler(productService)

	categoryHandler := category.NewHandler(category.NewService(category.NewPostgresRepository(db)))

	cartHandler := cart.NewHandler(cart.NewService(cart.NewPostgresRepository(db), productService))
	orderHandler := order.NewHandler(order.NewService(order.NewPostgresRepository(db)))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Store API is running")
	})

	// routes registered before the JWT middleware stay public
	userHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	userHandler.RegisterProtectedRoutes(app)
	cartHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)

	admin := app.Group("", user.RequireAdmin)
	productHandler.RegisterAdminRoutes(admin)
	orderHandler.RegisterAdminRoutes(admin)

	log.Printf("starting server on %s", cfg.Addr)
	log.Fatal(app.Listen(cfg.Addr))
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	fmt.Printf("%s %s -> %d (%v)\n", c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
	return err
}
