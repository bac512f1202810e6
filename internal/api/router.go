package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/bookhaven/catalog-api/docs"
	"github.com/bookhaven/catalog-api/internal/api/handler"
	"github.com/bookhaven/catalog-api/internal/api/middleware"
	"github.com/bookhaven/catalog-api/internal/core/ports"
)

// Dependencies carries everything the router needs. Throttle and Redis
// are nil when the login limiter is disabled.
type Dependencies struct {
	Catalog   ports.CatalogService
	Reviews   ports.ReviewService
	Users     ports.UserService
	Throttle  handler.LoginThrottle
	Store     handler.CatalogSizer
	Redis     *redis.Client
	JWTSecret string
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("bookstore"))

	// --- Handlers ---
	bookHandler := handler.NewBookHandler(deps.Catalog)
	reviewHandler := handler.NewReviewHandler(deps.Reviews)
	authHandler := handler.NewAuthHandler(deps.Users, deps.Throttle, deps.Log)
	userHandler := handler.NewUserHandler(deps.Users)
	authMiddleware := middleware.Auth(deps.JWTSecret)

	// --- Catalog routes ---
	e.GET("/books", bookHandler.List)
	e.GET("/books/:isbn", bookHandler.GetByISBN)
	e.GET("/books/author/:author", bookHandler.GetByAuthor)
	e.GET("/books/title/:title", bookHandler.GetByTitle)

	// --- Review routes ---
	e.GET("/books/reviews/:isbn", bookHandler.GetReviews)
	e.POST("/books/reviews/:isbn", reviewHandler.Submit)
	e.DELETE("/books/reviews/:isbn/:username", reviewHandler.Delete)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/users/me", userHandler.Me, authMiddleware)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Store, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are optional dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
