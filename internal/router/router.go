package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"kissthecheff/internal/auth"
	"kissthecheff/internal/menu"
	"kissthecheff/internal/middleware"
	"kissthecheff/internal/nav"
	"kissthecheff/internal/order"
	"kissthecheff/internal/payment"
)

type Handlers struct {
	Auth    *auth.Handler
	Menu    *menu.Handler
	Order   *order.Handler
	Nav     *nav.Handler
	Payment *payment.Handler
}

func New(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}

	// ───────────────────────── MENU ─────────────────────────
	// Reads are open; mutations are manager-only.
	r.GET("/menu", h.Menu.List)
	r.GET("/menu/stats", h.Menu.Stats)

	menuAdmin := r.Group("/menu")
	menuAdmin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleManager),
	)
	{
		menuAdmin.POST("", h.Menu.Create)
		menuAdmin.PUT("/:id", h.Menu.Update)
		menuAdmin.DELETE("/:id", h.Menu.Delete)
	}

	// ───────────────────────── ORDER ─────────────────────────
	orderGroup := r.Group("/order")
	{
		orderGroup.GET("", h.Order.Get)
		orderGroup.DELETE("", h.Order.Clear)
		orderGroup.POST("/items/:id/increment", h.Order.Increment)
		orderGroup.POST("/items/:id/decrement", h.Order.Decrement)
		orderGroup.DELETE("/items/:id", h.Order.Remove)
	}

	// ───────────────────────── SESSION ─────────────────────────
	r.GET("/session", h.Nav.Get)
	r.POST("/session/navigate", h.Nav.Navigate)

	// ───────────────────────── PAYMENT ─────────────────────────
	paymentGroup := r.Group("/payment")
	{
		paymentGroup.GET("", h.Payment.Get)
		paymentGroup.POST("/method", h.Payment.SelectMethod)
		paymentGroup.POST("/confirm", h.Payment.Confirm)
	}

	return r
}
