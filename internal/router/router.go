package router

import (
	"net/http"
	"time"

	"combolunch/internal/menu"
	"combolunch/internal/middleware"
	"combolunch/internal/order"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps is everything the HTTP layer needs.
type Deps struct {
	Menu        *menu.Service
	Orders      *order.Service
	Tokens      TokenIssuer
	AdminToken  string
	CORSOrigins []string
}

// TokenIssuer signs new session tokens and checks incoming ones.
type TokenIssuer interface {
	order.TokenIssuer
	middleware.SessionValidator
}

func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	if len(deps.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     deps.CORSOrigins,
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"catalog": deps.Menu.Status(),
		})
	})

	menuHandler := menu.NewHandler(deps.Menu)
	orderHandler := order.NewHandler(deps.Orders, deps.Tokens)

	// ───────────────────────── PUBLIC MENU ─────────────────────────
	r.GET("/menu", menuHandler.List)
	r.GET("/menu/:category", menuHandler.Get)

	// ───────────────────────── ORDER SESSIONS ─────────────────────────
	r.POST("/sessions", orderHandler.CreateSession)

	session := r.Group("/session")
	session.Use(middleware.SessionAuth(deps.Tokens))
	{
		session.GET("/menu/:category", orderHandler.Section)
		session.POST("/filters", orderHandler.ToggleFilter)
		session.POST("/selection", orderHandler.SelectDish)
		session.GET("/order", orderHandler.Summary)
		session.POST("/submit", orderHandler.Submit)
		session.GET("/orders", orderHandler.ListOrders)
	}

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdminToken(deps.AdminToken))
	{
		admin.GET("/catalog", menuHandler.Status)
		admin.POST("/catalog/reload", menuHandler.Reload)
	}

	return r
}
