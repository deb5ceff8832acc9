package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rafaelleal24/fastfood-express/internal/adapters/config"
	"github.com/rafaelleal24/fastfood-express/internal/adapters/http/controllers"
	"github.com/rafaelleal24/fastfood-express/internal/adapters/http/middleware"
	"github.com/swaggo/swag"
)

type Router struct {
	healthController  *controllers.HealthController
	menuController    *controllers.MenuController
	cartController    *controllers.CartController
	orderController   *controllers.OrderController
	sessionController *controllers.SessionController
	rateLimiter       middleware.RateLimiter
	httpConfig        config.HTTPConfig
	sessionConfig     config.SessionConfig
}

func NewRouter(
	healthController *controllers.HealthController,
	menuController *controllers.MenuController,
	cartController *controllers.CartController,
	orderController *controllers.OrderController,
	sessionController *controllers.SessionController,
	rateLimiter middleware.RateLimiter,
	httpConfig config.HTTPConfig,
	sessionConfig config.SessionConfig,
) *Router {
	return &Router{
		healthController:  healthController,
		menuController:    menuController,
		cartController:    cartController,
		orderController:   orderController,
		sessionController: sessionController,
		rateLimiter:       rateLimiter,
		httpConfig:        httpConfig,
		sessionConfig:     sessionConfig,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	rl := r.rateLimiter

	router.Use(cors.New(cors.Config{
		AllowOrigins:     r.httpConfig.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.SessionHeader, "Idempotency-Key"},
		ExposeHeaders:    []string{"Content-Length", middleware.SessionHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.Metrics())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/doc.json", serveAPIDoc)

	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.LogRequest())
		v1Group.GET("/health", r.healthController.Health)
		v1Group.GET("/menu", r.menuController.GetMenu)

		sessionGroup := v1Group.Group("")
		sessionGroup.Use(
			middleware.RateLimit(rl, "session", r.httpConfig.RateLimit, r.httpConfig.RateLimitWindow),
			middleware.Session(r.sessionConfig),
		)

		sessionGroup.GET("/cart", r.cartController.GetCart)
		sessionGroup.POST("/cart/items", r.cartController.AddItem)
		sessionGroup.POST("/cart/items/:name/increment", r.cartController.IncrementItem)
		sessionGroup.POST("/cart/items/:name/decrement", r.cartController.DecrementItem)
		sessionGroup.DELETE("/cart/items/:name", r.cartController.RemoveItem)

		sessionGroup.POST("/orders", middleware.RateLimit(rl, "orders", 15, 1*time.Minute), r.orderController.SubmitOrder)
		sessionGroup.DELETE("/session", r.sessionController.EndSession)
	}
}

func serveAPIDoc(c *gin.Context) {
	doc, err := swag.ReadDoc()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "api documentation not registered"})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}

// Engine builds the gin engine with every route registered.
func (r *Router) Engine() *gin.Engine {
	engine := gin.Default()
	r.SetupRoutes(engine)
	return engine
}

func (r *Router) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", r.httpConfig.BindInterface, r.httpConfig.Port),
		Handler:           r.Engine(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
