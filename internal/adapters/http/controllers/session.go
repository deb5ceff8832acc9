package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/fastfood-express/internal/adapters/config"
	"github.com/rafaelleal24/fastfood-express/internal/adapters/http/handlers"
	"github.com/rafaelleal24/fastfood-express/internal/adapters/http/middleware"
	"github.com/rafaelleal24/fastfood-express/internal/core/service"
)

type SessionController struct {
	cartService *service.CartService
	config      config.SessionConfig
}

func NewSessionController(cartService *service.CartService, cfg config.SessionConfig) *SessionController {
	return &SessionController{cartService: cartService, config: cfg}
}

// EndSession godoc
// @Summary     End the session
// @Description Drops the session cart and clears the session cookie
// @Tags        session
// @Param       X-Session-ID header string false "Session ID"
// @Success     204
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/session [delete]
func (sc *SessionController) EndSession(c *gin.Context) {
	sessionID, ok := sessionFrom(c)
	if !ok {
		return
	}
	if err := sc.cartService.EndSession(c.Request.Context(), sessionID); err != nil {
		handlers.HandleError(c, err)
		return
	}

	middleware.SetSessionCookie(c, sc.config, "")
	c.Header(middleware.SessionHeader, "")
	c.Status(http.StatusNoContent)
}
