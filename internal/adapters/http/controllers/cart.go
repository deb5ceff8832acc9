package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/fastfood-express/internal/adapters/http/handlers"
	"github.com/rafaelleal24/fastfood-express/internal/adapters/http/middleware"
	"github.com/rafaelleal24/fastfood-express/internal/core/domain"
	"github.com/rafaelleal24/fastfood-express/internal/core/dto"
	"github.com/rafaelleal24/fastfood-express/internal/core/service"
	"github.com/rafaelleal24/fastfood-express/internal/core/serviceerrors"
)

type CartController struct {
	cartService *service.CartService
}

type CartLineResponse struct {
	Name      string `json:"name" example:"Zinger Burger"`
	UnitPrice int    `json:"unit_price" example:"300"`
	Quantity  int    `json:"quantity" example:"2"`
	LineTotal int    `json:"line_total" example:"600"`
}

type CartResponse struct {
	Items      []CartLineResponse `json:"items"`
	GrandTotal int                `json:"grand_total" example:"750"`
	ItemCount  int                `json:"item_count" example:"3"`
	IsEmpty    bool               `json:"is_empty" example:"false"`
}

func NewCartResponse(cart *domain.Cart) CartResponse {
	lines := cart.Aggregate()
	items := make([]CartLineResponse, len(lines))
	for i, line := range lines {
		items[i] = CartLineResponse{
			Name:      line.Name,
			UnitPrice: int(line.UnitPrice),
			Quantity:  line.Quantity,
			LineTotal: int(line.LineTotal),
		}
	}
	return CartResponse{
		Items:      items,
		GrandTotal: int(domain.GrandTotal(lines)),
		ItemCount:  cart.ItemCount(),
		IsEmpty:    cart.IsEmpty(),
	}
}

func NewCartController(cartService *service.CartService) *CartController {
	return &CartController{cartService: cartService}
}

func sessionFrom(c *gin.Context) (domain.SessionID, bool) {
	sessionID, ok := middleware.SessionID(c)
	if !ok {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("missing session"))
	}
	return sessionID, ok
}

type cartOperation func(ctx context.Context, sessionID domain.SessionID, name string) (*domain.Cart, error)

func (cc *CartController) respond(c *gin.Context, name string, op cartOperation) {
	sessionID, ok := sessionFrom(c)
	if !ok {
		return
	}
	cart, err := op(c.Request.Context(), sessionID, name)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCartResponse(cart))
}

// GetCart godoc
// @Summary     Get the session cart
// @Description Returns the aggregated cart lines in first-added order
// @Tags        cart
// @Produce     json
// @Param       X-Session-ID header   string false "Session ID"
// @Success     200          {object} CartResponse
// @Failure     500          {object} handlers.ErrorResponse
// @Router      /api/v1/cart [get]
func (cc *CartController) GetCart(c *gin.Context) {
	sessionID, ok := sessionFrom(c)
	if !ok {
		return
	}
	cart, err := cc.cartService.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCartResponse(cart))
}

// AddItem godoc
// @Summary     Add an item to the cart
// @Tags        cart
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header   string                 false "Session ID"
// @Param       request      body     dto.AddCartItemRequest true  "Menu item"
// @Success     200          {object} CartResponse
// @Failure     400          {object} handlers.ErrorResponse
// @Failure     404          {object} handlers.ErrorResponse
// @Router      /api/v1/cart/items [post]
func (cc *CartController) AddItem(c *gin.Context) {
	var request dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	cc.respond(c, request.Name, cc.cartService.AddItem)
}

// IncrementItem godoc
// @Summary     Add one more unit of a cart item
// @Tags        cart
// @Produce     json
// @Param       X-Session-ID header   string false "Session ID"
// @Param       name         path     string true  "Menu item name"
// @Success     200          {object} CartResponse
// @Failure     404          {object} handlers.ErrorResponse
// @Router      /api/v1/cart/items/{name}/increment [post]
func (cc *CartController) IncrementItem(c *gin.Context) {
	cc.respond(c, c.Param("name"), cc.cartService.IncrementItem)
}

// DecrementItem godoc
// @Summary     Remove one unit of a cart item
// @Description Removing the last unit drops the line; unknown names are ignored
// @Tags        cart
// @Produce     json
// @Param       X-Session-ID header   string false "Session ID"
// @Param       name         path     string true  "Menu item name"
// @Success     200          {object} CartResponse
// @Router      /api/v1/cart/items/{name}/decrement [post]
func (cc *CartController) DecrementItem(c *gin.Context) {
	cc.respond(c, c.Param("name"), cc.cartService.DecrementItem)
}

// RemoveItem godoc
// @Summary     Remove every unit of a cart item
// @Tags        cart
// @Produce     json
// @Param       X-Session-ID header   string false "Session ID"
// @Param       name         path     string true  "Menu item name"
// @Success     200          {object} CartResponse
// @Router      /api/v1/cart/items/{name} [delete]
func (cc *CartController) RemoveItem(c *gin.Context) {
	cc.respond(c, c.Param("name"), cc.cartService.RemoveItem)
}
