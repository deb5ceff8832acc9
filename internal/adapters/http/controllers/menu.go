package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/fastfood-express/internal/adapters/http/handlers"
	"github.com/rafaelleal24/fastfood-express/internal/core/domain"
	"github.com/rafaelleal24/fastfood-express/internal/core/service"
)

type MenuController struct {
	menuService *service.MenuService
}

type MenuItemResponse struct {
	Name       string `json:"name" example:"Zinger Burger"`
	Price      int    `json:"price" example:"300"`
	PriceLabel string `json:"price_label" example:"Rs. 300"`
	Image      string `json:"image" example:"images/zinger-burger.jpg"`
}

func NewMenuItemResponse(item domain.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		Name:       item.Name,
		Price:      int(item.Price),
		PriceLabel: item.Price.String(),
		Image:      item.ImageRef,
	}
}

func NewMenuController(menuService *service.MenuService) *MenuController {
	return &MenuController{menuService: menuService}
}

// GetMenu godoc
// @Summary     List the menu
// @Description Returns every purchasable item in display order
// @Tags        menu
// @Produce     json
// @Success     200 {array}  MenuItemResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/menu [get]
func (m *MenuController) GetMenu(c *gin.Context) {
	items, err := m.menuService.GetAll()
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	response := make([]MenuItemResponse, len(items))
	for i, item := range items {
		response[i] = NewMenuItemResponse(item)
	}
	c.JSON(http.StatusOK, response)
}
