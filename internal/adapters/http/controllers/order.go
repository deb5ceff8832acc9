package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/fastfood-express/internal/adapters/http/handlers"
	"github.com/rafaelleal24/fastfood-express/internal/core/domain"
	"github.com/rafaelleal24/fastfood-express/internal/core/dto"
	"github.com/rafaelleal24/fastfood-express/internal/core/service"
	"github.com/rafaelleal24/fastfood-express/internal/core/serviceerrors"
)

type OrderController struct {
	orderService *service.OrderService
}

type OrderResponse struct {
	Lines       []string `json:"lines"`
	Message     string   `json:"message"`
	EncodedText string   `json:"encoded_text"`
	Link        string   `json:"link" example:"https://wa.me/923133850871?text=Order%20Summary:"`
	GrandTotal  int      `json:"grand_total" example:"750"`
}

func NewOrderResponse(message *domain.OrderMessage) OrderResponse {
	return OrderResponse{
		Lines:       message.Lines,
		Message:     message.Text,
		EncodedText: message.EncodedText,
		Link:        message.Link,
		GrandTotal:  int(message.GrandTotal),
	}
}

func NewOrderController(orderService *service.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// SubmitOrder godoc
// @Summary     Compose the order message
// @Description Validates the contact details against the session cart and returns the chat link.
// @Description With redirect=true the response is a 303 to the link instead.
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       X-Session-ID    header   string                 false "Session ID"
// @Param       Idempotency-Key header   string                 false "Idempotency key"
// @Param       redirect        query    bool                   false "Redirect to the link"
// @Param       request         body     dto.SubmitOrderRequest true  "Contact details"
// @Success     200             {object} OrderResponse
// @Success     303
// @Failure     400             {object} handlers.ErrorResponse
// @Failure     409             {object} handlers.ErrorResponse
// @Failure     422             {object} handlers.ErrorResponse
// @Failure     429             {object} handlers.ErrorResponse
// @Failure     500             {object} handlers.ErrorResponse
// @Router      /api/v1/orders [post]
func (oc *OrderController) SubmitOrder(c *gin.Context) {
	sessionID, ok := sessionFrom(c)
	if !ok {
		return
	}

	var request dto.SubmitOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	idempotencyKey := c.GetHeader("Idempotency-Key")
	message, err := oc.orderService.SubmitOrder(c.Request.Context(), sessionID, idempotencyKey, &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	if c.Query("redirect") == "true" {
		c.Redirect(http.StatusSeeOther, message.Link)
		return
	}
	c.JSON(http.StatusOK, NewOrderResponse(message))
}
