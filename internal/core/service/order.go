package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rafaelleal24/fastfood-express/internal/core/domain"
	"github.com/rafaelleal24/fastfood-express/internal/core/dto"
	"github.com/rafaelleal24/fastfood-express/internal/core/logger"
	"github.com/rafaelleal24/fastfood-express/internal/core/port"
	"github.com/rafaelleal24/fastfood-express/internal/core/serviceerrors"
)

type OrderService struct {
	cartService *CartService
	composer    *domain.OrderComposer
	broker      port.BrokerPort
	idempotency *IdempotencyService[domain.OrderMessage]
	now         func() time.Time
}

func NewOrderService(
	cartService *CartService,
	composer *domain.OrderComposer,
	broker port.BrokerPort,
	idempotency *IdempotencyService[domain.OrderMessage],
) *OrderService {
	return &OrderService{
		cartService: cartService,
		composer:    composer,
		broker:      broker,
		idempotency: idempotency,
		now:         time.Now,
	}
}

type orderPayload struct {
	Request domain.OrderRequest     `json:"request"`
	Lines   []domain.AggregatedLine `json:"lines"`
}

// SubmitOrder composes the order message for the session cart and hands the
// link off to the broker. The cart is left untouched.
func (s *OrderService) SubmitOrder(ctx context.Context, sessionID domain.SessionID, idempotencyKey string, request *dto.SubmitOrderRequest) (*domain.OrderMessage, error) {
	cart, err := s.cartService.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	lines := cart.Aggregate()

	if idempotencyKey == "" {
		return s.processOrder(ctx, sessionID, request, lines)
	}

	payloadHash := hashPayload(orderPayload{Request: request.ToDomain().Trimmed(), Lines: lines})
	key := fmt.Sprintf("idempotency:order:%s:%s", sessionID, idempotencyKey)

	return s.idempotency.Execute(ctx, key, payloadHash, func(ctx context.Context) (*domain.OrderMessage, error) {
		return s.processOrder(ctx, sessionID, request, lines)
	})
}

func (s *OrderService) processOrder(ctx context.Context, sessionID domain.SessionID, request *dto.SubmitOrderRequest, lines []domain.AggregatedLine) (*domain.OrderMessage, error) {
	orderRequest := request.ToDomain()

	message, err := s.composer.ValidateAndCompose(orderRequest, lines, domain.GrandTotal(lines))
	if err != nil {
		ordersComposed.WithLabelValues("rejected").Inc()

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			logger.Info(ctx, "Order rejected", map[string]any{
				"session_id": sessionID,
				"code":       validationErr.Code,
			})
			return nil, serviceerrors.NewValidationError(string(validationErr.Code), validationErr.Error())
		}
		return nil, err
	}

	ordersComposed.WithLabelValues("composed").Inc()
	s.dispatch(ctx, domain.NewOrderLinkComposedEvent(sessionID, orderRequest, message, s.now()))

	logger.Info(ctx, "Order composed", map[string]any{
		"session_id":  sessionID,
		"lines":       len(lines),
		"grand_total": message.GrandTotal,
	})
	return message, nil
}

// dispatch never fails the order: the link is returned to the caller either way.
func (s *OrderService) dispatch(ctx context.Context, event *domain.OrderLinkComposedEvent) {
	if err := s.broker.Publish(ctx, event); err != nil {
		logger.Error(ctx, "broker: publish order link failed", err, map[string]any{
			"session_id": event.SessionID,
			"event":      event.GetName(),
		})
	}
}
