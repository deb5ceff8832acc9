package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaelleal24/fastfood-express/internal/core/domain"
	"github.com/rafaelleal24/fastfood-express/internal/core/logger"
	"github.com/rafaelleal24/fastfood-express/internal/core/port"
)

type CartService struct {
	cartStore   port.CachePort[domain.Cart]
	menuService *MenuService
	sessionTTL  time.Duration
}

func NewCartService(cartStore port.CachePort[domain.Cart], menuService *MenuService, sessionTTL time.Duration) *CartService {
	return &CartService{
		cartStore:   cartStore,
		menuService: menuService,
		sessionTTL:  sessionTTL,
	}
}

func (s *CartService) getCacheKey(sessionID domain.SessionID) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

// GetCart returns the session cart, or an empty one when the session has
// none yet. Reading a cart extends its session. Lines are re-resolved
// against the loaded menu, so prices always come from the current catalog.
func (s *CartService) GetCart(ctx context.Context, sessionID domain.SessionID) (*domain.Cart, error) {
	key := s.getCacheKey(sessionID)

	cart, err := s.cartStore.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if cart == nil {
		return domain.NewCart(), nil
	}

	catalog, err := s.menuService.Catalog()
	if err != nil {
		return nil, err
	}
	if cart.SyncWithCatalog(catalog) {
		logger.Info(ctx, "Cart synced with menu", map[string]any{
			"session_id": sessionID,
			"item_count": cart.ItemCount(),
		})
		// save logs its own failure and Set also refreshes the ttl
		_ = s.save(ctx, sessionID, cart)
		return cart, nil
	}

	if err := s.cartStore.Expire(ctx, key, s.sessionTTL); err != nil {
		logger.Error(ctx, "cart: refresh ttl failed", err, map[string]any{
			"session_id": sessionID,
		})
	}
	return cart, nil
}

func (s *CartService) save(ctx context.Context, sessionID domain.SessionID, cart *domain.Cart) error {
	if err := s.cartStore.Set(ctx, s.getCacheKey(sessionID), cart, s.sessionTTL); err != nil {
		logger.Error(ctx, "cart: save failed", err, map[string]any{
			"session_id": sessionID,
		})
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (s *CartService) AddItem(ctx context.Context, sessionID domain.SessionID, name string) (*domain.Cart, error) {
	item, err := s.menuService.Lookup(name)
	if err != nil {
		return nil, err
	}

	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.Add(item)
	if err := s.save(ctx, sessionID, cart); err != nil {
		return nil, err
	}

	cartOperations.WithLabelValues("add").Inc()
	logger.Debug(ctx, "Cart item added", map[string]any{
		"session_id": sessionID,
		"item":       item.Name,
		"item_count": cart.ItemCount(),
	})
	return cart, nil
}

// IncrementItem is the "+" control on a cart line.
func (s *CartService) IncrementItem(ctx context.Context, sessionID domain.SessionID, name string) (*domain.Cart, error) {
	return s.AddItem(ctx, sessionID, name)
}

// DecrementItem removes a single unit. Unknown names leave the cart as is.
func (s *CartService) DecrementItem(ctx context.Context, sessionID domain.SessionID, name string) (*domain.Cart, error) {
	return s.mutate(ctx, sessionID, "decrement", name, (*domain.Cart).RemoveOne)
}

// RemoveItem drops every unit of name. Unknown names leave the cart as is.
func (s *CartService) RemoveItem(ctx context.Context, sessionID domain.SessionID, name string) (*domain.Cart, error) {
	return s.mutate(ctx, sessionID, "remove", name, (*domain.Cart).RemoveAll)
}

func (s *CartService) mutate(
	ctx context.Context,
	sessionID domain.SessionID,
	operation string,
	name string,
	apply func(*domain.Cart, string) bool,
) (*domain.Cart, error) {
	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !apply(cart, name) {
		return cart, nil
	}

	if err := s.save(ctx, sessionID, cart); err != nil {
		return nil, err
	}

	cartOperations.WithLabelValues(operation).Inc()
	logger.Debug(ctx, "Cart item removed", map[string]any{
		"session_id": sessionID,
		"item":       name,
		"operation":  operation,
		"item_count": cart.ItemCount(),
	})
	return cart, nil
}

// EndSession forgets the session cart.
func (s *CartService) EndSession(ctx context.Context, sessionID domain.SessionID) error {
	if err := s.cartStore.Del(ctx, s.getCacheKey(sessionID)); err != nil {
		logger.Error(ctx, "cart: delete failed", err, map[string]any{
			"session_id": sessionID,
		})
		return fmt.Errorf("end session: %w", err)
	}
	logger.Info(ctx, "Session ended", map[string]any{"session_id": sessionID})
	return nil
}
