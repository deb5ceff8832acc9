package port

import (
	"context"

	"github.com/rafaelleal24/fastfood-express/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type MenuPort interface {
	// Seed upserts items by name, remembering their position in the list.
	Seed(ctx context.Context, items []domain.MenuItem) error
	GetAll(ctx context.Context) ([]domain.MenuItem, error)
}
