package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaelleal24/fastfood-express/internal/adapters/mongo/document"
	"github.com/rafaelleal24/fastfood-express/internal/core/domain"
	"github.com/rafaelleal24/fastfood-express/internal/core/logger"
	"github.com/rafaelleal24/fastfood-express/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const menuCollection = "menu_items"

type MenuRepository struct {
	*BaseRepository[document.MenuItemDocument]
}

func NewMenuRepository(db *mongo.Database) port.MenuPort {
	return &MenuRepository{
		BaseRepository: NewBaseRepository[document.MenuItemDocument](db, menuCollection),
	}
}

// Seed makes the collection mirror items: entries are upserted by name with
// their list position, and names no longer configured are removed.
func (r *MenuRepository) Seed(ctx context.Context, items []domain.MenuItem) error {
	err := r.EnsureIndexes(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("menu index: %w", err)
	}

	now := time.Now()
	names := make([]string, 0, len(items))
	models := make([]mongo.WriteModel, 0, len(items))
	for i, item := range items {
		doc := document.ToMenuItemDocument(item, i)
		names = append(names, doc.Name)
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"name": doc.Name}).
			SetUpdate(bson.M{
				"$set": bson.M{
					"price":      doc.Price,
					"image_ref":  doc.ImageRef,
					"position":   doc.Position,
					"updated_at": now,
				},
				"$setOnInsert": bson.M{"created_at": now},
			}).
			SetUpsert(true))
	}

	if err := r.BulkWrite(ctx, models); err != nil {
		return fmt.Errorf("menu upsert: %w", err)
	}

	removed, err := r.DeleteMany(ctx, bson.M{"name": bson.M{"$nin": names}})
	if err != nil {
		return fmt.Errorf("menu prune: %w", err)
	}
	if removed > 0 {
		logger.Info(ctx, "Stale menu items removed", map[string]any{"removed": removed})
	}

	return nil
}

func (r *MenuRepository) GetAll(ctx context.Context) ([]domain.MenuItem, error) {
	docs, err := r.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
	if err != nil {
		return nil, err
	}

	items := make([]domain.MenuItem, len(docs))
	for i, doc := range docs {
		items[i] = doc.ToDomain()
	}

	return items, nil
}
