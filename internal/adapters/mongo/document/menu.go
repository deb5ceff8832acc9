package document

import (
	"time"

	"github.com/rafaelleal24/fastfood-express/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuItemDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Price     int64              `bson:"price"`
	ImageRef  string             `bson:"image_ref"`
	Position  int                `bson:"position"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (doc MenuItemDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *MenuItemDocument) ToDomain() domain.MenuItem {
	return domain.NewMenuItem(doc.Name, domain.Amount(doc.Price), doc.ImageRef)
}

func ToMenuItemDocument(item domain.MenuItem, position int) *MenuItemDocument {
	return &MenuItemDocument{
		Name:     item.Name,
		Price:    int64(item.Price),
		ImageRef: item.ImageRef,
		Position: position,
	}
}
