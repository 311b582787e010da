package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Slug          string             `bson:"slug" json:"slug"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	MRP           float64            `bson:"mrp" json:"mrp"`
	Price         float64            `bson:"price" json:"price"`
	Images        []string           `bson:"images,omitempty" json:"images"`
	Category      FlexString         `bson:"category,omitempty" json:"category,omitempty"`
	Categories    StringList         `bson:"categories,omitempty" json:"categories,omitempty"`
	SKU           string             `bson:"sku,omitempty" json:"sku,omitempty"`
	InStock       bool               `bson:"inStock" json:"inStock"`
	StockQuantity int                `bson:"stockQuantity" json:"stockQuantity"`
	FastDelivery  bool               `bson:"fastDelivery" json:"fastDelivery"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`

	// Derived fields, computed per request and never written back.
	Discount      *int     `bson:"discount,omitempty" json:"discount,omitempty"`
	Savings       *float64 `bson:"savings,omitempty" json:"savings,omitempty"`
	Label         string   `bson:"-" json:"label,omitempty"`
	LabelType     string   `bson:"-" json:"labelType,omitempty"`
	RatingCount   int      `bson:"-" json:"ratingCount"`
	AverageRating float64  `bson:"-" json:"averageRating"`
}
