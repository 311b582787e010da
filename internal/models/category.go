package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name      string              `bson:"name" json:"name"`
	Slug      string              `bson:"slug" json:"slug"`
	Parent    *primitive.ObjectID `bson:"parent,omitempty" json:"parent,omitempty"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
}
