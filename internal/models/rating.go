package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating keeps productId as a plain string; historical documents were written
// that way and the aggregation layer keys by hex string accordingly.
type Rating struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID string             `bson:"productId" json:"productId"`
	UserID    string             `bson:"userId" json:"userId"`
	Rating    float64            `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment,omitempty" json:"comment,omitempty"`
	Approved  bool               `bson:"approved" json:"approved"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
