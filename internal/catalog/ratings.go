package catalog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quickfyndcom-wq/quickfynd.com-sub000/internal/models"
)

// RatingSummary is the per-product fold of its approved ratings.
type RatingSummary struct {
	Count   int
	Average float64
}

// SummarizeRatings bulk-fetches the approved ratings for the given product ids
// in a single query and folds them into count/average keyed by the hex string
// id. Rating documents store productId as a plain string, so both sides of the
// lookup use the hex form. Products without approved ratings simply have no
// entry; the zero RatingSummary is the correct answer for them.
func SummarizeRatings(ctx context.Context, db *mongo.Database, ids []primitive.ObjectID) (map[string]RatingSummary, error) {
	summaries := make(map[string]RatingSummary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}

	hexIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		hexIDs = append(hexIDs, id.Hex())
	}

	cursor, err := db.Collection("ratings").Find(ctx, bson.M{
		"productId": bson.M{"$in": hexIDs},
		"approved":  true,
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ratings []models.Rating
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, err
	}

	return foldRatings(ratings), nil
}

func foldRatings(ratings []models.Rating) map[string]RatingSummary {
	totals := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range ratings {
		totals[r.ProductID] += r.Rating
		counts[r.ProductID]++
	}

	summaries := make(map[string]RatingSummary, len(counts))
	for id, count := range counts {
		summaries[id] = RatingSummary{
			Count:   count,
			Average: totals[id] / float64(count),
		}
	}
	return summaries
}
