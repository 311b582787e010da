package catalog

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/quickfyndcom-wq/quickfynd.com-sub000/internal/models"
)

type DealsFeed struct {
	Products    []models.Product `json:"products"`
	TotalDeals  int64            `json:"totalDeals"`
	HasMore     bool             `json:"hasMore"`
	MinDiscount int64            `json:"minDiscount"`
}

// ListDeals returns the discount-ranked feed and whether it was served from
// cache. The discount is computed inside the pipeline so the minDiscount
// threshold prunes rows before the skip/limit window, and a twin pipeline
// ending in $count produces the qualifying total for pagination metadata. Both
// pipelines are built from dealsMatchStages so their filtering criteria cannot
// drift apart.
func (s *Service) ListDeals(ctx context.Context, params DealsParams) (DealsFeed, bool, error) {
	key := params.CacheKey()
	if cached, ok := s.cache.Get(key); ok {
		if result, ok := cached.(DealsFeed); ok {
			return result, true, nil
		}
	}

	listPipeline := append(dealsMatchStages(params.MinDiscount),
		bson.M{"$sort": bson.M{"discount": -1}},
		bson.M{"$skip": params.Offset},
		bson.M{"$limit": params.Limit},
	)
	listPipeline = append(listPipeline, categoryNameStages()...)

	cursor, err := s.db.Collection("products").Aggregate(ctx, listPipeline)
	if err != nil {
		return DealsFeed{}, false, fmt.Errorf("query deals: %w", err)
	}
	defer cursor.Close(ctx)

	feed := DealsFeed{MinDiscount: params.MinDiscount}
	if err := cursor.All(ctx, &feed.Products); err != nil {
		return DealsFeed{}, false, fmt.Errorf("decode deals: %w", err)
	}

	for i := range feed.Products {
		if feed.Products[i].Discount != nil {
			feed.Products[i].Label, feed.Products[i].LabelType = dealLabel(*feed.Products[i].Discount)
		}
	}

	if err := s.attachRatings(ctx, feed.Products); err != nil {
		return DealsFeed{}, false, fmt.Errorf("summarize ratings: %w", err)
	}

	total, err := s.countDeals(ctx, params.MinDiscount)
	if err != nil {
		return DealsFeed{}, false, fmt.Errorf("count deals: %w", err)
	}
	feed.TotalDeals = total
	feed.HasMore = params.Offset+int64(len(feed.Products)) < total

	s.cache.Set(key, feed, s.dealsTTL)
	return feed, false, nil
}

func (s *Service) countDeals(ctx context.Context, minDiscount int64) (int64, error) {
	pipeline := append(dealsMatchStages(minDiscount), bson.M{"$count": "total"})

	cursor, err := s.db.Collection("products").Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var out []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &out); err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].Total, nil
}

// dealsMatchStages is the shared head of both deals pipelines: availability
// match, in-store discount/savings derivation, threshold match.
func dealsMatchStages(minDiscount int64) []bson.M {
	return []bson.M{
		{"$match": bson.M{
			"inStock": true,
			"mrp":     bson.M{"$gt": 0},
			"price":   bson.M{"$exists": true},
		}},
		{"$addFields": bson.M{
			"discount": bson.M{"$round": bson.A{
				bson.M{"$multiply": bson.A{
					100,
					bson.M{"$divide": bson.A{
						bson.M{"$subtract": bson.A{"$mrp", "$price"}},
						"$mrp",
					}},
				}},
				0,
			}},
			"savings": bson.M{"$subtract": bson.A{"$mrp", "$price"}},
		}},
		{"$match": bson.M{"discount": bson.M{"$gte": minDiscount}}},
	}
}
