package catalog

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quickfyndcom-wq/quickfynd.com-sub000/internal/cache"
	"github.com/quickfyndcom-wq/quickfynd.com-sub000/internal/models"
)

// Service answers the two catalog read shapes (listing and deals) with a
// cache-then-compute flow over the product collections.
type Service struct {
	db         *mongo.Database
	cache      *cache.Store
	productTTL time.Duration
	dealsTTL   time.Duration
}

func NewService(db *mongo.Database, store *cache.Store, productTTL, dealsTTL time.Duration) *Service {
	return &Service{
		db:         db,
		cache:      store,
		productTTL: productTTL,
		dealsTTL:   dealsTTL,
	}
}

type ListingResult struct {
	Products []models.Product `json:"products"`
}

// ListProducts returns the paginated listing and whether it was served from
// cache. A query failure is returned as an error; an empty page is only ever
// the result of a successful query that matched nothing.
func (s *Service) ListProducts(ctx context.Context, params ListingParams) (ListingResult, bool, error) {
	key := params.CacheKey()
	if cached, ok := s.cache.Get(key); ok {
		if result, ok := cached.(ListingResult); ok {
			return result, true, nil
		}
	}

	pipeline := []bson.M{
		{"$match": s.listingMatch(ctx, params)},
		{"$sort": bson.M{"createdAt": -1}},
		{"$skip": params.Offset},
		{"$limit": params.Limit},
	}
	pipeline = append(pipeline, categoryNameStages()...)

	cursor, err := s.db.Collection("products").Aggregate(ctx, pipeline)
	if err != nil {
		return ListingResult{}, false, fmt.Errorf("query products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return ListingResult{}, false, fmt.Errorf("decode products: %w", err)
	}

	for i := range products {
		products[i].Discount = DiscountPct(products[i].MRP, products[i].Price)
		if products[i].Discount != nil {
			products[i].Label, products[i].LabelType = listingLabel(*products[i].Discount)
		}
	}

	if err := s.attachRatings(ctx, products); err != nil {
		return ListingResult{}, false, fmt.Errorf("summarize ratings: %w", err)
	}

	result := ListingResult{Products: products}
	s.cache.Set(key, result, s.productTTL)
	return result, false, nil
}

// listingMatch composes the base availability filters with the resolved
// category filter.
func (s *Service) listingMatch(ctx context.Context, params ListingParams) bson.M {
	clauses := make([]bson.M, 0, 3)
	if !params.IncludeOutOfStock {
		clauses = append(clauses, bson.M{"inStock": true})
	}
	if params.FastDelivery == "true" {
		clauses = append(clauses, bson.M{"fastDelivery": true})
	}
	if params.Category != "" {
		clauses = append(clauses, ResolveCategoryFilter(ctx, s.db, params.Category).Match())
	}

	switch len(clauses) {
	case 0:
		return bson.M{}
	case 1:
		return clauses[0]
	default:
		return bson.M{"$and": clauses}
	}
}

func (s *Service) attachRatings(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]primitive.ObjectID, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	summaries, err := SummarizeRatings(ctx, s.db, ids)
	if err != nil {
		return err
	}

	for i := range products {
		summary := summaries[products[i].ID.Hex()]
		products[i].RatingCount = summary.Count
		products[i].AverageRating = summary.Average
	}
	return nil
}

// categoryNameStages resolves the single-category reference to its display
// name inside the pipeline. Legacy documents that store a name or slug string
// find no lookup match and keep their raw value.
func categoryNameStages() []bson.M {
	return []bson.M{
		{"$lookup": bson.M{
			"from":         "categories",
			"localField":   "category",
			"foreignField": "_id",
			"as":           "categoryDocs",
		}},
		{"$addFields": bson.M{"category": bson.M{"$cond": bson.A{
			bson.M{"$gt": bson.A{bson.M{"$size": "$categoryDocs"}, 0}},
			bson.M{"$arrayElemAt": bson.A{"$categoryDocs.name", 0}},
			"$category",
		}}}},
		{"$project": bson.M{"categoryDocs": 0}},
	}
}
