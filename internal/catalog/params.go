package catalog

import (
	"strconv"
	"strings"

	"github.com/quickfyndcom-wq/quickfynd.com-sub000/internal/cache"
)

const (
	defaultListingLimit = 20
	maxListingLimit     = 200

	defaultDealsLimit  = 20
	maxDealsLimit      = 50
	defaultMinDiscount = 60
)

// ListingParams carries the normalized query parameters for the product
// listing. Construct it with NewListingParams so malformed input falls back to
// defaults instead of failing the request.
type ListingParams struct {
	SortBy            string
	Limit             int64
	Offset            int64
	FastDelivery      string // normalized "true" or "false"
	Category          string
	IncludeOutOfStock bool
}

func NewListingParams(sortBy, limit, offset, fastDelivery, category, includeOutOfStock string) ListingParams {
	normalizedFast := "false"
	if strings.EqualFold(strings.TrimSpace(fastDelivery), "true") {
		normalizedFast = "true"
	}
	return ListingParams{
		SortBy:            strings.TrimSpace(sortBy),
		Limit:             parseBoundedInt(limit, defaultListingLimit, maxListingLimit),
		Offset:            parseOffset(offset),
		FastDelivery:      normalizedFast,
		Category:          strings.TrimSpace(category),
		IncludeOutOfStock: strings.EqualFold(strings.TrimSpace(includeOutOfStock), "true"),
	}
}

// CacheKey includes every parameter that changes the result set, the category
// token included.
func (p ListingParams) CacheKey() string {
	return cache.Key("products", map[string]interface{}{
		"sortBy":            p.SortBy,
		"limit":             p.Limit,
		"offset":            p.Offset,
		"fastDelivery":      p.FastDelivery,
		"category":          p.Category,
		"includeOutOfStock": p.IncludeOutOfStock,
	})
}

// DealsParams carries the normalized query parameters for the deals listing.
type DealsParams struct {
	MinDiscount int64
	Limit       int64
	Offset      int64
}

func NewDealsParams(minDiscount, limit, offset string) DealsParams {
	return DealsParams{
		MinDiscount: parseBoundedInt(minDiscount, defaultMinDiscount, 100),
		Limit:       parseBoundedInt(limit, defaultDealsLimit, maxDealsLimit),
		Offset:      parseOffset(offset),
	}
}

func (p DealsParams) CacheKey() string {
	return cache.Key("deals", map[string]interface{}{
		"minDiscount": p.MinDiscount,
		"limit":       p.Limit,
		"offset":      p.Offset,
	})
}

func parseBoundedInt(raw string, fallback, max int64) int64 {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || value < 1 {
		return fallback
	}
	if value > max {
		return max
	}
	return value
}

func parseOffset(raw string) int64 {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || value < 0 {
		return 0
	}
	return value
}
