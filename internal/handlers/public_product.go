package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quickfyndcom-wq/quickfynd.com-sub000/internal/catalog"
)

/*
GET /products
- Paginated listing with optional category / fastDelivery / stock filters
- Served from the in-process cache when possible (X-Cache header)
*/
func GetProducts(db *mongo.Database, svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		defer handlePanic(c, route)

		log.Printf(
			"[%s] hit limit=%s offset=%s category=%s fastDelivery=%s",
			route,
			c.Query("limit"),
			c.Query("offset"),
			c.Query("category"),
			c.Query("fastDelivery"),
		)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		params := catalog.NewListingParams(
			c.Query("sortBy"),
			c.Query("limit"),
			c.Query("offset"),
			c.Query("fastDelivery"),
			c.Query("category"),
			c.Query("includeOutOfStock"),
		)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, hit, err := svc.ListProducts(ctx, params)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, err.Error())
			return
		}

		c.Header("Cache-Control", "public, s-maxage=600, stale-while-revalidate=1200")
		if hit {
			c.Header("X-Cache", "HIT")
		} else {
			c.Header("X-Cache", "MISS")
		}

		log.Printf("[%s] returning %d products (cache=%v)", route, len(result.Products), hit)
		c.JSON(http.StatusOK, result)
	}
}

/*
GET /products/deals
- Discount-ranked feed; threshold applied inside the aggregation
*/
func GetDeals(db *mongo.Database, svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products/deals"
		defer handlePanic(c, route)

		log.Printf(
			"[%s] hit minDiscount=%s limit=%s offset=%s",
			route,
			c.Query("minDiscount"),
			c.Query("limit"),
			c.Query("offset"),
		)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		params := catalog.NewDealsParams(
			c.Query("minDiscount"),
			c.Query("limit"),
			c.Query("offset"),
		)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		feed, hit, err := svc.ListDeals(ctx, params)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, err.Error())
			return
		}

		c.Header("Cache-Control", "public, s-maxage=1200, stale-while-revalidate=2400")
		if hit {
			c.Header("X-Cache", "HIT")
		} else {
			c.Header("X-Cache", "MISS")
		}

		log.Printf("[%s] returning %d deals of %d (cache=%v)", route, len(feed.Products), feed.TotalDeals, hit)
		c.JSON(http.StatusOK, feed)
	}
}
