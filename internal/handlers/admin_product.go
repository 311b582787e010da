package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quickfyndcom-wq/quickfynd.com-sub000/internal/models"
)

type ProductCreateRequest struct {
	Name          string   `json:"name" binding:"required"`
	Slug          string   `json:"slug" binding:"omitempty,slug"`
	Description   string   `json:"description"`
	MRP           float64  `json:"mrp" binding:"required,gt=0"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	Images        []string `json:"images"`
	Category      string   `json:"category"`
	Categories    []string `json:"categories"`
	SKU           string   `json:"sku"`
	StockQuantity int      `json:"stockQuantity" binding:"gte=0"`
	FastDelivery  bool     `json:"fastDelivery"`
}

type ProductUpdateRequest struct {
	Name          *string   `json:"name"`
	Slug          *string   `json:"slug"`
	Description   *string   `json:"description"`
	MRP           *float64  `json:"mrp"`
	Price         *float64  `json:"price"`
	Images        *[]string `json:"images"`
	Category      *string   `json:"category"`
	Categories    *[]string `json:"categories"`
	SKU           *string   `json:"sku"`
	InStock       *bool     `json:"inStock"`
	StockQuantity *int      `json:"stockQuantity"`
	FastDelivery  *bool     `json:"fastDelivery"`
}

// categoryRef stores a valid ObjectID hex as a typed id and anything else as
// the raw string; legacy documents carry both forms and the catalog filter
// matches either.
func categoryRef(value string) interface{} {
	trimmed := strings.TrimSpace(value)
	if id, err := primitive.ObjectIDFromHex(trimmed); err == nil {
		return id
	}
	return trimmed
}

/*
GET /admin/api/products
- Paginated, with name/sku/description search
*/
func GetAllProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := bson.M{}

		if search := strings.TrimSpace(c.Query("search")); search != "" {
			filter["$or"] = []bson.M{
				{"name": bson.M{"$regex": search, "$options": "i"}},
				{"sku": bson.M{"$regex": search, "$options": "i"}},
				{"description": bson.M{"$regex": search, "$options": "i"}},
			}
		}

		if inStock := strings.TrimSpace(c.Query("inStock")); inStock != "" {
			filter["inStock"] = strings.EqualFold(inStock, "true")
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		total, err := db.Collection("products").CountDocuments(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		opts := options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		cursor, err := db.Collection("products").Find(ctx, filter, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		defer cursor.Close(ctx)

		var products []models.Product
		if err := cursor.All(ctx, &products); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "decode error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"data":  products,
			"total": total,
		})
	}
}

/*
POST /admin/api/products
*/
func CreateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		if req.Price > req.MRP {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price cannot exceed mrp"})
			return
		}

		slug := strings.TrimSpace(req.Slug)
		if slug == "" {
			slug = slugify(req.Name)
		}
		if slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not derive slug from name"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		count, err := db.Collection("products").CountDocuments(ctx, bson.M{"slug": slug})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "slug already exists"})
			return
		}

		now := time.Now()
		doc := bson.M{
			"name":          strings.TrimSpace(req.Name),
			"slug":          slug,
			"description":   strings.TrimSpace(req.Description),
			"mrp":           req.MRP,
			"price":         req.Price,
			"images":        req.Images,
			"sku":           strings.TrimSpace(req.SKU),
			"inStock":       req.StockQuantity > 0,
			"stockQuantity": req.StockQuantity,
			"fastDelivery":  req.FastDelivery,
			"createdAt":     now,
			"updatedAt":     now,
		}

		if category := strings.TrimSpace(req.Category); category != "" {
			doc["category"] = categoryRef(category)
		}
		if len(req.Categories) > 0 {
			refs := make([]interface{}, 0, len(req.Categories))
			for _, v := range req.Categories {
				if trimmed := strings.TrimSpace(v); trimmed != "" {
					refs = append(refs, categoryRef(trimmed))
				}
			}
			doc["categories"] = refs
		}

		result, err := db.Collection("products").InsertOne(ctx, doc)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "slug already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		doc["_id"] = result.InsertedID
		c.JSON(http.StatusCreated, doc)
	}
}

/*
PUT /admin/api/products/:id
*/
func UpdateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req ProductUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		update := bson.M{}

		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "name cannot be empty"})
				return
			}
			update["name"] = name
		}
		if req.Slug != nil {
			slug := strings.TrimSpace(*req.Slug)
			if !slugPattern.MatchString(slug) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid slug"})
				return
			}
			update["slug"] = slug
		}
		if req.Description != nil {
			update["description"] = strings.TrimSpace(*req.Description)
		}
		if req.MRP != nil {
			if *req.MRP <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mrp"})
				return
			}
			update["mrp"] = *req.MRP
		}
		if req.Price != nil {
			if *req.Price <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
				return
			}
			update["price"] = *req.Price
		}
		if req.Images != nil {
			update["images"] = *req.Images
		}
		if req.Category != nil {
			update["category"] = categoryRef(*req.Category)
		}
		if req.Categories != nil {
			refs := make([]interface{}, 0, len(*req.Categories))
			for _, v := range *req.Categories {
				if trimmed := strings.TrimSpace(v); trimmed != "" {
					refs = append(refs, categoryRef(trimmed))
				}
			}
			update["categories"] = refs
		}
		if req.SKU != nil {
			update["sku"] = strings.TrimSpace(*req.SKU)
		}
		if req.StockQuantity != nil {
			if *req.StockQuantity < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stockQuantity"})
				return
			}
			update["stockQuantity"] = *req.StockQuantity
			update["inStock"] = *req.StockQuantity > 0
		}
		if req.InStock != nil {
			update["inStock"] = *req.InStock
		}
		if req.FastDelivery != nil {
			update["fastDelivery"] = *req.FastDelivery
		}

		if len(update) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
			return
		}
		update["updatedAt"] = time.Now()

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var updated models.Product
		err = db.Collection("products").
			FindOneAndUpdate(
				ctx,
				bson.M{"_id": id},
				bson.M{"$set": update},
				options.FindOneAndUpdate().SetReturnDocument(options.After),
			).
			Decode(&updated)

		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

/*
DELETE /admin/api/products/:id
- Hard delete; cached listings age out via TTL
*/
func DeleteProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("products").DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
