package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/quickfyndcom-wq/quickfynd.com-sub000/internal/cache"
	"github.com/quickfyndcom-wq/quickfynd.com-sub000/internal/catalog"
	"github.com/quickfyndcom-wq/quickfynd.com-sub000/internal/config"
	"github.com/quickfyndcom-wq/quickfynd.com-sub000/internal/database"
	"github.com/quickfyndcom-wq/quickfynd.com-sub000/internal/handlers"
	"github.com/quickfyndcom-wq/quickfynd.com-sub000/internal/middleware"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("product index warning: %v", err)
	}
	if err := database.EnsureCategoryIndexes(db); err != nil {
		log.Printf("category index warning: %v", err)
	}
	if err := database.EnsureRatingIndexes(db); err != nil {
		log.Printf("rating index warning: %v", err)
	}

	handlers.RegisterValidations()

	store := cache.New()
	svc := catalog.NewService(db, store, config.AppEnv.ProductCacheTTL, config.AppEnv.DealsCacheTTL)

	r := gin.Default()

	r.GET("/products", handlers.GetProducts(db, svc))
	r.GET("/products/deals", handlers.GetDeals(db, svc))
	r.GET("/categories", handlers.GetCategories(db))

	r.POST("/products/:id/ratings",
		middleware.UserAuth(config.AppEnv.AuthSecret),
		handlers.CreateRating(db),
	)

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(config.AppEnv.AuthSecret))
	{
		admin.GET("/products", handlers.GetAllProducts(db))
		admin.POST("/products", handlers.CreateProduct(db))
		admin.PUT("/products/:id", handlers.UpdateProduct(db))
		admin.DELETE("/products/:id", handlers.DeleteProduct(db))

		admin.GET("/categories", handlers.GetAllCategories(db))
		admin.POST("/categories", handlers.CreateCategory(db))
		admin.PUT("/categories/:id", handlers.UpdateCategory(db))
		admin.DELETE("/categories/:id", handlers.DeleteCategory(db))

		admin.GET("/ratings", handlers.GetAllRatings(db))
		admin.PUT("/ratings/:id/approve", handlers.ApproveRating(db))
		admin.DELETE("/ratings/:id", handlers.DeleteRating(db))
	}

	r.Run(":" + config.AppEnv.Port)
}
