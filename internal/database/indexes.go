package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureProductIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("products").Indexes()

	slugIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().
			SetName("slug_unique").
			SetUnique(true),
	}

	createdAtIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("createdAt_desc"),
	}

	log.Println("EnsureProductIndexes: creating slug_unique, createdAt_desc indexes")
	_, err := indexes.CreateMany(ctx, []mongo.IndexModel{slugIndex, createdAtIndex})
	if err != nil {
		log.Println("EnsureProductIndexes: index error:", err)
		return err
	}
	return nil
}

func EnsureCategoryIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("categories").Indexes()

	slugIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().
			SetName("slug_unique").
			SetUnique(true),
	}

	log.Println("EnsureCategoryIndexes: creating slug_unique index")
	_, err := indexes.CreateOne(ctx, slugIndex)
	if err != nil {
		log.Println("EnsureCategoryIndexes: slug index error:", err)
		return err
	}
	return nil
}

func EnsureRatingIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("ratings").Indexes()

	productIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "productId", Value: 1},
			{Key: "approved", Value: 1},
		},
		Options: options.Index().SetName("productId_approved"),
	}

	log.Println("EnsureRatingIndexes: creating productId_approved index")
	_, err := indexes.CreateOne(ctx, productIndex)
	if err != nil {
		log.Println("EnsureRatingIndexes: productId index error:", err)
		return err
	}
	return nil
}
