package mongodb

import (
	"context"
	"movie_catalog/configs"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDatabase struct {
	Db     *mongo.Database
	client *mongo.Client
}

var MONGODB *MongoDatabase

func NewDatabase() (*MongoDatabase, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	opts := options.Client().ApplyURI(configs.GetConfigs().MongodbDatabaseUrl)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	err = client.Ping(context.TODO(), nil)
	if err != nil {
		panic(err)
	}
	MONGODB = &MongoDatabase{
		client: client,
		Db:     client.Database(configs.GetConfigs().MongodbDatabaseName),
	}
	return MONGODB, nil
}

func (d *MongoDatabase) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := d.client.Disconnect(ctx); err != nil {
		panic(err)
	}
}

func (d *MongoDatabase) GetDB() *mongo.Database {
	return d.Db
}

//------------------------------------------
//------------------------------------------

// EnsureIndexes creates the indexes the write path relies on. The unique
// index on movies.title is the authoritative uniqueness check, the pre-check
// in the service is just a fast path.
func (d *MongoDatabase) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	titleIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err := d.Db.Collection("movies").Indexes().CreateOne(ctx, titleIdx)
	if err != nil {
		return err
	}

	titleTextIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: "text"}},
		Options: options.Index().SetName("text-search"),
	}
	_, err = d.Db.Collection("movies").Indexes().CreateOne(ctx, titleTextIdx)
	if err != nil {
		return err
	}

	movieIdIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "movieId", Value: 1}},
	}
	_, err = d.Db.Collection("comments").Indexes().CreateOne(ctx, movieIdIdx)
	return err
}
