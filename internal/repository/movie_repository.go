package repository

import (
	"context"
	"movie_catalog/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type IMovieRepository interface {
	GetMovies(ctx context.Context, skip int64, limit int64) ([]model.MovieListItem, error)
	FindByTitle(ctx context.Context, title string) (*model.Movie, error)
	Insert(ctx context.Context, movie *model.Movie) error
	FindById(ctx context.Context, id primitive.ObjectID) (*model.Movie, error)
	UpdateById(ctx context.Context, id primitive.ObjectID, fields bson.D) (*model.Movie, error)
	DeleteById(ctx context.Context, id primitive.ObjectID) (int64, error)
	Search(ctx context.Context, query string, limit int64) ([]model.MovieSearchResult, error)
}

type MovieRepository struct {
	mongodb *mongo.Database
}

func NewMovieRepository(mongodb *mongo.Database) *MovieRepository {
	return &MovieRepository{mongodb: mongodb}
}

//------------------------------------------
//------------------------------------------

func (m *MovieRepository) GetMovies(ctx context.Context, skip int64, limit int64) ([]model.MovieListItem, error) {
	opts := options.Find().
		SetProjection(bson.D{
			{Key: "title", Value: 1},
			{Key: "year", Value: 1},
		}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := m.mongodb.
		Collection("movies").
		Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	result := []model.MovieListItem{}
	err = cursor.All(ctx, &result)
	return result, err
}

func (m *MovieRepository) FindByTitle(ctx context.Context, title string) (*model.Movie, error) {
	var result model.Movie
	err := m.mongodb.
		Collection("movies").
		FindOne(ctx, bson.D{{Key: "title", Value: title}}).
		Decode(&result)

	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (m *MovieRepository) Insert(ctx context.Context, movie *model.Movie) error {
	res, err := m.mongodb.
		Collection("movies").
		InsertOne(ctx, movie)
	if err != nil {
		return err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		movie.Id = id
	}
	return nil
}

func (m *MovieRepository) FindById(ctx context.Context, id primitive.ObjectID) (*model.Movie, error) {
	var result model.Movie
	err := m.mongodb.
		Collection("movies").
		FindOne(ctx, bson.D{{Key: "_id", Value: id}}).
		Decode(&result)

	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (m *MovieRepository) UpdateById(ctx context.Context, id primitive.ObjectID, fields bson.D) (*model.Movie, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var result model.Movie
	err := m.mongodb.
		Collection("movies").
		FindOneAndUpdate(ctx,
			bson.D{{Key: "_id", Value: id}},
			bson.D{{Key: "$set", Value: fields}},
			opts).
		Decode(&result)

	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (m *MovieRepository) DeleteById(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := m.mongodb.
		Collection("movies").
		DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (m *MovieRepository) Search(ctx context.Context, query string, limit int64) ([]model.MovieSearchResult, error) {
	opts := options.Find().
		SetProjection(bson.D{
			{Key: "_id", Value: 0},
			{Key: "title", Value: 1},
			{Key: "plot", Value: 1},
		}).
		SetSort(bson.D{{Key: "score", Value: bson.D{{Key: "$meta", Value: "textScore"}}}}).
		SetLimit(limit)

	cursor, err := m.mongodb.
		Collection("movies").
		Find(ctx,
			bson.D{{Key: "$text", Value: bson.D{{Key: "$search", Value: query}}}},
			opts)
	if err != nil {
		return nil, err
	}

	result := []model.MovieSearchResult{}
	err = cursor.All(ctx, &result)
	return result, err
}
