package repository

import (
	"context"
	"movie_catalog/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ICommentRepository interface {
	Insert(ctx context.Context, comment *model.Comment) error
	FindByMovieId(ctx context.Context, movieId primitive.ObjectID) ([]model.Comment, error)
	UpdateText(ctx context.Context, id primitive.ObjectID, text string) (*model.Comment, error)
	DeleteById(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type CommentRepository struct {
	mongodb *mongo.Database
}

func NewCommentRepository(mongodb *mongo.Database) *CommentRepository {
	return &CommentRepository{mongodb: mongodb}
}

//------------------------------------------
//------------------------------------------

func (r *CommentRepository) Insert(ctx context.Context, comment *model.Comment) error {
	res, err := r.mongodb.
		Collection("comments").
		InsertOne(ctx, comment)
	if err != nil {
		return err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		comment.Id = id
	}
	return nil
}

func (r *CommentRepository) FindByMovieId(ctx context.Context, movieId primitive.ObjectID) ([]model.Comment, error) {
	cursor, err := r.mongodb.
		Collection("comments").
		Find(ctx, bson.D{{Key: "movieId", Value: movieId}})
	if err != nil {
		return nil, err
	}

	result := []model.Comment{}
	err = cursor.All(ctx, &result)
	return result, err
}

func (r *CommentRepository) UpdateText(ctx context.Context, id primitive.ObjectID, text string) (*model.Comment, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var result model.Comment
	err := r.mongodb.
		Collection("comments").
		FindOneAndUpdate(ctx,
			bson.D{{Key: "_id", Value: id}},
			bson.D{{Key: "$set", Value: bson.D{{Key: "text", Value: text}}}},
			opts).
		Decode(&result)

	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *CommentRepository) DeleteById(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.mongodb.
		Collection("comments").
		DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
