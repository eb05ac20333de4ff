package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment authorship (name/email) is resolved from the directory, never
// taken from the request body.
type Comment struct {
	Id      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	MovieId primitive.ObjectID `bson:"movieId" json:"movieId"`
	Text    string             `bson:"text" json:"text"`
	Date    time.Time          `bson:"date" json:"date"`
}

type AddCommentReq struct {
	Text string `json:"text"`
}

type UpdateCommentReq struct {
	Text string `json:"text"`
}
