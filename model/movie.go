package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Awards struct {
	Wins        int    `bson:"wins" json:"wins"`
	Nominations int    `bson:"nominations" json:"nominations"`
	Text        string `bson:"text" json:"text"`
}

type Imdb struct {
	Rating float64 `bson:"rating" json:"rating"`
	Votes  int     `bson:"votes" json:"votes"`
	Id     int     `bson:"id" json:"id"`
}

type Movie struct {
	Id               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Plot             string             `bson:"plot" json:"plot"`
	Genres           []string           `bson:"genres" json:"genres"`
	Runtime          int                `bson:"runtime" json:"runtime"`
	Cast             []string           `bson:"cast" json:"cast"`
	Poster           string             `bson:"poster" json:"poster"`
	Title            string             `bson:"title" json:"title"`
	FullPlot         string             `bson:"fullplot" json:"fullplot"`
	Languages        []string           `bson:"languages" json:"languages"`
	Released         time.Time          `bson:"released" json:"released"`
	Directors        []string           `bson:"directors" json:"directors"`
	Rated            string             `bson:"rated" json:"rated"`
	Awards           Awards             `bson:"awards" json:"awards"`
	LastUpdated      time.Time          `bson:"lastupdated" json:"lastupdated"`
	Year             int                `bson:"year" json:"year"`
	Imdb             Imdb               `bson:"imdb" json:"imdb"`
	Countries        []string           `bson:"countries" json:"countries"`
	Type             string             `bson:"type" json:"type"`
	NumMflixComments int                `bson:"num_mflix_comments" json:"num_mflix_comments"`
}

// UpdateMovieReq carries a partial update, nil fields stay untouched.
type UpdateMovieReq struct {
	Plot             *string    `json:"plot"`
	Genres           *[]string  `json:"genres"`
	Runtime          *int       `json:"runtime"`
	Cast             *[]string  `json:"cast"`
	Poster           *string    `json:"poster"`
	Title            *string    `json:"title"`
	FullPlot         *string    `json:"fullplot"`
	Languages        *[]string  `json:"languages"`
	Released         *time.Time `json:"released"`
	Directors        *[]string  `json:"directors"`
	Rated            *string    `json:"rated"`
	Awards           *Awards    `json:"awards"`
	Year             *int       `json:"year"`
	Imdb             *Imdb      `json:"imdb"`
	Countries        *[]string  `json:"countries"`
	Type             *string    `json:"type"`
	NumMflixComments *int       `json:"num_mflix_comments"`
}

type MovieListItem struct {
	Id    primitive.ObjectID `bson:"_id" json:"id"`
	Title string             `bson:"title" json:"title"`
	Year  int                `bson:"year" json:"year"`
}

type MovieSearchResult struct {
	Title string `bson:"title" json:"title"`
	Plot  string `bson:"plot" json:"plot"`
}
