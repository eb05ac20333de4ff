package service

import (
	"context"
	"movie_catalog/configs"
	"movie_catalog/internal/repository"
	"movie_catalog/model"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type IMovieService interface {
	GetMovies(ctx context.Context, skip int64, limit int64) ([]model.MovieListItem, error)
	AddMovie(ctx context.Context, movie *model.Movie) error
	GetMovieById(ctx context.Context, movieId string) (*model.Movie, error)
	UpdateMovie(ctx context.Context, movieId string, update *model.UpdateMovieReq) (*model.Movie, error)
	DeleteMovie(ctx context.Context, movieId string) error
	SearchMovies(ctx context.Context, query string) ([]model.MovieSearchResult, error)
}

type MovieService struct {
	movieRepo    repository.IMovieRepository
	notification INotificationService
}

func NewMovieService(movieRepo repository.IMovieRepository, notification INotificationService) *MovieService {
	return &MovieService{
		movieRepo:    movieRepo,
		notification: notification,
	}
}

//------------------------------------------
//------------------------------------------

func (m *MovieService) GetMovies(ctx context.Context, skip int64, limit int64) ([]model.MovieListItem, error) {
	if limit <= 0 {
		limit = configs.GetDbConfigs().MovieListDefaultLimit
	}
	return m.movieRepo.GetMovies(ctx, skip, limit)
}

// AddMovie commits the movie first and only then attempts the fan-out. The
// title pre-check is a fast path, the unique index on movies.title decides
// under concurrent adds.
func (m *MovieService) AddMovie(ctx context.Context, movie *model.Movie) error {
	existing, err := m.movieRepo.FindByTitle(ctx, movie.Title)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrMovieAlreadyExist
	}

	movie.LastUpdated = time.Now()
	err = m.movieRepo.Insert(ctx, movie)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrMovieAlreadyExist
		}
		return err
	}

	// the write is committed, whatever happens from here on the caller
	// still gets a success
	m.notification.MovieAdded(movie.Title)
	return nil
}

func (m *MovieService) GetMovieById(ctx context.Context, movieId string) (*model.Movie, error) {
	id, err := primitive.ObjectIDFromHex(movieId)
	if err != nil {
		return nil, ErrInvalidMovieId
	}

	movie, err := m.movieRepo.FindById(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return movie, nil
}

func (m *MovieService) UpdateMovie(ctx context.Context, movieId string, update *model.UpdateMovieReq) (*model.Movie, error) {
	id, err := primitive.ObjectIDFromHex(movieId)
	if err != nil {
		return nil, ErrInvalidMovieId
	}

	fields := buildUpdateFields(update)
	if len(fields) == 0 {
		return nil, ErrNothingToUpdate
	}

	movie, err := m.movieRepo.UpdateById(ctx, id, fields)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrMovieNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrMovieAlreadyExist
		}
		return nil, err
	}
	return movie, nil
}

func (m *MovieService) DeleteMovie(ctx context.Context, movieId string) error {
	id, err := primitive.ObjectIDFromHex(movieId)
	if err != nil {
		return ErrInvalidMovieId
	}

	deleted, err := m.movieRepo.DeleteById(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrMovieNotFound
	}
	return nil
}

func (m *MovieService) SearchMovies(ctx context.Context, query string) ([]model.MovieSearchResult, error) {
	result, err := m.movieRepo.Search(ctx, query, configs.GetDbConfigs().SearchResultLimit)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, ErrNoSearchResults
	}
	return result, nil
}

//------------------------------------------
//------------------------------------------

func buildUpdateFields(update *model.UpdateMovieReq) bson.D {
	fields := bson.D{}
	if update.Plot != nil {
		fields = append(fields, bson.E{Key: "plot", Value: *update.Plot})
	}
	if update.Genres != nil {
		fields = append(fields, bson.E{Key: "genres", Value: *update.Genres})
	}
	if update.Runtime != nil {
		fields = append(fields, bson.E{Key: "runtime", Value: *update.Runtime})
	}
	if update.Cast != nil {
		fields = append(fields, bson.E{Key: "cast", Value: *update.Cast})
	}
	if update.Poster != nil {
		fields = append(fields, bson.E{Key: "poster", Value: *update.Poster})
	}
	if update.Title != nil {
		fields = append(fields, bson.E{Key: "title", Value: *update.Title})
	}
	if update.FullPlot != nil {
		fields = append(fields, bson.E{Key: "fullplot", Value: *update.FullPlot})
	}
	if update.Languages != nil {
		fields = append(fields, bson.E{Key: "languages", Value: *update.Languages})
	}
	if update.Released != nil {
		fields = append(fields, bson.E{Key: "released", Value: *update.Released})
	}
	if update.Directors != nil {
		fields = append(fields, bson.E{Key: "directors", Value: *update.Directors})
	}
	if update.Rated != nil {
		fields = append(fields, bson.E{Key: "rated", Value: *update.Rated})
	}
	if update.Awards != nil {
		fields = append(fields, bson.E{Key: "awards", Value: *update.Awards})
	}
	if update.Year != nil {
		fields = append(fields, bson.E{Key: "year", Value: *update.Year})
	}
	if update.Imdb != nil {
		fields = append(fields, bson.E{Key: "imdb", Value: *update.Imdb})
	}
	if update.Countries != nil {
		fields = append(fields, bson.E{Key: "countries", Value: *update.Countries})
	}
	if update.Type != nil {
		fields = append(fields, bson.E{Key: "type", Value: *update.Type})
	}
	if update.NumMflixComments != nil {
		fields = append(fields, bson.E{Key: "num_mflix_comments", Value: *update.NumMflixComments})
	}
	return fields
}
