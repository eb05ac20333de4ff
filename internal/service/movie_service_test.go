package service

import (
	"context"
	"errors"
	"movie_catalog/model"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeMovieRepo struct {
	byTitle     map[string]*model.Movie
	byId        map[primitive.ObjectID]*model.Movie
	insertErr   error
	updateErr   error
	inserted    []*model.Movie
	deleteCount int64
	searchRes   []model.MovieSearchResult
	list        []model.MovieListItem
	gotLimit    int64
	gotSkip     int64
}

func (f *fakeMovieRepo) GetMovies(ctx context.Context, skip int64, limit int64) ([]model.MovieListItem, error) {
	f.gotSkip = skip
	f.gotLimit = limit
	return f.list, nil
}

func (f *fakeMovieRepo) FindByTitle(ctx context.Context, title string) (*model.Movie, error) {
	return f.byTitle[title], nil
}

func (f *fakeMovieRepo) Insert(ctx context.Context, movie *model.Movie) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	movie.Id = primitive.NewObjectID()
	f.inserted = append(f.inserted, movie)
	return nil
}

func (f *fakeMovieRepo) FindById(ctx context.Context, id primitive.ObjectID) (*model.Movie, error) {
	movie, ok := f.byId[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return movie, nil
}

func (f *fakeMovieRepo) UpdateById(ctx context.Context, id primitive.ObjectID, fields bson.D) (*model.Movie, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	movie, ok := f.byId[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return movie, nil
}

func (f *fakeMovieRepo) DeleteById(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return f.deleteCount, nil
}

func (f *fakeMovieRepo) Search(ctx context.Context, query string, limit int64) ([]model.MovieSearchResult, error) {
	return f.searchRes, nil
}

type fakeNotifier struct {
	movieAdded   []string
	commentAdded []*model.Comment
	movieTitles  []string
}

func (f *fakeNotifier) MovieAdded(title string) {
	f.movieAdded = append(f.movieAdded, title)
}

func (f *fakeNotifier) CommentAdded(comment *model.Comment, movieTitle string) {
	f.commentAdded = append(f.commentAdded, comment)
	f.movieTitles = append(f.movieTitles, movieTitle)
}

func duplicateKeyError() error {
	return mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000}},
	}
}

//------------------------------------------
//------------------------------------------

func TestAddMovie(t *testing.T) {
	repo := &fakeMovieRepo{byTitle: map[string]*model.Movie{}}
	notifier := &fakeNotifier{}
	svc := NewMovieService(repo, notifier)

	movie := &model.Movie{Title: "The Matrix", Year: 1999}
	err := svc.AddMovie(context.Background(), movie)
	if err != nil {
		t.Fatalf("AddMovie failed: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 insert, got %v", len(repo.inserted))
	}
	if movie.Id.IsZero() {
		t.Error("expected movie id to be assigned")
	}
	if movie.LastUpdated.IsZero() {
		t.Error("expected lastupdated to be set")
	}
	if len(notifier.movieAdded) != 1 || notifier.movieAdded[0] != "The Matrix" {
		t.Errorf("expected one fan-out with the movie title, got %v", notifier.movieAdded)
	}
}

func TestAddMovieDuplicateTitle(t *testing.T) {
	repo := &fakeMovieRepo{
		byTitle: map[string]*model.Movie{
			"The Matrix": {Title: "The Matrix"},
		},
	}
	notifier := &fakeNotifier{}
	svc := NewMovieService(repo, notifier)

	err := svc.AddMovie(context.Background(), &model.Movie{Title: "The Matrix"})
	if !errors.Is(err, ErrMovieAlreadyExist) {
		t.Fatalf("expected ErrMovieAlreadyExist, got %v", err)
	}
	if len(repo.inserted) != 0 {
		t.Error("conflicting movie must not be inserted")
	}
	if len(notifier.movieAdded) != 0 {
		t.Error("no fan-out on conflict")
	}
}

func TestAddMovieDuplicateKeyOnInsert(t *testing.T) {
	// the unique index decides when two adds race past the pre-check
	repo := &fakeMovieRepo{
		byTitle:   map[string]*model.Movie{},
		insertErr: duplicateKeyError(),
	}
	notifier := &fakeNotifier{}
	svc := NewMovieService(repo, notifier)

	err := svc.AddMovie(context.Background(), &model.Movie{Title: "The Matrix"})
	if !errors.Is(err, ErrMovieAlreadyExist) {
		t.Fatalf("expected ErrMovieAlreadyExist, got %v", err)
	}
	if len(notifier.movieAdded) != 0 {
		t.Error("no fan-out when the insert failed")
	}
}

func TestAddMovieInsertError(t *testing.T) {
	repo := &fakeMovieRepo{
		byTitle:   map[string]*model.Movie{},
		insertErr: errors.New("connection reset"),
	}
	notifier := &fakeNotifier{}
	svc := NewMovieService(repo, notifier)

	err := svc.AddMovie(context.Background(), &model.Movie{Title: "The Matrix"})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(notifier.movieAdded) != 0 {
		t.Error("no fan-out when the write did not commit")
	}
}

func TestGetMovieById(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &fakeMovieRepo{
		byId: map[primitive.ObjectID]*model.Movie{
			id: {Id: id, Title: "The Matrix"},
		},
	}
	svc := NewMovieService(repo, &fakeNotifier{})

	movie, err := svc.GetMovieById(context.Background(), id.Hex())
	if err != nil {
		t.Fatalf("GetMovieById failed: %v", err)
	}
	if movie.Title != "The Matrix" {
		t.Errorf("wrong movie: %v", movie.Title)
	}

	_, err = svc.GetMovieById(context.Background(), "not-a-hex-id")
	if !errors.Is(err, ErrInvalidMovieId) {
		t.Errorf("expected ErrInvalidMovieId, got %v", err)
	}

	_, err = svc.GetMovieById(context.Background(), primitive.NewObjectID().Hex())
	if !errors.Is(err, ErrMovieNotFound) {
		t.Errorf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestUpdateMovieNothingToUpdate(t *testing.T) {
	svc := NewMovieService(&fakeMovieRepo{}, &fakeNotifier{})

	_, err := svc.UpdateMovie(context.Background(), primitive.NewObjectID().Hex(), &model.UpdateMovieReq{})
	if !errors.Is(err, ErrNothingToUpdate) {
		t.Fatalf("expected ErrNothingToUpdate, got %v", err)
	}
}

func TestUpdateMovieTitleConflict(t *testing.T) {
	repo := &fakeMovieRepo{updateErr: duplicateKeyError()}
	svc := NewMovieService(repo, &fakeNotifier{})

	title := "Taken"
	_, err := svc.UpdateMovie(context.Background(), primitive.NewObjectID().Hex(), &model.UpdateMovieReq{Title: &title})
	if !errors.Is(err, ErrMovieAlreadyExist) {
		t.Fatalf("expected ErrMovieAlreadyExist, got %v", err)
	}
}

func TestUpdateMovieNotFound(t *testing.T) {
	repo := &fakeMovieRepo{byId: map[primitive.ObjectID]*model.Movie{}}
	svc := NewMovieService(repo, &fakeNotifier{})

	year := 2010
	_, err := svc.UpdateMovie(context.Background(), primitive.NewObjectID().Hex(), &model.UpdateMovieReq{Year: &year})
	if !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestDeleteMovie(t *testing.T) {
	svc := NewMovieService(&fakeMovieRepo{deleteCount: 1}, &fakeNotifier{})
	if err := svc.DeleteMovie(context.Background(), primitive.NewObjectID().Hex()); err != nil {
		t.Fatalf("DeleteMovie failed: %v", err)
	}

	svc = NewMovieService(&fakeMovieRepo{deleteCount: 0}, &fakeNotifier{})
	err := svc.DeleteMovie(context.Background(), primitive.NewObjectID().Hex())
	if !errors.Is(err, ErrMovieNotFound) {
		t.Errorf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestSearchMoviesNoResults(t *testing.T) {
	svc := NewMovieService(&fakeMovieRepo{}, &fakeNotifier{})

	_, err := svc.SearchMovies(context.Background(), "nothing matches this")
	if !errors.Is(err, ErrNoSearchResults) {
		t.Fatalf("expected ErrNoSearchResults, got %v", err)
	}
}

func TestGetMoviesDefaultLimit(t *testing.T) {
	repo := &fakeMovieRepo{}
	svc := NewMovieService(repo, &fakeNotifier{})

	_, err := svc.GetMovies(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("GetMovies failed: %v", err)
	}
	if repo.gotLimit != 5 {
		t.Errorf("expected default limit 5, got %v", repo.gotLimit)
	}

	_, _ = svc.GetMovies(context.Background(), 10, 25)
	if repo.gotSkip != 10 || repo.gotLimit != 25 {
		t.Errorf("expected skip/limit passthrough, got %v/%v", repo.gotSkip, repo.gotLimit)
	}
}

func TestBuildUpdateFields(t *testing.T) {
	title := "Taken"
	year := 2008
	fields := buildUpdateFields(&model.UpdateMovieReq{Title: &title, Year: &year})
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %v", len(fields))
	}
	if fields[0].Key != "title" || fields[0].Value != "Taken" {
		t.Errorf("unexpected field: %+v", fields[0])
	}
	if fields[1].Key != "year" || fields[1].Value != 2008 {
		t.Errorf("unexpected field: %+v", fields[1])
	}
}
