package service

import (
	"context"
	"movie_catalog/internal/repository"
	"movie_catalog/model"
	"sync"
	"time"

	"github.com/badoux/checkmail"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ICommentService interface {
	AddComment(ctx context.Context, userId int64, movieId string, text string) (*model.Comment, error)
	GetComments(ctx context.Context, movieId string) ([]model.Comment, error)
	UpdateComment(ctx context.Context, commentId string, text string) (*model.Comment, error)
	DeleteComment(ctx context.Context, commentId string) error
}

type CommentService struct {
	commentRepo  repository.ICommentRepository
	movieRepo    repository.IMovieRepository
	directory    IDirectoryService
	notification INotificationService
}

func NewCommentService(
	commentRepo repository.ICommentRepository,
	movieRepo repository.IMovieRepository,
	directory IDirectoryService,
	notification INotificationService,
) *CommentService {
	return &CommentService{
		commentRepo:  commentRepo,
		movieRepo:    movieRepo,
		directory:    directory,
		notification: notification,
	}
}

//------------------------------------------
//------------------------------------------

// AddComment resolves the author identity and the target movie in parallel,
// persists the comment, and only then hands it to the notify transport. The
// commit must strictly precede the publish, the event quotes the persisted
// comment.
func (s *CommentService) AddComment(ctx context.Context, userId int64, movieId string, text string) (*model.Comment, error) {
	id, err := primitive.ObjectIDFromHex(movieId)
	if err != nil {
		return nil, ErrInvalidMovieId
	}

	var (
		identity    *model.UserIdentity
		identityErr error
		movie       *model.Movie
		movieErr    error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)
	go func() {
		defer wg.Done()
		identity, identityErr = s.directory.GetNameEmail(ctx, userId)
	}()
	go func() {
		defer wg.Done()
		movie, movieErr = s.movieRepo.FindById(ctx, id)
	}()
	wg.Wait()

	if identityErr != nil {
		return nil, identityErr
	}
	if identity.Name == "" || identity.Email == "" {
		return nil, ErrUserDataNotFound
	}
	if err := checkmail.ValidateFormat(identity.Email); err != nil {
		return nil, ErrUserDataNotFound
	}

	if movieErr != nil {
		if movieErr == mongo.ErrNoDocuments {
			return nil, ErrMovieNotFound
		}
		return nil, movieErr
	}

	comment := &model.Comment{
		Name:    identity.Name,
		Email:   identity.Email,
		MovieId: id,
		Text:    text,
		Date:    time.Now(),
	}
	err = s.commentRepo.Insert(ctx, comment)
	if err != nil {
		return nil, err
	}

	// committed, fan-out failure stays invisible to the caller
	s.notification.CommentAdded(comment, movie.Title)
	return comment, nil
}

func (s *CommentService) GetComments(ctx context.Context, movieId string) ([]model.Comment, error) {
	id, err := primitive.ObjectIDFromHex(movieId)
	if err != nil {
		return nil, ErrInvalidMovieId
	}

	comments, err := s.commentRepo.FindByMovieId(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, ErrCommentsNotFound
	}
	return comments, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, commentId string, text string) (*model.Comment, error) {
	id, err := primitive.ObjectIDFromHex(commentId)
	if err != nil {
		return nil, ErrInvalidCommentId
	}

	comment, err := s.commentRepo.UpdateText(ctx, id, text)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, commentId string) error {
	id, err := primitive.ObjectIDFromHex(commentId)
	if err != nil {
		return ErrInvalidCommentId
	}

	deleted, err := s.commentRepo.DeleteById(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrCommentNotFound
	}
	return nil
}
