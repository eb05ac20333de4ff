package service

import "errors"

// Sentinel errors the handlers translate to status codes.
var (
	ErrMovieAlreadyExist = errors.New("movie already exist")
	ErrMovieNotFound     = errors.New("movie not found")
	ErrMoviesNotFound    = errors.New("movies not found")
	ErrInvalidMovieId    = errors.New("invalid movie id")
	ErrNoSearchResults   = errors.New("no search results")
	ErrNothingToUpdate   = errors.New("nothing to update")

	ErrCommentNotFound  = errors.New("comment not found")
	ErrCommentsNotFound = errors.New("comments not found")
	ErrInvalidCommentId = errors.New("invalid comment id")

	ErrUserDataNotFound = errors.New("user data not found")
)
