package handler

import (
	"errors"
	"movie_catalog/internal/service"
	"movie_catalog/model"
	"movie_catalog/pkg/response"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type IMovieHandler interface {
	GetMovies(c *fiber.Ctx) error
	AddMovie(c *fiber.Ctx) error
	GetMovieById(c *fiber.Ctx) error
	UpdateMovie(c *fiber.Ctx) error
	DeleteMovie(c *fiber.Ctx) error
	SearchMovies(c *fiber.Ctx) error
}

type MovieHandler struct {
	movieService service.IMovieService
}

func NewMovieHandler(movieService service.IMovieService) *MovieHandler {
	return &MovieHandler{
		movieService: movieService,
	}
}

//------------------------------------------
//------------------------------------------

// GetMovies godoc
//
//	@Summary		List Movies
//	@Description	list movies, title and year only.
//	@Tags			Movie
//	@Param			limit	query		int	false	"limit"
//	@Param			skip	query		int	false	"skip"
//	@Success		200		{object}	response.ResponseOKWithDataModel
//	@Failure		401,403	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/movie [get]
func (m *MovieHandler) GetMovies(c *fiber.Ctx) error {
	limit := int64(c.QueryInt("limit", 0))
	skip := int64(c.QueryInt("skip", 0))

	res, err := m.movieService.GetMovies(c.UserContext(), skip, limit)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res)
}

// AddMovie godoc
//
//	@Summary		Add Movie
//	@Description	add a movie, admin only. Subscribers get notified best-effort.
//	@Tags			Movie
//	@Param			movie			body		model.Movie	true	"movie"
//	@Success		201				{object}	response.ResponseOKWithDataModel
//	@Failure		400,401,403,409	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/movie [post]
func (m *MovieHandler) AddMovie(c *fiber.Ctx) error {
	var movie model.Movie
	if err := c.BodyParser(&movie); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	if strings.TrimSpace(movie.Title) == "" {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	err := m.movieService.AddMovie(c.UserContext(), &movie)
	if err != nil {
		if errors.Is(err, service.ErrMovieAlreadyExist) {
			return response.ResponseError(c, response.MovieAlreadyExist, fiber.StatusConflict)
		}
		return response.ResponseError(c, response.ErrorInMovieAdding, fiber.StatusInternalServerError)
	}
	return response.ResponseCreated(c, movie)
}

// GetMovieById godoc
//
//	@Summary		Get Movie
//	@Description	get a movie by id.
//	@Tags			Movie
//	@Param			id				path		string	true	"movieId"
//	@Success		200				{object}	response.ResponseOKWithDataModel
//	@Failure		400,401,403,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/movie/:id [get]
func (m *MovieHandler) GetMovieById(c *fiber.Ctx) error {
	movieId := c.Params("id", "")
	if movieId == "" || movieId == ":id" {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}

	res, err := m.movieService.GetMovieById(c.UserContext(), movieId)
	if err != nil {
		return movieError(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

// UpdateMovie godoc
//
//	@Summary		Update Movie
//	@Description	partial update, only supplied fields change. Admin only.
//	@Tags			Movie
//	@Param			id					path		string					true	"movieId"
//	@Param			movie				body		model.UpdateMovieReq	true	"fields"
//	@Success		200					{object}	response.ResponseOKWithDataModel
//	@Failure		400,401,403,404,409	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/movie/:id [put]
func (m *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	movieId := c.Params("id", "")
	if movieId == "" || movieId == ":id" {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}

	var update model.UpdateMovieReq
	if err := c.BodyParser(&update); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	res, err := m.movieService.UpdateMovie(c.UserContext(), movieId, &update)
	if err != nil {
		if errors.Is(err, service.ErrNothingToUpdate) {
			return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
		}
		if errors.Is(err, service.ErrMovieAlreadyExist) {
			return response.ResponseError(c, response.MovieAlreadyExist, fiber.StatusConflict)
		}
		return movieError(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

// DeleteMovie godoc
//
//	@Summary		Delete Movie
//	@Description	delete a movie by id, admin only. Comments are kept.
//	@Tags			Movie
//	@Param			id				path		string	true	"movieId"
//	@Success		200				{object}	response.ResponseOKModel
//	@Failure		400,401,403,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/movie/:id [delete]
func (m *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	movieId := c.Params("id", "")
	if movieId == "" || movieId == ":id" {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}

	err := m.movieService.DeleteMovie(c.UserContext(), movieId)
	if err != nil {
		return movieError(c, err)
	}
	return response.ResponseOK(c, "")
}

// SearchMovies godoc
//
//	@Summary		Search Movies
//	@Description	text search on movie titles, no matches is a 404, not an empty list.
//	@Tags			Movie
//	@Param			query			query		string	true	"query"
//	@Success		200				{object}	response.ResponseOKWithDataModel
//	@Failure		400,401,403,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/movie/search [get]
func (m *MovieHandler) SearchMovies(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("query", ""))
	if query == "" {
		return response.ResponseError(c, response.InvalidSearchQuery, fiber.StatusBadRequest)
	}

	res, err := m.movieService.SearchMovies(c.UserContext(), query)
	if err != nil {
		if errors.Is(err, service.ErrNoSearchResults) {
			return response.ResponseError(c, response.NoSearchResults, fiber.StatusNotFound)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res)
}

//------------------------------------------
//------------------------------------------

func movieError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrInvalidMovieId) {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}
	if errors.Is(err, service.ErrMovieNotFound) {
		return response.ResponseError(c, response.MovieNotFound, fiber.StatusNotFound)
	}
	return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
}
