package handler

import (
	"errors"
	"movie_catalog/internal/service"
	"movie_catalog/model"
	"movie_catalog/pkg/response"
	"movie_catalog/util"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type ICommentHandler interface {
	AddComment(c *fiber.Ctx) error
	GetComments(c *fiber.Ctx) error
	UpdateComment(c *fiber.Ctx) error
	DeleteComment(c *fiber.Ctx) error
}

type CommentHandler struct {
	commentService service.ICommentService
}

func NewCommentHandler(commentService service.ICommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

//------------------------------------------
//------------------------------------------

// AddComment godoc
//
//	@Summary		Add Comment
//	@Description	add a comment on a movie, authorship comes from the directory.
//	@Tags			Comment
//	@Param			id				path		string				true	"movieId"
//	@Param			comment			body		model.AddCommentReq	true	"comment"
//	@Success		201				{object}	response.ResponseOKWithDataModel
//	@Failure		400,401,403,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/movie/:id/comment [post]
func (h *CommentHandler) AddComment(c *fiber.Ctx) error {
	movieId := c.Params("id", "")
	if movieId == "" || movieId == ":id" {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}

	var req model.AddCommentReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	if strings.TrimSpace(req.Text) == "" {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	jwtUserData, ok := c.Locals("jwtUserData").(*util.MyJwtClaims)
	if !ok {
		return response.ResponseError(c, "Unauthorized", fiber.StatusUnauthorized)
	}

	res, err := h.commentService.AddComment(c.UserContext(), jwtUserData.UserId, movieId, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMovieId) {
			return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
		}
		if errors.Is(err, service.ErrUserDataNotFound) {
			return response.ResponseError(c, response.UserDataNotFound, fiber.StatusNotFound)
		}
		if errors.Is(err, service.ErrMovieNotFound) {
			return response.ResponseError(c, response.MovieNotFound, fiber.StatusNotFound)
		}
		return response.ResponseError(c, response.ErrorInCommentAdding, fiber.StatusInternalServerError)
	}
	return response.ResponseCreated(c, res)
}

// GetComments godoc
//
//	@Summary		List Comments
//	@Description	list the comments of a movie.
//	@Tags			Comment
//	@Param			id				path		string	true	"movieId"
//	@Success		200				{object}	response.ResponseOKWithDataModel
//	@Failure		400,401,403,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/movie/:id/comments [get]
func (h *CommentHandler) GetComments(c *fiber.Ctx) error {
	movieId := c.Params("id", "")
	if movieId == "" || movieId == ":id" {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}

	res, err := h.commentService.GetComments(c.UserContext(), movieId)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMovieId) {
			return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
		}
		if errors.Is(err, service.ErrCommentsNotFound) {
			return response.ResponseError(c, response.CommentsNotFound, fiber.StatusNotFound)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, res)
}

// UpdateComment godoc
//
//	@Summary		Update Comment
//	@Description	replace the text of a comment.
//	@Tags			Comment
//	@Param			id				path		string					true	"commentId"
//	@Param			comment			body		model.UpdateCommentReq	true	"comment"
//	@Success		200				{object}	response.ResponseOKWithDataModel
//	@Failure		400,401,403,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/movie/comment/:id [put]
func (h *CommentHandler) UpdateComment(c *fiber.Ctx) error {
	commentId := c.Params("id", "")
	if commentId == "" || commentId == ":id" {
		return response.ResponseError(c, response.InvalidCommentId, fiber.StatusBadRequest)
	}

	var req model.UpdateCommentReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	if strings.TrimSpace(req.Text) == "" {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	res, err := h.commentService.UpdateComment(c.UserContext(), commentId, req.Text)
	if err != nil {
		return commentError(c, err)
	}
	return response.ResponseOKWithData(c, res)
}

// DeleteComment godoc
//
//	@Summary		Delete Comment
//	@Description	delete a comment by id.
//	@Tags			Comment
//	@Param			id				path		string	true	"commentId"
//	@Success		200				{object}	response.ResponseOKModel
//	@Failure		400,401,403,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/movie/comment/:id [delete]
func (h *CommentHandler) DeleteComment(c *fiber.Ctx) error {
	commentId := c.Params("id", "")
	if commentId == "" || commentId == ":id" {
		return response.ResponseError(c, response.InvalidCommentId, fiber.StatusBadRequest)
	}

	err := h.commentService.DeleteComment(c.UserContext(), commentId)
	if err != nil {
		return commentError(c, err)
	}
	return response.ResponseOK(c, "")
}

//------------------------------------------
//------------------------------------------

func commentError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrInvalidCommentId) {
		return response.ResponseError(c, response.InvalidCommentId, fiber.StatusBadRequest)
	}
	if errors.Is(err, service.ErrCommentNotFound) {
		return response.ResponseError(c, response.CommentNotFound, fiber.StatusNotFound)
	}
	return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
}
