package api

import (
	"context"
	"errors"
	"fmt"
	"movie_catalog/api/middleware"
	"movie_catalog/configs"
	_ "movie_catalog/docs"
	"movie_catalog/internal/handler"
	"movie_catalog/model"
	"movie_catalog/pkg/response"
	"slices"
	"strings"
	"time"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var router *fiber.App

func InitRouter(movieHandler *handler.MovieHandler, commentHandler *handler.CommentHandler) {
	var defaultErrorHandler = func(c *fiber.Ctx, err error) error {
		// Status code defaults to 500
		code := fiber.StatusInternalServerError

		// Retrieve the custom status code if it's a *fiber.Error
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		// Set Content-Type: text/plain; charset=utf-8
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)

		if !strings.Contains(err.Error(), "/favicon.ico") && code >= 500 {
			fmt.Println(err.Error())
		}

		// Return status code with error message
		return response.ResponseError(c, "Internal Error", code)
	}

	router = fiber.New(fiber.Config{
		UnescapePath: true,
		ErrorHandler: defaultErrorHandler,
	})

	router.Use(helmet.New())
	router.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return middleware.LocalhostRegex.MatchString(origin) ||
				slices.Index(configs.GetConfigs().CorsAllowedOrigins, origin) != -1 ||
				slices.Index(configs.GetDbConfigs().CorsAllowedOrigins, origin) != -1
		},
		AllowCredentials: true,
	}))
	router.Use(timeoutMiddleware(time.Second * 10))
	router.Use(recover.New())
	router.Use(compress.New())
	router.Use(middleware.RateLimiter(
		configs.GetConfigs().RateLimitPerSec,
		configs.GetConfigs().RateLimitBurst,
	))

	router.Use(fibersentry.New(fibersentry.Config{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	userRoles := []string{model.RoleUser, model.RoleAdmin}

	movieRoutes := router.Group("v1/movie")
	{
		movieRoutes.Get("/", middleware.Auth(userRoles...), movieHandler.GetMovies)
		movieRoutes.Post("/", middleware.Auth(model.RoleAdmin), movieHandler.AddMovie)
		movieRoutes.Get("/search", middleware.Auth(userRoles...), movieHandler.SearchMovies)
		movieRoutes.Put("/comment/:id", middleware.Auth(userRoles...), commentHandler.UpdateComment)
		movieRoutes.Delete("/comment/:id", middleware.Auth(userRoles...), commentHandler.DeleteComment)
		movieRoutes.Get("/:id", middleware.Auth(userRoles...), movieHandler.GetMovieById)
		movieRoutes.Put("/:id", middleware.Auth(model.RoleAdmin), movieHandler.UpdateMovie)
		movieRoutes.Delete("/:id", middleware.Auth(model.RoleAdmin), movieHandler.DeleteMovie)
		movieRoutes.Post("/:id/comment", middleware.Auth(userRoles...), commentHandler.AddComment)
		movieRoutes.Get("/:id/comments", middleware.Auth(userRoles...), commentHandler.GetComments)
	}

	router.Get("/", HealthCheck)
	router.Get("/monitor", monitor.New())
	router.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	router.Get("/swagger/*", swagger.HandlerDefault) // default
}

func Start(addr string) error {
	return router.Listen(addr)
}

func timeoutMiddleware(timeout time.Duration) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {

		// wrap the request context with a timeout
		ctx, cancel := context.WithTimeout(c.Context(), timeout)

		// handlers reach it through c.UserContext(), so every store and
		// directory call downstream carries the deadline
		c.SetUserContext(ctx)

		defer func() {
			// check if context timeout was reached
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {

				// write response and abort the request
				c.SendStatus(fiber.StatusGatewayTimeout)
			}

			//cancel to clear resources after finished
			cancel()
		}()

		return c.Next()
	}
}

// HealthCheck godoc
//
//	@Summary		Show the status of server.
//	@Description	get the status of server.
//	@Tags			System
//	@Success		200	{object}	map[string]interface{}
//	@Router			/ [get]
func HealthCheck(c *fiber.Ctx) error {
	res := map[string]interface{}{
		"data": "Server is up and running",
	}

	if err := c.JSON(res); err != nil {
		return err
	}

	return nil
}
