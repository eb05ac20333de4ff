package main

import (
	"log"
	"movie_catalog/api"
	"movie_catalog/configs"
	"movie_catalog/db/mongodb"
	"movie_catalog/db/postgres"
	"movie_catalog/db/rabbitmq"
	"movie_catalog/db/redis"
	"movie_catalog/internal/handler"
	"movie_catalog/internal/repository"
	"movie_catalog/internal/service"
	"time"

	"github.com/getsentry/sentry-go"
)

// @title						Movie Catalog
// @version					1.0
// @description				Catalog service, movies and comments with best-effort subscriber notifications.
// @termsOfService				http://swagger.io/terms/
// @contact.name				API Support
// @contact.url				http://www.swagger.io/support
// @contact.email				support@swagger.io
// @license.name				Apache 2.0
// @license.url				http://www.apache.org/licenses/LICENSE-2.0.html
// @BasePath					/
// @schemes					https
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and JWT token.
// @Accept						json
// @Produce					json
func main() {
	configs.LoadEnvVariables()

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              configs.GetConfigs().SentryDns,
		Release:          configs.GetConfigs().SentryRelease,
		TracesSampleRate: 1,
		EnableTracing:    true,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	// Flush buffered events before the program terminates.
	defer sentry.Flush(2 * time.Second)

	go redis.ConnectRedis()
	go rabbitmq.ConnectRabbit()

	mongoDB, err := mongodb.NewDatabase()
	if err != nil {
		log.Fatalf("could not initialize mongodb database connection: %s", err)
	}
	if err := mongoDB.EnsureIndexes(); err != nil {
		log.Fatalf("could not create mongodb indexes: %s", err)
	}
	go configs.LoadDbConfigs(mongoDB.GetDB())

	postgresDB, err := postgres.NewDatabase()
	if err != nil {
		log.Fatalf("could not initialize postgres database connection: %s", err)
	}

	userRep := repository.NewUserRepository(postgresDB.GetDB())
	service.NewUserService(userRep)

	directorySvc := service.NewDirectoryService()
	notificationSvc := service.NewNotificationService(
		directorySvc,
		service.RabbitBroadcastPublisher{},
		service.RedisNotifyPublisher{},
	)

	movieRep := repository.NewMovieRepository(mongoDB.GetDB())
	movieSvc := service.NewMovieService(movieRep, notificationSvc)
	movieHandler := handler.NewMovieHandler(movieSvc)

	commentRep := repository.NewCommentRepository(mongoDB.GetDB())
	commentSvc := service.NewCommentService(commentRep, movieRep, directorySvc, notificationSvc)
	commentHandler := handler.NewCommentHandler(commentSvc)

	defer rabbitmq.Close()

	api.InitRouter(movieHandler, commentHandler)
	api.Start("0.0.0.0:" + configs.GetConfigs().Port)
}
