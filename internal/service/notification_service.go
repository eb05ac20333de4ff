package service

import (
	"context"
	"encoding/json"
	"fmt"
	"movie_catalog/configs"
	"movie_catalog/model"
	errorHandler "movie_catalog/pkg/error"
	"movie_catalog/pkg/metrics"
	"time"
)

const (
	MovieAddedQueue     = "movie.added"
	CommentAddedChannel = "notification.add.comment"
)

// Fan-out happens after the primary write committed. It runs on its own
// detached context so caller cancellation cannot abort it, bounded by the
// fan-out timeout so it cannot block shutdown either. One attempt per
// transport, a failure is recorded and swallowed, never returned upward.

type IBroadcastPublisher interface {
	Publish(ctx context.Context, queueName string, body []byte) error
}

type INotifyPublisher interface {
	Publish(ctx context.Context, channel string, body []byte) error
}

type INotificationService interface {
	MovieAdded(title string)
	CommentAdded(comment *model.Comment, movieTitle string)
}

type NotificationService struct {
	directory IDirectoryService
	broadcast IBroadcastPublisher
	notify    INotifyPublisher
}

func NewNotificationService(directory IDirectoryService, broadcast IBroadcastPublisher, notify INotifyPublisher) *NotificationService {
	return &NotificationService{
		directory: directory,
		broadcast: broadcast,
		notify:    notify,
	}
}

//------------------------------------------
//------------------------------------------

func (n *NotificationService) MovieAdded(title string) {
	ctx, cancel := fanoutContext()
	defer cancel()

	emails, ok := n.resolveSubscribers(ctx, MovieAddedQueue)
	if !ok || len(emails) == 0 {
		return
	}

	event := model.MovieAddedEvent{
		Key:              "1",
		Title:            title,
		SubscriberEmails: emails,
	}
	body, err := json.Marshal(event)
	if err != nil {
		n.skip(MovieAddedQueue, "marshal", err)
		return
	}

	if err := n.broadcast.Publish(ctx, MovieAddedQueue, body); err != nil {
		n.skip(MovieAddedQueue, "publish", err)
		return
	}
	metrics.NotificationsPublished.WithLabelValues(MovieAddedQueue).Inc()
}

func (n *NotificationService) CommentAdded(comment *model.Comment, movieTitle string) {
	ctx, cancel := fanoutContext()
	defer cancel()

	emails, ok := n.resolveSubscribers(ctx, CommentAddedChannel)
	if !ok || len(emails) == 0 {
		return
	}

	event := model.CommentAddedEvent{
		Name:             comment.Name,
		Email:            comment.Email,
		Text:             comment.Text,
		MovieName:        movieTitle,
		SubscriberEmails: emails,
	}
	body, err := json.Marshal(event)
	if err != nil {
		n.skip(CommentAddedChannel, "marshal", err)
		return
	}

	if err := n.notify.Publish(ctx, CommentAddedChannel, body); err != nil {
		n.skip(CommentAddedChannel, "publish", err)
		return
	}
	metrics.NotificationsPublished.WithLabelValues(CommentAddedChannel).Inc()
}

//------------------------------------------
//------------------------------------------

func (n *NotificationService) resolveSubscribers(ctx context.Context, topic string) ([]string, bool) {
	if configs.GetDbConfigs().NotificationsDisabled {
		return nil, false
	}

	emails, err := n.directory.GetSubscribers(ctx)
	if err != nil {
		n.skip(topic, "subscriber lookup", err)
		return nil, false
	}
	return emails, true
}

func (n *NotificationService) skip(topic string, reason string, err error) {
	errorMessage := fmt.Sprintf("Notification skipped (%v, %v): %v", topic, reason, err)
	errorHandler.SaveError(errorMessage, err)
	metrics.NotificationsSkipped.WithLabelValues(topic, reason).Inc()
}

func fanoutContext() (context.Context, context.CancelFunc) {
	timeoutSec := configs.GetDbConfigs().FanoutTimeoutSec
	if timeoutSec == 0 {
		timeoutSec = int64(configs.GetConfigs().FanoutTimeoutSec)
	}
	return context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
}
