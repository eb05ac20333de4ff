package model

// Payloads are built fresh per fan-out attempt and never persisted, a failed
// publish drops them.

type MovieAddedEvent struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	SubscriberEmails []string `json:"data"`
}

type CommentAddedEvent struct {
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Text             string   `json:"text"`
	MovieName        string   `json:"movieName"`
	SubscriberEmails []string `json:"subscriberEmails"`
}

//------------------------------------------
//------------------------------------------

type UserIdentity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SubscriberListRes struct {
	Emails []string `json:"emails"`
}
