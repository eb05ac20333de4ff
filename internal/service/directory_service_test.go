package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestDirectory(handler http.Handler) (*DirectoryService, *httptest.Server) {
	srv := httptest.NewServer(handler)
	directory := &DirectoryService{
		baseUrl:    srv.URL,
		httpClient: srv.Client(),
	}
	return directory, srv
}

func TestGetSubscribers(t *testing.T) {
	directory, srv := newTestDirectory(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/user/subscribers" {
			t.Errorf("unexpected path: %v", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"emails":["neo@zion.io","trinity@zion.io"]}`))
	}))
	defer srv.Close()

	emails, err := directory.GetSubscribers(context.Background())
	if err != nil {
		t.Fatalf("GetSubscribers failed: %v", err)
	}
	if len(emails) != 2 || emails[1] != "trinity@zion.io" {
		t.Errorf("unexpected emails: %v", emails)
	}
}

func TestGetSubscribersBadStatus(t *testing.T) {
	directory, srv := newTestDirectory(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := directory.GetSubscribers(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGetNameEmail(t *testing.T) {
	directory, srv := newTestDirectory(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/user/identity/12" {
			t.Errorf("unexpected path: %v", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"neo","email":"neo@zion.io"}`))
	}))
	defer srv.Close()

	identity, err := directory.GetNameEmail(context.Background(), 12)
	if err != nil {
		t.Fatalf("GetNameEmail failed: %v", err)
	}
	if identity.Name != "neo" || identity.Email != "neo@zion.io" {
		t.Errorf("unexpected identity: %+v", identity)
	}
}

func TestGetNameEmailUnknownUser(t *testing.T) {
	directory, srv := newTestDirectory(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	// the missing user surfaces as an empty identity, not an error
	identity, err := directory.GetNameEmail(context.Background(), 12)
	if err != nil {
		t.Fatalf("GetNameEmail failed: %v", err)
	}
	if identity.Name != "" || identity.Email != "" {
		t.Errorf("expected empty identity, got %+v", identity)
	}
}
