package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua == "" || ua == "Go-http-client/1.1" {
			t.Errorf("expected a browser User-Agent, got %q", ua)
		}
		w.Write([]byte("hello body"))
	}))
	defer srv.Close()

	body, err := New().Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if body != "hello body" {
		t.Errorf("body = %q", body)
	}
}

func TestFetchStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := New().Fetch(context.Background(), srv.URL)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Code != http.StatusForbidden {
		t.Errorf("code = %d, want 403", se.Code)
	}
}

func TestFetchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	start := time.Now()
	_, err := New(WithTimeout(50 * time.Millisecond)).Fetch(context.Background(), srv.URL)
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 400*time.Millisecond {
		t.Errorf("timeout did not cancel the in-flight request (took %s)", elapsed)
	}
}

func TestFetchNetworkError(t *testing.T) {
	// Closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New().Fetch(context.Background(), url)
	if err == nil {
		t.Fatal("expected a network error")
	}
	var se *StatusError
	if errors.As(err, &se) {
		t.Errorf("network failure misreported as status error")
	}
}

func TestFetchBadURL(t *testing.T) {
	if _, err := New().Fetch(context.Background(), "://nope"); err == nil {
		t.Fatal("expected error for malformed url")
	}
}
