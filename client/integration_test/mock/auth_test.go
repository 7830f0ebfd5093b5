package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	client "github.com/cheikh-mbacke/emailight-mobile/client"
)

func TestClient_Login_Success(t *testing.T) {
	t.Parallel()
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var req client.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email != "a@b.co" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{
            "user": {"id":"u1","name":"A","email":"a@b.co","createdAt":"2025-01-01T00:00:00Z"},
            "token": "tok",
            "message": "Login successful"
        }`))
	}))
	defer hs.Close()

	c, err := client.New(client.WithBaseURL(hs.URL + "/api"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	resp := c.Login(context.Background(), client.LoginRequest{Email: "a@b.co", Password: "pw"})
	if resp.Status != http.StatusOK || resp.Data == nil {
		t.Fatalf("unexpected envelope %+v", resp)
	}
	if resp.Data.Token != "tok" || resp.Data.User.ID != "u1" || resp.Message != "Login successful" {
		t.Fatalf("unexpected data %+v message %q", resp.Data, resp.Message)
	}
	if c.IsAuthenticated() {
		t.Fatalf("login must not store the token by itself")
	}
}

func TestClient_Register_Conflict(t *testing.T) {
	t.Parallel()
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"Email already in use"}`))
	}))
	defer hs.Close()

	c, err := client.New(client.WithBaseURL(hs.URL + "/api"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	resp := c.Register(context.Background(), client.RegisterRequest{Name: "A", Email: "a@b.co", Password: "secret1"})
	if resp.Status != http.StatusConflict || resp.Error != "Email already in use" || resp.Data != nil {
		t.Fatalf("unexpected envelope %+v", resp)
	}
}

func TestClient_Profile_ValidationDetails(t *testing.T) {
	t.Parallel()
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Missing or invalid authorization header"}`))
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Validation failed","details":["email must be a valid address"],"message":"validation error"}`))
	}))
	defer hs.Close()

	c, err := client.New(client.WithBaseURL(hs.URL+"/api"), client.WithAuthToken("tok"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	resp := c.UpdateProfile(context.Background(), client.UpdateProfileRequest{Email: "nope"})
	if resp.Status != http.StatusBadRequest || resp.Error != "Validation failed" || resp.Message != "validation error" {
		t.Fatalf("unexpected envelope %+v", resp)
	}
	if len(resp.Details) != 1 || resp.Details[0] != "email must be a valid address" {
		t.Fatalf("unexpected details %v", resp.Details)
	}
}

func TestClient_GarbageBody(t *testing.T) {
	t.Parallel()
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway</html>`))
	}))
	defer hs.Close()

	c, err := client.New(client.WithBaseURL(hs.URL + "/api"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	resp := c.HealthCheck(context.Background())
	if resp.Status != http.StatusInternalServerError || resp.Error != client.ErrConnectionFailed || resp.Message == "" {
		t.Fatalf("unexpected envelope %+v", resp)
	}
}
