package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	apierrors "github.com/cheikh-mbacke/emailight-mobile/client/internal/errors"
)

func TestSend_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/things" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(echo{Message: "created", Value: 7})
	}))
	defer srv.Close()

	resp, err := Send[echo](context.Background(), srv.Client(), srv.URL+"/api", "/things", Options{Method: http.MethodPost, Body: map[string]int{"value": 7}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != http.StatusCreated || resp.Data == nil || resp.Data.Value != 7 {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	if resp.Message != "created" {
		t.Fatalf("message not lifted from body: %q", resp.Message)
	}
	if resp.Error != "" || resp.Details != nil {
		t.Fatalf("success envelope carries error fields: %+v", resp)
	}
}

func TestSend_SuccessArrayBodyHasNoMessage(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"value":1},{"value":2}]`))
	}))
	defer srv.Close()

	resp, err := Send[[]echo](context.Background(), srv.Client(), srv.URL, "/list", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != http.StatusOK || resp.Data == nil || len(*resp.Data) != 2 || resp.Message != "" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestSend_ErrorBody(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Validation failed","details":["name required","email invalid"],"message":"fix input"}`))
	}))
	defer srv.Close()

	resp, err := Send[echo](context.Background(), srv.Client(), srv.URL, "/things", Options{Method: http.MethodPost})
	if cat, ok := apierrors.CategoryOf(err); !ok || cat != apierrors.Irrecoverable {
		t.Fatalf("expected irrecoverable classified error, got %v", err)
	}
	if resp.Data != nil {
		t.Fatalf("failure envelope must not carry data: %+v", resp.Data)
	}
	if resp.Status != http.StatusBadRequest || resp.Error != "Validation failed" || resp.Message != "fix input" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	if len(resp.Details) != 2 || resp.Details[0] != "name required" || resp.Details[1] != "email invalid" {
		t.Fatalf("details not preserved in order: %+v", resp.Details)
	}
}

func TestSend_ErrorBodyWithoutErrorField(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	resp, _ := Send[echo](context.Background(), srv.Client(), srv.URL, "/things", Options{})
	if resp.Status != http.StatusConflict || resp.Error != apierrors.UnknownError || resp.Details != nil {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestSend_TransportFailure(t *testing.T) {
	t.Parallel()
	hc := &http.Client{Transport: &errRT{}}
	resp, err := Send[echo](context.Background(), hc, "http://example.com", "/things", Options{})
	if err == nil || !apierrors.IsTransport(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if resp.Status != http.StatusInternalServerError || resp.Error != apierrors.ConnectionFailed {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	if resp.Message == "" || resp.Data != nil {
		t.Fatalf("transport envelope should carry the cause only: %+v", resp)
	}
}

func TestSend_MalformedBody(t *testing.T) {
	t.Parallel()
	for _, status := range []int{http.StatusOK, http.StatusBadGateway} {
		status := status
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte("<html>bad gateway</html>"))
		}))
		resp, _ := Send[echo](context.Background(), srv.Client(), srv.URL, "/things", Options{})
		srv.Close()
		if resp.Status != http.StatusInternalServerError || resp.Error != apierrors.ConnectionFailed || resp.Message == "" {
			t.Fatalf("status %d: unexpected envelope: %+v", status, resp)
		}
	}
}

func TestSend_TypeMismatchIsParseFailure(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"value":"not a number"}`))
	}))
	defer srv.Close()
	resp, _ := Send[echo](context.Background(), srv.Client(), srv.URL, "/things", Options{})
	if resp.Status != http.StatusInternalServerError || resp.Data != nil {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestSend_HeadersQueryAndBody(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Content-Type"); got != "text/plain" {
			t.Errorf("caller header should win, got %q", got)
		}
		if got := r.Header.Get("X-Extra"); got != "1" {
			t.Errorf("missing caller header, got %q", got)
		}
		if got := r.URL.Query().Get("limit"); got != "5" {
			t.Errorf("missing query param, got %q", got)
		}
		b, _ := io.ReadAll(r.Body)
		if string(b) != `{"value":3}` {
			t.Errorf("unexpected body %s", b)
		}
		_, _ = w.Write([]byte(`{"value":3}`))
	}))
	defer srv.Close()

	opts := Options{
		Method:  http.MethodPut,
		Headers: map[string]string{"Content-Type": "text/plain", "X-Extra": "1"},
		Query:   url.Values{"limit": []string{"5"}},
		Body:    map[string]int{"value": 3},
	}
	resp, err := Send[echo](context.Background(), srv.Client(), srv.URL, "/things", opts)
	if err != nil || resp.Data == nil || resp.Data.Value != 3 {
		t.Fatalf("unexpected: %+v err=%v", resp, err)
	}
}

func TestSend_DefaultContentType(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET default, got %s", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("expected default content type, got %q", got)
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()
	if resp, _ := Send[echo](context.Background(), srv.Client(), srv.URL, "/", Options{}); !resp.OK() {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestSend_CtxCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	dummy := httptest.NewServer(http.NotFoundHandler())
	defer dummy.Close()
	resp, err := Send[echo](ctx, dummy.Client(), dummy.URL, "/things", Options{})
	if err == nil || resp.Status != http.StatusInternalServerError {
		t.Fatalf("expected transport envelope for canceled context, got %+v", resp)
	}
}

func TestSend_UnencodableBody(t *testing.T) {
	t.Parallel()
	resp, err := Send[echo](context.Background(), http.DefaultClient, "http://example.com", "/things", Options{Body: make(chan int)})
	if err == nil || resp.Status != http.StatusInternalServerError || resp.Error != apierrors.ConnectionFailed {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}
