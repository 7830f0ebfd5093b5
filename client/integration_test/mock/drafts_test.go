package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	client "github.com/cheikh-mbacke/emailight-mobile/client"
)

func TestClient_UpdateDraft_SendsOnlySetFields(t *testing.T) {
	t.Parallel()
	var body map[string]any
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/drafts/d1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		_, _ = w.Write([]byte(`{"id":"d1","userId":"u1","subject":"New","content":"Old","style":"formal","createdAt":"t","updatedAt":"t"}`))
	}))
	defer hs.Close()

	c, err := client.New(client.WithBaseURL(hs.URL+"/api"), client.WithAuthToken("tok"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	subject := "New"
	resp := c.UpdateDraft(context.Background(), "d1", client.DraftUpdate{Subject: &subject})
	if !resp.OK() || resp.Data.Subject != "New" || resp.Data.Style != client.StyleFormal {
		t.Fatalf("unexpected envelope %+v", resp)
	}
	if len(body) != 1 || body["subject"] != "New" {
		t.Fatalf("expected only subject in body, got %v", body)
	}
}

func TestClient_GetDrafts_List(t *testing.T) {
	t.Parallel()
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"d1","subject":"a"},{"id":"d2","subject":"b"}]`))
	}))
	defer hs.Close()

	c, err := client.New(client.WithBaseURL(hs.URL + "/api"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	resp := c.GetDrafts(context.Background())
	if !resp.OK() || resp.Data == nil || len(*resp.Data) != 2 {
		t.Fatalf("unexpected envelope %+v", resp)
	}
	if (*resp.Data)[1].ID != "d2" {
		t.Fatalf("unexpected drafts %+v", *resp.Data)
	}
}

func TestClient_DeleteDraft_NotFound(t *testing.T) {
	t.Parallel()
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer hs.Close()

	c, err := client.New(client.WithBaseURL(hs.URL + "/api"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	resp := c.DeleteDraft(context.Background(), "missing")
	if resp.Status != http.StatusNotFound || resp.Error != client.ErrUnknown || resp.Data != nil {
		t.Fatalf("unexpected envelope %+v", resp)
	}
}
