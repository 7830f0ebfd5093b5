package mockserver

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/cheikh-mbacke/emailight-mobile/client"
)

func validateDraft(subject, content string, style client.Style) []string {
	var details []string
	if strings.TrimSpace(subject) == "" {
		details = append(details, "subject is required")
	}
	if strings.TrimSpace(content) == "" {
		details = append(details, "content is required")
	}
	if !style.Valid() {
		details = append(details, "style must be one of professional, casual, formal, friendly")
	}
	return details
}

// ownedDraftLocked returns the draft only when it belongs to userID, so
// other users' drafts are indistinguishable from missing ones.
func (s *Server) ownedDraftLocked(id, userID string) (*client.Draft, bool) {
	d, ok := s.drafts[id]
	if !ok || d.UserID != userID {
		return nil, false
	}
	return d, true
}

func (s *Server) listDrafts(w http.ResponseWriter, r *http.Request) {
	userID := currentUser(r)
	s.mu.Lock()
	out := make([]client.Draft, 0)
	for _, id := range s.order {
		if d := s.drafts[id]; d.UserID == userID {
			out = append(out, *d)
		}
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createDraft(w http.ResponseWriter, r *http.Request) {
	var in client.DraftInput
	if !decode(w, r, &in) {
		return
	}
	if details := validateDraft(in.Subject, in.Content, in.Style); len(details) > 0 {
		writeValidation(w, details)
		return
	}
	now := s.timestamp()
	d := &client.Draft{
		ID:        newID(),
		UserID:    currentUser(r),
		Subject:   in.Subject,
		Content:   in.Content,
		Style:     in.Style,
		Context:   in.Context,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.mu.Lock()
	s.drafts[d.ID] = d
	s.order = append(s.order, d.ID)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, d)
}

func (s *Server) getDraft(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	d, ok := s.ownedDraftLocked(mux.Vars(r)["id"], currentUser(r))
	var out client.Draft
	if ok {
		out = *d
	}
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "Draft not found")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) updateDraft(w http.ResponseWriter, r *http.Request) {
	var upd client.DraftUpdate
	if !decode(w, r, &upd) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.ownedDraftLocked(mux.Vars(r)["id"], currentUser(r))
	if !ok {
		writeError(w, http.StatusNotFound, "Draft not found")
		return
	}
	next := *d
	if upd.Subject != nil {
		next.Subject = *upd.Subject
	}
	if upd.Content != nil {
		next.Content = *upd.Content
	}
	if upd.Style != nil {
		next.Style = *upd.Style
	}
	if upd.Context != nil {
		next.Context = *upd.Context
	}
	if details := validateDraft(next.Subject, next.Content, next.Style); len(details) > 0 {
		writeValidation(w, details)
		return
	}
	next.UpdatedAt = s.timestamp()
	*d = next
	writeJSON(w, http.StatusOK, next)
}

func (s *Server) deleteDraft(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ownedDraftLocked(id, currentUser(r)); !ok {
		writeError(w, http.StatusNotFound, "Draft not found")
		return
	}
	delete(s.drafts, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	writeJSON(w, http.StatusOK, client.MessageResult{Message: "Draft deleted successfully"})
}
