package mockserver

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/cheikh-mbacke/emailight-mobile/client"
)

var providerDomains = map[client.Provider]string{
	client.ProviderGmail:   "gmail.com",
	client.ProviderOutlook: "outlook.com",
	client.ProviderYahoo:   "yahoo.com",
}

func (s *Server) ownedAccountLocked(id, userID string) (*client.EmailAccount, bool) {
	a, ok := s.accounts[id]
	if !ok || a.UserID != userID {
		return nil, false
	}
	return a, true
}

func (s *Server) listAccounts(w http.ResponseWriter, r *http.Request) {
	userID := currentUser(r)
	s.mu.Lock()
	out := make([]client.EmailAccount, 0)
	for _, id := range s.accOrder {
		if a := s.accounts[id]; a.UserID == userID {
			out = append(out, *a)
		}
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

// connectAccount exchanges an auth code for a connected mailbox. The code
// itself becomes the mailbox's local part.
func (s *Server) connectAccount(w http.ResponseWriter, r *http.Request) {
	var req client.ConnectAccountRequest
	if !decode(w, r, &req) {
		return
	}
	var details []string
	if !req.Provider.Valid() {
		details = append(details, "provider must be one of gmail, outlook, yahoo")
	}
	if strings.TrimSpace(req.AuthCode) == "" {
		details = append(details, "authCode is required")
	}
	if len(details) > 0 {
		writeValidation(w, details)
		return
	}

	local := strings.ToLower(strings.TrimSpace(req.AuthCode))
	if i := strings.IndexByte(local, '@'); i >= 0 {
		local = local[:i]
	}
	a := &client.EmailAccount{
		ID:          newID(),
		UserID:      currentUser(r),
		Email:       local + "@" + providerDomains[req.Provider],
		Provider:    req.Provider,
		IsConnected: true,
		CreatedAt:   s.timestamp(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.accOrder {
		if other := s.accounts[id]; other.UserID == a.UserID && other.Email == a.Email {
			other.IsConnected = true
			writeJSON(w, http.StatusOK, other)
			return
		}
	}
	s.accounts[a.ID] = a
	s.accOrder = append(s.accOrder, a.ID)
	writeJSON(w, http.StatusCreated, a)
}

func (s *Server) disconnectAccount(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.ownedAccountLocked(mux.Vars(r)["id"], currentUser(r))
	if !ok {
		writeError(w, http.StatusNotFound, "Email account not found")
		return
	}
	a.IsConnected = false
	writeJSON(w, http.StatusOK, client.MessageResult{Message: "Email account disconnected"})
}

func (s *Server) sendEmail(w http.ResponseWriter, r *http.Request) {
	var req client.SendEmailRequest
	if !decode(w, r, &req) {
		return
	}
	var details []string
	if strings.TrimSpace(req.To) == "" {
		details = append(details, "to is required")
	}
	if strings.TrimSpace(req.Subject) == "" {
		details = append(details, "subject is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		details = append(details, "content is required")
	}
	if len(details) > 0 {
		writeValidation(w, details)
		return
	}

	userID := currentUser(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.ownedAccountLocked(mux.Vars(r)["id"], userID)
	if !ok {
		writeError(w, http.StatusNotFound, "Email account not found")
		return
	}
	if !a.IsConnected {
		writeJSON(w, http.StatusBadRequest, errorBody{
			Error:   "Email account is disconnected",
			Message: "reconnect the account before sending",
		})
		return
	}
	sent := sentEmail{
		ID:        newID(),
		AccountID: a.ID,
		To:        req.To,
		Cc:        req.Cc,
		Bcc:       req.Bcc,
		Subject:   req.Subject,
		Content:   req.Content,
		SentAt:    s.timestamp(),
	}
	s.history[userID] = append(s.history[userID], sent)
	writeJSON(w, http.StatusOK, client.SendEmailResult{Message: "Email sent successfully", MessageID: sent.ID})
}
