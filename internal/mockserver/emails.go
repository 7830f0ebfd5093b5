package mockserver

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/cheikh-mbacke/emailight-mobile/client"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type styleTemplate struct {
	greeting, closing string
}

var templates = map[client.Style]styleTemplate{
	client.StyleProfessional: {"Hello,", "Best regards,"},
	client.StyleCasual:       {"Hey!", "Cheers,"},
	client.StyleFormal:       {"Dear Sir or Madam,", "Yours faithfully,"},
	client.StyleFriendly:     {"Hi there!", "Warm wishes,"},
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request) {
	var req client.EmailGenerationRequest
	if !decode(w, r, &req) {
		return
	}
	var details []string
	if strings.TrimSpace(req.Content) == "" {
		details = append(details, "content is required")
	}
	if !req.Style.Valid() {
		details = append(details, "style must be one of professional, casual, formal, friendly")
	}
	if len(details) > 0 {
		writeValidation(w, details)
		return
	}

	t := templates[req.Style]
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", t.greeting)
	if c := strings.TrimSpace(req.Context); c != "" {
		fmt.Fprintf(&b, "%s\n\n", c)
	}
	fmt.Fprintf(&b, "%s\n\n%s", strings.TrimSpace(req.Content), t.closing)
	writeJSON(w, http.StatusOK, client.GeneratedEmail{GeneratedContent: b.String()})
}

// getHistory pages through sent emails, newest first.
func (s *Server) getHistory(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(r, "limit", defaultHistoryLimit)
	if !ok || limit <= 0 || limit > maxHistoryLimit {
		writeValidation(w, []string{"limit must be an integer between 1 and 100"})
		return
	}
	offset, ok := queryInt(r, "offset", 0)
	if !ok || offset < 0 {
		writeValidation(w, []string{"offset must be a non-negative integer"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.history[currentUser(r)]
	total := len(all)
	page := make([]sentEmail, 0, min(limit, total))
	for i := total - 1 - offset; i >= 0 && len(page) < limit; i-- {
		page = append(page, all[i])
	}

	writeJSON(w, http.StatusOK, struct {
		Emails     []sentEmail `json:"emails"`
		Total      int         `json:"total"`
		Page       int         `json:"page"`
		TotalPages int         `json:"totalPages"`
	}{
		Emails:     page,
		Total:      total,
		Page:       offset/limit + 1,
		TotalPages: (total + limit - 1) / limit,
	})
}

func queryInt(r *http.Request, key string, def int) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	return n, err == nil
}
