package mockserver

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/cheikh-mbacke/emailight-mobile/client"
	"github.com/cheikh-mbacke/emailight-mobile/client/forms"
)

var errEmailTaken = errors.New("email already in use")

// maxPasswordBytes is the most bcrypt will hash.
const maxPasswordBytes = 72

// passwordRule returns the detail for a password that cannot be stored, or "".
func passwordRule(field, password string) string {
	switch {
	case len(password) < forms.MinPasswordLength:
		return field + " must be at least 6 characters"
	case len(password) > maxPasswordBytes:
		return field + " must be at most 72 bytes"
	}
	return ""
}

type authBody struct {
	client.AuthResponse
	Message string `json:"message,omitempty"`
}

func (s *Server) createUser(name, email, password string) (*user, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.byEmail[email]; taken {
		return nil, errEmailTaken
	}
	u := &user{
		User: client.User{
			ID:        newID(),
			Name:      strings.TrimSpace(name),
			Email:     email,
			CreatedAt: s.timestamp(),
		},
		passwordHash: hash,
	}
	s.users[u.ID] = u
	s.byEmail[email] = u.ID
	return u, nil
}

func validateRegistration(req client.RegisterRequest) []string {
	var details []string
	name := strings.TrimSpace(req.Name)
	if name == "" {
		details = append(details, "name is required")
	} else if utf8.RuneCountInString(name) > forms.MaxNameLength {
		details = append(details, "name must be at most 100 characters")
	}
	if !forms.ValidEmail(req.Email) {
		details = append(details, "email must be a valid address")
	}
	if d := passwordRule("password", req.Password); d != "" {
		details = append(details, d)
	}
	return details
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req client.RegisterRequest
	if !decode(w, r, &req) {
		return
	}
	if details := validateRegistration(req); len(details) > 0 {
		writeValidation(w, details)
		return
	}
	u, err := s.createUser(req.Name, req.Email, req.Password)
	if errors.Is(err, errEmailTaken) {
		writeJSON(w, http.StatusConflict, errorBody{Error: "Email already in use", Message: "email already in use"})
		return
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("hash password")
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	s.mu.Lock()
	token := s.issueTokenLocked(u.ID)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, authBody{
		AuthResponse: client.AuthResponse{User: u.User, Token: token},
		Message:      "User created successfully",
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req client.LoginRequest
	if !decode(w, r, &req) {
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	s.mu.Lock()
	id, ok := s.byEmail[email]
	var found client.User
	var hash []byte
	if ok {
		found, hash = s.users[id].User, s.users[id].passwordHash
	}
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	s.mu.Lock()
	token := s.issueTokenLocked(found.ID)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, authBody{
		AuthResponse: client.AuthResponse{User: found, Token: token},
		Message:      "Login successful",
	})
}

func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	delete(s.tokens, bearerToken(r))
	token := s.issueTokenLocked(currentUser(r))
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, client.TokenResult{Token: token})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	delete(s.tokens, bearerToken(r))
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, client.MessageResult{Message: "Logged out successfully"})
}

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	u, ok := s.users[currentUser(r)]
	var out client.User
	if ok {
		out = u.User
	}
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req client.UpdateProfileRequest
	if !decode(w, r, &req) {
		return
	}
	var details []string
	name := strings.TrimSpace(req.Name)
	if utf8.RuneCountInString(name) > forms.MaxNameLength {
		details = append(details, "name must be at most 100 characters")
	}
	if req.Email != "" && !forms.ValidEmail(req.Email) {
		details = append(details, "email must be a valid address")
	}
	if req.Password != "" {
		if d := passwordRule("password", req.Password); d != "" {
			details = append(details, d)
		}
	}
	if len(details) > 0 {
		writeValidation(w, details)
		return
	}

	var hash []byte
	if req.Password != "" {
		var err error
		if hash, err = bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost); err != nil {
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[currentUser(r)]
	if !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		if owner, taken := s.byEmail[email]; taken && owner != u.ID {
			writeError(w, http.StatusConflict, "Email already in use")
			return
		}
		delete(s.byEmail, u.Email)
		u.Email = email
		s.byEmail[email] = u.ID
	}
	if name != "" {
		u.Name = name
	}
	if hash != nil {
		u.passwordHash = hash
	}
	writeJSON(w, http.StatusOK, u.User)
}

func (s *Server) changePassword(w http.ResponseWriter, r *http.Request) {
	var req client.ChangePasswordRequest
	if !decode(w, r, &req) {
		return
	}
	if d := passwordRule("newPassword", req.NewPassword); d != "" {
		writeValidation(w, []string{d})
		return
	}

	s.mu.Lock()
	u, ok := s.users[currentUser(r)]
	var current []byte
	if ok {
		current = u.passwordHash
	}
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if bcrypt.CompareHashAndPassword(current, []byte(req.CurrentPassword)) != nil {
		writeError(w, http.StatusUnauthorized, "Current password is incorrect")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.bcryptCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	s.mu.Lock()
	u.passwordHash = hash
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, client.MessageResult{Message: "Password changed successfully"})
}
