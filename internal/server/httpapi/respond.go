package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/wordsearch/internal/common"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type statusResponse struct {
	Status  string `json:"status"`
	Message any    `json:"message"`
}

type loginResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type credentialsRequest struct {
	UserID   *string `json:"user_id"`
	Password *string `json:"password"`
}

type answerRequest struct {
	Category *string `json:"category"`
	Answer   *string `json:"answer"`
}

var errBadBody = errors.New("invalid request body")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

func writeUnauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeError(w, http.StatusUnauthorized, detail)
}

func isUnauthorized(err error) bool {
	return errors.Is(err, common.ErrUnauthorized) || errors.Is(err, common.ErrInvalidToken)
}

type validator interface {
	validate() error
}

func required(name string) error {
	return fmt.Errorf("%w: field %q required", errBadBody, name)
}

func (r *credentialsRequest) validate() error {
	if r.UserID == nil {
		return required("user_id")
	}
	if r.Password == nil {
		return required("password")
	}
	return nil
}

func (r *answerRequest) validate() error {
	if r.Category == nil {
		return required("category")
	}
	if r.Answer == nil {
		return required("answer")
	}
	return nil
}

// decodeBody reads a single JSON object into v and checks its fields.
func decodeBody(body io.Reader, v validator) error {
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", errBadBody, err)
	}
	return v.validate()
}
