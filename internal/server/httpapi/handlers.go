package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/wordsearch/internal/common"
	"github.com/dmitrijs2005/wordsearch/internal/logging"
	"github.com/dmitrijs2005/wordsearch/internal/server/models"
	"github.com/dmitrijs2005/wordsearch/internal/server/services"
)

type AccountManager interface {
	Register(ctx context.Context, userID, password string) error
	Login(ctx context.Context, userID, password string) (*services.TokenGrant, error)
	ListAccounts(ctx context.Context) (map[string]string, error)
}

type AnswerChecker interface {
	Check(ctx context.Context, category, candidate string) (bool, error)
}

type AccountResolver interface {
	Resolve(ctx context.Context, token string) (*models.Account, error)
}

type Handlers struct {
	accounts AccountManager
	answers  AnswerChecker
	logger   logging.Logger
}

func NewHandlers(accounts AccountManager, answers AnswerChecker, l logging.Logger) *Handlers {
	return &Handlers{accounts: accounts, answers: answers, logger: l}
}

func (h *Handlers) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "Hello World!"})
}

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.accounts.ListAccounts(r.Context())
	if err != nil {
		h.logger.Error(r.Context(), "list accounts", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	err := h.accounts.Register(r.Context(), *req.UserID, *req.Password)
	switch {
	case err == nil:
		h.logger.Info(r.Context(), "Registered", "user_id", *req.UserID)
		writeJSON(w, http.StatusOK, statusResponse{Status: "success", Message: "User registered"})
	case errors.Is(err, common.ErrDuplicateAccount):
		writeError(w, http.StatusBadRequest, "User already exists")
	default:
		h.logger.Error(r.Context(), "register", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	grant, err := h.accounts.Login(r.Context(), *req.UserID, *req.Password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, loginResponse{
			Status:      "success",
			Message:     "Login successful",
			AccessToken: grant.AccessToken,
			TokenType:   grant.TokenType,
		})
	case errors.Is(err, common.ErrUnknownAccount):
		writeUnauthorized(w, "User not found")
	case errors.Is(err, common.ErrBadCredential):
		writeUnauthorized(w, "Incorrect password")
	default:
		h.logger.Error(r.Context(), "login", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// CheckAnswer expects RequireAccount to have run.
func (h *Handlers) CheckAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	ok, err := h.answers.Check(r.Context(), *req.Category, *req.Answer)
	if err != nil {
		h.logger.Error(r.Context(), "check answer", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if acc := AccountFromContext(r.Context()); acc != nil {
		h.logger.Debug(r.Context(), "answer checked", "user_id", acc.UserID, "category", *req.Category, "correct", ok)
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "success", Message: ok})
}
