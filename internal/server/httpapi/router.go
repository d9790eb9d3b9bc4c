package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/wordsearch/internal/logging"
	"github.com/gorilla/mux"
)

type RouterDeps struct {
	Accounts AccountManager
	Answers  AnswerChecker
	Guard    AccountResolver
	Logger   logging.Logger
}

func NewRouter(d RouterDeps) http.Handler {
	l := d.Logger.With("module", "http")
	h := NewHandlers(d.Accounts, d.Answers, l)

	r := mux.NewRouter()
	r.HandleFunc("/", h.Root).Methods(http.MethodGet)
	r.HandleFunc("/users", h.ListUsers).Methods(http.MethodGet)
	r.HandleFunc("/signup", h.Signup).Methods(http.MethodPost)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	r.Handle("/checkCorrectAnswer",
		Chain(http.HandlerFunc(h.CheckAnswer), RequireAccount(d.Guard, l)),
	).Methods(http.MethodPost)
	r.Handle("/ws", NewLiveHandler(l)).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	return Chain(r, RequestID(), Logging(l))
}
