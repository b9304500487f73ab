package server

import (
	"encoding/json"
	"net/http"

	errs "github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/errors"
)

// errorBody is the JSON form of every error response.
type errorBody struct {
	Code    errs.Code `json:"code"`
	Message string    `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := errs.GetCode(err)
	msg := errs.UserMessage(err)
	if code == "" {
		code = errs.ErrCodeInternal
		msg = "internal error"
	}
	writeJSON(w, errs.HTTPStatus(code), errorBody{Code: code, Message: msg})
}

func notFound(r *http.Request) error {
	return errs.New(errs.ErrCodeNotFound, "no route for %s %s", r.Method, r.URL.Path)
}
