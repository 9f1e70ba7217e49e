package api

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymmanager/internal/gym"
	"github.com/2beens/gymmanager/pkg"
)

const (
	MsgNoValidFields   = "No valid fields to update"
	MsgNotAssigned     = "Client not assigned to this trainer"
	MsgInternalError   = "internal server error"
	msgInvalidRef      = "Referenced record does not exist"
	msgInvalidValue    = "Invalid field value"
	msgDuplicate       = "Record already exists"
	msgMissingRequired = "Missing required field: "
)

// Errors writes JSON error responses. With ExposeDBErrors the driver error
// text is sent to the client instead of a generic message.
type Errors struct {
	ExposeDBErrors bool
}

func NewErrors(exposeDBErrors bool) Errors {
	return Errors{ExposeDBErrors: exposeDBErrors}
}

func (e Errors) MissingField(w http.ResponseWriter, field string) {
	pkg.WriteJSONError(w, http.StatusBadRequest, msgMissingRequired+field)
}

func (e Errors) BadRequest(w http.ResponseWriter, msg string) {
	pkg.WriteJSONError(w, http.StatusBadRequest, msg)
}

// Write maps err to a status code; notFoundMsg is used for gym.ErrNotFound.
func (e Errors) Write(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, gym.ErrNotFound):
		log.Tracef("not found: %s", err)
		pkg.WriteJSONError(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, gym.ErrNotAssigned):
		log.Debugf("not assigned: %s", err)
		pkg.WriteJSONError(w, http.StatusForbidden, MsgNotAssigned)
	case errors.Is(err, gym.ErrInvalidReference):
		log.Debugf("invalid reference: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, e.clientMsg(err, msgInvalidRef))
	case errors.Is(err, gym.ErrInvalidValue):
		log.Debugf("invalid value: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, e.clientMsg(err, msgInvalidValue))
	case errors.Is(err, gym.ErrDuplicate):
		log.Debugf("duplicate: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, e.clientMsg(err, msgDuplicate))
	default:
		log.Errorf("request failed: %s", err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, e.clientMsg(err, MsgInternalError))
	}
}

func (e Errors) clientMsg(err error, generic string) string {
	if e.ExposeDBErrors {
		return err.Error()
	}
	return generic
}
