package seventeentrack

import (
	"encoding/json"
	"fmt"

	"github.com/boxbounty/tracking-service/internal/core/domain"
)

// numberRequest is one element of the JSON array both endpoints accept.
type numberRequest struct {
	Number  string `json:"number"`
	Carrier int    `json:"carrier,omitempty"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type envelopeHeader struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type registerEnvelope struct {
	envelopeHeader
	Data struct {
		Message string     `json:"message"`
		Errors  []apiError `json:"errors"`
	} `json:"data"`
}

func (e registerEnvelope) failureMessage() string {
	return failureMessage(e.envelopeHeader, e.Data.Errors, e.Data.Message)
}

type trackInfoEnvelope struct {
	envelopeHeader
	Data struct {
		Accepted []domain.TrackedItem `json:"accepted"`
		Rejected []json.RawMessage    `json:"rejected"`
		NotFound []json.RawMessage    `json:"not_found"`
		Errors   []apiError           `json:"errors"`
	} `json:"data"`
}

func (e trackInfoEnvelope) failureMessage() string {
	return failureMessage(e.envelopeHeader, e.Data.Errors, "")
}

// failureMessage picks the most specific description of a non-zero code.
func failureMessage(h envelopeHeader, errs []apiError, dataMsg string) string {
	switch {
	case len(errs) > 0 && errs[0].Message != "":
		return errs[0].Message
	case h.Message != "":
		return h.Message
	case dataMsg != "":
		return dataMsg
	default:
		return fmt.Sprintf("provider returned code %d", h.Code)
	}
}
