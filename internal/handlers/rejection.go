package handlers

import (
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-greeter/internal/models"
)

// Application-level status ids carried in StatusMessage.ID.
const (
	StatusIDCreated                uint64 = 1
	StatusIDMissingJSONContentType uint64 = 86
	StatusIDJSONDataError          uint64 = 87
	StatusIDJSONSyntaxError        uint64 = 88
	StatusIDBytesRejection         uint64 = 89
	StatusIDUnknown                uint64 = 99
)

// RejectionKind tells why a request body could not become the target value.
type RejectionKind int

const (
	RejectionUnknown RejectionKind = iota
	RejectionMissingJSONContentType
	RejectionJSONData
	RejectionJSONSyntax
	RejectionBytes
)

func (k RejectionKind) String() string {
	switch k {
	case RejectionMissingJSONContentType:
		return "missing json content type"
	case RejectionJSONData:
		return "json data error"
	case RejectionJSONSyntax:
		return "json syntax error"
	case RejectionBytes:
		return "bytes rejection"
	default:
		return "unknown"
	}
}

// StatusMessage returns the fixed response payload for the kind.
func (k RejectionKind) StatusMessage() models.StatusMessage {
	switch k {
	case RejectionMissingJSONContentType:
		return models.StatusMessage{
			ID:          StatusIDMissingJSONContentType,
			Description: "Request didn't have `Content-Type: application/json` header",
		}
	case RejectionJSONData:
		return models.StatusMessage{
			ID:          StatusIDJSONDataError,
			Description: "Couldn't deserialize the body into the target type",
		}
	case RejectionJSONSyntax:
		return models.StatusMessage{
			ID:          StatusIDJSONSyntaxError,
			Description: "Syntax error in the body",
		}
	case RejectionBytes:
		return models.StatusMessage{
			ID:          StatusIDBytesRejection,
			Description: "Failed to extract the request body",
		}
	default:
		return models.StatusMessage{
			ID:          StatusIDUnknown,
			Description: "Unknown error",
		}
	}
}

// Rejection is returned by JSONExtractor when a body is refused.
type Rejection struct {
	Kind RejectionKind
	Err  error
}

func (r *Rejection) Error() string {
	if r.Err == nil {
		return r.Kind.String()
	}
	return fmt.Sprintf("%s: %v", r.Kind, r.Err)
}

func (r *Rejection) Unwrap() error {
	return r.Err
}

// rejectionStatus maps any extraction error to its response payload.
// Errors that are not a *Rejection fall into the unknown kind.
func rejectionStatus(err error) models.StatusMessage {
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej.Kind.StatusMessage()
	}
	return RejectionUnknown.StatusMessage()
}
