package httpx

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mwale-dev/shopledger/internal/apperr"
)

// Respond writes body as JSON with the given status.
func Respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error maps an error to its HTTP status and writes the stable
// {"error": {"code", "message"}} body.
func Error(w http.ResponseWriter, err error) {
	code := apperr.CodeOf(err)
	Respond(w, statusFor(code), errorBody{Error: errorDetail{
		Code:    string(code),
		Message: apperr.MessageOf(err),
	}})
}

func statusFor(code apperr.Code) int {
	switch code {
	case apperr.CodeValidation:
		return http.StatusBadRequest
	case apperr.CodeNotFound:
		return http.StatusNotFound
	case apperr.CodeConflict:
		return http.StatusConflict
	case apperr.CodeUnauthorized:
		return http.StatusUnauthorized
	case apperr.CodeAuthorization:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTime parses the timestamp formats accepted on the API: RFC 3339,
// a bare ISO date-time, or a date. A date-only value resolves to
// midnight UTC.
func ParseTime(s string) (time.Time, error) {
	var err error
	for _, layout := range timeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
