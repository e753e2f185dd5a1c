package handler

import (
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarAcceptHeader is the Accept header value that indicates a DataStar request
	DataStarAcceptHeader = "text/event-stream"

	// DataStarQueryParam is the query parameter used by DataStar for signals
	DataStarQueryParam = "datastar"
)

// IsDataStar checks if the request is a DataStar request.
// DataStar requests accept Server-Sent Events and may carry signals in the
// query string or body.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	if r.URL.Query().Has(DataStarQueryParam) {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}

// NewSSE creates a Server-Sent Event generator for DataStar responses.
func NewSSE(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	return datastar.NewSSE(w, r)
}

// signalsResponse patches frontend signals for DataStar requests and falls
// back to a JSON body for everything else.
type signalsResponse struct {
	signals map[string]any
}

func (s signalsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return JSON(s.signals).Render(w, r)
	}

	data, err := json.Marshal(s.signals)
	if err != nil {
		return err
	}
	return NewSSE(w, r).PatchSignals(data)
}

// Signals creates a response that updates frontend state.
// Validation endpoints use it to push error messages next to inputs:
//
//	return handler.Signals(map[string]any{
//		"errors": map[string]string{"email": "Enter a valid email address."},
//		"valid":  false,
//	})
func Signals(signals map[string]any) Response {
	return signalsResponse{signals: signals}
}
