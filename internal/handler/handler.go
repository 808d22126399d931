package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/churchweb/mockapi/fixture"
	"github.com/churchweb/mockapi/internal/codec"
	"github.com/churchweb/mockapi/internal/token"
	"github.com/churchweb/mockapi/logger"
)

// Handler owns every route handler of the mock backend. All state lives in
// the fixture store; handlers only decode, delegate and shape responses.
type Handler struct {
	store  *fixture.Store
	tokens *token.Service
}

func New(store *fixture.Store, tokens *token.Service) *Handler {
	return &Handler{store: store, tokens: tokens}
}

func (h *Handler) timestamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}

// Fallback answers anything no route claimed with an empty JSON object so
// unexercised endpoints never break a test run.
func (h *Handler) Fallback(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct{}{})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("encoding response failed", "error", err)
	}
}

func writeCSV(w http.ResponseWriter, filename, content string) {
	w.Header().Set("Content-Type", "text/csv;charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, content); err != nil {
		logger.Log.Error("writing csv response failed", "error", err)
	}
}

// decodeBody reads the whole body and decodes it leniently: a malformed or
// empty body yields the zero request, never an error.
func decodeBody[T any](r *http.Request) T {
	var body T
	data, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Log.Warn("reading request body failed", "error", err)
		return body
	}
	codec.DecodeLenient(data, &body)
	return body
}

// multipartFields extracts the textual form fields of a multipart body.
// ok is false when the request carries no boundary or no body at all.
func multipartFields(r *http.Request) (map[string]string, bool) {
	boundary, ok := codec.Boundary(r.Header.Get("Content-Type"))
	if !ok {
		return nil, false
	}
	data, err := io.ReadAll(r.Body)
	if err != nil || len(data) == 0 {
		return nil, false
	}
	return codec.ParseMultipart(string(data), boundary), true
}

// parseIntParam parses an integer parameter and returns a meaningful error.
func parseIntParam(param string, paramName string) (int64, error) {
	val, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be an integer", paramName)
	}
	return val, nil
}

// paginate clamps the [startRow, startRow+pageSize) window onto entries.
func paginate[T any](entries []T, startRow int, pageSize *int) []T {
	size := len(entries)
	if pageSize != nil {
		size = *pageSize
	}
	if startRow < 0 {
		startRow = 0
	}
	if startRow > len(entries) {
		startRow = len(entries)
	}
	end := startRow + size
	if end > len(entries) {
		end = len(entries)
	}
	if end < startRow {
		end = startRow
	}
	return entries[startRow:end]
}
