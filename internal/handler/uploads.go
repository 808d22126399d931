package handler

import (
	"encoding/base64"
	"net/http"
)

// placeholderPNG is a 1x1 transparent PNG. Every /uploads/ path serves this
// same byte string so image elements under test always resolve.
var placeholderPNG, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII=")

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(placeholderPNG)
}
