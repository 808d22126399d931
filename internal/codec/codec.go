// Package codec decodes request bodies the way the mocked backend's clients
// expect: best-effort, never failing the request over a malformed body.
package codec

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	fieldNameRe = regexp.MustCompile(`name="([^"]+)"`)
	boundaryRe  = regexp.MustCompile(`boundary=(.+)$`)
)

// DecodeLenient parses data as JSON into v. On any parse failure v is left
// at its zero value; callers must treat missing fields as absent. This
// leniency is a documented policy, not an oversight: several UI flows send
// empty or non-JSON bodies and still expect a normal response.
func DecodeLenient(data []byte, v any) {
	if len(data) == 0 || !json.Valid(data) {
		return
	}
	_ = json.Unmarshal(data, v)
}

// Boundary extracts the multipart boundary token from a Content-Type value.
func Boundary(contentType string) (string, bool) {
	m := boundaryRe.FindStringSubmatch(contentType)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ParseMultipart splits a raw multipart/form-data body on the boundary and
// returns the textual form fields by name. Parts without a header/body
// separator are dropped, and binary file payloads are not reconstructed:
// the handlers only ever consume text fields (a CSV upload arrives as the
// text of its "file" field).
func ParseMultipart(body, boundary string) map[string]string {
	fields := make(map[string]string)
	for _, part := range strings.Split(body, "--"+boundary) {
		if strings.TrimSpace(part) == "" || !strings.Contains(part, "\r\n\r\n") {
			continue
		}
		rawHeaders, rawValue, ok := strings.Cut(part, "\r\n\r\n")
		if !ok {
			continue
		}
		m := fieldNameRe.FindStringSubmatch(rawHeaders)
		if m == nil {
			continue
		}
		value := strings.TrimSuffix(rawValue, "\r\n--")
		value = strings.TrimSuffix(value, "\r\n")
		fields[m[1]] = value
	}
	return fields
}
