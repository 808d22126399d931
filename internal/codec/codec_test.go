package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type payload struct {
	Title string `json:"title"`
	Id    int    `json:"id"`
}

func TestDecodeLenient(t *testing.T) {
	t.Run("valid json", func(t *testing.T) {
		var p payload
		DecodeLenient([]byte(`{"title":"T","id":3}`), &p)
		assert.Equal(t, payload{Title: "T", Id: 3}, p)
	})

	t.Run("malformed json leaves zero value", func(t *testing.T) {
		var p payload
		DecodeLenient([]byte(`{ivalid json::}`), &p)
		assert.Equal(t, payload{}, p)
	})

	t.Run("empty body leaves zero value", func(t *testing.T) {
		var p payload
		DecodeLenient(nil, &p)
		assert.Equal(t, payload{}, p)
	})
}

func TestBoundary(t *testing.T) {
	b, ok := Boundary("multipart/form-data; boundary=----WebKitFormBoundaryX")
	assert.True(t, ok)
	assert.Equal(t, "----WebKitFormBoundaryX", b)

	_, ok = Boundary("application/json")
	assert.False(t, ok)
}

func multipartBody(boundary string, fields map[string]string) string {
	var sb strings.Builder
	for name, value := range fields {
		sb.WriteString("--" + boundary + "\r\n")
		sb.WriteString(`Content-Disposition: form-data; name="` + name + `"` + "\r\n\r\n")
		sb.WriteString(value + "\r\n")
	}
	sb.WriteString("--" + boundary + "--\r\n")
	return sb.String()
}

func TestParseMultipart(t *testing.T) {
	boundary := "----WebKitFormBoundaryTest"

	t.Run("extracts named text fields", func(t *testing.T) {
		body := multipartBody(boundary, map[string]string{
			"title":   "새 게시글",
			"content": "<p>본문</p>",
		})
		fields := ParseMultipart(body, boundary)
		assert.Equal(t, "새 게시글", fields["title"])
		assert.Equal(t, "<p>본문</p>", fields["content"])
	})

	t.Run("file part exposes its text content", func(t *testing.T) {
		body := "--" + boundary + "\r\n" +
			"Content-Disposition: form-data; name=\"file\"; filename=\"batch.csv\"\r\n" +
			"Content-Type: text/csv\r\n\r\n" +
			"title,start,end,color\r\n" +
			"--" + boundary + "--\r\n"
		fields := ParseMultipart(body, boundary)
		assert.Equal(t, "title,start,end,color", fields["file"])
	})

	t.Run("part without separator is dropped", func(t *testing.T) {
		body := "--" + boundary + "\r\nno separator here\r\n--" + boundary + "--\r\n"
		fields := ParseMultipart(body, boundary)
		assert.Empty(t, fields)
	})

	t.Run("part without a name attribute is dropped", func(t *testing.T) {
		body := "--" + boundary + "\r\nContent-Disposition: form-data\r\n\r\nvalue\r\n--" + boundary + "--\r\n"
		fields := ParseMultipart(body, boundary)
		assert.Empty(t, fields)
	})
}
