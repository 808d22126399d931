package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/churchweb/mockapi/config"
	"github.com/churchweb/mockapi/fixture"
	"github.com/churchweb/mockapi/internal/handler"
	"github.com/churchweb/mockapi/internal/token"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	store := fixture.NewStore(config.Default().Seed)
	return New(handler.New(store, token.New("test-key", time.Hour)))
}

func serve(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestExactRoutes(t *testing.T) {
	r := newTestRouter(t)

	t.Run("auth routes answer regardless of method", func(t *testing.T) {
		for _, method := range []string{http.MethodGet, http.MethodPost} {
			rr := serve(t, r, method, "/check_Token", map[string]string{"accessToken": "x"})
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), `"success":2`)
		}
	})

	t.Run("schedule family dispatches by method", func(t *testing.T) {
		rr := serve(t, r, http.MethodPost, "/schedule/single", map[string]string{
			"title": "모임", "start": "2024-05-01",
		})
		assert.Equal(t, http.StatusOK, rr.Code)

		rr = serve(t, r, http.MethodGet, "/schedule?start=2024-05-01&end=2024-05-31", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "모임")

		rr = serve(t, r, http.MethodPut, "/schedule/abc", map[string]string{"title": "x"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("bible download is reachable under both prefixes", func(t *testing.T) {
		serve(t, r, http.MethodPost, "/bible", map[string]any{"days": 5})
		for _, target := range []string{"/bible/download?days=5", "/biblePlan/download?days=5"} {
			rr := serve(t, r, http.MethodGet, target, nil)
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Header().Get("Content-Disposition"), "bible_plan_5days.csv")
		}
	})

	t.Run("uploads wildcard", func(t *testing.T) {
		rr := serve(t, r, http.MethodGet, "/uploads/deep/nested/file.jpg", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	})
}

func TestBoardConvention(t *testing.T) {
	r := newTestRouter(t)

	t.Run("repeated segment lists the partition", func(t *testing.T) {
		rr := serve(t, r, http.MethodPost, "/notice/notice", map[string]any{"pageSize": 3})
		assert.Equal(t, http.StatusOK, rr.Code)
		var entries []map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
		assert.Len(t, entries, 3)
	})

	t.Run("count suffix", func(t *testing.T) {
		rr := serve(t, r, http.MethodPost, "/notice/notice_count", map[string]any{})
		assert.Equal(t, "25\n", rr.Body.String())
	})

	t.Run("detail suffix", func(t *testing.T) {
		rr := serve(t, r, http.MethodPost, "/photo_board/photo_board_detail", map[string]any{"id": 1})
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"language":"ko"`)
	})

	t.Run("mismatched segments fall back", func(t *testing.T) {
		rr := serve(t, r, http.MethodPost, "/notice/sermon", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "{}\n", rr.Body.String())
	})

	t.Run("comment never matches the convention", func(t *testing.T) {
		rr := serve(t, r, http.MethodPost, "/comment/comment_unknown", nil)
		assert.Equal(t, "{}\n", rr.Body.String())
	})

	t.Run("withDiary count is a no-op", func(t *testing.T) {
		rr := serve(t, r, http.MethodPost, "/withDiary/withDiary_count", map[string]any{"roomId": 1})
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "{}\n", rr.Body.String())
	})
}

func TestFallback(t *testing.T) {
	r := newTestRouter(t)
	for _, target := range []string{"/", "/totally/unknown/path", "/unmatched"} {
		rr := serve(t, r, http.MethodPost, target, nil)
		assert.Equal(t, http.StatusOK, rr.Code, target)
		assert.Equal(t, "{}\n", rr.Body.String(), target)
	}
}
