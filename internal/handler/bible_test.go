package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBibleGenerate(t *testing.T) {
	t.Run("serves the generated csv as a download", func(t *testing.T) {
		h := newTestHandler(t)
		rr := httptest.NewRecorder()
		h.BibleGenerate(rr, jsonRequest(t, http.MethodPost, "/bible", map[string]any{"days": 30}))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Header().Get("Content-Disposition"), "bible_plan_30days.csv")
		assert.Contains(t, rr.Body.String(), "day,reading")
		assert.Contains(t, rr.Body.String(), "30,창세기 30장")

		plan, ok := h.store.BiblePlanByDays(30)
		require.True(t, ok)
		assert.Equal(t, 30, plan.Days)
	})

	t.Run("accepts a stringified day count", func(t *testing.T) {
		h := newTestHandler(t)
		rr := httptest.NewRecorder()
		h.BibleGenerate(rr, jsonRequest(t, http.MethodPost, "/bible", map[string]any{"days": "7"}))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Header().Get("Content-Disposition"), "bible_plan_7days.csv")
	})

	t.Run("rejects a missing or non-positive day count", func(t *testing.T) {
		h := newTestHandler(t)
		for _, body := range []map[string]any{{}, {"days": -3}, {"days": "abc"}} {
			rr := httptest.NewRecorder()
			h.BibleGenerate(rr, jsonRequest(t, http.MethodPost, "/bible", body))
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		}
	})
}

func TestBibleDownload(t *testing.T) {
	download := func(t *testing.T, h *Handler, target string) *httptest.ResponseRecorder {
		t.Helper()
		rr := httptest.NewRecorder()
		h.BibleDownload(rr, httptest.NewRequest(http.MethodGet, target, nil))
		return rr
	}

	t.Run("matches the stored plan by days", func(t *testing.T) {
		h := newTestHandler(t)
		h.store.SaveBiblePlan(buildBiblePlan(10))
		h.store.SaveBiblePlan(buildBiblePlan(20))

		rr := download(t, h, "/bible/download?days=10")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Header().Get("Content-Disposition"), "bible_plan_10days.csv")
	})

	t.Run("count is an alias for days", func(t *testing.T) {
		h := newTestHandler(t)
		h.store.SaveBiblePlan(buildBiblePlan(10))

		rr := download(t, h, "/biblePlan/download?count=10")
		assert.Contains(t, rr.Header().Get("Content-Disposition"), "bible_plan_10days.csv")
	})

	t.Run("unknown day count falls back to the last generated plan", func(t *testing.T) {
		h := newTestHandler(t)
		h.store.SaveBiblePlan(buildBiblePlan(10))
		h.store.SaveBiblePlan(buildBiblePlan(20))

		rr := download(t, h, "/bible/download?days=99")
		assert.Contains(t, rr.Header().Get("Content-Disposition"), "bible_plan_20days.csv")
	})

	t.Run("no plans but a day count yields the two-row default", func(t *testing.T) {
		h := newTestHandler(t)
		rr := download(t, h, "/bible/download?days=99")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Header().Get("Content-Disposition"), "bible_plan_2days.csv")
		assert.Contains(t, rr.Body.String(), "2,창세기 2장")
	})

	t.Run("no plans and no day count", func(t *testing.T) {
		h := newTestHandler(t)
		rr := download(t, h, "/bible/download")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
