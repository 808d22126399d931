package handler

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/churchweb/mockapi/api"
	"github.com/churchweb/mockapi/domain"
)

// scheduleRouter mounts the schedule family the way the real route table
// does, so path-id handlers see chi URL params.
func scheduleRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/schedule", h.ScheduleList)
	r.Post("/schedule/single", h.ScheduleCreate)
	r.Put("/schedule/{id}", h.ScheduleUpdate)
	r.Delete("/schedule/{id}", h.ScheduleDelete)
	return r
}

func TestScheduleCreate(t *testing.T) {
	h := newTestHandler(t)
	router := scheduleRouter(h)

	t.Run("missing start", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, jsonRequest(t, http.MethodPost, "/schedule/single", map[string]any{"title": "모임"}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeResponse[api.MessageResponse](t, rr)
		assert.False(t, resp.Success)
		assert.NotEmpty(t, resp.Message)
	})

	t.Run("end defaults to start", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, jsonRequest(t, http.MethodPost, "/schedule/single", map[string]any{
			"title": "수요 예배", "start": "2024-02-07", "color": "#123456",
		}))

		require.Equal(t, http.StatusOK, rr.Code)
		resp := decodeResponse[api.ScheduleCreateResponse](t, rr)
		assert.True(t, resp.Success)
		assert.Equal(t, "2024-02-07", resp.Schedule.End)
		assert.NotZero(t, resp.Schedule.Id)
	})
}

func TestScheduleListOverlap(t *testing.T) {
	h := newTestHandler(t)
	h.store.AddScheduleEntry(domain.ScheduleEntry{Title: "early", Start: "2024-01-05", End: "2024-01-05"})
	h.store.AddScheduleEntry(domain.ScheduleEntry{Title: "late", Start: "2024-01-20", End: "2024-01-21"})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/schedule?start=2024-01-01&end=2024-01-10", nil)
	scheduleRouter(h).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	events := decodeResponse[[]domain.ScheduleEntry](t, rr)
	require.Len(t, events, 1)
	assert.Equal(t, "early", events[0].Title)
}

func TestScheduleUpdate(t *testing.T) {
	h := newTestHandler(t)
	router := scheduleRouter(h)

	t.Run("partial body keeps the end date", func(t *testing.T) {
		id := h.store.AddScheduleEntry(domain.ScheduleEntry{Title: "행사", Start: "2024-03-01", End: "2024-03-02"})

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, jsonRequest(t, http.MethodPut, "/schedule/"+strconv.FormatInt(id, 10), map[string]any{"title": "변경된 행사"}))

		require.Equal(t, http.StatusOK, rr.Code)
		events := h.store.Schedules()
		require.Len(t, events, 1)
		assert.Equal(t, id, events[0].Id)
		assert.Equal(t, "변경된 행사", events[0].Title)
		assert.Equal(t, "2024-03-02", events[0].End)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, jsonRequest(t, http.MethodPut, "/schedule/abc", map[string]any{"title": "x"}))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestScheduleDelete(t *testing.T) {
	h := newTestHandler(t)
	router := scheduleRouter(h)
	id := h.store.AddScheduleEntry(domain.ScheduleEntry{Title: "doomed", Start: "2024-04-01"})
	target := "/schedule/" + strconv.FormatInt(id, 10)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, target, nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, h.store.Schedules())

	t.Run("deleting again still succeeds", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, target, nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, decodeResponse[api.OkResponse](t, rr).Success)
	})
}

func TestCsvSample(t *testing.T) {
	h := newTestHandler(t)
	rr := httptest.NewRecorder()
	h.CsvSample(rr, httptest.NewRequest(http.MethodGet, "/schedule/csv_sample", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/csv;charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "schedule_sample.csv")
	assert.Contains(t, rr.Body.String(), "title,start,end,color")
}

func TestCsvUpload(t *testing.T) {
	t.Run("bad rows never fail the batch", func(t *testing.T) {
		h := newTestHandler(t)
		csv := "title,start,end,color\n" +
			"주일 예배,2024-01-07,2024-01-07,#4988C4\n" +
			",2024-01-08,2024-01-08,#FF0000\n" +
			"수요 예배,2024-01-10,2024-01-10,#00FF00\n" +
			"금요 기도회,2024-01-12,2024-01-12,#0000FF\n"

		rr := httptest.NewRecorder()
		h.CsvUpload(rr, formRequest(t, "/schedule/csv_upload", map[string]string{"file": csv}))

		require.Equal(t, http.StatusOK, rr.Code)
		resp := decodeResponse[api.CsvUploadResponse](t, rr)
		assert.True(t, resp.Success)
		assert.Equal(t, 3, resp.SuccessCount)
		assert.Equal(t, 1, resp.FailCount)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, 3, resp.Errors[0].Row)
		assert.Len(t, h.store.Schedules(), 3)
	})

	t.Run("empty upload", func(t *testing.T) {
		h := newTestHandler(t)
		rr := httptest.NewRecorder()
		h.CsvUpload(rr, formRequest(t, "/schedule/csv_upload", map[string]string{}))

		resp := decodeResponse[api.CsvUploadResponse](t, rr)
		assert.True(t, resp.Success)
		assert.Zero(t, resp.SuccessCount)
		assert.Zero(t, resp.FailCount)
	})
}
