package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/churchweb/mockapi/api"
	"github.com/churchweb/mockapi/domain"
)

const csvHeader = "title,start,end,color"

// ScheduleList returns events overlapping the start/end query window,
// sorted by start date.
func (h *Handler) ScheduleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	events := h.store.SchedulesOverlapping(q.Get("start"), q.Get("end"))
	writeJSON(w, http.StatusOK, events)
}

// ScheduleCreate adds a single event. Title and start are mandatory; a
// missing end collapses to the start date.
func (h *Handler) ScheduleCreate(w http.ResponseWriter, r *http.Request) {
	body := decodeBody[api.ScheduleCreateRequest](r)
	if body.Title == "" || body.Start == "" {
		writeJSON(w, http.StatusBadRequest, api.MessageResponse{Success: false, Message: "title and start are required"})
		return
	}

	entry := domain.ScheduleEntry{
		Title:  body.Title,
		Start:  body.Start,
		End:    body.End,
		Color:  body.Color,
		UserId: body.UserId.Int64(),
	}
	entry.Id = h.store.AddScheduleEntry(entry)
	if entry.End == "" {
		entry.End = entry.Start
	}
	writeJSON(w, http.StatusOK, api.ScheduleCreateResponse{Success: true, Schedule: entry})
}

// ScheduleUpdate merges a partial body into the event addressed by the path
// id. Fields absent from the body stay as stored, notably the end date.
func (h *Handler) ScheduleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(chi.URLParam(r, "id"), "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, api.MessageResponse{Success: false, Message: err.Error()})
		return
	}

	body := decodeBody[api.ScheduleUpdateRequest](r)
	h.store.UpdateScheduleEntry(id, domain.ScheduleEntryPatch{
		Title:  body.Title,
		Start:  body.Start,
		End:    body.End,
		Color:  body.Color,
		UserId: body.UserId,
	})
	writeJSON(w, http.StatusOK, api.OkResponse{Success: true})
}

// ScheduleDelete removes the event addressed by the path id.
func (h *Handler) ScheduleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(chi.URLParam(r, "id"), "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, api.MessageResponse{Success: false, Message: err.Error()})
		return
	}
	h.store.RemoveScheduleEntry(id)
	writeJSON(w, http.StatusOK, api.OkResponse{Success: true})
}

// CsvSample serves the import template the schedule page offers for
// download.
func (h *Handler) CsvSample(w http.ResponseWriter, r *http.Request) {
	writeCSV(w, "schedule_sample.csv", csvHeader+"\n주일 예배,2024-01-07,2024-01-07,#4988C4\n")
}

// CsvUpload imports schedule rows from the CSV text of the uploaded file
// field. Bad rows never fail the batch: they are counted and reported with
// their 1-based row number (header included), and every valid row still
// lands in the store.
func (h *Handler) CsvUpload(w http.ResponseWriter, r *http.Request) {
	fields, _ := multipartFields(r)
	resp := api.CsvUploadResponse{Success: true, Errors: []api.CsvRowError{}}

	rows := csvRows(fields["file"])
	for i, row := range rows {
		title, start, end, color := splitScheduleRow(row)
		if title == "" || start == "" {
			resp.FailCount++
			resp.Errors = append(resp.Errors, api.CsvRowError{
				Row:     i + 2, // +1 for 1-based, +1 for the header row
				Message: "title and start are required",
			})
			continue
		}
		h.store.AddScheduleEntry(domain.ScheduleEntry{Title: title, Start: start, End: end, Color: color})
		resp.SuccessCount++
	}
	writeJSON(w, http.StatusOK, resp)
}

// csvRows returns the data rows of a CSV text, skipping the header and
// blank lines.
func csvRows(text string) []string {
	var rows []string
	seenHeader := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !seenHeader {
			seenHeader = true
			continue
		}
		rows = append(rows, line)
	}
	return rows
}

func splitScheduleRow(row string) (title, start, end, color string) {
	cols := strings.Split(row, ",")
	get := func(i int) string {
		if i < len(cols) {
			return strings.TrimSpace(cols[i])
		}
		return ""
	}
	return get(0), get(1), get(2), get(3)
}
