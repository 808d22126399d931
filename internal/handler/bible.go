package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/churchweb/mockapi/api"
	"github.com/churchweb/mockapi/domain"
)

const biblePlanHeader = "day,reading"

// BibleGenerate builds a day,reading CSV for 1..days, stores it under the
// day count and serves it as a download.
func (h *Handler) BibleGenerate(w http.ResponseWriter, r *http.Request) {
	body := decodeBody[api.BibleGenerateRequest](r)
	days, ok := body.Days.Value()
	if !ok || days <= 0 {
		writeJSON(w, http.StatusBadRequest, api.MessageResponse{Success: false, Message: "days must be a positive number"})
		return
	}

	plan := buildBiblePlan(int(days))
	h.store.SaveBiblePlan(plan)
	writeCSV(w, plan.Filename, plan.Content)
}

// BibleDownload serves a previously generated plan. Lookup order: the plan
// matching the days/count query, then the most recently generated one, then
// a two-row default when a day count was requested at all.
func (h *Handler) BibleDownload(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	raw := q.Get("days")
	if raw == "" {
		raw = q.Get("count")
	}

	days, daysErr := strconv.Atoi(raw)
	if daysErr == nil {
		if plan, ok := h.store.BiblePlanByDays(days); ok {
			writeCSV(w, plan.Filename, plan.Content)
			return
		}
	}
	if plan, ok := h.store.LastBiblePlan(); ok {
		writeCSV(w, plan.Filename, plan.Content)
		return
	}
	if daysErr == nil {
		plan := buildBiblePlan(2)
		writeCSV(w, plan.Filename, plan.Content)
		return
	}
	writeJSON(w, http.StatusNotFound, struct{}{})
}

func buildBiblePlan(days int) domain.BiblePlan {
	var sb strings.Builder
	sb.WriteString(biblePlanHeader + "\n")
	for day := 1; day <= days; day++ {
		fmt.Fprintf(&sb, "%d,창세기 %d장\n", day, day)
	}
	return domain.BiblePlan{
		Days:     days,
		Filename: fmt.Sprintf("bible_plan_%ddays.csv", days),
		Content:  sb.String(),
	}
}
