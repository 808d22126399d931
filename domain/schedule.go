package domain

// ScheduleEntry is one calendar event. Start/End are ISO dates (YYYY-MM-DD),
// Color a hex string like #4988C4.
type ScheduleEntry struct {
	Id     int64  `json:"id"`
	Title  string `json:"title"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Color  string `json:"color"`
	UserId UserId `json:"userId"`
}

type ScheduleEntryPatch struct {
	Title  *string
	Start  *string
	End    *string
	Color  *string
	UserId *UserId
}

func (p ScheduleEntryPatch) Apply(e *ScheduleEntry) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Start != nil {
		e.Start = *p.Start
	}
	if p.End != nil {
		e.End = *p.End
	}
	if p.Color != nil {
		e.Color = *p.Color
	}
	if p.UserId != nil {
		e.UserId = *p.UserId
	}
}
