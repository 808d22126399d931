package api

import "github.com/churchweb/mockapi/domain"

type ScheduleCreateRequest struct {
	Title  string `json:"title"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Color  string `json:"color"`
	UserId FlexID `json:"userId"`
}

// ScheduleUpdateRequest is a partial merge: nil fields keep the stored
// value, so an update without "end" preserves the existing end date.
type ScheduleUpdateRequest struct {
	Title  *string `json:"title"`
	Start  *string `json:"start"`
	End    *string `json:"end"`
	Color  *string `json:"color"`
	UserId *int64  `json:"userId"`
}

type ScheduleCreateResponse struct {
	Success  bool                 `json:"success"`
	Schedule domain.ScheduleEntry `json:"schedule"`
}

type CsvRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type CsvUploadResponse struct {
	Success      bool          `json:"success"`
	SuccessCount int           `json:"successCount"`
	FailCount    int           `json:"failCount"`
	Errors       []CsvRowError `json:"errors"`
}

type BibleGenerateRequest struct {
	Days FlexID `json:"days"`
}
