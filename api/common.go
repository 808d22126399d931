package api

// Response DTOs shared by several handler families.

type OkResponse struct {
	Success bool `json:"success"`
}

type WriteResponse struct {
	Success bool  `json:"success"`
	Id      int64 `json:"id,omitempty"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
