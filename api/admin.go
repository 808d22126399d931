package api

import "github.com/churchweb/mockapi/domain"

type UserActionRequest struct {
	Id FlexID `json:"id"`
}

type UpdateUserRoleRequest struct {
	Id   FlexID      `json:"id"`
	Role domain.Role `json:"role"`
}

type UserListRequest struct {
	SearchWord string `json:"searchWord"`
	StartRow   int    `json:"startRow"`
	PageSize   *int   `json:"pageSize"`
}

// UserSummary is the trimmed record admin list views render.
type UserSummary struct {
	Id       int64       `json:"id"`
	Username string      `json:"username"`
	Name     string      `json:"name"`
	Role     domain.Role `json:"role"`
}

type ApprovedUser struct {
	Id       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type ApproveUserResponse struct {
	Success bool         `json:"success"`
	User    ApprovedUser `json:"user"`
}
