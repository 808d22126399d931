package api

import "github.com/churchweb/mockapi/domain"

type RoomCreateRequest struct {
	TeamName    string   `json:"teamName"`
	UserIdList  []FlexID `json:"userIdList"`
	Creator     string   `json:"creator"`
	CreatorName string   `json:"creator_name"`
}

type RoomCreateResponse struct {
	Success bool                 `json:"success"`
	Room    domain.WithDiaryRoom `json:"room"`
}

type RoomListRequest struct {
	UserId FlexID `json:"userId"`
}

type RoomRequest struct {
	DiaryRoomId FlexID `json:"diaryRoomId"`
}

type RoomUserRequest struct {
	DiaryRoomId FlexID `json:"diaryRoomId"`
	UserId      FlexID `json:"userId"`
}

type RoomMember struct {
	Id       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type RoomMembersResponse struct {
	Members []RoomMember `json:"members"`
}

// DiaryListRequest scopes the shared list shape to one room.
type DiaryListRequest struct {
	RoomId     FlexID `json:"roomId"`
	SearchWord string `json:"searchWord"`
	StartRow   int    `json:"startRow"`
	PageSize   *int   `json:"pageSize"`
}
