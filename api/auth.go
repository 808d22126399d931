package api

import "github.com/churchweb/mockapi/domain"

// Request DTOs

type CheckTokenRequest struct {
	AccessToken string `json:"accessToken"`
}

type FindUserRequest struct {
	Username string `json:"username"`
}

type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Response DTOs

type CheckTokenResponse struct {
	Success     int    `json:"success"`
	AccessToken string `json:"accessToken"`
}

type SignUpResponse struct {
	Id         int64 `json:"id"`
	IsApproved bool  `json:"isApproved"`
}

// SignInUser mirrors what the real backend puts into the login response.
// Id is stringified there, so it is here too.
type SignInUser struct {
	Id              string      `json:"id"`
	Username        string      `json:"username"`
	Name            string      `json:"name"`
	Role            domain.Role `json:"role"`
	ProfileImageUrl string      `json:"profileImageUrl"`
	WithDiaryRoomId int64       `json:"withDiaryRoomId,omitempty"`
}

type SignInResponse struct {
	Success      int         `json:"success"`
	User         *SignInUser `json:"user,omitempty"`
	Token        string      `json:"token,omitempty"`
	RefreshToken string      `json:"refreshToken,omitempty"`
}
