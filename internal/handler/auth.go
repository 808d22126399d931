package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/churchweb/mockapi/api"
)

// CheckToken reports the session state: success 2 when a token is present,
// 1 otherwise. The token itself is never verified; the client only checks
// the success flag.
func (h *Handler) CheckToken(w http.ResponseWriter, r *http.Request) {
	body := decodeBody[api.CheckTokenRequest](r)
	success := 1
	if body.AccessToken != "" {
		success = 2
	}
	writeJSON(w, http.StatusOK, api.CheckTokenResponse{Success: success, AccessToken: body.AccessToken})
}

// FindUser returns the full account record, or JSON null for an unknown
// username.
func (h *Handler) FindUser(w http.ResponseWriter, r *http.Request) {
	body := decodeBody[api.FindUserRequest](r)
	if body.Username == "" {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	user, ok := h.store.FindUser(body.Username)
	if !ok {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// SignUp consumes the payload previously queued by the test fixture; the
// browser-side form has no real backend to submit to, so the queue stands in
// for "the form was filled".
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.store.TakePendingSignUp()
	if !ok {
		writeJSON(w, http.StatusBadRequest, api.ErrorResponse{Error: "Missing sign-up payload"})
		return
	}
	user := h.store.CreateUser(payload)
	writeJSON(w, http.StatusOK, api.SignUpResponse{Id: user.Id, IsApproved: user.IsApproved})
}

// SignIn matches credentials against the store. Wrong password and
// unapproved account are indistinguishable to the caller: both answer
// success 0.
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	body := decodeBody[api.SignInRequest](r)
	user, ok := h.store.FindUser(body.Username)
	if !ok || user.Password != body.Password || !user.IsApproved {
		writeJSON(w, http.StatusOK, api.SignInResponse{Success: 0})
		return
	}

	accessToken, err := h.tokens.NewToken(user)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	signInUser := &api.SignInUser{
		Id:              strconv.FormatInt(user.Id, 10),
		Username:        user.Username,
		Name:            user.Name,
		Role:            user.Role,
		ProfileImageUrl: "",
	}
	if rooms := h.store.RoomsForUser(user.Id); len(rooms) > 0 {
		signInUser.WithDiaryRoomId = rooms[0].Id
	}

	writeJSON(w, http.StatusOK, api.SignInResponse{
		Success:      2,
		User:         signInUser,
		Token:        accessToken,
		RefreshToken: uuid.NewString(),
	})
}
