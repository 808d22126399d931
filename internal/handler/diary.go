package handler

import (
	"net/http"

	"github.com/churchweb/mockapi/api"
	"github.com/churchweb/mockapi/domain"
)

// RoomCreate builds a group-diary room from the posted member list. The
// creator joins the membership even when the list omits them; missing names
// fall back to defaults so the call always succeeds.
func (h *Handler) RoomCreate(w http.ResponseWriter, r *http.Request) {
	body := decodeBody[api.RoomCreateRequest](r)

	roomName := body.TeamName
	if roomName == "" {
		roomName = "새 다이어리"
	}
	creatorName := body.CreatorName
	if creatorName == "" {
		creatorName = body.Creator
	}

	memberIds := make([]domain.UserId, 0, len(body.UserIdList)+1)
	for _, raw := range body.UserIdList {
		if id, ok := raw.Value(); ok {
			memberIds = append(memberIds, domain.UserId(id))
		}
	}
	if creator, ok := h.store.FindUser(body.Creator); ok {
		memberIds = append(memberIds, creator.Id)
	}

	room := domain.WithDiaryRoom{
		RoomName:    roomName,
		Creator:     body.Creator,
		CreatorName: creatorName,
		MemberIds:   memberIds,
	}
	room.Id = h.store.AddWithDiaryRoom(room)
	created, _ := h.store.Room(room.Id)
	writeJSON(w, http.StatusOK, api.RoomCreateResponse{Success: true, Room: created})
}

// RoomList answers the rooms whose membership contains the user. An
// unusable id yields an empty list.
func (h *Handler) RoomList(w http.ResponseWriter, r *http.Request) {
	body := decodeBody[api.RoomListRequest](r)
	userId, ok := body.UserId.Value()
	if !ok {
		writeJSON(w, http.StatusOK, []domain.WithDiaryRoom{})
		return
	}
	rooms := h.store.RoomsForUser(domain.UserId(userId))
	if rooms == nil {
		rooms = []domain.WithDiaryRoom{}
	}
	writeJSON(w, http.StatusOK, rooms)
}

// RoomMembers resolves the room's member ids to user summaries. Ids without
// a matching user record are skipped rather than surfaced as holes.
func (h *Handler) RoomMembers(w http.ResponseWriter, r *http.Request) {
	body := decodeBody[api.RoomRequest](r)
	members := []api.RoomMember{}

	roomId, ok := body.DiaryRoomId.Value()
	if ok {
		if room, found := h.store.Room(roomId); found {
			for _, id := range room.MemberIds {
				user, exists := h.store.FindUserById(id)
				if !exists {
					continue
				}
				members = append(members, api.RoomMember{
					Id:       int64(user.Id),
					Username: user.Username,
					Name:     user.Name,
				})
			}
		}
	}
	writeJSON(w, http.StatusOK, api.RoomMembersResponse{Members: members})
}

// RemoveRoomUser drops a member from a room. Success is reported even when
// the room or member does not exist.
func (h *Handler) RemoveRoomUser(w http.ResponseWriter, r *http.Request) {
	body := decodeBody[api.RoomUserRequest](r)
	roomId, roomOk := body.DiaryRoomId.Value()
	userId, userOk := body.UserId.Value()
	if roomOk && userOk {
		h.store.RemoveWithDiaryRoomUser(roomId, domain.UserId(userId))
	}
	writeJSON(w, http.StatusOK, api.OkResponse{Success: true})
}

// RemoveRoom deletes a room and its entries. Like member removal, unknown
// ids still report success.
func (h *Handler) RemoveRoom(w http.ResponseWriter, r *http.Request) {
	body := decodeBody[api.RoomRequest](r)
	if roomId, ok := body.DiaryRoomId.Value(); ok {
		h.store.RemoveWithDiaryRoom(roomId)
	}
	writeJSON(w, http.StatusOK, api.OkResponse{Success: true})
}

// DiaryList pages one room's entry bucket, newest first. An unknown room
// answers an empty list.
func (h *Handler) DiaryList(w http.ResponseWriter, r *http.Request) {
	body := decodeBody[api.DiaryListRequest](r)
	roomId, ok := body.RoomId.Value()
	if !ok {
		writeJSON(w, http.StatusOK, []domain.BoardEntry{})
		return
	}
	entries, found := h.store.RoomEntries(roomId)
	if !found {
		writeJSON(w, http.StatusOK, []domain.BoardEntry{})
		return
	}

	filtered := filterByTitle(entries, body.SearchWord)
	paged := paginate(filtered, body.StartRow, body.PageSize)
	if paged == nil {
		paged = []domain.BoardEntry{}
	}
	writeJSON(w, http.StatusOK, paged)
}

// DiaryWrite creates a diary entry from a multipart form carrying roomId.
func (h *Handler) DiaryWrite(w http.ResponseWriter, r *http.Request) {
	fields, ok := multipartFields(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, api.OkResponse{Success: false})
		return
	}
	roomId, err := parseIntParam(fields["roomId"], "roomId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, api.OkResponse{Success: false})
		return
	}

	id := h.store.AddWithDiaryEntry(roomId, entryFromFields(fields))
	if id == 0 {
		writeJSON(w, http.StatusNotFound, api.OkResponse{Success: false})
		return
	}
	writeJSON(w, http.StatusOK, api.WriteResponse{Success: true, Id: id})
}

// DiaryDetail renders a diary entry by id through the reverse index.
func (h *Handler) DiaryDetail(w http.ResponseWriter, r *http.Request) {
	body := decodeBody[api.DetailRequest](r)
	id, ok := body.Id.Value()
	if !ok {
		writeJSON(w, http.StatusNotFound, struct{}{})
		return
	}
	_, entry, found := h.store.WithDiaryEntry(id)
	if !found {
		writeJSON(w, http.StatusNotFound, struct{}{})
		return
	}
	writeJSON(w, http.StatusOK, detailResponse("withDiary", entry, h.timestamp()))
}

// DiaryEdit merges title/content into a diary entry from a multipart form.
func (h *Handler) DiaryEdit(w http.ResponseWriter, r *http.Request) {
	fields, ok := multipartFields(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, api.OkResponse{Success: false})
		return
	}
	id, err := parseIntParam(fields["id"], "id")
	if err != nil || id == 0 {
		writeJSON(w, http.StatusBadRequest, api.OkResponse{Success: false})
		return
	}

	if !h.store.UpdateWithDiaryEntry(id, patchFromFields(fields)) {
		writeJSON(w, http.StatusNotFound, api.OkResponse{Success: false})
		return
	}
	writeJSON(w, http.StatusOK, api.WriteResponse{Success: true, Id: id})
}

// DiaryDelete removes a diary entry by id. Absent ids are a silent no-op.
func (h *Handler) DiaryDelete(w http.ResponseWriter, r *http.Request) {
	body := decodeBody[api.DeleteRequest](r)
	if id, ok := body.Id.Value(); ok {
		h.store.RemoveWithDiaryEntry(id)
	}
	writeJSON(w, http.StatusOK, api.OkResponse{Success: true})
}
