package handler

import (
	"net/http"
	"strings"

	"github.com/churchweb/mockapi/api"
	"github.com/churchweb/mockapi/domain"
)

// DisapproveUsers lists sign-ups still waiting for approval.
func (h *Handler) DisapproveUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userSummaries(h.store.PendingUsers()))
}

// ApproveUser flips the approval flag for one user.
func (h *Handler) ApproveUser(w http.ResponseWriter, r *http.Request) {
	body := decodeBody[api.UserActionRequest](r)
	id, ok := body.Id.Value()
	if !ok {
		writeJSON(w, http.StatusNotFound, api.OkResponse{Success: false})
		return
	}
	user, found := h.store.ApproveUser(domain.UserId(id))
	if !found {
		writeJSON(w, http.StatusNotFound, api.OkResponse{Success: false})
		return
	}
	writeJSON(w, http.StatusOK, api.ApproveUserResponse{
		Success: true,
		User:    api.ApprovedUser{Id: int64(user.Id), Username: user.Username, Name: user.Name},
	})
}

// ApprovedUsers pages the approved members, filtered by username or name.
func (h *Handler) ApprovedUsers(w http.ResponseWriter, r *http.Request) {
	body := decodeBody[api.UserListRequest](r)
	filtered := filterUsers(h.store.ApprovedUsers(), body.SearchWord)
	paged := paginate(userSummaries(filtered), body.StartRow, body.PageSize)
	writeJSON(w, http.StatusOK, paged)
}

// ApprovedUsersCount answers the filtered member count as a bare integer.
func (h *Handler) ApprovedUsersCount(w http.ResponseWriter, r *http.Request) {
	body := decodeBody[api.UserListRequest](r)
	writeJSON(w, http.StatusOK, len(filterUsers(h.store.ApprovedUsers(), body.SearchWord)))
}

// UpdateUserRole changes one user's role.
func (h *Handler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	body := decodeBody[api.UpdateUserRoleRequest](r)
	id, ok := body.Id.Value()
	if !ok {
		writeJSON(w, http.StatusNotFound, api.OkResponse{Success: false})
		return
	}
	role := body.Role
	if role == "" {
		role = domain.RoleUser
	}
	if _, found := h.store.UpdateUserRole(domain.UserId(id), role); !found {
		writeJSON(w, http.StatusNotFound, api.OkResponse{Success: false})
		return
	}
	writeJSON(w, http.StatusOK, api.OkResponse{Success: true})
}

// RevokeApproveStatus sends an approved user back to the pending pool.
func (h *Handler) RevokeApproveStatus(w http.ResponseWriter, r *http.Request) {
	body := decodeBody[api.UserActionRequest](r)
	id, ok := body.Id.Value()
	if !ok {
		writeJSON(w, http.StatusNotFound, api.OkResponse{Success: false})
		return
	}
	if _, found := h.store.RevokeApproval(domain.UserId(id)); !found {
		writeJSON(w, http.StatusNotFound, api.OkResponse{Success: false})
		return
	}
	writeJSON(w, http.StatusOK, api.OkResponse{Success: true})
}

func filterUsers(users []domain.User, searchWord string) []domain.User {
	if searchWord == "" {
		return users
	}
	filtered := make([]domain.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(u.Username, searchWord) || strings.Contains(u.Name, searchWord) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

func userSummaries(users []domain.User) []api.UserSummary {
	out := make([]api.UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, api.UserSummary{
			Id:       int64(u.Id),
			Username: u.Username,
			Name:     u.Name,
			Role:     u.Role,
		})
	}
	return out
}
