package handler

import (
	"net/http"

	"github.com/churchweb/mockapi/api"
	"github.com/churchweb/mockapi/domain"
)

// CommentList serves the bucket for (boardName, boardId), newest first.
// An incomplete key answers an empty list, not an error: the detail view
// asks for comments before it knows whether any exist.
func (h *Handler) CommentList(w http.ResponseWriter, r *http.Request) {
	body := decodeBody[api.CommentListRequest](r)
	boardId, ok := body.BoardId.Value()
	if body.BoardName == "" || !ok {
		writeJSON(w, http.StatusOK, []domain.CommentEntry{})
		return
	}
	writeJSON(w, http.StatusOK, h.store.Comments(body.BoardName, boardId))
}

// CommentWrite appends a comment to its composite-key bucket.
func (h *Handler) CommentWrite(w http.ResponseWriter, r *http.Request) {
	body := decodeBody[api.CommentWriteRequest](r)
	boardId, ok := body.BoardId.Value()
	if body.BoardName == "" || !ok {
		writeJSON(w, http.StatusBadRequest, api.OkResponse{Success: false})
		return
	}

	writerName := body.WriterName
	if writerName == "" {
		writerName = body.Writer
	}
	if writerName == "" {
		writerName = "작성자"
	}
	id, ok := h.store.AddComment(body.BoardName, boardId, domain.CommentEntry{
		Content:    body.Comment,
		Writer:     body.Writer,
		WriterName: writerName,
	})
	if !ok {
		writeJSON(w, http.StatusNotFound, api.OkResponse{Success: false})
		return
	}
	writeJSON(w, http.StatusOK, api.WriteResponse{Success: true, Id: id})
}

// CommentEdit replaces a comment's content within its bucket.
func (h *Handler) CommentEdit(w http.ResponseWriter, r *http.Request) {
	body := decodeBody[api.CommentWriteRequest](r)
	boardId, boardOk := body.BoardId.Value()
	commentId, commentOk := body.CommentId.Value()
	if body.BoardName == "" || !boardOk || !commentOk {
		writeJSON(w, http.StatusBadRequest, api.OkResponse{Success: false})
		return
	}

	if !h.store.UpdateComment(body.BoardName, boardId, commentId, body.Comment) {
		writeJSON(w, http.StatusNotFound, api.OkResponse{Success: false})
		return
	}
	writeJSON(w, http.StatusOK, api.OkResponse{Success: true})
}

// CommentDelete removes a comment from its bucket.
func (h *Handler) CommentDelete(w http.ResponseWriter, r *http.Request) {
	body := decodeBody[api.CommentWriteRequest](r)
	boardId, boardOk := body.BoardId.Value()
	commentId, commentOk := body.CommentId.Value()
	if body.BoardName == "" || !boardOk || !commentOk {
		writeJSON(w, http.StatusBadRequest, api.OkResponse{Success: false})
		return
	}

	if !h.store.RemoveComment(body.BoardName, boardId, commentId) {
		writeJSON(w, http.StatusNotFound, api.OkResponse{Success: false})
		return
	}
	writeJSON(w, http.StatusOK, api.OkResponse{Success: true})
}
