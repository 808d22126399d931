package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/churchweb/mockapi/api"
	"github.com/churchweb/mockapi/domain"
)

// BoardList serves the generic list and count endpoints of one board
// partition. Parameters travel in a POSTed JSON body; searchWord filters by
// title substring before the page window applies.
func (h *Handler) BoardList(w http.ResponseWriter, r *http.Request, board string, countOnly bool) {
	entries, ok := h.store.BoardEntries(board)
	if !ok {
		// unknown board falls through to the generic fallback
		h.Fallback(w, r)
		return
	}

	body := decodeBody[api.ListRequest](r)
	filtered := filterByTitle(entries, body.SearchWord)
	if countOnly {
		writeJSON(w, http.StatusOK, len(filtered))
		return
	}
	paged := paginate(filtered, body.StartRow, body.PageSize)
	if paged == nil {
		paged = []domain.BoardEntry{}
	}
	writeJSON(w, http.StatusOK, paged)
}

func filterByTitle(entries []domain.BoardEntry, searchWord string) []domain.BoardEntry {
	if searchWord == "" {
		return entries
	}
	filtered := make([]domain.BoardEntry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(e.Title, searchWord) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// BoardWrite creates an entry from a multipart form. A request without a
// parsable form still succeeds with every field defaulted; only an unknown
// board is an error.
func (h *Handler) BoardWrite(w http.ResponseWriter, r *http.Request, board string) {
	if !h.store.HasBoard(board) {
		writeJSON(w, http.StatusNotFound, api.OkResponse{Success: false})
		return
	}

	fields, _ := multipartFields(r)
	id := h.store.AddBoardEntry(board, entryFromFields(fields))
	writeJSON(w, http.StatusOK, api.WriteResponse{Success: true, Id: id})
}

func entryFromFields(fields map[string]string) domain.BoardEntry {
	title := fields["title"]
	if title == "" {
		title = "새 게시글"
	}
	writer := fields["writer"]
	writerName := fields["writer_name"]
	if writerName == "" {
		writerName = writer
	}
	if writerName == "" {
		writerName = "작성자"
	}
	return domain.BoardEntry{
		Title:      title,
		Content:    fields["content"],
		Writer:     writer,
		WriterName: writerName,
	}
}

// BoardDetail answers the full entry shape. When the id does not resolve,
// the board's first entry is served instead. This matches observed backend
// behavior the client depends on, so it stays instead of becoming a 404.
func (h *Handler) BoardDetail(w http.ResponseWriter, r *http.Request, board string) {
	entries, ok := h.store.BoardEntries(board)
	body := decodeBody[api.DetailRequest](r)
	id, idOk := body.Id.Value()
	if !ok || !idOk {
		writeJSON(w, http.StatusNotFound, struct{}{})
		return
	}

	var entry domain.BoardEntry
	for _, e := range entries {
		if e.Id == id {
			entry = e
			break
		}
	}
	if entry.Id == 0 && len(entries) > 0 {
		entry = entries[0]
	}
	writeJSON(w, http.StatusOK, detailResponse(board, entry, h.timestamp()))
}

func detailResponse(board string, entry domain.BoardEntry, now string) api.DetailResponse {
	resp := api.DetailResponse{
		Id:         entry.Id,
		Title:      entry.Title,
		Content:    entry.Content,
		Writer:     entry.Writer,
		WriterName: entry.WriterName,
		Files:      entry.Files,
		Language:   "ko",
		CreatedAt:  entry.CreatedAt,
		UpdatedAt:  entry.CreatedAt,
	}
	if resp.Title == "" {
		resp.Title = fmt.Sprintf("%s 상세", board)
	}
	if resp.Content == "" {
		resp.Content = fmt.Sprintf("<p>%s 내용입니다.</p>", entry.Title)
	}
	if resp.Writer == "" {
		resp.Writer = entry.WriterName
	}
	if resp.Writer == "" {
		resp.Writer = "작성자"
	}
	if resp.WriterName == "" {
		resp.WriterName = "작성자"
	}
	if resp.Files == "" {
		resp.Files = "[]"
	}
	if resp.CreatedAt == "" {
		resp.CreatedAt = now
		resp.UpdatedAt = now
	}
	return resp
}

// BoardEdit merges title/content from a multipart form into an existing
// entry. Unlike write, a missing boundary or id is a hard 400.
func (h *Handler) BoardEdit(w http.ResponseWriter, r *http.Request, board string) {
	if !h.store.HasBoard(board) {
		writeJSON(w, http.StatusNotFound, api.OkResponse{Success: false})
		return
	}

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

	h.store.UpdateBoardEntry(board, id, patchFromFields(fields))
	writeJSON(w, http.StatusOK, api.WriteResponse{Success: true, Id: id})
}

func patchFromFields(fields map[string]string) domain.BoardEntryPatch {
	var patch domain.BoardEntryPatch
	if title, ok := fields["title"]; ok {
		patch.Title = &title
	}
	if content, ok := fields["content"]; ok {
		patch.Content = &content
	}
	return patch
}

// BoardDelete removes an entry by id from a JSON body.
func (h *Handler) BoardDelete(w http.ResponseWriter, r *http.Request, board string) {
	if !h.store.HasBoard(board) {
		writeJSON(w, http.StatusNotFound, api.OkResponse{Success: false})
		return
	}

	body := decodeBody[api.DeleteRequest](r)
	id, ok := body.Id.Value()
	if !ok {
		writeJSON(w, http.StatusBadRequest, api.OkResponse{Success: false})
		return
	}
	h.store.RemoveBoardEntry(board, id)
	writeJSON(w, http.StatusOK, api.OkResponse{Success: true})
}
