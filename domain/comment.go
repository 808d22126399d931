package domain

// CommentEntry belongs to the composite key (BoardName, BoardId). Ids come
// from one counter shared by every bucket.
type CommentEntry struct {
	Id         int64  `json:"id"`
	BoardId    int64  `json:"boardId"`
	BoardName  string `json:"boardName"`
	Content    string `json:"content"`
	Writer     string `json:"writer"`
	WriterName string `json:"writer_name"`
	CreatedAt  string `json:"create_at"`
}
