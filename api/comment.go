package api

type CommentListRequest struct {
	BoardName string `json:"boardName"`
	BoardId   FlexID `json:"boardId"`
}

type CommentWriteRequest struct {
	BoardName  string `json:"boardName"`
	BoardId    FlexID `json:"boardId"`
	CommentId  FlexID `json:"commentId"`
	Comment    string `json:"comment"`
	Writer     string `json:"writer"`
	WriterName string `json:"writerName"`
}
