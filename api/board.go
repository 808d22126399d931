package api

// ListRequest is the POSTed body of the generic board list/count endpoints.
// PageSize is a pointer because its absence means "the whole partition".
type ListRequest struct {
	SearchWord string `json:"searchWord"`
	StartRow   int    `json:"startRow"`
	PageSize   *int   `json:"pageSize"`
}

type DetailRequest struct {
	Id FlexID `json:"id"`
}

type DeleteRequest struct {
	Id FlexID `json:"id"`
}

// DetailResponse carries the full entry shape the detail view renders,
// including the constant fields the real backend always sends.
type DetailResponse struct {
	Id                    int64  `json:"id"`
	Title                 string `json:"title"`
	Content               string `json:"content"`
	Writer                string `json:"writer"`
	WriterName            string `json:"writer_name"`
	WriterProfileImageUrl string `json:"writerProfileImageUrl"`
	Files                 string `json:"files"`
	MainContent           bool   `json:"mainContent"`
	Language              string `json:"language"`
	BibleId               *int64 `json:"bible_id"`
	CreatedAt             string `json:"create_at"`
	UpdatedAt             string `json:"update_at"`
	Deleted               bool   `json:"deleted"`
}
