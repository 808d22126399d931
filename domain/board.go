package domain

// BoardEntry is one post inside a board partition. The same struct backs the
// group-diary entry buckets, which have their own id space.
type BoardEntry struct {
	Id         int64  `json:"id"`
	Title      string `json:"title"`
	WriterName string `json:"writer_name"`
	Writer     string `json:"writer,omitempty"`
	Content    string `json:"content,omitempty"`
	Files      string `json:"files,omitempty"`
	CreatedAt  string `json:"create_at"`
}

// BoardEntryPatch carries a partial update. Nil fields are left untouched;
// the entry id is immutable.
type BoardEntryPatch struct {
	Title      *string
	WriterName *string
	Writer     *string
	Content    *string
	Files      *string
	CreatedAt  *string
}

func (p BoardEntryPatch) Apply(e *BoardEntry) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.WriterName != nil {
		e.WriterName = *p.WriterName
	}
	if p.Writer != nil {
		e.Writer = *p.Writer
	}
	if p.Content != nil {
		e.Content = *p.Content
	}
	if p.Files != nil {
		e.Files = *p.Files
	}
	if p.CreatedAt != nil {
		e.CreatedAt = *p.CreatedAt
	}
}
