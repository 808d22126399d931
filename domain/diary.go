package domain

// WithDiaryRoom is a membership-scoped group-diary sub-board. MemberIds is a
// deduplicated set kept in insertion order; the entries themselves live in a
// per-room bucket of BoardEntry records with their own id space.
type WithDiaryRoom struct {
	Id          int64    `json:"id"`
	RoomName    string   `json:"roomName"`
	Creator     string   `json:"creator"`
	CreatorName string   `json:"creator_name"`
	MemberIds   []UserId `json:"memberIds"`
	UpdatedAt   string   `json:"update_at"`
}

func (r *WithDiaryRoom) HasMember(id UserId) bool {
	for _, m := range r.MemberIds {
		if m == id {
			return true
		}
	}
	return false
}
