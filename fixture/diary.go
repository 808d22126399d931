package fixture

import (
	"github.com/churchweb/mockapi/domain"
)

// AddWithDiaryRoom creates a group-diary room with an empty entry bucket.
// Member ids are deduplicated, keeping first-seen order; the creator joins
// the membership only if the caller lists them.
func (s *Store) AddWithDiaryRoom(room domain.WithDiaryRoom) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextRoomId++
	room.Id = s.nextRoomId
	room.MemberIds = dedupIds(room.MemberIds)
	if room.UpdatedAt == "" {
		room.UpdatedAt = s.timestamp()
	}
	s.rooms = append(s.rooms, room)
	s.roomEntries[room.Id] = nil
	return room.Id
}

func dedupIds(ids []domain.UserId) []domain.UserId {
	seen := make(map[domain.UserId]bool, len(ids))
	out := make([]domain.UserId, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func (s *Store) Room(id int64) (domain.WithDiaryRoom, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roomLocked(id)
}

func (s *Store) roomLocked(id int64) (domain.WithDiaryRoom, bool) {
	for _, room := range s.rooms {
		if room.Id == id {
			return room, true
		}
	}
	return domain.WithDiaryRoom{}, false
}

// RoomsForUser lists rooms whose membership contains the user.
func (s *Store) RoomsForUser(userId domain.UserId) []domain.WithDiaryRoom {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.WithDiaryRoom
	for _, room := range s.rooms {
		if room.HasMember(userId) {
			out = append(out, room)
		}
	}
	return out
}

// RemoveWithDiaryRoom deletes the room record, its entry bucket, and every
// reverse-index entry pointing into it. Unknown ids are a silent no-op.
func (s *Store) RemoveWithDiaryRoom(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.rooms[:0:0]
	for _, room := range s.rooms {
		if room.Id != id {
			kept = append(kept, room)
		}
	}
	s.rooms = kept

	for _, entry := range s.roomEntries[id] {
		delete(s.diaryEntryRooms, entry.Id)
	}
	delete(s.roomEntries, id)
}

// RemoveWithDiaryRoomUser drops the user from the room's membership.
// Unknown room or absent member is a silent no-op.
func (s *Store) RemoveWithDiaryRoomUser(roomId int64, userId domain.UserId) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rooms {
		if s.rooms[i].Id != roomId {
			continue
		}
		members := s.rooms[i].MemberIds[:0:0]
		for _, m := range s.rooms[i].MemberIds {
			if m != userId {
				members = append(members, m)
			}
		}
		s.rooms[i].MemberIds = members
		return
	}
}

// AddWithDiaryEntry prepends an entry to the room's bucket. Diary entries
// draw ids from their own counter, with a reverse index for O(1) lookups by
// entry id. An unknown room yields 0 and no mutation.
func (s *Store) AddWithDiaryEntry(roomId int64, entry domain.BoardEntry) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.roomLocked(roomId); !ok {
		return 0
	}

	s.nextDiaryEntryId++
	id := s.nextDiaryEntryId
	entry = s.fillEntryDefaults(id, "withDiary", entry)
	s.roomEntries[roomId] = append([]domain.BoardEntry{entry}, s.roomEntries[roomId]...)
	s.diaryEntryRooms[id] = roomId

	for i := range s.rooms {
		if s.rooms[i].Id == roomId {
			s.rooms[i].UpdatedAt = entry.CreatedAt
		}
	}
	return id
}

// WithDiaryEntry resolves an entry id through the reverse index.
func (s *Store) WithDiaryEntry(entryId int64) (int64, domain.BoardEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roomId, ok := s.diaryEntryRooms[entryId]
	if !ok {
		return 0, domain.BoardEntry{}, false
	}
	for _, entry := range s.roomEntries[roomId] {
		if entry.Id == entryId {
			return roomId, entry, true
		}
	}
	return 0, domain.BoardEntry{}, false
}

// UpdateWithDiaryEntry merges the patch over the entry. Unknown ids report false.
func (s *Store) UpdateWithDiaryEntry(entryId int64, patch domain.BoardEntryPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	roomId, ok := s.diaryEntryRooms[entryId]
	if !ok {
		return false
	}
	entries := s.roomEntries[roomId]
	for i := range entries {
		if entries[i].Id == entryId {
			patch.Apply(&entries[i])
			entries[i].Id = entryId
			if patch.Content != nil {
				entries[i].Content = s.sanitizer.Sanitize(entries[i].Content)
			}
			return true
		}
	}
	return false
}

// RemoveWithDiaryEntry drops the entry from its bucket and the reverse index.
func (s *Store) RemoveWithDiaryEntry(entryId int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	roomId, ok := s.diaryEntryRooms[entryId]
	if !ok {
		return
	}
	kept := s.roomEntries[roomId][:0:0]
	for _, entry := range s.roomEntries[roomId] {
		if entry.Id != entryId {
			kept = append(kept, entry)
		}
	}
	s.roomEntries[roomId] = kept
	delete(s.diaryEntryRooms, entryId)
}

// RoomEntries returns a snapshot of the room's bucket, newest first. The
// second result is false for unknown rooms.
func (s *Store) RoomEntries(roomId int64) ([]domain.BoardEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.roomLocked(roomId); !ok {
		return nil, false
	}
	entries := s.roomEntries[roomId]
	out := make([]domain.BoardEntry, len(entries))
	copy(out, entries)
	return out, true
}
