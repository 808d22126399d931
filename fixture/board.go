package fixture

import (
	"fmt"

	"github.com/churchweb/mockapi/domain"
)

// AddBoardEntry assigns the next id for the board, fills defaults and
// prepends the entry so listings come back newest first. An unknown board
// key yields 0 and no mutation.
func (s *Store) AddBoardEntry(board string, entry domain.BoardEntry) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.boards[board]
	if !ok {
		return 0
	}

	s.boardCounters[board]++
	id := s.boardCounters[board]
	s.boards[board] = append([]domain.BoardEntry{s.fillEntryDefaults(id, board, entry)}, entries...)
	return id
}

// fillEntryDefaults populates the fields a write form may omit. Writer and
// writer_name fall back to each other before the stock "작성자"; photo-type
// partitions always carry a files JSON.
func (s *Store) fillEntryDefaults(id int64, board string, entry domain.BoardEntry) domain.BoardEntry {
	inputWriter := entry.Writer
	entry.Id = id
	if entry.Title == "" {
		entry.Title = fmt.Sprintf("자동 생성 %d", id)
	}
	if entry.WriterName == "" {
		entry.WriterName = inputWriter
	}
	if entry.Writer == "" {
		entry.Writer = entry.WriterName
	}
	if entry.WriterName == "" {
		entry.WriterName = "작성자"
	}
	if entry.Writer == "" {
		entry.Writer = "작성자"
	}
	if entry.Content == "" {
		entry.Content = "<p></p>"
	} else {
		entry.Content = s.sanitizer.Sanitize(entry.Content)
	}
	if entry.CreatedAt == "" {
		entry.CreatedAt = s.timestamp()
	}
	if isPhotoBoard(board) && entry.Files == "" {
		if inputWriter != "" {
			entry.Files = fmt.Sprintf(`[{"filename":"%s_%d.jpg"}]`, inputWriter, id)
		} else {
			entry.Files = fmt.Sprintf(`[{"filename":"photo_%d.jpg"}]`, id)
		}
	}
	return entry
}

// UpdateBoardEntry merges the patch over the stored record. Unknown board or
// id is a no-op; the id never changes.
func (s *Store) UpdateBoardEntry(board string, id int64, patch domain.BoardEntryPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.boards[board]
	if !ok {
		return
	}
	for i := range entries {
		if entries[i].Id == id {
			patch.Apply(&entries[i])
			entries[i].Id = id
			if patch.Content != nil {
				entries[i].Content = s.sanitizer.Sanitize(entries[i].Content)
			}
			return
		}
	}
}

// RemoveBoardEntry filters the id out of the board's sequence. Removing an
// absent id is a no-op, so deletes are idempotent.
func (s *Store) RemoveBoardEntry(board string, id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.boards[board]
	if !ok {
		return
	}
	kept := entries[:0:0]
	for _, e := range entries {
		if e.Id != id {
			kept = append(kept, e)
		}
	}
	s.boards[board] = kept
}

// HasBoard reports whether the board key exists.
func (s *Store) HasBoard(board string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.boards[board]
	return ok
}

// BoardEntries returns a snapshot of the board's sequence, newest first.
func (s *Store) BoardEntries(board string) ([]domain.BoardEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, ok := s.boards[board]
	if !ok {
		return nil, false
	}
	out := make([]domain.BoardEntry, len(entries))
	copy(out, entries)
	return out, true
}

// BoardEntry looks an entry up by id.
func (s *Store) BoardEntry(board string, id int64) (domain.BoardEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.boards[board] {
		if e.Id == id {
			return e, true
		}
	}
	return domain.BoardEntry{}, false
}
