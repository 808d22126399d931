package fixture

import (
	"github.com/churchweb/mockapi/domain"
)

// ResetComments installs an empty bucket for the composite key, wiping
// whatever was there. This is also how a key comes into existence: comment
// writes never create partitions on their own.
func (s *Store) ResetComments(boardName string, boardId int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments[CommentKey{boardName, boardId}] = nil
}

// AddComment prepends a comment to its composite-key bucket. Ids come from
// one counter shared across all buckets. Writing into an unknown key fails
// instead of creating a partition.
func (s *Store) AddComment(boardName string, boardId int64, comment domain.CommentEntry) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := CommentKey{boardName, boardId}
	bucket, ok := s.comments[key]
	if !ok {
		return 0, false
	}

	s.nextCommentId++
	comment.Id = s.nextCommentId
	comment.BoardName = boardName
	comment.BoardId = boardId
	comment.Content = s.sanitizer.Sanitize(comment.Content)
	if comment.CreatedAt == "" {
		comment.CreatedAt = s.timestamp()
	}
	s.comments[key] = append([]domain.CommentEntry{comment}, bucket...)
	return comment.Id, true
}

// UpdateComment replaces the comment's content within its bucket.
func (s *Store) UpdateComment(boardName string, boardId, commentId int64, content string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket := s.comments[CommentKey{boardName, boardId}]
	for i := range bucket {
		if bucket[i].Id == commentId {
			bucket[i].Content = s.sanitizer.Sanitize(content)
			return true
		}
	}
	return false
}

// RemoveComment filters the comment out of its bucket.
func (s *Store) RemoveComment(boardName string, boardId, commentId int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := CommentKey{boardName, boardId}
	bucket, ok := s.comments[key]
	if !ok {
		return false
	}
	kept := bucket[:0:0]
	removed := false
	for _, c := range bucket {
		if c.Id == commentId {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	s.comments[key] = kept
	return removed
}

// Comments returns the bucket for the composite key, newest first. Unknown
// keys yield an empty list: absence is a valid possible world, not an error.
func (s *Store) Comments(boardName string, boardId int64) []domain.CommentEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bucket := s.comments[CommentKey{boardName, boardId}]
	out := make([]domain.CommentEntry, len(bucket))
	copy(out, bucket)
	return out
}
