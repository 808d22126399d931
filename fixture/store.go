// Package fixture holds every in-memory resource the mock backend serves.
// A Store is built once per test run; it is both the state the route
// handlers read and mutate, and the priming interface test code calls to
// set up preconditions without a network round-trip.
package fixture

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/churchweb/mockapi/config"
	"github.com/churchweb/mockapi/domain"
)

const isoLayout = "2006-01-02T15:04:05.000Z"

// CommentKey partitions comment storage by board name and entry id.
type CommentKey struct {
	BoardName string
	BoardId   int64
}

// Store is a process-wide handle over all mutable resource collections.
// Handlers run on the server's goroutines while priming happens on the test
// goroutine, so access goes through a mutex even though each request is
// handled to completion on its own.
type Store struct {
	mu        sync.RWMutex
	now       func() time.Time
	sanitizer *bluemonday.Policy

	boards        map[string][]domain.BoardEntry
	boardCounters map[string]int64

	users         map[string]domain.User
	nextUserId    domain.UserId
	pendingSignUp *domain.SignUpPayload

	schedules      []domain.ScheduleEntry
	nextScheduleId int64

	rooms            []domain.WithDiaryRoom
	roomEntries      map[int64][]domain.BoardEntry
	diaryEntryRooms  map[int64]int64
	nextRoomId       int64
	nextDiaryEntryId int64

	comments      map[CommentKey][]domain.CommentEntry
	nextCommentId int64

	biblePlans    map[int]domain.BiblePlan
	lastBiblePlan *domain.BiblePlan
}

// NewStore seeds a fresh Store from the configured fixture set. Every board
// gets its own id counter starting after the seeded entries; user ids created
// through sign-up start at 1000 so they never collide with seeded accounts.
func NewStore(seed config.Seed) *Store {
	s := &Store{
		now:             time.Now,
		sanitizer:       bluemonday.UGCPolicy(),
		boards:          make(map[string][]domain.BoardEntry),
		boardCounters:   make(map[string]int64),
		users:           make(map[string]domain.User),
		nextUserId:      1000,
		roomEntries:     make(map[int64][]domain.BoardEntry),
		diaryEntryRooms: make(map[int64]int64),
		comments:        make(map[CommentKey][]domain.CommentEntry),
		biblePlans:      make(map[int]domain.BiblePlan),
	}

	for _, board := range seed.Boards {
		entries := make([]domain.BoardEntry, 0, seed.EntriesPerBoard)
		for i := 1; i <= seed.EntriesPerBoard; i++ {
			entry := domain.BoardEntry{
				Id:         int64(i),
				Title:      fmt.Sprintf("%s 샘플 게시글 %d", board.Title, i),
				WriterName: fmt.Sprintf("작성자%d", i),
				Writer:     fmt.Sprintf("writer%d", i),
				Content:    fmt.Sprintf("<p>%s 샘플 게시글 %d 내용입니다.</p>", board.Title, i),
				// synthetic date strings; the day field may run past the
				// month, the UI renders them verbatim
				CreatedAt: fmt.Sprintf("2024-01-%02dT00:00:00.000Z", i+9),
			}
			if isPhotoBoard(board.Key) {
				entry.Files = fmt.Sprintf(`[{"filename":"photo_%d.jpg","originalname":"photo_%d.jpg"}]`, i, i)
			}
			entries = append(entries, entry)
		}
		s.boards[board.Key] = entries
		s.boardCounters[board.Key] = int64(seed.EntriesPerBoard)
	}

	var id domain.UserId
	for _, u := range seed.Users {
		id++
		s.users[u.Username] = domain.User{
			Id:         id,
			Username:   u.Username,
			Password:   u.Password,
			Email:      u.Email,
			Name:       u.Name,
			Role:       u.Role,
			IsApproved: u.IsApproved,
		}
	}

	return s
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(isoLayout)
}

func isPhotoBoard(board string) bool {
	return strings.Contains(board, "photo")
}
