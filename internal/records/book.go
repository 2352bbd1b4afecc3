// Package records keeps the most recent finished games.
package records

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/vovakirdan/tui-tetra/internal/storage"
)

// Capacity is how many finished games a Book remembers.
const Capacity = 5

// Record is one finished game.
type Record struct {
	Player string    `json:"player"`
	Score  int       `json:"score"`
	Round  int       `json:"round"`
	Lines  int       `json:"lines"`
	At     time.Time `json:"at"`
}

// Store is the persistence a Book can write through to.
// *storage.Store satisfies it.
type Store interface {
	SaveScore(e storage.ScoreEntry) (int64, error)
	RecentScores(player string, limit int) ([]storage.ScoreEntry, error)
	HighScore() (int, error)
}

// Book is a fixed window of the last Capacity games of one player.
// It is safe for concurrent use.
type Book struct {
	mu     sync.Mutex
	player string
	recent *ring[Record]
	best   int
	store  Store
	now    func() time.Time
}

// Option configures a Book.
type Option func(*Book)

// WithStore persists every added record and seeds the book from the store.
func WithStore(s Store) Option {
	return func(b *Book) { b.store = s }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(b *Book) { b.now = now }
}

// NewBook creates a book for player. With a store attached it loads the
// player's latest games and the overall best score.
func NewBook(player string, opts ...Option) (*Book, error) {
	b := &Book{
		player: player,
		recent: newRing[Record](Capacity),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.store == nil {
		return b, nil
	}

	entries, err := b.store.RecentScores(player, Capacity)
	if err != nil {
		return nil, fmt.Errorf("records: load: %w", err)
	}
	// entries are newest first; the ring wants oldest first
	for _, e := range slices.Backward(entries) {
		b.recent.push(Record{Player: e.Player, Score: e.Score, Round: e.Round, Lines: e.Lines, At: e.CreatedAt})
	}
	if b.best, err = b.store.HighScore(); err != nil {
		return nil, fmt.Errorf("records: load best: %w", err)
	}
	return b, nil
}

// Player returns whose games the book holds.
func (b *Book) Player() string { return b.player }

// Add records a finished game. The record is kept in memory even when the
// store fails; the store error is returned.
func (b *Book) Add(score, round, lines int) (Record, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	rec := Record{Player: b.player, Score: score, Round: round, Lines: lines, At: b.now()}
	b.recent.push(rec)
	b.best = max(b.best, score)

	if b.store != nil {
		if _, err := b.store.SaveScore(storage.ScoreEntry{
			Player: rec.Player, Score: rec.Score, Round: rec.Round, Lines: rec.Lines,
		}); err != nil {
			return rec, fmt.Errorf("records: save: %w", err)
		}
	}
	return rec, nil
}

// List returns the remembered games, newest first.
func (b *Book) List() []Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Collect(b.recent.newest())
}

// Chronological returns the remembered games, oldest first.
func (b *Book) Chronological() []Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Collect(b.recent.oldest())
}

// Len returns how many games are remembered.
func (b *Book) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.recent.len()
}

// Best returns the highest score seen, including scores loaded from the store.
func (b *Book) Best() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.best
}

// Forget drops the in-memory window. Stored scores are left alone.
func (b *Book) Forget() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.recent.reset()
}
