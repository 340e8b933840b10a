package game

import "sync"

// HighScores keeps the best score of the running process.
type HighScores interface {
	Best() int
	// Submit records score and returns the best score afterwards.
	Submit(score int) int
}

// MemoryScores is a HighScores for a single game.
type MemoryScores struct {
	best int
}

func (m *MemoryScores) Best() int { return m.best }

func (m *MemoryScores) Submit(score int) int {
	m.best = max(m.best, score)
	return m.best
}

// SharedScores is a HighScores shared by concurrent games, e.g. every SSH
// session of one server.
type SharedScores struct {
	mu   sync.Mutex
	best int
}

func (s *SharedScores) Best() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best
}

func (s *SharedScores) Submit(score int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.best = max(s.best, score)
	return s.best
}
