package progrock

import (
	"fmt"
	"sync"
	"time"

	"github.com/vito/progrock"
	"go.trai.ch/npmbridge/internal/core/ports"
)

// Summary is a progrock.Writer that folds vertex updates into one line per
// failed location and a closing tally, written through the logger on Close.
type Summary struct {
	logger ports.Logger

	mu       sync.Mutex
	order    []string
	vertices map[string]*progrock.Vertex
	closed   bool
}

// NewSummary creates a Summary reporting to logger.
func NewSummary(logger ports.Logger) *Summary {
	return &Summary{
		logger:   logger,
		vertices: make(map[string]*progrock.Vertex),
	}
}

// WriteStatus records the latest state of every vertex in the update.
func (s *Summary) WriteStatus(update *progrock.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range update.Vertexes {
		if _, seen := s.vertices[v.Id]; !seen {
			s.order = append(s.order, v.Id)
		}
		s.vertices[v.Id] = v
	}
	return nil
}

// Close logs the summary. Only the first call reports.
func (s *Summary) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || len(s.order) == 0 {
		s.closed = true
		return nil
	}
	s.closed = true

	var installed, cached, failed int
	var first, last time.Time
	for _, id := range s.order {
		v := s.vertices[id]
		if v.Completed == nil {
			continue
		}

		switch {
		case v.Error != nil:
			failed++
			s.logger.Warn(fmt.Sprintf("%s failed: %s", v.Name, *v.Error))
		case v.Cached:
			cached++
		default:
			installed++
		}

		if v.Started != nil && (first.IsZero() || v.Started.AsTime().Before(first)) {
			first = v.Started.AsTime()
		}
		if done := v.Completed.AsTime(); done.After(last) {
			last = done
		}
	}

	msg := fmt.Sprintf("npm: %d installed, %d up to date, %d failed", installed, cached, failed)
	if !first.IsZero() && last.After(first) {
		msg += fmt.Sprintf(" in %s", last.Sub(first).Round(time.Millisecond))
	}
	s.logger.Info(msg)
	return nil
}
