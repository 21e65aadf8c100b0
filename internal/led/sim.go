package led

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// Sim keeps the last frame in memory; useful without hardware and in tests.
type Sim struct {
	mu     sync.Mutex
	count  int
	last   []byte
	frames uint64
	closed bool
}

func NewSim(count int) *Sim {
	return &Sim{count: count, last: make([]byte, count*3)}
}

func (s *Sim) Write(rgb []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("sim closed")
	}
	if len(rgb) != s.count*3 {
		return fmt.Errorf("rgb length %d does not match count %d", len(rgb), s.count)
	}
	copy(s.last, rgb)
	s.frames++

	lit := 0
	for i := 0; i+2 < len(rgb); i += 3 {
		if rgb[i]|rgb[i+1]|rgb[i+2] != 0 {
			lit++
		}
	}
	log.Debug().Uint64("frame", s.frames).Int("lit", lit).Msg("sim frame")
	return nil
}

// Last returns a copy of the most recent frame.
func (s *Sim) Last() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte{}, s.last...)
}

func (s *Sim) Frames() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

func (s *Sim) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
