package transfer

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLockTransaction_EvictsOnRelease(t *testing.T) {
	s := &Service{locks: make(map[uuid.UUID]*txLock)}
	id := uuid.New()

	unlock := s.lockTransaction(id)
	s.mu.Lock()
	assert.Len(t, s.locks, 1)
	s.mu.Unlock()

	unlock()
	s.mu.Lock()
	assert.Empty(t, s.locks)
	s.mu.Unlock()
}

// Waiters on the same transaction still serialize, and the map drains once
// the last one releases.
func TestLockTransaction_SerializesAndDrains(t *testing.T) {
	s := &Service{locks: make(map[uuid.UUID]*txLock)}
	id := uuid.New()

	const workers = 16
	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := s.lockTransaction(id)
			counter++
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
	s.mu.Lock()
	assert.Empty(t, s.locks)
	s.mu.Unlock()
}
