package textures

import (
	"errors"
	"sync"
)

var (
	// ErrAlreadyPublished is returned when the store is written more than once.
	ErrAlreadyPublished = errors.New("textures already published")
	// ErrReleased is returned when the store is written after it was released.
	ErrReleased = errors.New("texture store released")
)

// Snapshot is a consistent copy of the store: both pairs come from the same
// side of the single publication.
type Snapshot struct {
	Obstacle  Pair
	Booster   Pair
	Published bool
}

// Get returns the pair for kind.
func (s Snapshot) Get(kind Kind) Pair {
	switch kind {
	case KindObstacle:
		return s.Obstacle
	case KindBooster:
		return s.Booster
	}
	return Absent
}

// Store holds the published decorative textures. It is written once by the
// loader goroutine and read every frame by the render loop; every access goes
// through the same mutex so a reader never sees one pair updated without the other.
type Store struct {
	lock      sync.Mutex
	snapshot  Snapshot
	released  bool
	published chan struct{}
}

func NewStore() *Store {
	return &Store{
		published: make(chan struct{}),
	}
}

// Read returns a copy of the current pair for kind.
func (s *Store) Read(kind Kind) Pair {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.snapshot.Get(kind)
}

// Snapshot returns a copy of both pairs taken in one critical section.
func (s *Store) Snapshot() Snapshot {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.snapshot
}

// Write publishes both pairs together. Only the first write succeeds.
func (s *Store) Write(obstacle, booster Pair) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.released {
		return ErrReleased
	}
	if s.snapshot.Published {
		return ErrAlreadyPublished
	}

	s.snapshot = Snapshot{
		Obstacle:  obstacle,
		Booster:   booster,
		Published: true,
	}
	close(s.published)
	return nil
}

// Published reports whether Write has succeeded.
func (s *Store) Published() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.snapshot.Published
}

// PublishedChan is closed when Write succeeds.
func (s *Store) PublishedChan() <-chan struct{} {
	return s.published
}

// Release frees the published textures and returns the store to the absent
// state. Later writes fail with ErrReleased.
func (s *Store) Release() {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.released {
		return
	}
	s.released = true
	s.snapshot.Obstacle.Release()
	s.snapshot.Booster.Release()
	s.snapshot.Obstacle = Absent
	s.snapshot.Booster = Absent
}
