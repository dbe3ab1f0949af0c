package state

import (
	"errors"
	"log"
	"sync"
)

var (
	ErrNoStroke     = errors.New("no stroke in progress")
	ErrStrokeSealed = errors.New("stroke is sealed")
)

// Store is the session's ordered, append-only collection of strokes.
// Only the last stroke is ever mutated.
type Store struct {
	strokes []*Stroke
	mu      sync.RWMutex
}

// NewStore creates an empty stroke store.
func NewStore() *Store {
	return &Store{
		strokes: make([]*Stroke, 0),
	}
}

// Begin pushes a new empty stroke and returns its ID.
func (st *Store) Begin() string {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := &Stroke{ID: newStrokeID()}
	st.strokes = append(st.strokes, s)
	log.Printf("[STORE] Stroke begun: %s", s.ID)
	return s.ID
}

// Append adds a point to the stroke in progress.
func (st *Store) Append(p Point) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, err := st.current()
	if err != nil {
		return err
	}
	s.Points = append(s.Points, p)
	return nil
}

// Seal freezes the last stroke and returns a copy of it.
func (st *Store) Seal() (Stroke, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, err := st.current()
	if err != nil {
		return Stroke{}, err
	}
	s.Sealed = true
	log.Printf("[STORE] Stroke sealed: %s (%d points)", s.ID, len(s.Points))
	return s.clone(), nil
}

func (st *Store) current() (*Stroke, error) {
	if len(st.strokes) == 0 {
		return nil, ErrNoStroke
	}
	s := st.strokes[len(st.strokes)-1]
	if s.Sealed {
		return nil, ErrStrokeSealed
	}
	return s, nil
}

// Last returns a copy of the most recent stroke.
func (st *Store) Last() (Stroke, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	if len(st.strokes) == 0 {
		return Stroke{}, false
	}
	return st.strokes[len(st.strokes)-1].clone(), true
}

// Strokes returns a snapshot of every stroke, including the one in
// progress. The snapshot shares no memory with the store.
func (st *Store) Strokes() []Stroke {
	st.mu.RLock()
	defer st.mu.RUnlock()

	out := make([]Stroke, 0, len(st.strokes))
	for _, s := range st.strokes {
		out = append(out, s.clone())
	}
	return out
}

// Len returns the number of strokes.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.strokes)
}

// PointCount returns the number of points across all strokes.
func (st *Store) PointCount() int {
	st.mu.RLock()
	defer st.mu.RUnlock()

	n := 0
	for _, s := range st.strokes {
		n += len(s.Points)
	}
	return n
}

func (s *Stroke) clone() Stroke {
	c := *s
	c.Points = make([]Point, len(s.Points))
	copy(c.Points, s.Points)
	return c
}
