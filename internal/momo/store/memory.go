package store

import (
	"context"
	"sync"

	"github.com/christiantuyishime01/momoledger/internal/momo/entity"
	"github.com/christiantuyishime01/momoledger/internal/pkg/pkgerror"
)

// Memory holds the ordered record sequence and its id index. It is the only
// owner of both; collaborators mutate it exclusively through the CRUD
// methods.
type Memory struct {
	mu      sync.RWMutex
	records []entity.Transaction
	index   map[int]int // id -> position in records
	lastID  int         // high-water mark, never decremented
	gen     uint64
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{
		index: make(map[int]int),
	}
}

// Load replaces the whole record set, typically with the output of an
// extraction run or a snapshot read. The id high-water mark is reset to the
// maximum loaded id.
func (s *Memory) Load(ctx context.Context, records []entity.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make([]entity.Transaction, len(records))
	copy(s.records, records)

	s.index = make(map[int]int, len(records))
	s.lastID = 0
	for i, tx := range s.records {
		s.index[tx.ID] = i
		if tx.ID > s.lastID {
			s.lastID = tx.ID
		}
	}

	s.gen++
}

// List returns a copy of the ordered record sequence.
func (s *Memory) List(ctx context.Context) []entity.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]entity.Transaction, len(s.records))
	copy(records, s.records)
	return records
}

// Count returns the number of records.
func (s *Memory) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}

// Get returns the record with the given id or pkgerror.ErrNotFound.
func (s *Memory) Get(ctx context.Context, id int) (entity.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		return entity.Transaction{}, pkgerror.ErrNotFound
	}

	return s.records[pos], nil
}

// Create appends a record with a newly assigned id. Ids come from a
// high-water mark, so deleting the highest record does not make its id
// reusable.
func (s *Memory) Create(ctx context.Context, tx entity.Transaction) entity.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	tx.ID = s.lastID

	s.records = append(s.records, tx)
	s.index[tx.ID] = len(s.records) - 1
	s.gen++

	return tx
}

// Update applies fn to the record with the given id, in place. The id itself
// cannot be changed through fn; it is restored afterwards.
func (s *Memory) Update(ctx context.Context, id int, fn func(tx *entity.Transaction)) (entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return entity.Transaction{}, pkgerror.ErrNotFound
	}

	fn(&s.records[pos])
	s.records[pos].ID = id
	s.gen++

	return s.records[pos], nil
}

// Delete removes and returns the record with the given id. The position
// index is rebuilt wholesale because every position after the removed record
// shifts.
func (s *Memory) Delete(ctx context.Context, id int) (entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return entity.Transaction{}, pkgerror.ErrNotFound
	}

	removed := s.records[pos]
	s.records = append(s.records[:pos], s.records[pos+1:]...)

	s.index = make(map[int]int, len(s.records))
	for i, tx := range s.records {
		s.index[tx.ID] = i
	}
	s.gen++

	return removed, nil
}

// Generation is a counter that moves on every mutation. Collaborators that
// derive structures from the record set (sorted copies, probe tables) use it
// to decide when a wholesale rebuild is due.
func (s *Memory) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.gen
}
