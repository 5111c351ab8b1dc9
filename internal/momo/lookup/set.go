package lookup

import (
	"time"

	"github.com/christiantuyishime01/momoledger/internal/momo/entity"
)

// Clock supplies the readings used for lookup timing. time.Now carries a
// monotonic component, so subtraction is safe against wall-clock jumps; tests
// substitute a fake.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// Set holds all four strategies built from one record snapshot. All of them
// answer over exactly the same data, so their outcomes must agree for every
// id; divergence is a defect, not a tolerated variation.
type Set struct {
	strategies []Strategy
	byName     map[string]Strategy
	clock      Clock
	count      int
}

// NewSet snapshots the records and builds every strategy's structure up
// front, so per-lookup timing covers only the search body. A nil clock means
// the real one.
func NewSet(records []entity.Transaction, clock Clock) *Set {
	if clock == nil {
		clock = realClock{}
	}

	snapshot := make([]entity.Transaction, len(records))
	copy(snapshot, records)

	strategies := buildStrategies(snapshot)
	byName := make(map[string]Strategy, len(strategies))
	for _, s := range strategies {
		byName[s.Name()] = s
	}

	return &Set{
		strategies: strategies,
		byName:     byName,
		clock:      clock,
		count:      len(snapshot),
	}
}

// Strategies returns the strategies in declaration order: linear search,
// dictionary lookup, binary search, hash table search.
func (s *Set) Strategies() []Strategy {
	return s.strategies
}

// Strategy returns the named strategy, if it exists.
func (s *Set) Strategy(name string) (Strategy, bool) {
	strategy, ok := s.byName[name]
	return strategy, ok
}

// Names returns the strategy names in declaration order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.strategies))
	for _, strategy := range s.strategies {
		names = append(names, strategy.Name())
	}
	return names
}

// Count returns the number of records in the snapshot.
func (s *Set) Count() int {
	return s.count
}

// Run executes one lookup and reports the elapsed wall-clock time in
// fractional milliseconds, measured tightly around the search body.
func (s *Set) Run(strategy Strategy, id int) (entity.Transaction, bool, float64) {
	start := s.clock.Now()
	tx, found := strategy.Find(id)
	elapsed := s.clock.Now().Sub(start)

	return tx, found, float64(elapsed.Nanoseconds()) / 1e6
}
