package lookup

import (
	"sort"

	"github.com/christiantuyishime01/momoledger/internal/momo/entity"
)

// Strategy names double as the keys in benchmark reports, so they are part
// of the serialized surface.
const (
	NameLinearSearch     = "linear_search"
	NameDictionaryLookup = "dictionary_lookup"
	NameBinarySearch     = "binary_search"
	NameHashTableSearch  = "hash_table_search"
)

// Strategy answers "does a record with this id exist, and what is it" over
// one fixed record snapshot. Implementations never mutate the snapshot; a
// changed record set means building a new Set.
type Strategy interface {
	Name() string
	Find(id int) (entity.Transaction, bool)
}

// linearSearch scans the raw ordered sequence. O(n), no preconditions.
type linearSearch struct {
	records []entity.Transaction
}

func (s *linearSearch) Name() string { return NameLinearSearch }

func (s *linearSearch) Find(id int) (entity.Transaction, bool) {
	for _, tx := range s.records {
		if tx.ID == id {
			return tx, true
		}
	}
	return entity.Transaction{}, false
}

// dictionaryLookup is a direct key map. O(1) expected; the map is built from
// the same snapshot the other strategies see.
type dictionaryLookup struct {
	index map[int]entity.Transaction
}

func (s *dictionaryLookup) Name() string { return NameDictionaryLookup }

func (s *dictionaryLookup) Find(id int) (entity.Transaction, bool) {
	tx, ok := s.index[id]
	return tx, ok
}

// binarySearch halves an id-sorted copy of the snapshot. O(log n); the copy
// is rebuilt with the Set, never patched.
type binarySearch struct {
	sorted []entity.Transaction
}

func (s *binarySearch) Name() string { return NameBinarySearch }

func (s *binarySearch) Find(id int) (entity.Transaction, bool) {
	left, right := 0, len(s.sorted)-1
	for left <= right {
		mid := (left + right) / 2
		switch {
		case s.sorted[mid].ID == id:
			return s.sorted[mid], true
		case s.sorted[mid].ID < id:
			left = mid + 1
		default:
			right = mid - 1
		}
	}
	return entity.Transaction{}, false
}

// hashTable is a textbook open-addressed table with linear probing.
//
// Capacity is the next power of two holding the records at no more than half
// load, not the record count itself: a table without empty slots can never
// terminate a miss early and clusters badly when ids are sparse.
type hashTable struct {
	slots []*entity.Transaction
	mask  int
}

const minTableSize = 8

func newHashTable(records []entity.Transaction) *hashTable {
	size := minTableSize
	for size < 2*len(records) {
		size *= 2
	}

	t := &hashTable{
		slots: make([]*entity.Transaction, size),
		mask:  size - 1,
	}
	for i := range records {
		t.insert(&records[i])
	}
	return t
}

func (t *hashTable) insert(tx *entity.Transaction) {
	pos := tx.ID & t.mask
	for t.slots[pos] != nil {
		pos = (pos + 1) & t.mask
	}
	t.slots[pos] = tx
}

func (t *hashTable) Name() string { return NameHashTableSearch }

func (t *hashTable) Find(id int) (entity.Transaction, bool) {
	pos := id & t.mask
	for i := 0; i < len(t.slots); i++ {
		slot := t.slots[pos]
		if slot == nil {
			return entity.Transaction{}, false
		}
		if slot.ID == id {
			return *slot, true
		}
		pos = (pos + 1) & t.mask
	}
	return entity.Transaction{}, false
}

func buildStrategies(records []entity.Transaction) []Strategy {
	index := make(map[int]entity.Transaction, len(records))
	for _, tx := range records {
		index[tx.ID] = tx
	}

	sorted := make([]entity.Transaction, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	// Declaration order is the tie-break order in benchmark rankings.
	return []Strategy{
		&linearSearch{records: records},
		&dictionaryLookup{index: index},
		&binarySearch{sorted: sorted},
		newHashTable(records),
	}
}
