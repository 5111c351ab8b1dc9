package lookup

import (
	"reflect"
	"testing"
	"time"

	"github.com/christiantuyishime01/momoledger/internal/momo/entity"
)

func makeRecords(n int) []entity.Transaction {
	records := make([]entity.Transaction, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, entity.Transaction{
			ID:              i,
			TransactionType: entity.TypeReceive,
			Amount:          float64(i * 100),
			Currency:        "RWF",
			Sender:          "John Doe",
			Status:          entity.StatusCompleted,
		})
	}
	return records
}

// stepClock advances a fixed amount per reading, making elapsed times
// deterministic.
type stepClock struct {
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func TestStrategiesAgreeOnEveryID(t *testing.T) {
	t.Parallel()

	set := NewSet(makeRecords(20), nil)
	if len(set.Strategies()) != 4 {
		t.Fatalf("Strategies() len = %d, want 4", len(set.Strategies()))
	}

	// Present ids, boundary ids, and absent ids on both sides.
	for _, id := range []int{1, 2, 10, 19, 20, 0, -3, 21, 999} {
		var wantTx entity.Transaction
		var wantFound bool

		for i, strategy := range set.Strategies() {
			tx, found := strategy.Find(id)
			if i == 0 {
				wantTx, wantFound = tx, found
				continue
			}
			if found != wantFound {
				t.Fatalf("strategy %s disagrees on id %d: found=%v, want %v", strategy.Name(), id, found, wantFound)
			}
			if !reflect.DeepEqual(tx, wantTx) {
				t.Fatalf("strategy %s returned different record for id %d:\n%+v\n%+v", strategy.Name(), id, tx, wantTx)
			}
		}
	}
}

func TestLinearAndBinaryFieldForFieldIdentical(t *testing.T) {
	t.Parallel()

	set := NewSet(makeRecords(20), nil)
	linear, ok := set.Strategy(NameLinearSearch)
	if !ok {
		t.Fatal("missing linear strategy")
	}
	binary, ok := set.Strategy(NameBinarySearch)
	if !ok {
		t.Fatal("missing binary strategy")
	}

	fromLinear, foundLinear := linear.Find(13)
	fromBinary, foundBinary := binary.Find(13)
	if !foundLinear || !foundBinary {
		t.Fatalf("expected both to find id 13: %v/%v", foundLinear, foundBinary)
	}
	if !reflect.DeepEqual(fromLinear, fromBinary) {
		t.Fatalf("records differ:\n%+v\n%+v", fromLinear, fromBinary)
	}
}

func TestBinarySearchUnsortedInput(t *testing.T) {
	t.Parallel()

	// The snapshot arrives in arbitrary order; the sorted copy is the
	// strategy's own responsibility.
	records := []entity.Transaction{
		{ID: 9, Currency: "RWF"},
		{ID: 2, Currency: "RWF"},
		{ID: 31, Currency: "RWF"},
		{ID: 4, Currency: "RWF"},
	}

	set := NewSet(records, nil)
	binary, _ := set.Strategy(NameBinarySearch)

	for _, id := range []int{2, 4, 9, 31} {
		if _, found := binary.Find(id); !found {
			t.Fatalf("binary search missed id %d", id)
		}
	}
	if _, found := binary.Find(5); found {
		t.Fatal("binary search found absent id 5")
	}
}

func TestHashTableSparseIDs(t *testing.T) {
	t.Parallel()

	// Sparse ids relative to count is the degenerate case for a count-sized
	// table; the sized-up table must stay correct.
	records := []entity.Transaction{
		{ID: 1, Currency: "RWF"},
		{ID: 1000, Currency: "RWF"},
		{ID: 1000000, Currency: "RWF"},
	}

	set := NewSet(records, nil)
	table, _ := set.Strategy(NameHashTableSearch)

	for _, id := range []int{1, 1000, 1000000} {
		tx, found := table.Find(id)
		if !found {
			t.Fatalf("hash table missed id %d", id)
		}
		if tx.ID != id {
			t.Fatalf("hash table returned id %d for id %d", tx.ID, id)
		}
	}
	if _, found := table.Find(17); found {
		t.Fatal("hash table found absent id 17")
	}
}

func TestEmptySnapshot(t *testing.T) {
	t.Parallel()

	set := NewSet(nil, nil)
	if set.Count() != 0 {
		t.Fatalf("Count() = %d, want 0", set.Count())
	}

	for _, strategy := range set.Strategies() {
		if _, found := strategy.Find(1); found {
			t.Fatalf("strategy %s found a record in an empty snapshot", strategy.Name())
		}
	}
}

func TestSetIsolatedFromCallerSlice(t *testing.T) {
	t.Parallel()

	records := makeRecords(3)
	set := NewSet(records, nil)

	records[0].Sender = "tampered"

	linear, _ := set.Strategy(NameLinearSearch)
	tx, found := linear.Find(1)
	if !found {
		t.Fatal("expected id 1")
	}
	if tx.Sender != "John Doe" {
		t.Fatalf("snapshot aliases caller slice: %+v", tx)
	}
}

func TestRunReportsElapsedMilliseconds(t *testing.T) {
	t.Parallel()

	clock := &stepClock{now: time.Unix(0, 0), step: 1500 * time.Microsecond}
	set := NewSet(makeRecords(5), clock)

	linear, _ := set.Strategy(NameLinearSearch)
	tx, found, elapsed := set.Run(linear, 3)
	if !found || tx.ID != 3 {
		t.Fatalf("Run() = %+v found=%v", tx, found)
	}
	if elapsed != 1.5 {
		t.Fatalf("Run() elapsed = %v, want 1.5", elapsed)
	}
}

func TestNamesDeclarationOrder(t *testing.T) {
	t.Parallel()

	want := []string{NameLinearSearch, NameDictionaryLookup, NameBinarySearch, NameHashTableSearch}
	if got := NewSet(nil, nil).Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
}
