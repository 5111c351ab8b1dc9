package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/christiantuyishime01/momoledger/internal/momo/bench"
	"github.com/christiantuyishime01/momoledger/internal/momo/entity"
	"github.com/christiantuyishime01/momoledger/internal/momo/lookup"
	"github.com/christiantuyishime01/momoledger/internal/pkg/pkgerror"
	"github.com/christiantuyishime01/momoledger/internal/pkg/pkguid"
)

// defaultTestIDCount bounds the benchmark id set when the caller does not
// supply one.
const defaultTestIDCount = 10

type Store interface {
	List(ctx context.Context) []entity.Transaction
	Count(ctx context.Context) int
	Get(ctx context.Context, id int) (entity.Transaction, error)
	Create(ctx context.Context, tx entity.Transaction) entity.Transaction
	Update(ctx context.Context, id int, fn func(tx *entity.Transaction)) (entity.Transaction, error)
	Delete(ctx context.Context, id int) (entity.Transaction, error)
	Generation() uint64
}

type Dependency struct {
	Store Store
	Clock lookup.Clock
	ID    pkguid.StringID
}

type Usecase struct {
	store Store
	clock lookup.Clock
	id    pkguid.StringID

	// The lookup set is a derived snapshot of the store; it is rebuilt
	// lazily whenever the store generation moves.
	mu  sync.Mutex
	set *lookup.Set
	gen uint64
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		store: dep.Store,
		clock: dep.Clock,
		id:    dep.ID,
	}
}

func (u *Usecase) ListTransactions(ctx context.Context) (ListResult, error) {
	if u.store == nil {
		return ListResult{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	records := u.store.List(ctx)
	return ListResult{Transactions: records, Total: len(records)}, nil
}

func (u *Usecase) GetTransaction(ctx context.Context, id int) (entity.Transaction, error) {
	if id < 1 {
		return entity.Transaction{}, pkgerror.NewInvalidInput(errors.New("id must be positive"))
	}

	tx, err := u.store.Get(ctx, id)
	if err != nil {
		return entity.Transaction{}, mapStoreErr(err)
	}
	return tx, nil
}

func (u *Usecase) CreateTransaction(ctx context.Context, in CreateTransactionInput) (entity.Transaction, error) {
	if err := validateCreate(in); err != nil {
		return entity.Transaction{}, err
	}

	status := in.Status
	if status == "" {
		status = entity.StatusCompleted
	}

	tx := u.store.Create(ctx, entity.Transaction{
		TransactionType: in.Type,
		Amount:          in.Amount,
		Balance:         in.Balance,
		Fee:             in.Fee,
		Currency:        in.Currency,
		Sender:          in.Sender,
		Receiver:        in.Receiver,
		Timestamp:       in.Timestamp,
		Status:          status,
		ReferenceNumber: in.ReferenceNumber,
		Message:         in.Message,
	})

	return tx, nil
}

func (u *Usecase) UpdateTransaction(ctx context.Context, id int, in UpdateTransactionInput) (entity.Transaction, error) {
	if id < 1 {
		return entity.Transaction{}, pkgerror.NewInvalidInput(errors.New("id must be positive"))
	}
	if err := validateUpdate(in); err != nil {
		return entity.Transaction{}, err
	}

	tx, err := u.store.Update(ctx, id, func(tx *entity.Transaction) {
		applyPatch(tx, in)
	})
	if err != nil {
		return entity.Transaction{}, mapStoreErr(err)
	}
	return tx, nil
}

func (u *Usecase) DeleteTransaction(ctx context.Context, id int) (entity.Transaction, error) {
	if id < 1 {
		return entity.Transaction{}, pkgerror.NewInvalidInput(errors.New("id must be positive"))
	}

	tx, err := u.store.Delete(ctx, id)
	if err != nil {
		return entity.Transaction{}, mapStoreErr(err)
	}
	return tx, nil
}

// RunLookup resolves an id through a single named strategy and reports the
// elapsed time alongside the outcome. A miss is a valid outcome, not an
// error.
func (u *Usecase) RunLookup(ctx context.Context, strategyName string, id int) (LookupResult, error) {
	set := u.lookupSet(ctx)

	strategy, ok := set.Strategy(strategyName)
	if !ok {
		return LookupResult{}, pkgerror.NewInvalidInput(fmt.Errorf("unknown strategy %q", strategyName))
	}

	tx, found, elapsed := set.Run(strategy, id)
	return LookupResult{
		Strategy:    strategy.Name(),
		Transaction: tx,
		Found:       found,
		ElapsedMS:   elapsed,
	}, nil
}

// Compare benchmarks the named strategies over the given ids. Empty names
// mean all strategies; empty ids default to the first ids in record order.
func (u *Usecase) Compare(ctx context.Context, names []string, ids []int) (bench.Report, error) {
	set := u.lookupSet(ctx)

	if len(ids) == 0 {
		for _, tx := range u.store.List(ctx) {
			ids = append(ids, tx.ID)
			if len(ids) == defaultTestIDCount {
				break
			}
		}
	}

	report, err := bench.Run(set, names, ids)
	if err != nil {
		return bench.Report{}, err
	}

	if u.id != nil {
		report.ReportID = u.id.Generate()
	}
	return report, nil
}

func (u *Usecase) lookupSet(ctx context.Context) *lookup.Set {
	u.mu.Lock()
	defer u.mu.Unlock()

	gen := u.store.Generation()
	if u.set == nil || gen != u.gen {
		u.set = lookup.NewSet(u.store.List(ctx), u.clock)
		u.gen = gen
	}
	return u.set
}

func validateCreate(in CreateTransactionInput) error {
	if !validType(in.Type) {
		return pkgerror.NewInvalidInput(fmt.Errorf("invalid transaction type %q", in.Type))
	}
	if in.Amount < 0 {
		return pkgerror.NewInvalidInput(errors.New("amount must not be negative"))
	}
	if in.Balance < 0 {
		return pkgerror.NewInvalidInput(errors.New("balance must not be negative"))
	}
	if in.Fee < 0 {
		return pkgerror.NewInvalidInput(errors.New("fee must not be negative"))
	}
	if in.Currency == "" {
		return pkgerror.NewInvalidInput(errors.New("currency is required"))
	}
	if in.Sender == "" {
		return pkgerror.NewInvalidInput(errors.New("sender is required"))
	}
	if in.Receiver == "" {
		return pkgerror.NewInvalidInput(errors.New("receiver is required"))
	}
	return nil
}

func validateUpdate(in UpdateTransactionInput) error {
	if in.Type != nil && !validType(*in.Type) {
		return pkgerror.NewInvalidInput(fmt.Errorf("invalid transaction type %q", *in.Type))
	}
	if in.Amount != nil && *in.Amount < 0 {
		return pkgerror.NewInvalidInput(errors.New("amount must not be negative"))
	}
	if in.Balance != nil && *in.Balance < 0 {
		return pkgerror.NewInvalidInput(errors.New("balance must not be negative"))
	}
	if in.Fee != nil && *in.Fee < 0 {
		return pkgerror.NewInvalidInput(errors.New("fee must not be negative"))
	}
	if in.Currency != nil && *in.Currency == "" {
		return pkgerror.NewInvalidInput(errors.New("currency must not be empty"))
	}
	return nil
}

func applyPatch(tx *entity.Transaction, in UpdateTransactionInput) {
	if in.Type != nil {
		tx.TransactionType = *in.Type
	}
	if in.Amount != nil {
		tx.Amount = *in.Amount
	}
	if in.Currency != nil {
		tx.Currency = *in.Currency
	}
	if in.Sender != nil {
		tx.Sender = *in.Sender
	}
	if in.Receiver != nil {
		tx.Receiver = *in.Receiver
	}
	if in.Timestamp != nil {
		tx.Timestamp = *in.Timestamp
	}
	if in.Status != nil {
		tx.Status = *in.Status
	}
	if in.ReferenceNumber != nil {
		tx.ReferenceNumber = *in.ReferenceNumber
	}
	if in.Message != nil {
		tx.Message = *in.Message
	}
	if in.Balance != nil {
		tx.Balance = *in.Balance
	}
	if in.Fee != nil {
		tx.Fee = *in.Fee
	}
}

func validType(t entity.TransactionType) bool {
	switch t {
	case entity.TypeReceive, entity.TypePayment, entity.TypeTransfer, entity.TypeDeposit:
		return true
	}
	return false
}

func mapStoreErr(err error) error {
	if errors.Is(err, pkgerror.ErrNotFound) {
		return pkgerror.NewBusiness("transaction not found", pkgerror.CodeNotFound)
	}

	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr
	}
	return pkgerror.NewServer(err)
}
