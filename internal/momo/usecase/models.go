package usecase

import (
	"github.com/christiantuyishime01/momoledger/internal/momo/entity"
)

type ListResult struct {
	Transactions []entity.Transaction
	Total        int
}

// CreateTransactionInput carries the caller-supplied fields of a new record.
// The id is always assigned by the store.
type CreateTransactionInput struct {
	Type            entity.TransactionType
	Amount          float64
	Currency        string
	Sender          string
	Receiver        string
	Timestamp       string
	Status          string
	ReferenceNumber string
	Message         string
	Balance         float64
	Fee             float64
}

// UpdateTransactionInput patches a record field by field. Nil pointers leave
// the current value untouched.
type UpdateTransactionInput struct {
	Type            *entity.TransactionType
	Amount          *float64
	Currency        *string
	Sender          *string
	Receiver        *string
	Timestamp       *string
	Status          *string
	ReferenceNumber *string
	Message         *string
	Balance         *float64
	Fee             *float64
}

type LookupResult struct {
	Strategy    string
	Transaction entity.Transaction
	Found       bool
	ElapsedMS   float64
}
