package extract

import (
	"strconv"
	"time"

	"github.com/christiantuyishime01/momoledger/internal/momo/entity"
)

const (
	// DefaultAddress is the sender channel that identifies the money-transfer
	// system. Messages from any other channel are skipped before rule
	// evaluation.
	DefaultAddress = "M-Money"

	// DefaultCurrency is used when a message format does not carry one.
	DefaultCurrency = "RWF"

	timestampLayout = "2006-01-02T15:04:05"
)

// Extractor classifies message bodies against the ordered rule list and
// assembles transaction records.
type Extractor struct {
	rules    []Rule
	address  string
	currency string
}

// New builds an Extractor. Empty address or currency fall back to the
// defaults.
func New(address, currency string) *Extractor {
	if address == "" {
		address = DefaultAddress
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	return &Extractor{
		rules:    Rules(),
		address:  address,
		currency: currency,
	}
}

// Classify runs the rule ladder over one body. The second return value is
// false when no rule matched; such bodies are an expected outcome, not an
// error, and never reach the store. The record returned for them carries
// entity.TypeUnknown.
func (e *Extractor) Classify(body string) (entity.Transaction, bool) {
	if body == "" {
		return entity.Transaction{TransactionType: entity.TypeUnknown}, false
	}

	for _, rule := range e.rules {
		tx := entity.Transaction{
			Currency: e.currency,
			Status:   entity.StatusCompleted,
			Message:  body,
		}
		if rule.Match(body, &tx) {
			return tx, true
		}
	}

	return entity.Transaction{TransactionType: entity.TypeUnknown}, false
}

// Run converts an ordered message sequence into the ordered record set.
//
// Only messages from the money-transfer channel are considered. Ids start at
// 1 and increment only on a successful classification, so the output ids are
// always contiguous.
func (e *Extractor) Run(messages []entity.Message) []entity.Transaction {
	transactions := make([]entity.Transaction, 0, len(messages))

	nextID := 1
	for _, msg := range messages {
		if msg.Address != e.address {
			continue
		}

		tx, ok := e.Classify(msg.Body)
		if !ok {
			continue
		}

		tx.ID = nextID
		tx.Timestamp = deriveTimestamp(msg)
		nextID++

		transactions = append(transactions, tx)
	}

	return transactions
}

// deriveTimestamp renders the epoch-millisecond field as ISO-8601, degrading
// to the human-readable string and then to empty. The raw date text never
// surfaces as a timestamp. It never fails.
func deriveTimestamp(msg entity.Message) string {
	if ms, err := strconv.ParseInt(msg.Date, 10, 64); msg.Date != "" && err == nil {
		return time.UnixMilli(ms).Format(timestampLayout)
	}

	return msg.ReadableDate
}
