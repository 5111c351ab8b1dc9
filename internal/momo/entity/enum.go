package entity

// TransactionType is the classification a message body resolved to.
type TransactionType string

const (
	TypeReceive  TransactionType = "receive"
	TypePayment  TransactionType = "payment"
	TypeTransfer TransactionType = "transfer"
	TypeDeposit  TransactionType = "deposit"

	// TypeUnknown marks a body no rule matched. Classification reports it
	// alongside a failed match; unknown results never reach the store.
	TypeUnknown TransactionType = "unknown"
)

// StatusCompleted is the status every freshly extracted record carries.
// Later updates may overwrite it with arbitrary values.
const StatusCompleted = "completed"
