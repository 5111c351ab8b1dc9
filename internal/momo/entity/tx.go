package entity

// Transaction is the canonical record extracted from one money-transfer SMS.
//
// Amount, Balance and Fee are plain JSON numbers on the wire, never numeric
// strings. Message keeps the verbatim SMS body for auditing.
type Transaction struct {
	ID              int             `json:"id"`
	TransactionType TransactionType `json:"transaction_type"`
	Amount          float64         `json:"amount"`
	Currency        string          `json:"currency"`
	Sender          string          `json:"sender"`
	Receiver        string          `json:"receiver"`
	Timestamp       string          `json:"timestamp"`
	Status          string          `json:"status"`
	ReferenceNumber string          `json:"reference_number"`
	Balance         float64         `json:"balance"`
	Fee             float64         `json:"fee"`
	Message         string          `json:"message"`
}
