package entity

// Message is one inbound SMS exactly as it appears in the backup document.
// Ingestion fills it without interpreting the body; the extractor consumes it.
type Message struct {
	Protocol     string
	Address      string
	Date         string // epoch milliseconds as text, possibly empty
	Type         string
	Subject      string
	Body         string
	ReadableDate string
	ContactName  string
}
