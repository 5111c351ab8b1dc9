package ingest

import (
	"encoding/xml"
	"io"
	"os"

	"github.com/christiantuyishime01/momoledger/internal/momo/entity"
	"github.com/christiantuyishime01/momoledger/internal/pkg/pkgerror"
)

// smsDocument mirrors the SMS backup format: a root element with a count
// attribute and one child element per message, all data in attributes.
type smsDocument struct {
	XMLName xml.Name     `xml:"smses"`
	Count   string       `xml:"count,attr"`
	SMS     []smsElement `xml:"sms"`
}

type smsElement struct {
	Protocol     string `xml:"protocol,attr"`
	Address      string `xml:"address,attr"`
	Date         string `xml:"date,attr"`
	Type         string `xml:"type,attr"`
	Subject      string `xml:"subject,attr"`
	Body         string `xml:"body,attr"`
	ReadableDate string `xml:"readable_date,attr"`
	ContactName  string `xml:"contact_name,attr"`
}

// ParseFile reads an SMS backup document from disk.
//
// A missing or unreadable file yields pkgerror.CodeSourceUnavailable, a file
// that is not the expected structure yields pkgerror.CodeMalformedSource. In
// both cases the returned slice is empty; the caller decides whether that is
// fatal.
func ParseFile(path string) ([]entity.Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return []entity.Message{}, pkgerror.NewSourceUnavailable(err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes an SMS backup document into messages, preserving document
// order exactly. No filtering or interpretation happens here.
func Parse(r io.Reader) ([]entity.Message, error) {
	var doc smsDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return []entity.Message{}, pkgerror.NewMalformedSource(err)
	}

	messages := make([]entity.Message, 0, len(doc.SMS))
	for _, sms := range doc.SMS {
		messages = append(messages, entity.Message{
			Protocol:     sms.Protocol,
			Address:      sms.Address,
			Date:         sms.Date,
			Type:         sms.Type,
			Subject:      sms.Subject,
			Body:         sms.Body,
			ReadableDate: sms.ReadableDate,
			ContactName:  sms.ContactName,
		})
	}

	return messages, nil
}
