package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/christiantuyishime01/momoledger/internal/momo/entity"
)

// Rule pairs a body pattern with a mapper from matched groups to record
// fields. Rules are evaluated in declaration order and the first match wins,
// so the order of the slice returned by Rules is part of the contract: two
// patterns could structurally overlap on ambiguous text.
type Rule struct {
	Type    entity.TransactionType
	pattern *regexp.Regexp
	build   func(groups []string, tx *entity.Transaction) error
}

// Match applies the rule to a body and fills tx on success.
//
// A failed numeric conversion inside a structurally matching body demotes the
// whole rule to "no match": a record with garbage amounts is worse than
// falling through to a later rule or to unknown.
func (r Rule) Match(body string, tx *entity.Transaction) bool {
	groups := r.pattern.FindStringSubmatch(body)
	if groups == nil {
		return false
	}

	if err := r.build(groups, tx); err != nil {
		return false
	}

	tx.TransactionType = r.Type
	return true
}

// Rules returns the extraction rules in priority order: received money,
// payment sent, peer transfer, bank deposit. New message formats append to
// the end of this list.
func Rules() []Rule {
	return []Rule{
		{
			Type: entity.TypeReceive,
			pattern: regexp.MustCompile(
				`You have received (\d+(?:,\d+)*) (\w+) from ([^(]+) \(\*+(\d+)\).*?Your new balance:(\d+(?:,\d+)*) (\w+).*?Transaction Id: (\d+)`,
			),
			build: func(groups []string, tx *entity.Transaction) error {
				amount, err := parseNumber(groups[1])
				if err != nil {
					return err
				}
				balance, err := parseNumber(groups[5])
				if err != nil {
					return err
				}

				tx.Amount = amount
				tx.Currency = groups[2]
				tx.Sender = strings.TrimSpace(groups[3])
				tx.Balance = balance
				tx.ReferenceNumber = groups[7]
				return nil
			},
		},
		{
			Type: entity.TypePayment,
			pattern: regexp.MustCompile(
				`TxId: (\d+)\. Your payment of ([\d,]+) (\w+) to ([^0-9]+)(\d+) has been completed.*?Your new balance: ([\d,]+) (\w+)\. Fee was (\d+) (\w+)`,
			),
			build: func(groups []string, tx *entity.Transaction) error {
				amount, err := parseNumber(groups[2])
				if err != nil {
					return err
				}
				balance, err := parseNumber(groups[6])
				if err != nil {
					return err
				}
				fee, err := parseNumber(groups[8])
				if err != nil {
					return err
				}

				tx.ReferenceNumber = groups[1]
				tx.Amount = amount
				tx.Currency = groups[3]
				tx.Receiver = strings.TrimSpace(groups[4])
				tx.Balance = balance
				tx.Fee = fee
				return nil
			},
		},
		{
			Type: entity.TypeTransfer,
			pattern: regexp.MustCompile(
				`\*165\*S\*([\d,]+) (\w+) transferred to ([^(]+) \((\d+)\) from (\d+).*?Fee was: (\d+) (\w+)\. New balance: ([\d,]+) (\w+)`,
			),
			build: func(groups []string, tx *entity.Transaction) error {
				amount, err := parseNumber(groups[1])
				if err != nil {
					return err
				}
				fee, err := parseNumber(groups[6])
				if err != nil {
					return err
				}
				balance, err := parseNumber(groups[8])
				if err != nil {
					return err
				}

				tx.Amount = amount
				tx.Currency = groups[2]
				tx.Receiver = strings.TrimSpace(groups[3])
				tx.Fee = fee
				tx.Balance = balance
				return nil
			},
		},
		{
			Type: entity.TypeDeposit,
			pattern: regexp.MustCompile(
				`\*113\*R\*A bank deposit of ([\d,]+) (\w+) has been added.*?Your NEW BALANCE :([\d,]+) (\w+)`,
			),
			build: func(groups []string, tx *entity.Transaction) error {
				amount, err := parseNumber(groups[1])
				if err != nil {
					return err
				}
				balance, err := parseNumber(groups[3])
				if err != nil {
					return err
				}

				tx.Amount = amount
				tx.Currency = groups[2]
				tx.Balance = balance
				tx.Sender = "Bank"
				tx.Receiver = "Self"
				return nil
			},
		},
	}
}

// parseNumber converts a matched numeric group to a non-negative float.
// Thousands separators are stripped before conversion.
func parseNumber(raw string) (float64, error) {
	value, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return 0, fmt.Errorf("parse number %q: %w", raw, err)
	}
	if value.IsNegative() {
		return 0, fmt.Errorf("negative value %q", raw)
	}

	return value.InexactFloat64(), nil
}
