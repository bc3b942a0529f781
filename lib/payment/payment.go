package payment

import (
	"fmt"

	"github.com/rhaller/gncbook/lib/book"
	"github.com/rhaller/gncbook/lib/common/compare"
	"github.com/rhaller/gncbook/lib/common/set"
	"github.com/rhaller/gncbook/lib/model/account"
	"github.com/rhaller/gncbook/lib/model/invoice"
	"github.com/rhaller/gncbook/lib/model/transaction"
	"github.com/shopspring/decimal"
)

// Status is the derived payment state of one invoice. It is recomputed
// from the transaction graph on every query; nothing here is stored.
type Status struct {
	WithoutTax decimal.Decimal
	WithTax    decimal.Decimal
	Paid       decimal.Decimal
	Unpaid     decimal.Decimal
	FullyPaid  bool
}

// PostTransaction returns the transaction that posted the invoice, or
// false for a draft invoice.
func PostTransaction(b *book.Book, inv *invoice.Invoice) (*transaction.Transaction, bool) {
	if !inv.IsPosted() {
		return nil, false
	}
	return b.Transaction(inv.PostTransaction)
}

// PayingTransactions returns the transactions paying the invoice: the
// owners of all splits sharing the invoice's lot, except the posting
// transaction itself. A draft invoice has none.
func PayingTransactions(b *book.Book, inv *invoice.Invoice) ([]*transaction.Transaction, error) {
	if !inv.IsPosted() || inv.PostLot.IsNil() {
		return nil, nil
	}
	seen := set.New[*transaction.Transaction]()
	var res []*transaction.Transaction
	for _, s := range b.SplitsForLot(inv.PostLot) {
		if s.Transaction == inv.PostTransaction {
			continue
		}
		t, ok := b.Transaction(s.Transaction)
		if !ok {
			return nil, book.DanglingReferenceError{Kind: "transaction", ID: s.Transaction, Referrer: fmt.Sprintf("split %s", s.ID)}
		}
		if !seen.Has(t) {
			seen.Add(t)
			res = append(res, t)
		}
	}
	compare.Sort(res, transaction.Compare)
	return res, nil
}

// AmountPaid sums the payment splits against the invoice's posting
// account, normalized so that a payment increases the result regardless
// of whether the account is a receivable or a payable.
func AmountPaid(b *book.Book, inv *invoice.Invoice) (decimal.Decimal, error) {
	if !inv.IsPosted() || inv.PostLot.IsNil() {
		return decimal.Zero, nil
	}
	postAcc, ok := b.Account(inv.PostAccount)
	if !ok {
		return decimal.Zero, book.DanglingReferenceError{Kind: "account", ID: inv.PostAccount, Referrer: fmt.Sprintf("invoice %s", inv.Num)}
	}
	sum := decimal.Zero
	for _, s := range b.SplitsForLot(inv.PostLot) {
		if s.Transaction == inv.PostTransaction || s.Account != inv.PostAccount {
			continue
		}
		sum = sum.Add(s.Value)
	}
	if postAcc.Type == account.RECEIVABLE {
		sum = sum.Neg()
	}
	return sum, nil
}

// Calculate derives the full payment status of an invoice. A draft
// invoice reports zero paid and the full amount unpaid, without error.
// Unpaid remainders within Epsilon, and negative remainders from
// overpayment, are clamped to zero.
func Calculate(b *book.Book, inv *invoice.Invoice) (*Status, error) {
	withoutTax, err := AmountWithoutTax(b, inv)
	if err != nil {
		return nil, err
	}
	withTax, err := AmountWithTax(b, inv)
	if err != nil {
		return nil, err
	}
	paid, err := AmountPaid(b, inv)
	if err != nil {
		return nil, err
	}
	unpaid := withTax.Sub(paid)
	if unpaid.LessThan(Epsilon) {
		unpaid = decimal.Zero
	}
	return &Status{
		WithoutTax: withoutTax,
		WithTax:    withTax,
		Paid:       paid,
		Unpaid:     unpaid,
		FullyPaid:  inv.IsPosted() && unpaid.IsZero(),
	}, nil
}

// PaidWithoutTax apportions the paid amount to the net part of the
// invoice, in the ratio of net to gross.
func (s *Status) PaidWithoutTax() decimal.Decimal {
	if s.WithTax.IsZero() {
		return decimal.Zero
	}
	return s.Paid.Mul(s.WithoutTax).Div(s.WithTax)
}

// IsFullyPaid reports whether the invoice's unpaid remainder is zero
// within Epsilon. A draft invoice is never fully paid.
func IsFullyPaid(b *book.Book, inv *invoice.Invoice) (bool, error) {
	s, err := Calculate(b, inv)
	if err != nil {
		return false, err
	}
	return s.FullyPaid, nil
}
