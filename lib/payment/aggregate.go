package payment

import (
	"github.com/rhaller/gncbook/lib/book"
	"github.com/rhaller/gncbook/lib/common/compare"
	"github.com/rhaller/gncbook/lib/model/invoice"
	"github.com/rhaller/gncbook/lib/model/owner"
	"github.com/shopspring/decimal"
)

// Aggregation over the owner hierarchy. Job-level and owner-level
// figures are sums of the per-invoice primitives; there is no shortcut
// through stored state, so all access paths must agree.

// InvoicesOf returns the invoices attributed to the owner under the
// given variant: Direct collects invoices immediately owned by the
// party, ViaJob collects the invoices of all jobs the party owns.
func InvoicesOf(b *book.Book, ref owner.Ref, v book.Variant) []*invoice.Invoice {
	switch v {
	case book.Direct:
		return b.InvoicesFor(ref)
	case book.ViaJob:
		var res []*invoice.Invoice
		for _, j := range b.JobsFor(ref) {
			res = append(res, b.InvoicesFor(j.Ref())...)
		}
		compare.Sort(res, invoice.Compare)
		return res
	}
	return nil
}

// Sum accumulates the payment status over a set of invoices.
func Sum(b *book.Book, invoices []*invoice.Invoice) (*Status, error) {
	total := &Status{
		WithoutTax: decimal.Zero,
		WithTax:    decimal.Zero,
		Paid:       decimal.Zero,
		Unpaid:     decimal.Zero,
		FullyPaid:  true,
	}
	for _, inv := range invoices {
		s, err := Calculate(b, inv)
		if err != nil {
			return nil, err
		}
		total.WithoutTax = total.WithoutTax.Add(s.WithoutTax)
		total.WithTax = total.WithTax.Add(s.WithTax)
		total.Paid = total.Paid.Add(s.Paid)
		total.Unpaid = total.Unpaid.Add(s.Unpaid)
		total.FullyPaid = total.FullyPaid && s.FullyPaid
	}
	return total, nil
}

// OwnerStatus aggregates the payment status of a party's invoices under
// the given variant.
func OwnerStatus(b *book.Book, ref owner.Ref, v book.Variant) (*Status, error) {
	return Sum(b, InvoicesOf(b, ref, v))
}

// JobStatus aggregates the payment status of a job's invoices.
func JobStatus(b *book.Book, j *owner.Job) (*Status, error) {
	return OwnerStatus(b, j.Ref(), book.Direct)
}

// OpenInvoices returns the posted, not fully paid invoices of the owner
// under the given variant.
func OpenInvoices(b *book.Book, ref owner.Ref, v book.Variant) ([]*invoice.Invoice, error) {
	var res []*invoice.Invoice
	for _, inv := range InvoicesOf(b, ref, v) {
		if !inv.IsPosted() {
			continue
		}
		fullyPaid, err := IsFullyPaid(b, inv)
		if err != nil {
			return nil, err
		}
		if !fullyPaid {
			res = append(res, inv)
		}
	}
	return res, nil
}

// PaidInvoices returns the posted, fully paid invoices of the owner
// under the given variant.
func PaidInvoices(b *book.Book, ref owner.Ref, v book.Variant) ([]*invoice.Invoice, error) {
	var res []*invoice.Invoice
	for _, inv := range InvoicesOf(b, ref, v) {
		if !inv.IsPosted() {
			continue
		}
		fullyPaid, err := IsFullyPaid(b, inv)
		if err != nil {
			return nil, err
		}
		if fullyPaid {
			res = append(res, inv)
		}
	}
	return res, nil
}

// NofOpenInvoices counts the owner's open invoices under the given
// variant.
func NofOpenInvoices(b *book.Book, ref owner.Ref, v book.Variant) (int, error) {
	open, err := OpenInvoices(b, ref, v)
	if err != nil {
		return 0, err
	}
	return len(open), nil
}
