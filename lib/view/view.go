// Package view narrows generic invoices to their four business views:
// customer invoice, vendor bill, employee voucher and job invoice. A
// view is constructed fallibly from a generic invoice and rejects
// construction from the wrong owner type. Every view also implements the
// other three views' accessors as unconditional failures, so callers
// holding only a generic invoice can probe for its type.
package view

import (
	"github.com/rhaller/gncbook/lib/book"
	"github.com/rhaller/gncbook/lib/common/compare"
	"github.com/rhaller/gncbook/lib/model/invoice"
	"github.com/rhaller/gncbook/lib/model/owner"
	"github.com/rhaller/gncbook/lib/payment"
	"github.com/shopspring/decimal"
)

// View is the common surface of the four specialized views. Exactly one
// accessor family works per view; the other three fail with
// WrongInvoiceTypeError.
type View interface {
	Generic() *invoice.Invoice

	InvoiceAmountWithoutTax() (decimal.Decimal, error)
	InvoiceAmountWithTax() (decimal.Decimal, error)
	InvoiceAmountPaidWithTax() (decimal.Decimal, error)
	InvoiceAmountPaidWithoutTax() (decimal.Decimal, error)
	InvoiceAmountUnpaidWithTax() (decimal.Decimal, error)
	InvoiceIsFullyPaid() (bool, error)
	InvoiceIsNotFullyPaid() (bool, error)

	BillAmountWithoutTax() (decimal.Decimal, error)
	BillAmountWithTax() (decimal.Decimal, error)
	BillAmountPaidWithTax() (decimal.Decimal, error)
	BillAmountPaidWithoutTax() (decimal.Decimal, error)
	BillAmountUnpaidWithTax() (decimal.Decimal, error)
	BillIsFullyPaid() (bool, error)
	BillIsNotFullyPaid() (bool, error)

	VoucherAmountWithoutTax() (decimal.Decimal, error)
	VoucherAmountWithTax() (decimal.Decimal, error)
	VoucherAmountPaidWithTax() (decimal.Decimal, error)
	VoucherAmountPaidWithoutTax() (decimal.Decimal, error)
	VoucherAmountUnpaidWithTax() (decimal.Decimal, error)
	VoucherIsFullyPaid() (bool, error)
	VoucherIsNotFullyPaid() (bool, error)

	JobAmountWithoutTax() (decimal.Decimal, error)
	JobAmountWithTax() (decimal.Decimal, error)
	JobAmountPaidWithTax() (decimal.Decimal, error)
	JobAmountPaidWithoutTax() (decimal.Decimal, error)
	JobAmountUnpaidWithTax() (decimal.Decimal, error)
	JobIsFullyPaid() (bool, error)
	JobIsNotFullyPaid() (bool, error)
}

// Wrap wraps a generic invoice in the view matching its owner type.
func Wrap(b *book.Book, inv *invoice.Invoice) (View, error) {
	switch inv.OwnerType() {
	case owner.CUSTOMER:
		return WrapCustomerInvoice(b, inv)
	case owner.VENDOR:
		return WrapVendorBill(b, inv)
	case owner.EMPLOYEE:
		return WrapEmployeeVoucher(b, inv)
	case owner.JOB:
		return WrapJobInvoice(b, inv)
	}
	return nil, invoice.WrongInvoiceTypeError{Invoice: inv.ID, Got: inv.OwnerType(), Want: owner.CUSTOMER}
}

// Compare orders views by date opened, then date posted.
func Compare(v1, v2 View) compare.Order {
	return invoice.Compare(v1.Generic(), v2.Generic())
}

func mismatch(inv *invoice.Invoice, want owner.Type) error {
	return invoice.WrongInvoiceTypeError{Invoice: inv.ID, Got: inv.OwnerType(), Want: want}
}

// amounts delegates one view's valid accessor family to the payment
// engine.
type amounts struct {
	b   *book.Book
	inv *invoice.Invoice
}

// Generic returns the wrapped generic invoice.
func (a amounts) Generic() *invoice.Invoice {
	return a.inv
}

func (a amounts) withoutTax() (decimal.Decimal, error) {
	return payment.AmountWithoutTax(a.b, a.inv)
}

func (a amounts) withTax() (decimal.Decimal, error) {
	return payment.AmountWithTax(a.b, a.inv)
}

func (a amounts) paidWithTax() (decimal.Decimal, error) {
	s, err := payment.Calculate(a.b, a.inv)
	if err != nil {
		return decimal.Zero, err
	}
	return s.Paid, nil
}

func (a amounts) paidWithoutTax() (decimal.Decimal, error) {
	s, err := payment.Calculate(a.b, a.inv)
	if err != nil {
		return decimal.Zero, err
	}
	return s.PaidWithoutTax(), nil
}

func (a amounts) unpaidWithTax() (decimal.Decimal, error) {
	s, err := payment.Calculate(a.b, a.inv)
	if err != nil {
		return decimal.Zero, err
	}
	return s.Unpaid, nil
}

func (a amounts) fullyPaid() (bool, error) {
	return payment.IsFullyPaid(a.b, a.inv)
}

func (a amounts) notFullyPaid() (bool, error) {
	fullyPaid, err := a.fullyPaid()
	return !fullyPaid, err
}

// The no* types implement a foreign accessor family as unconditional
// failures.

type noInvoice struct{ err error }

func (n noInvoice) InvoiceAmountWithoutTax() (decimal.Decimal, error)     { return decimal.Zero, n.err }
func (n noInvoice) InvoiceAmountWithTax() (decimal.Decimal, error)        { return decimal.Zero, n.err }
func (n noInvoice) InvoiceAmountPaidWithTax() (decimal.Decimal, error)    { return decimal.Zero, n.err }
func (n noInvoice) InvoiceAmountPaidWithoutTax() (decimal.Decimal, error) { return decimal.Zero, n.err }
func (n noInvoice) InvoiceAmountUnpaidWithTax() (decimal.Decimal, error)  { return decimal.Zero, n.err }
func (n noInvoice) InvoiceIsFullyPaid() (bool, error)                     { return false, n.err }
func (n noInvoice) InvoiceIsNotFullyPaid() (bool, error)                  { return false, n.err }

type noBill struct{ err error }

func (n noBill) BillAmountWithoutTax() (decimal.Decimal, error)     { return decimal.Zero, n.err }
func (n noBill) BillAmountWithTax() (decimal.Decimal, error)        { return decimal.Zero, n.err }
func (n noBill) BillAmountPaidWithTax() (decimal.Decimal, error)    { return decimal.Zero, n.err }
func (n noBill) BillAmountPaidWithoutTax() (decimal.Decimal, error) { return decimal.Zero, n.err }
func (n noBill) BillAmountUnpaidWithTax() (decimal.Decimal, error)  { return decimal.Zero, n.err }
func (n noBill) BillIsFullyPaid() (bool, error)                     { return false, n.err }
func (n noBill) BillIsNotFullyPaid() (bool, error)                  { return false, n.err }

type noVoucher struct{ err error }

func (n noVoucher) VoucherAmountWithoutTax() (decimal.Decimal, error)     { return decimal.Zero, n.err }
func (n noVoucher) VoucherAmountWithTax() (decimal.Decimal, error)        { return decimal.Zero, n.err }
func (n noVoucher) VoucherAmountPaidWithTax() (decimal.Decimal, error)    { return decimal.Zero, n.err }
func (n noVoucher) VoucherAmountPaidWithoutTax() (decimal.Decimal, error) { return decimal.Zero, n.err }
func (n noVoucher) VoucherAmountUnpaidWithTax() (decimal.Decimal, error)  { return decimal.Zero, n.err }
func (n noVoucher) VoucherIsFullyPaid() (bool, error)                     { return false, n.err }
func (n noVoucher) VoucherIsNotFullyPaid() (bool, error)                  { return false, n.err }

type noJob struct{ err error }

func (n noJob) JobAmountWithoutTax() (decimal.Decimal, error)     { return decimal.Zero, n.err }
func (n noJob) JobAmountWithTax() (decimal.Decimal, error)        { return decimal.Zero, n.err }
func (n noJob) JobAmountPaidWithTax() (decimal.Decimal, error)    { return decimal.Zero, n.err }
func (n noJob) JobAmountPaidWithoutTax() (decimal.Decimal, error) { return decimal.Zero, n.err }
func (n noJob) JobAmountUnpaidWithTax() (decimal.Decimal, error)  { return decimal.Zero, n.err }
func (n noJob) JobIsFullyPaid() (bool, error)                     { return false, n.err }
func (n noJob) JobIsNotFullyPaid() (bool, error)                  { return false, n.err }
