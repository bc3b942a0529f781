package view

import (
	"github.com/rhaller/gncbook/lib/book"
	"github.com/rhaller/gncbook/lib/model/invoice"
	"github.com/rhaller/gncbook/lib/model/owner"
	"github.com/shopspring/decimal"
)

// CustomerInvoice is the customer-side view of a generic invoice.
type CustomerInvoice struct {
	noBill
	noVoucher
	noJob
	amounts
}

var _ View = (*CustomerInvoice)(nil)

// WrapCustomerInvoice wraps inv as a customer invoice. It fails with
// WrongInvoiceTypeError if inv is not owned by a customer.
func WrapCustomerInvoice(b *book.Book, inv *invoice.Invoice) (*CustomerInvoice, error) {
	if inv.OwnerType() != owner.CUSTOMER {
		return nil, mismatch(inv, owner.CUSTOMER)
	}
	return &CustomerInvoice{
		noBill:    noBill{err: mismatch(inv, owner.VENDOR)},
		noVoucher: noVoucher{err: mismatch(inv, owner.EMPLOYEE)},
		noJob:     noJob{err: mismatch(inv, owner.JOB)},
		amounts:   amounts{b: b, inv: inv},
	}, nil
}

// Customer returns the owning customer.
func (ci *CustomerInvoice) Customer() (*owner.Customer, error) {
	c, ok := ci.b.Customer(ci.inv.OwnerRef.ID)
	if !ok {
		return nil, book.DanglingReferenceError{Kind: "customer", ID: ci.inv.OwnerRef.ID, Referrer: string(ci.inv.ID)}
	}
	return c, nil
}

func (ci *CustomerInvoice) InvoiceAmountWithoutTax() (decimal.Decimal, error) {
	return ci.withoutTax()
}

func (ci *CustomerInvoice) InvoiceAmountWithTax() (decimal.Decimal, error) {
	return ci.withTax()
}

func (ci *CustomerInvoice) InvoiceAmountPaidWithTax() (decimal.Decimal, error) {
	return ci.paidWithTax()
}

func (ci *CustomerInvoice) InvoiceAmountPaidWithoutTax() (decimal.Decimal, error) {
	return ci.paidWithoutTax()
}

func (ci *CustomerInvoice) InvoiceAmountUnpaidWithTax() (decimal.Decimal, error) {
	return ci.unpaidWithTax()
}

func (ci *CustomerInvoice) InvoiceIsFullyPaid() (bool, error) {
	return ci.fullyPaid()
}

func (ci *CustomerInvoice) InvoiceIsNotFullyPaid() (bool, error) {
	return ci.notFullyPaid()
}
