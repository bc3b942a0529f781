package view

import (
	"github.com/rhaller/gncbook/lib/book"
	"github.com/rhaller/gncbook/lib/model/invoice"
	"github.com/rhaller/gncbook/lib/model/owner"
	"github.com/rhaller/gncbook/lib/model/taxtable"
	"github.com/rhaller/gncbook/lib/payment"
	"github.com/shopspring/decimal"
)

// entryView reads the side of an entry matching the owning invoice's
// view. The side is fixed at construction.
type entryView struct {
	b    *book.Book
	e    *invoice.Entry
	side invoice.Side
}

func wrapEntry(b *book.Book, e *invoice.Entry, want owner.Type) (entryView, error) {
	inv, err := b.InvoiceOf(e)
	if err != nil {
		return entryView{}, err
	}
	if inv.OwnerType() != want {
		return entryView{}, mismatch(inv, want)
	}
	side, err := payment.SideOf(b, inv)
	if err != nil {
		return entryView{}, err
	}
	return entryView{b: b, e: e, side: side}, nil
}

// Generic returns the wrapped generic entry.
func (ev entryView) Generic() *invoice.Entry {
	return ev.e
}

func (ev entryView) Quantity() decimal.Decimal {
	return ev.e.Quantity
}

func (ev entryView) Price() decimal.Decimal {
	return ev.e.Block(ev.side).Price
}

func (ev entryView) Discount() decimal.Decimal {
	return ev.e.Block(ev.side).Discount
}

func (ev entryView) Taxable() bool {
	return ev.e.Block(ev.side).Taxable
}

func (ev entryView) TaxIncluded() bool {
	return ev.e.Block(ev.side).TaxIncluded
}

// TaxTable returns the entry's tax table, or false if it has none.
func (ev entryView) TaxTable() (*taxtable.TaxTable, bool) {
	id := ev.e.Block(ev.side).TaxTable
	if id.IsNil() {
		return nil, false
	}
	return ev.b.TaxTable(id)
}

// Net returns the entry amount without tax.
func (ev entryView) Net() (decimal.Decimal, error) {
	return payment.EntryNet(ev.b, ev.e, ev.side)
}

// Tax returns the tax charged on the entry.
func (ev entryView) Tax() (decimal.Decimal, error) {
	return payment.EntryTax(ev.b, ev.e, ev.side)
}

// Gross returns the entry amount including tax.
func (ev entryView) Gross() (decimal.Decimal, error) {
	net, err := ev.Net()
	if err != nil {
		return decimal.Zero, err
	}
	tax, err := ev.Tax()
	if err != nil {
		return decimal.Zero, err
	}
	return net.Add(tax), nil
}

// CustomerInvoiceEntry is an entry of a customer invoice.
type CustomerInvoiceEntry struct{ entryView }

// WrapCustomerInvoiceEntry wraps e as a customer invoice entry. It fails
// with WrongInvoiceTypeError if the owning invoice is not a customer
// invoice.
func WrapCustomerInvoiceEntry(b *book.Book, e *invoice.Entry) (*CustomerInvoiceEntry, error) {
	ev, err := wrapEntry(b, e, owner.CUSTOMER)
	if err != nil {
		return nil, err
	}
	return &CustomerInvoiceEntry{ev}, nil
}

// VendorBillEntry is an entry of a vendor bill.
type VendorBillEntry struct{ entryView }

// WrapVendorBillEntry wraps e as a vendor bill entry.
func WrapVendorBillEntry(b *book.Book, e *invoice.Entry) (*VendorBillEntry, error) {
	ev, err := wrapEntry(b, e, owner.VENDOR)
	if err != nil {
		return nil, err
	}
	return &VendorBillEntry{ev}, nil
}

// EmployeeVoucherEntry is an entry of an employee voucher.
type EmployeeVoucherEntry struct{ entryView }

// WrapEmployeeVoucherEntry wraps e as an employee voucher entry.
func WrapEmployeeVoucherEntry(b *book.Book, e *invoice.Entry) (*EmployeeVoucherEntry, error) {
	ev, err := wrapEntry(b, e, owner.EMPLOYEE)
	if err != nil {
		return nil, err
	}
	return &EmployeeVoucherEntry{ev}, nil
}

// JobInvoiceEntry is an entry of a job invoice. Its side follows the
// job's own owner.
type JobInvoiceEntry struct{ entryView }

// WrapJobInvoiceEntry wraps e as a job invoice entry.
func WrapJobInvoiceEntry(b *book.Book, e *invoice.Entry) (*JobInvoiceEntry, error) {
	ev, err := wrapEntry(b, e, owner.JOB)
	if err != nil {
		return nil, err
	}
	return &JobInvoiceEntry{ev}, nil
}
