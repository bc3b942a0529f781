package view

import (
	"github.com/rhaller/gncbook/lib/book"
	"github.com/rhaller/gncbook/lib/model/invoice"
	"github.com/rhaller/gncbook/lib/model/owner"
	"github.com/shopspring/decimal"
)

// EmployeeVoucher is the employee-expense view of a generic invoice.
type EmployeeVoucher struct {
	noInvoice
	noBill
	noJob
	amounts
}

var _ View = (*EmployeeVoucher)(nil)

// WrapEmployeeVoucher wraps inv as an employee voucher. It fails with
// WrongInvoiceTypeError if inv is not owned by an employee.
func WrapEmployeeVoucher(b *book.Book, inv *invoice.Invoice) (*EmployeeVoucher, error) {
	if inv.OwnerType() != owner.EMPLOYEE {
		return nil, mismatch(inv, owner.EMPLOYEE)
	}
	return &EmployeeVoucher{
		noInvoice: noInvoice{err: mismatch(inv, owner.CUSTOMER)},
		noBill:    noBill{err: mismatch(inv, owner.VENDOR)},
		noJob:     noJob{err: mismatch(inv, owner.JOB)},
		amounts:   amounts{b: b, inv: inv},
	}, nil
}

// Employee returns the owning employee.
func (ev *EmployeeVoucher) Employee() (*owner.Employee, error) {
	e, ok := ev.b.Employee(ev.inv.OwnerRef.ID)
	if !ok {
		return nil, book.DanglingReferenceError{Kind: "employee", ID: ev.inv.OwnerRef.ID, Referrer: string(ev.inv.ID)}
	}
	return e, nil
}

func (ev *EmployeeVoucher) VoucherAmountWithoutTax() (decimal.Decimal, error) {
	return ev.withoutTax()
}

func (ev *EmployeeVoucher) VoucherAmountWithTax() (decimal.Decimal, error) {
	return ev.withTax()
}

func (ev *EmployeeVoucher) VoucherAmountPaidWithTax() (decimal.Decimal, error) {
	return ev.paidWithTax()
}

func (ev *EmployeeVoucher) VoucherAmountPaidWithoutTax() (decimal.Decimal, error) {
	return ev.paidWithoutTax()
}

func (ev *EmployeeVoucher) VoucherAmountUnpaidWithTax() (decimal.Decimal, error) {
	return ev.unpaidWithTax()
}

func (ev *EmployeeVoucher) VoucherIsFullyPaid() (bool, error) {
	return ev.fullyPaid()
}

func (ev *EmployeeVoucher) VoucherIsNotFullyPaid() (bool, error) {
	return ev.notFullyPaid()
}
