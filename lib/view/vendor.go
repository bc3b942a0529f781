package view

import (
	"github.com/rhaller/gncbook/lib/book"
	"github.com/rhaller/gncbook/lib/model/invoice"
	"github.com/rhaller/gncbook/lib/model/owner"
	"github.com/shopspring/decimal"
)

// VendorBill is the vendor-side view of a generic invoice.
type VendorBill struct {
	noInvoice
	noVoucher
	noJob
	amounts
}

var _ View = (*VendorBill)(nil)

// WrapVendorBill wraps inv as a vendor bill. It fails with
// WrongInvoiceTypeError if inv is not owned by a vendor.
func WrapVendorBill(b *book.Book, inv *invoice.Invoice) (*VendorBill, error) {
	if inv.OwnerType() != owner.VENDOR {
		return nil, mismatch(inv, owner.VENDOR)
	}
	return &VendorBill{
		noInvoice: noInvoice{err: mismatch(inv, owner.CUSTOMER)},
		noVoucher: noVoucher{err: mismatch(inv, owner.EMPLOYEE)},
		noJob:     noJob{err: mismatch(inv, owner.JOB)},
		amounts:   amounts{b: b, inv: inv},
	}, nil
}

// Vendor returns the owning vendor.
func (vb *VendorBill) Vendor() (*owner.Vendor, error) {
	v, ok := vb.b.Vendor(vb.inv.OwnerRef.ID)
	if !ok {
		return nil, book.DanglingReferenceError{Kind: "vendor", ID: vb.inv.OwnerRef.ID, Referrer: string(vb.inv.ID)}
	}
	return v, nil
}

func (vb *VendorBill) BillAmountWithoutTax() (decimal.Decimal, error) {
	return vb.withoutTax()
}

func (vb *VendorBill) BillAmountWithTax() (decimal.Decimal, error) {
	return vb.withTax()
}

func (vb *VendorBill) BillAmountPaidWithTax() (decimal.Decimal, error) {
	return vb.paidWithTax()
}

func (vb *VendorBill) BillAmountPaidWithoutTax() (decimal.Decimal, error) {
	return vb.paidWithoutTax()
}

func (vb *VendorBill) BillAmountUnpaidWithTax() (decimal.Decimal, error) {
	return vb.unpaidWithTax()
}

func (vb *VendorBill) BillIsFullyPaid() (bool, error) {
	return vb.fullyPaid()
}

func (vb *VendorBill) BillIsNotFullyPaid() (bool, error) {
	return vb.notFullyPaid()
}
