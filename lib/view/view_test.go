package view_test

import (
	"errors"
	"testing"
	"time"

	"github.com/rhaller/gncbook/lib/book/booktest"
	"github.com/rhaller/gncbook/lib/common/compare"
	"github.com/rhaller/gncbook/lib/model/invoice"
	"github.com/rhaller/gncbook/lib/model/owner"
	"github.com/rhaller/gncbook/lib/payment"
	"github.com/rhaller/gncbook/lib/view"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "want %s, got %s", want, got)
}

func TestWrapRejectsWrongOwnerType(t *testing.T) {
	f := booktest.New(t)
	invoices := map[owner.Type]*invoice.Invoice{
		owner.CUSTOMER: f.CustomerInvoice,
		owner.VENDOR:   f.VendorBill,
		owner.EMPLOYEE: f.Voucher,
		owner.JOB:      f.JobInvoice,
	}
	wrappers := map[owner.Type]func(*invoice.Invoice) error{
		owner.CUSTOMER: func(inv *invoice.Invoice) error {
			_, err := view.WrapCustomerInvoice(f.Book, inv)
			return err
		},
		owner.VENDOR: func(inv *invoice.Invoice) error {
			_, err := view.WrapVendorBill(f.Book, inv)
			return err
		},
		owner.EMPLOYEE: func(inv *invoice.Invoice) error {
			_, err := view.WrapEmployeeVoucher(f.Book, inv)
			return err
		},
		owner.JOB: func(inv *invoice.Invoice) error {
			_, err := view.WrapJobInvoice(f.Book, inv)
			return err
		},
	}
	for wrapType, wrap := range wrappers {
		for invType, inv := range invoices {
			err := wrap(inv)
			if wrapType == invType {
				assert.NoError(t, err, "%s view of %s invoice", wrapType, invType)
				continue
			}
			var wrong invoice.WrongInvoiceTypeError
			require.ErrorAs(t, err, &wrong, "%s view of %s invoice", wrapType, invType)
			assert.Equal(t, invType, wrong.Got)
			assert.Equal(t, wrapType, wrong.Want)
		}
	}
}

func TestForeignAccessorsFail(t *testing.T) {
	f := booktest.New(t)
	ci, err := view.WrapCustomerInvoice(f.Book, f.CustomerInvoice)
	require.NoError(t, err)

	_, err = ci.InvoiceAmountWithTax()
	assert.NoError(t, err)

	_, err = ci.BillAmountWithTax()
	assertWrongType(t, err, owner.CUSTOMER, owner.VENDOR)
	_, err = ci.VoucherAmountWithTax()
	assertWrongType(t, err, owner.CUSTOMER, owner.EMPLOYEE)
	_, err = ci.JobAmountWithTax()
	assertWrongType(t, err, owner.CUSTOMER, owner.JOB)
	_, err = ci.BillIsFullyPaid()
	assertWrongType(t, err, owner.CUSTOMER, owner.VENDOR)

	vb, err := view.WrapVendorBill(f.Book, f.VendorBill)
	require.NoError(t, err)
	_, err = vb.BillAmountWithTax()
	assert.NoError(t, err)
	_, err = vb.InvoiceAmountWithTax()
	assertWrongType(t, err, owner.VENDOR, owner.CUSTOMER)
	_, err = vb.VoucherIsNotFullyPaid()
	assertWrongType(t, err, owner.VENDOR, owner.EMPLOYEE)
}

func assertWrongType(t *testing.T, err error, got, want owner.Type) {
	t.Helper()
	var wrong invoice.WrongInvoiceTypeError
	require.ErrorAs(t, err, &wrong)
	assert.Equal(t, got, wrong.Got)
	assert.Equal(t, want, wrong.Want)
}

func TestCustomerInvoiceAmounts(t *testing.T) {
	f := booktest.New(t)
	ci, err := view.WrapCustomerInvoice(f.Book, f.CustomerInvoice)
	require.NoError(t, err)

	net, err := ci.InvoiceAmountWithoutTax()
	require.NoError(t, err)
	assertDecimal(t, "4125.00", net)

	gross, err := ci.InvoiceAmountWithTax()
	require.NoError(t, err)
	assertDecimal(t, "4908.75", gross)

	c, err := ci.Customer()
	require.NoError(t, err)
	assert.Equal(t, f.Customer, c)
}

func TestVendorBillPayment(t *testing.T) {
	f := booktest.New(t)
	_, err := payment.Post(f.Book, f.VendorBill, f.Payable, booktest.Date(time.February, 28))
	require.NoError(t, err)
	_, err = payment.Pay(f.Book, f.VendorBill, f.Checking, decimal.NewFromInt(689), booktest.Date(time.March, 15))
	require.NoError(t, err)

	vb, err := view.WrapVendorBill(f.Book, f.VendorBill)
	require.NoError(t, err)

	paid, err := vb.BillAmountPaidWithTax()
	require.NoError(t, err)
	assertDecimal(t, "689", paid)

	unpaid, err := vb.BillAmountUnpaidWithTax()
	require.NoError(t, err)
	assert.True(t, unpaid.IsZero())

	fullyPaid, err := vb.BillIsFullyPaid()
	require.NoError(t, err)
	assert.True(t, fullyPaid)

	notFullyPaid, err := vb.BillIsNotFullyPaid()
	require.NoError(t, err)
	assert.False(t, notFullyPaid)
}

func TestJobInvoiceResolvesJobOwner(t *testing.T) {
	f := booktest.New(t)
	ji, err := view.WrapJobInvoice(f.Book, f.JobInvoice)
	require.NoError(t, err)

	assert.Equal(t, f.Job, ji.Job())
	assert.Equal(t, f.Customer.Ref(), ji.JobOwner())

	// The job is owned by a customer, so amounts come from the
	// invoice side blocks.
	net, err := ji.JobAmountWithoutTax()
	require.NoError(t, err)
	assertDecimal(t, "500.00", net)

	gross, err := ji.JobAmountWithTax()
	require.NoError(t, err)
	assertDecimal(t, "595.00", gross)
}

func TestWrapGeneric(t *testing.T) {
	f := booktest.New(t)
	for _, inv := range []*invoice.Invoice{f.CustomerInvoice, f.VendorBill, f.Voucher, f.JobInvoice} {
		v, err := view.Wrap(f.Book, inv)
		require.NoError(t, err)
		assert.Equal(t, inv, v.Generic())
	}

	ci, err := view.Wrap(f.Book, f.CustomerInvoice)
	require.NoError(t, err)
	_, ok := ci.(*view.CustomerInvoice)
	assert.True(t, ok)
}

func TestEntryViews(t *testing.T) {
	f := booktest.New(t)
	entries := f.Book.Entries(f.CustomerInvoice)
	require.Len(t, entries, 3)

	ev, err := view.WrapCustomerInvoiceEntry(f.Book, entries[0])
	require.NoError(t, err)
	assertDecimal(t, "1375", ev.Price())
	assert.True(t, ev.Taxable())

	tt, ok := ev.TaxTable()
	require.True(t, ok)
	assert.Equal(t, f.VAT19, tt)

	net, err := ev.Net()
	require.NoError(t, err)
	assertDecimal(t, "1375", net)

	tax, err := ev.Tax()
	require.NoError(t, err)
	assertDecimal(t, "261.25", tax)

	gross, err := ev.Gross()
	require.NoError(t, err)
	assertDecimal(t, "1636.25", gross)

	_, err = view.WrapVendorBillEntry(f.Book, entries[0])
	var wrong invoice.WrongInvoiceTypeError
	assert.True(t, errors.As(err, &wrong))

	billEntries := f.Book.Entries(f.VendorBill)
	require.Len(t, billEntries, 3)
	bev, err := view.WrapVendorBillEntry(f.Book, billEntries[0])
	require.NoError(t, err)
	assertDecimal(t, "100", bev.Price())
	assert.False(t, bev.Taxable())
	_, ok = bev.TaxTable()
	assert.False(t, ok)
}

func TestCompareOrdersByDateOpened(t *testing.T) {
	f := booktest.New(t)
	ci, err := view.Wrap(f.Book, f.CustomerInvoice)
	require.NoError(t, err)
	vb, err := view.Wrap(f.Book, f.VendorBill)
	require.NoError(t, err)

	assert.Equal(t, compare.Smaller, view.Compare(ci, vb))
	assert.Equal(t, compare.Greater, view.Compare(vb, ci))
}
