package payment_test

import (
	"testing"
	"time"

	"github.com/rhaller/gncbook/lib/book/booktest"
	"github.com/rhaller/gncbook/lib/model/invoice"
	"github.com/rhaller/gncbook/lib/payment"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "want %s, got %s", want, got)
}

func TestAmounts(t *testing.T) {
	f := booktest.New(t)
	tests := []struct {
		desc       string
		inv        *invoice.Invoice
		withoutTax string
		withTax    string
	}{
		{desc: "customer invoice", inv: f.CustomerInvoice, withoutTax: "4125.00", withTax: "4908.75"},
		{desc: "vendor bill with mixed rates", inv: f.VendorBill, withoutTax: "600.00", withTax: "689.00"},
		{desc: "employee voucher", inv: f.Voucher, withoutTax: "250.00", withTax: "250.00"},
		{desc: "job invoice", inv: f.JobInvoice, withoutTax: "500.00", withTax: "595.00"},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			net, err := payment.AmountWithoutTax(f.Book, test.inv)
			require.NoError(t, err)
			assertDecimal(t, test.withoutTax, net)

			gross, err := payment.AmountWithTax(f.Book, test.inv)
			require.NoError(t, err)
			assertDecimal(t, test.withTax, gross)
		})
	}
}

func TestTaxIncludedEntry(t *testing.T) {
	f := booktest.New(t)
	inv, err := f.Book.NewInvoice(f.Customer.Ref(), "INV-009", "tax included", f.USD, booktest.Date(time.May, 1))
	require.NoError(t, err)
	e, err := f.Book.NewEntry(inv, inv.DateOpened, "entry", "Invoice", decimal.NewFromInt(1))
	require.NoError(t, err)
	e.Inv = invoice.PriceBlock{
		Account:     f.Sales.ID,
		Price:       decimal.RequireFromString("119"),
		Taxable:     true,
		TaxIncluded: true,
		TaxTable:    f.VAT19.ID,
		Discount:    decimal.Zero,
	}
	f.Book.Touch()

	net, err := payment.AmountWithoutTax(f.Book, inv)
	require.NoError(t, err)
	assertDecimal(t, "100", net)

	gross, err := payment.AmountWithTax(f.Book, inv)
	require.NoError(t, err)
	assertDecimal(t, "119", gross)
}

func TestDraftStatus(t *testing.T) {
	f := booktest.New(t)
	s, err := payment.Calculate(f.Book, f.CustomerInvoice)
	require.NoError(t, err)

	assertDecimal(t, "0", s.Paid)
	assertDecimal(t, "4908.75", s.Unpaid)
	assert.False(t, s.FullyPaid)

	_, ok := payment.PostTransaction(f.Book, f.CustomerInvoice)
	assert.False(t, ok)

	paying, err := payment.PayingTransactions(f.Book, f.CustomerInvoice)
	require.NoError(t, err)
	assert.Empty(t, paying)
}

func TestPostCustomerInvoice(t *testing.T) {
	f := booktest.New(t)
	trx, err := payment.Post(f.Book, f.CustomerInvoice, f.Receivable, booktest.Date(time.January, 31))
	require.NoError(t, err)

	assert.True(t, f.CustomerInvoice.IsPosted())
	assert.Equal(t, booktest.Date(time.January, 31), f.CustomerInvoice.DatePosted)
	assert.True(t, trx.Balanced())

	got, ok := payment.PostTransaction(f.Book, f.CustomerInvoice)
	require.True(t, ok)
	assert.Equal(t, trx, got)

	// The receivable split carries the gross amount and the lot.
	var found bool
	for _, s := range trx.Splits {
		if s.Account != f.Receivable.ID {
			continue
		}
		found = true
		assertDecimal(t, "4908.75", s.Value)
		assert.Equal(t, f.CustomerInvoice.PostLot, s.Lot)
	}
	assert.True(t, found)

	assertDecimal(t, "4908.75", f.Book.Balance(f.Receivable))
	assertDecimal(t, "-4125.00", f.Book.Balance(f.Sales))
	assertDecimal(t, "-783.75", f.Book.Balance(f.TaxAcc))
}

func TestPostRejectsWrongAccountSide(t *testing.T) {
	f := booktest.New(t)
	_, err := payment.Post(f.Book, f.CustomerInvoice, f.Payable, booktest.Date(time.January, 31))
	assert.Error(t, err)
	_, err = payment.Post(f.Book, f.VendorBill, f.Receivable, booktest.Date(time.February, 28))
	assert.Error(t, err)
}

func TestPostTwiceFails(t *testing.T) {
	f := booktest.New(t)
	_, err := payment.Post(f.Book, f.CustomerInvoice, f.Receivable, booktest.Date(time.January, 31))
	require.NoError(t, err)
	_, err = payment.Post(f.Book, f.CustomerInvoice, f.Receivable, booktest.Date(time.January, 31))
	assert.Error(t, err)
}

func TestPayUntilFullyPaid(t *testing.T) {
	f := booktest.New(t)
	_, err := payment.Post(f.Book, f.CustomerInvoice, f.Receivable, booktest.Date(time.January, 31))
	require.NoError(t, err)

	_, err = payment.Pay(f.Book, f.CustomerInvoice, f.Checking, decimal.NewFromInt(1000), booktest.Date(time.February, 10))
	require.NoError(t, err)

	s, err := payment.Calculate(f.Book, f.CustomerInvoice)
	require.NoError(t, err)
	assertDecimal(t, "1000", s.Paid)
	assertDecimal(t, "3908.75", s.Unpaid)
	assert.False(t, s.FullyPaid)

	_, err = payment.Pay(f.Book, f.CustomerInvoice, f.Checking, decimal.RequireFromString("3908.75"), booktest.Date(time.March, 10))
	require.NoError(t, err)

	s, err = payment.Calculate(f.Book, f.CustomerInvoice)
	require.NoError(t, err)
	assertDecimal(t, "4908.75", s.Paid)
	assert.True(t, s.Unpaid.IsZero())
	assert.True(t, s.FullyPaid)

	// Fully paid and zero unpaid always agree.
	fullyPaid, err := payment.IsFullyPaid(f.Book, f.CustomerInvoice)
	require.NoError(t, err)
	assert.Equal(t, s.Unpaid.IsZero(), fullyPaid)

	paying, err := payment.PayingTransactions(f.Book, f.CustomerInvoice)
	require.NoError(t, err)
	assert.Len(t, paying, 2)

	assertDecimal(t, "4908.75", f.Book.Balance(f.Checking))
	assert.True(t, f.Book.Balance(f.Receivable).IsZero())
}

func TestVendorBillFullyPaid(t *testing.T) {
	f := booktest.New(t)
	_, err := payment.Post(f.Book, f.VendorBill, f.Payable, booktest.Date(time.February, 28))
	require.NoError(t, err)

	assertDecimal(t, "-689.00", f.Book.Balance(f.Payable))

	_, err = payment.Pay(f.Book, f.VendorBill, f.Checking, decimal.NewFromInt(689), booktest.Date(time.March, 15))
	require.NoError(t, err)

	s, err := payment.Calculate(f.Book, f.VendorBill)
	require.NoError(t, err)
	assertDecimal(t, "689", s.Paid)
	assert.True(t, s.Unpaid.IsZero())
	assert.True(t, s.FullyPaid)

	assertDecimal(t, "-689.00", f.Book.Balance(f.Checking))
	assert.True(t, f.Book.Balance(f.Payable).IsZero())
}

func TestEpsilonClampsRemainder(t *testing.T) {
	f := booktest.New(t)
	_, err := payment.Post(f.Book, f.CustomerInvoice, f.Receivable, booktest.Date(time.January, 31))
	require.NoError(t, err)

	_, err = payment.Pay(f.Book, f.CustomerInvoice, f.Checking, decimal.RequireFromString("4908.749995"), booktest.Date(time.February, 10))
	require.NoError(t, err)

	s, err := payment.Calculate(f.Book, f.CustomerInvoice)
	require.NoError(t, err)
	assert.True(t, s.Unpaid.IsZero())
	assert.True(t, s.FullyPaid)
}

func TestOverpaymentClampsToZero(t *testing.T) {
	f := booktest.New(t)
	_, err := payment.Post(f.Book, f.CustomerInvoice, f.Receivable, booktest.Date(time.January, 31))
	require.NoError(t, err)

	_, err = payment.Pay(f.Book, f.CustomerInvoice, f.Checking, decimal.NewFromInt(5000), booktest.Date(time.February, 10))
	require.NoError(t, err)

	s, err := payment.Calculate(f.Book, f.CustomerInvoice)
	require.NoError(t, err)
	assertDecimal(t, "5000", s.Paid)
	assert.False(t, s.Unpaid.IsNegative())
	assert.True(t, s.Unpaid.IsZero())
	assert.True(t, s.FullyPaid)
}

func TestPayValidation(t *testing.T) {
	f := booktest.New(t)
	_, err := payment.Pay(f.Book, f.CustomerInvoice, f.Checking, decimal.NewFromInt(100), booktest.Date(time.February, 10))
	assert.Error(t, err, "paying a draft invoice must fail")

	_, err = payment.Post(f.Book, f.CustomerInvoice, f.Receivable, booktest.Date(time.January, 31))
	require.NoError(t, err)
	_, err = payment.Pay(f.Book, f.CustomerInvoice, f.Checking, decimal.NewFromInt(-5), booktest.Date(time.February, 10))
	assert.Error(t, err, "negative payments must fail")
}

func TestUnpost(t *testing.T) {
	f := booktest.New(t)
	_, err := payment.Post(f.Book, f.CustomerInvoice, f.Receivable, booktest.Date(time.January, 31))
	require.NoError(t, err)
	_, err = payment.Pay(f.Book, f.CustomerInvoice, f.Checking, decimal.NewFromInt(1000), booktest.Date(time.February, 10))
	require.NoError(t, err)

	require.NoError(t, payment.Unpost(f.Book, f.CustomerInvoice))

	assert.False(t, f.CustomerInvoice.IsPosted())
	s, err := payment.Calculate(f.Book, f.CustomerInvoice)
	require.NoError(t, err)
	assertDecimal(t, "0", s.Paid)
	assertDecimal(t, "4908.75", s.Unpaid)

	paying, err := payment.PayingTransactions(f.Book, f.CustomerInvoice)
	require.NoError(t, err)
	assert.Empty(t, paying)
}
