package book_test

import (
	"testing"
	"time"

	"github.com/rhaller/gncbook/lib/book/booktest"
	"github.com/rhaller/gncbook/lib/model/owner"
	"github.com/rhaller/gncbook/lib/model/transaction"
	"github.com/rhaller/gncbook/lib/payment"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestCheckCleanBook(t *testing.T) {
	f := booktest.New(t)
	assert.NoError(t, f.Book.Check())

	_, err := payment.Post(f.Book, f.CustomerInvoice, f.Receivable, booktest.Date(time.January, 31))
	require.NoError(t, err)
	_, err = payment.Pay(f.Book, f.CustomerInvoice, f.Checking, decimal.NewFromInt(1000), booktest.Date(time.February, 10))
	require.NoError(t, err)
	assert.NoError(t, f.Book.Check())
}

func TestCheckUnbalancedTransaction(t *testing.T) {
	f := booktest.New(t)
	f.Book.AddTransaction(transaction.Builder{
		Currency:    f.USD,
		Description: "lopsided",
		DatePosted:  booktest.Date(time.June, 1),
		DateEntered: booktest.Date(time.June, 1),
		Splits: []transaction.SplitBuilder{
			{Account: f.Checking.ID, Value: decimal.NewFromInt(100)},
			{Account: f.Sales.ID, Value: decimal.NewFromInt(-99)},
		},
	})
	assert.Error(t, f.Book.Check())
}

func TestCheckDanglingSplitAccount(t *testing.T) {
	f := booktest.New(t)
	f.Book.AddTransaction(transaction.Builder{
		Currency:    f.USD,
		Description: "nowhere",
		DatePosted:  booktest.Date(time.June, 1),
		DateEntered: booktest.Date(time.June, 1),
		Splits: []transaction.SplitBuilder{
			{Account: "6ba7b8109dad11d180b400c04fd430c8", Value: decimal.NewFromInt(100)},
			{Account: f.Sales.ID, Value: decimal.NewFromInt(-100)},
		},
	})
	assert.Error(t, f.Book.Check())
}

func TestCheckDanglingInvoiceOwner(t *testing.T) {
	f := booktest.New(t)
	f.CustomerInvoice.OwnerRef.ID = "6ba7b8109dad11d180b400c04fd430c8"
	f.Book.Touch()
	assert.Error(t, f.Book.Check())
}

func TestCheckDanglingEntryTaxTable(t *testing.T) {
	f := booktest.New(t)
	entries := f.Book.Entries(f.CustomerInvoice)
	require.NotEmpty(t, entries)
	entries[0].Inv.TaxTable = "6ba7b8109dad11d180b400c04fd430c8"
	f.Book.Touch()
	assert.Error(t, f.Book.Check())
}

func TestCheckOrphanEntry(t *testing.T) {
	f := booktest.New(t)
	entries := f.Book.Entries(f.CustomerInvoice)
	require.NotEmpty(t, entries)
	entries[0].Invoice = "6ba7b8109dad11d180b400c04fd430c8"
	f.Book.Touch()
	assert.Error(t, f.Book.Check())
}

func TestCheckAccountParent(t *testing.T) {
	f := booktest.New(t)
	f.Checking.Parent = "6ba7b8109dad11d180b400c04fd430c8"
	f.Book.Touch()
	assert.Error(t, f.Book.Check())
}

func TestCheckReportsAllProblems(t *testing.T) {
	f := booktest.New(t)
	f.Checking.Parent = "6ba7b8109dad11d180b400c04fd430c8"
	f.CustomerInvoice.OwnerRef = owner.Ref{Type: owner.CUSTOMER, ID: "7ba7b8109dad11d180b400c04fd430c8"}
	f.Book.Touch()

	err := f.Book.Check()
	require.Error(t, err)
	// Both defects surface in one pass.
	assert.Len(t, multierr.Errors(err), 2)
}
