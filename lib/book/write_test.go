package book_test

import (
	"errors"
	"testing"
	"time"

	"github.com/rhaller/gncbook/lib/book"
	"github.com/rhaller/gncbook/lib/book/booktest"
	"github.com/rhaller/gncbook/lib/model/account"
	"github.com/rhaller/gncbook/lib/model/billterms"
	"github.com/rhaller/gncbook/lib/model/guid"
	"github.com/rhaller/gncbook/lib/model/owner"
	"github.com/rhaller/gncbook/lib/model/transaction"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccountRequiresParent(t *testing.T) {
	f := booktest.New(t)

	_, err := f.Book.NewAccount("Orphan", account.BANK, "6ba7b8109dad11d180b400c04fd430c8", f.USD)
	var dangling book.DanglingReferenceError
	assert.True(t, errors.As(err, &dangling))
}

func TestNewJobValidatesOwner(t *testing.T) {
	f := booktest.New(t)

	_, err := f.Book.NewJob(f.Employee.Ref(), "bad", "J-0002")
	assert.Error(t, err, "jobs cannot be owned by employees")

	_, err = f.Book.NewJob(owner.Ref{Type: owner.CUSTOMER, ID: "6ba7b8109dad11d180b400c04fd430c8"}, "bad", "J-0003")
	var dangling book.DanglingReferenceError
	assert.True(t, errors.As(err, &dangling))

	j, err := f.Book.NewJob(f.Vendor.Ref(), "Bolt resupply", "J-0004")
	require.NoError(t, err)
	assert.Equal(t, f.Vendor.Ref(), j.Owner)
}

func TestNewInvoiceValidatesOwner(t *testing.T) {
	f := booktest.New(t)

	_, err := f.Book.NewInvoice(owner.Ref{Type: owner.VENDOR, ID: "6ba7b8109dad11d180b400c04fd430c8"}, "X-001", "", f.USD, booktest.Date(time.May, 1))
	var dangling book.DanglingReferenceError
	assert.True(t, errors.As(err, &dangling))

	// A job-owned invoice requires the job's own owner to resolve.
	j, err := f.Book.NewJob(f.Customer.Ref(), "second job", "J-0005")
	require.NoError(t, err)
	j.Owner = owner.Ref{Type: owner.CUSTOMER, ID: "6ba7b8109dad11d180b400c04fd430c8"}
	_, err = f.Book.NewInvoice(j.Ref(), "X-002", "", f.USD, booktest.Date(time.May, 1))
	assert.True(t, errors.As(err, &dangling))
}

func TestNewBillTermsWantsOneDetailBlock(t *testing.T) {
	f := booktest.New(t)

	_, err := f.Book.NewBillTerms("none", nil, nil)
	assert.Error(t, err)

	days := &billterms.Days{DueDays: 30}
	proximo := &billterms.Proximo{DueDay: 15}
	_, err = f.Book.NewBillTerms("both", days, proximo)
	assert.Error(t, err)

	terms, err := f.Book.NewBillTerms("net 30", days, nil)
	require.NoError(t, err)
	assert.Equal(t, billterms.DAYS, terms.Type)

	terms, err = f.Book.NewBillTerms("proximo 15", nil, proximo)
	require.NoError(t, err)
	assert.Equal(t, billterms.PROXIMO, terms.Type)
}

func TestDeleteEntry(t *testing.T) {
	f := booktest.New(t)
	entries := f.Book.Entries(f.CustomerInvoice)
	require.Len(t, entries, 3)

	require.NoError(t, f.Book.DeleteEntry(entries[0].ID))
	assert.Len(t, f.Book.Entries(f.CustomerInvoice), 2)

	err := f.Book.DeleteEntry(entries[0].ID)
	assert.True(t, errors.Is(err, book.ErrNotFound))
}

func TestDeleteInvoiceRemovesEntries(t *testing.T) {
	f := booktest.New(t)

	require.NoError(t, f.Book.DeleteInvoice(f.CustomerInvoice.ID))

	_, ok := f.Book.Invoice(f.CustomerInvoice.ID)
	assert.False(t, ok)
	assert.Len(t, f.Book.InvoiceEntries(), 5)
	assert.Empty(t, f.Book.InvoicesFor(f.Customer.Ref()))
}

func TestDeleteTransactionClearsPostFields(t *testing.T) {
	f := booktest.New(t)

	// Simulate a posting transaction by hand.
	lot := guid.GUID("6ba7b8109dad11d180b400c04fd430c8")
	trx := f.Book.AddTransaction(transaction.Builder{
		Currency:    f.USD,
		Description: "posting",
		DatePosted:  booktest.Date(time.January, 31),
		DateEntered: booktest.Date(time.January, 31),
		Splits: []transaction.SplitBuilder{
			{Account: f.Receivable.ID, Value: decimal.NewFromInt(100), Lot: lot},
			{Account: f.Sales.ID, Value: decimal.NewFromInt(-100)},
		},
	})
	f.CustomerInvoice.PostTransaction = trx.ID
	f.CustomerInvoice.PostAccount = f.Receivable.ID
	f.CustomerInvoice.PostLot = lot
	f.CustomerInvoice.DatePosted = booktest.Date(time.January, 31)
	payTrx := f.Book.AddTransaction(transaction.Builder{
		Currency:    f.USD,
		Description: "payment",
		DatePosted:  booktest.Date(time.February, 10),
		DateEntered: booktest.Date(time.February, 10),
		Splits: []transaction.SplitBuilder{
			{Account: f.Receivable.ID, Value: decimal.NewFromInt(-100), Lot: lot},
			{Account: f.Checking.ID, Value: decimal.NewFromInt(100)},
		},
	})

	require.NoError(t, f.Book.DeleteTransaction(trx.ID))

	assert.False(t, f.CustomerInvoice.IsPosted())
	assert.True(t, f.CustomerInvoice.PostLot.IsNil())
	for _, s := range payTrx.Splits {
		assert.True(t, s.Lot.IsNil())
	}
	assert.Empty(t, f.Book.SplitsForLot(lot))
}
