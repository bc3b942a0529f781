package book_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rhaller/gncbook/lib/book"
	"github.com/rhaller/gncbook/lib/book/booktest"
	"github.com/rhaller/gncbook/lib/payment"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	f := booktest.New(t)
	_, err := payment.Post(f.Book, f.CustomerInvoice, f.Receivable, booktest.Date(time.January, 31))
	require.NoError(t, err)
	_, err = payment.Pay(f.Book, f.CustomerInvoice, f.Checking, decimal.NewFromInt(1000), booktest.Date(time.February, 10))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "book.gncbook")
	require.NoError(t, f.Book.Save(path))

	loaded, err := book.Load(path)
	require.NoError(t, err)

	if diff := cmp.Diff(f.Book.Document(), loaded.Document()); diff != "" {
		t.Errorf("unexpected diff (-want, +got):\n%s", diff)
	}

	// Amounts survive the trip exactly.
	inv, err := loaded.InvoiceByNum("INV-001")
	require.NoError(t, err)
	s, err := payment.Calculate(loaded, inv)
	require.NoError(t, err)
	assert.True(t, s.WithoutTax.Equal(decimal.RequireFromString("4125.00")), "got %s", s.WithoutTax)
	assert.True(t, s.WithTax.Equal(decimal.RequireFromString("4908.75")), "got %s", s.WithTax)
	assert.True(t, s.Paid.Equal(decimal.NewFromInt(1000)), "got %s", s.Paid)
	assert.True(t, s.Unpaid.Equal(decimal.RequireFromString("3908.75")), "got %s", s.Unpaid)
}

func TestRoundTripAfterMutation(t *testing.T) {
	f := booktest.New(t)
	dir := t.TempDir()

	first := filepath.Join(dir, "first.gncbook")
	require.NoError(t, f.Book.Save(first))

	loaded, err := book.Load(first)
	require.NoError(t, err)

	inv, err := loaded.InvoiceByNum("BILL-001")
	require.NoError(t, err)
	payable, err := loaded.AccountByName("Payable")
	require.NoError(t, err)
	_, err = payment.Post(loaded, inv, payable, booktest.Date(time.February, 28))
	require.NoError(t, err)

	second := filepath.Join(dir, "second.gncbook")
	require.NoError(t, loaded.Save(second))

	reloaded, err := book.Load(second)
	require.NoError(t, err)
	if diff := cmp.Diff(loaded.Document(), reloaded.Document()); diff != "" {
		t.Errorf("unexpected diff (-want, +got):\n%s", diff)
	}

	inv, err = reloaded.InvoiceByNum("BILL-001")
	require.NoError(t, err)
	assert.True(t, inv.IsPosted())
	fullyPaid, err := payment.IsFullyPaid(reloaded, inv)
	require.NoError(t, err)
	assert.False(t, fullyPaid)
}

func TestLoadRejectsBrokenReferences(t *testing.T) {
	f := booktest.New(t)

	doc := f.Book.Document()
	doc.Invoices[0].OwnerID = "6ba7b8109dad11d180b400c04fd430c8"

	_, err := book.FromDocument(doc)
	assert.Error(t, err)
}
