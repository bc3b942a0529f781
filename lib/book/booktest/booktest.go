// Package booktest builds small in-memory books for tests.
package booktest

import (
	"testing"
	"time"

	"github.com/rhaller/gncbook/lib/book"
	"github.com/rhaller/gncbook/lib/model/account"
	"github.com/rhaller/gncbook/lib/model/commodity"
	"github.com/rhaller/gncbook/lib/model/guid"
	"github.com/rhaller/gncbook/lib/model/invoice"
	"github.com/rhaller/gncbook/lib/model/owner"
	"github.com/rhaller/gncbook/lib/model/taxtable"
	"github.com/rhaller/gncbook/lib/model/transaction"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Fixture is a book with a small chart of accounts, two tax tables and
// one invoice per owner type.
//
// The customer invoice carries three entries of 1375.00 each, all taxed
// at 19 percent, so it nets 4125.00 and grosses 4908.75. The vendor
// bill mixes one untaxed entry of 100.00, one entry of 200.00 at 16
// percent and one of 300.00 at 19 percent, netting 600.00 and grossing
// 689.00.
type Fixture struct {
	Book *book.Book

	USD commodity.Commodity

	Checking   *account.Account
	Receivable *account.Account
	Payable    *account.Account
	TaxAcc     *account.Account
	Sales      *account.Account
	Purchases  *account.Account

	VAT19 *taxtable.TaxTable
	VAT16 *taxtable.TaxTable

	Customer *owner.Customer
	Vendor   *owner.Vendor
	Employee *owner.Employee
	Job      *owner.Job

	CustomerInvoice *invoice.Invoice
	VendorBill      *invoice.Invoice
	Voucher         *invoice.Invoice
	JobInvoice      *invoice.Invoice
}

// Date returns a fixed date in the fixture's year.
func Date(month time.Month, day int) time.Time {
	return time.Date(2024, month, day, 0, 0, 0, 0, time.UTC)
}

// New builds the fixture book.
func New(t *testing.T) *Fixture {
	t.Helper()
	f := &Fixture{
		Book: book.New(),
		USD:  commodity.Currency("USD"),
	}
	b := f.Book

	root, err := b.NewAccount("Root", account.ROOT, guid.Nil, f.USD)
	require.NoError(t, err)
	assets, err := b.NewAccount("Assets", account.ASSET, root.ID, f.USD)
	require.NoError(t, err)
	liabilities, err := b.NewAccount("Liabilities", account.LIABILITY, root.ID, f.USD)
	require.NoError(t, err)
	income, err := b.NewAccount("Income", account.INCOME, root.ID, f.USD)
	require.NoError(t, err)
	expenses, err := b.NewAccount("Expenses", account.EXPENSE, root.ID, f.USD)
	require.NoError(t, err)

	f.Checking, err = b.NewAccount("Checking", account.BANK, assets.ID, f.USD)
	require.NoError(t, err)
	f.Receivable, err = b.NewAccount("Receivable", account.RECEIVABLE, assets.ID, f.USD)
	require.NoError(t, err)
	f.Payable, err = b.NewAccount("Payable", account.PAYABLE, liabilities.ID, f.USD)
	require.NoError(t, err)
	f.TaxAcc, err = b.NewAccount("VAT", account.LIABILITY, liabilities.ID, f.USD)
	require.NoError(t, err)
	f.Sales, err = b.NewAccount("Sales", account.INCOME, income.ID, f.USD)
	require.NoError(t, err)
	f.Purchases, err = b.NewAccount("Purchases", account.EXPENSE, expenses.ID, f.USD)
	require.NoError(t, err)

	f.VAT19 = b.NewTaxTable("VAT 19%", []taxtable.Entry{
		{Account: f.TaxAcc.ID, Amount: decimal.NewFromInt(19), Type: taxtable.PERCENT},
	})
	f.VAT16 = b.NewTaxTable("VAT 16%", []taxtable.Entry{
		{Account: f.TaxAcc.ID, Amount: decimal.NewFromInt(16), Type: taxtable.PERCENT},
	})

	f.Customer = b.NewCustomer("Acme Corp", "C-0001")
	f.Vendor = b.NewVendor("Bolt Supplies", "V-0001")
	f.Employee = b.NewEmployee("mdoe", "E-0001")
	f.Job, err = b.NewJob(f.Customer.Ref(), "Acme rollout", "J-0001")
	require.NoError(t, err)

	f.CustomerInvoice, err = b.NewInvoice(f.Customer.Ref(), "INV-001", "Q1 services", f.USD, Date(time.January, 15))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		f.addEntry(t, f.CustomerInvoice, invoice.InvoiceSide, f.Sales, decimal.NewFromInt(1375), f.VAT19)
	}

	f.VendorBill, err = b.NewInvoice(f.Vendor.Ref(), "BILL-001", "Hardware", f.USD, Date(time.February, 3))
	require.NoError(t, err)
	f.addEntry(t, f.VendorBill, invoice.BillSide, f.Purchases, decimal.NewFromInt(100), nil)
	f.addEntry(t, f.VendorBill, invoice.BillSide, f.Purchases, decimal.NewFromInt(200), f.VAT16)
	f.addEntry(t, f.VendorBill, invoice.BillSide, f.Purchases, decimal.NewFromInt(300), f.VAT19)

	f.Voucher, err = b.NewInvoice(f.Employee.Ref(), "EXP-001", "Conference travel", f.USD, Date(time.March, 10))
	require.NoError(t, err)
	f.addEntry(t, f.Voucher, invoice.BillSide, f.Purchases, decimal.NewFromInt(250), nil)

	f.JobInvoice, err = b.NewInvoice(f.Job.Ref(), "INV-002", "Rollout phase 1", f.USD, Date(time.April, 1))
	require.NoError(t, err)
	f.addEntry(t, f.JobInvoice, invoice.InvoiceSide, f.Sales, decimal.NewFromInt(500), f.VAT19)

	require.NoError(t, b.Check())
	return f
}

func (f *Fixture) addEntry(t *testing.T, inv *invoice.Invoice, side invoice.Side, acc *account.Account, price decimal.Decimal, tt *taxtable.TaxTable) *invoice.Entry {
	t.Helper()
	e, err := f.Book.NewEntry(inv, inv.DateOpened, "entry", actionFor(inv), decimal.NewFromInt(1))
	require.NoError(t, err)
	pb := invoice.PriceBlock{
		Account:  acc.ID,
		Price:    price,
		Discount: decimal.Zero,
	}
	if tt != nil {
		pb.Taxable = true
		pb.TaxTable = tt.ID
	}
	if side == invoice.BillSide {
		e.Bill = pb
	} else {
		e.Inv = pb
	}
	f.Book.Touch()
	return e
}

func actionFor(inv *invoice.Invoice) string {
	switch inv.OwnerType() {
	case owner.VENDOR:
		return transaction.ActionBill
	case owner.EMPLOYEE:
		return transaction.ActionVoucher
	}
	return transaction.ActionInvoice
}
