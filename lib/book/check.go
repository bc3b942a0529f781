package book

import (
	"fmt"

	"github.com/rhaller/gncbook/lib/model/billterms"
	"github.com/rhaller/gncbook/lib/model/guid"
	"github.com/rhaller/gncbook/lib/model/invoice"
	"github.com/rhaller/gncbook/lib/model/owner"
	"go.uber.org/multierr"
)

// Check validates the referential integrity of the graph. All failures
// are collected and returned as one aggregated error; a nil result means
// the book is consistent.
func (b *Book) Check() error {
	var err error

	for _, t := range b.Transactions() {
		if !t.Balanced() {
			err = multierr.Append(err, fmt.Errorf("transaction %s (%s) is not balanced", t.ID, t.Description))
		}
		for _, s := range t.Splits {
			if _, ok := b.Account(s.Account); !ok {
				err = multierr.Append(err, DanglingReferenceError{Kind: "account", ID: s.Account, Referrer: fmt.Sprintf("split %s", s.ID)})
			}
			if s.Transaction != t.ID {
				err = multierr.Append(err, fmt.Errorf("split %s references transaction %s but belongs to %s", s.ID, s.Transaction, t.ID))
			}
		}
	}

	for _, a := range b.Accounts() {
		if !a.Parent.IsNil() {
			if _, ok := b.Account(a.Parent); !ok {
				err = multierr.Append(err, DanglingReferenceError{Kind: "account", ID: a.Parent, Referrer: fmt.Sprintf("account %q", a.Name)})
			}
		}
	}

	for _, e := range b.InvoiceEntries() {
		if _, resolveErr := b.InvoiceOf(e); resolveErr != nil {
			err = multierr.Append(err, resolveErr)
		}
		for _, table := range []guid.GUID{e.Inv.TaxTable, e.Bill.TaxTable} {
			if table.IsNil() {
				continue
			}
			if _, ok := b.TaxTable(table); !ok {
				err = multierr.Append(err, DanglingReferenceError{Kind: "tax table", ID: table, Referrer: fmt.Sprintf("entry %s", e.ID)})
			}
		}
	}

	for _, inv := range b.Invoices() {
		err = multierr.Append(err, b.checkInvoice(inv))
	}

	for _, j := range b.Jobs() {
		if _, resolveErr := b.JobOwner(j); resolveErr != nil {
			err = multierr.Append(err, resolveErr)
		}
	}

	for _, t := range b.TaxTables() {
		if _, resolveErr := b.TaxTableEntries(t.ID); resolveErr != nil {
			err = multierr.Append(err, resolveErr)
		}
		for _, e := range t.Entries {
			if _, ok := b.Account(e.Account); !ok {
				err = multierr.Append(err, DanglingReferenceError{Kind: "account", ID: e.Account, Referrer: fmt.Sprintf("tax table %q", t.Name)})
			}
		}
	}

	for _, t := range b.AllBillTerms() {
		err = multierr.Append(err, checkBillTerms(b, t))
	}

	return err
}

func (b *Book) checkInvoice(inv *invoice.Invoice) error {
	var err error
	switch inv.OwnerRef.Type {
	case owner.CUSTOMER:
		if _, ok := b.Customer(inv.OwnerRef.ID); !ok {
			err = multierr.Append(err, DanglingReferenceError{Kind: "customer", ID: inv.OwnerRef.ID, Referrer: fmt.Sprintf("invoice %s", inv.Num)})
		}
	case owner.VENDOR:
		if _, ok := b.Vendor(inv.OwnerRef.ID); !ok {
			err = multierr.Append(err, DanglingReferenceError{Kind: "vendor", ID: inv.OwnerRef.ID, Referrer: fmt.Sprintf("invoice %s", inv.Num)})
		}
	case owner.EMPLOYEE:
		if _, ok := b.Employee(inv.OwnerRef.ID); !ok {
			err = multierr.Append(err, DanglingReferenceError{Kind: "employee", ID: inv.OwnerRef.ID, Referrer: fmt.Sprintf("invoice %s", inv.Num)})
		}
	case owner.JOB:
		if _, ok := b.Job(inv.OwnerRef.ID); !ok {
			err = multierr.Append(err, DanglingReferenceError{Kind: "job", ID: inv.OwnerRef.ID, Referrer: fmt.Sprintf("invoice %s", inv.Num)})
		}
	}
	if !inv.PostTransaction.IsNil() {
		if _, ok := b.Transaction(inv.PostTransaction); !ok {
			err = multierr.Append(err, DanglingReferenceError{Kind: "transaction", ID: inv.PostTransaction, Referrer: fmt.Sprintf("invoice %s", inv.Num)})
		}
	}
	if !inv.PostAccount.IsNil() {
		if _, ok := b.Account(inv.PostAccount); !ok {
			err = multierr.Append(err, DanglingReferenceError{Kind: "account", ID: inv.PostAccount, Referrer: fmt.Sprintf("invoice %s", inv.Num)})
		}
	}
	if !inv.Terms.IsNil() {
		if _, ok := b.BillTerms(inv.Terms); !ok {
			err = multierr.Append(err, DanglingReferenceError{Kind: "bill terms", ID: inv.Terms, Referrer: fmt.Sprintf("invoice %s", inv.Num)})
		}
	}
	return err
}

func checkBillTerms(b *Book, t *billterms.Terms) error {
	var err error
	hasDays, hasProximo := t.Days != nil, t.Proximo != nil
	if hasDays == hasProximo {
		err = multierr.Append(err, fmt.Errorf("bill terms %q: want exactly one detail block, got days=%t proximo=%t", t.Name, hasDays, hasProximo))
	} else if t.Type == billterms.DAYS && !hasDays || t.Type == billterms.PROXIMO && !hasProximo {
		err = multierr.Append(err, fmt.Errorf("bill terms %q: detail block does not match type %s", t.Name, t.Type))
	}
	if !t.Parent.IsNil() {
		if _, ok := b.BillTerms(t.Parent); !ok {
			err = multierr.Append(err, DanglingReferenceError{Kind: "bill terms", ID: t.Parent, Referrer: fmt.Sprintf("bill terms %q", t.Name)})
		}
	}
	for _, c := range t.Children {
		if _, ok := b.BillTerms(c); !ok {
			err = multierr.Append(err, DanglingReferenceError{Kind: "bill terms", ID: c, Referrer: fmt.Sprintf("bill terms %q", t.Name)})
		}
	}
	return err
}
