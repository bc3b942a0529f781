package book

import (
	"fmt"
	"time"

	"github.com/rhaller/gncbook/lib/model/account"
	"github.com/rhaller/gncbook/lib/model/billterms"
	"github.com/rhaller/gncbook/lib/model/commodity"
	"github.com/rhaller/gncbook/lib/model/guid"
	"github.com/rhaller/gncbook/lib/model/invoice"
	"github.com/rhaller/gncbook/lib/model/owner"
	"github.com/rhaller/gncbook/lib/model/taxtable"
	"github.com/rhaller/gncbook/lib/model/transaction"
	"github.com/shopspring/decimal"
)

// The write path. Every mutation invalidates the secondary indices; they
// are rebuilt lazily on the next read.

// NewAccount creates an account. The parent must resolve unless Nil.
func (b *Book) NewAccount(name string, t account.Type, parent guid.GUID, cmdty commodity.Commodity) (*account.Account, error) {
	if !parent.IsNil() {
		if _, ok := b.Account(parent); !ok {
			return nil, DanglingReferenceError{Kind: "account", ID: parent, Referrer: fmt.Sprintf("new account %q", name)}
		}
	}
	a := &account.Account{
		ID:        guid.New(),
		Name:      name,
		Type:      t,
		Parent:    parent,
		Commodity: cmdty,
	}
	b.mutex.Lock()
	b.accounts[a.ID] = a
	b.idx = nil
	b.mutex.Unlock()
	return a, nil
}

// AddTransaction builds the transaction and adds it to the book.
func (b *Book) AddTransaction(tb transaction.Builder) *transaction.Transaction {
	t := tb.Build()
	b.mutex.Lock()
	b.transactions[t.ID] = t
	b.idx = nil
	b.mutex.Unlock()
	return t
}

// NewCustomer creates a customer.
func (b *Book) NewCustomer(name, number string) *owner.Customer {
	c := &owner.Customer{
		ID:       guid.New(),
		Name:     name,
		Number:   number,
		Active:   true,
		Discount: decimal.Zero,
		Credit:   decimal.Zero,
	}
	b.mutex.Lock()
	b.customers[c.ID] = c
	b.idx = nil
	b.mutex.Unlock()
	return c
}

// NewVendor creates a vendor.
func (b *Book) NewVendor(name, number string) *owner.Vendor {
	v := &owner.Vendor{
		ID:     guid.New(),
		Name:   name,
		Number: number,
		Active: true,
	}
	b.mutex.Lock()
	b.vendors[v.ID] = v
	b.idx = nil
	b.mutex.Unlock()
	return v
}

// NewEmployee creates an employee.
func (b *Book) NewEmployee(username, number string) *owner.Employee {
	e := &owner.Employee{
		ID:       guid.New(),
		Username: username,
		Number:   number,
		Active:   true,
		Workday:  decimal.Zero,
		Rate:     decimal.Zero,
	}
	b.mutex.Lock()
	b.employees[e.ID] = e
	b.idx = nil
	b.mutex.Unlock()
	return e
}

// NewJob creates a job under a customer or vendor.
func (b *Book) NewJob(own owner.Ref, name, number string) (*owner.Job, error) {
	switch own.Type {
	case owner.CUSTOMER:
		if _, ok := b.Customer(own.ID); !ok {
			return nil, DanglingReferenceError{Kind: "customer", ID: own.ID, Referrer: fmt.Sprintf("new job %q", name)}
		}
	case owner.VENDOR:
		if _, ok := b.Vendor(own.ID); !ok {
			return nil, DanglingReferenceError{Kind: "vendor", ID: own.ID, Referrer: fmt.Sprintf("new job %q", name)}
		}
	default:
		return nil, owner.WrongJobTypeError{Got: own.Type}
	}
	j := &owner.Job{
		ID:     guid.New(),
		Name:   name,
		Number: number,
		Active: true,
		Owner:  own,
	}
	b.mutex.Lock()
	b.jobs[j.ID] = j
	b.idx = nil
	b.mutex.Unlock()
	return j, nil
}

// NewInvoice creates an unposted generic invoice. The owner must resolve;
// a JOB owner must itself be owned by a customer or vendor.
func (b *Book) NewInvoice(own owner.Ref, num, description string, currency commodity.Commodity, opened time.Time) (*invoice.Invoice, error) {
	switch own.Type {
	case owner.CUSTOMER:
		if _, ok := b.Customer(own.ID); !ok {
			return nil, DanglingReferenceError{Kind: "customer", ID: own.ID, Referrer: fmt.Sprintf("new invoice %q", num)}
		}
	case owner.VENDOR:
		if _, ok := b.Vendor(own.ID); !ok {
			return nil, DanglingReferenceError{Kind: "vendor", ID: own.ID, Referrer: fmt.Sprintf("new invoice %q", num)}
		}
	case owner.EMPLOYEE:
		if _, ok := b.Employee(own.ID); !ok {
			return nil, DanglingReferenceError{Kind: "employee", ID: own.ID, Referrer: fmt.Sprintf("new invoice %q", num)}
		}
	case owner.JOB:
		job, ok := b.Job(own.ID)
		if !ok {
			return nil, DanglingReferenceError{Kind: "job", ID: own.ID, Referrer: fmt.Sprintf("new invoice %q", num)}
		}
		if _, err := b.JobOwner(job); err != nil {
			return nil, err
		}
	}
	inv := &invoice.Invoice{
		ID:          guid.New(),
		OwnerRef:    own,
		Num:         num,
		Description: description,
		DateOpened:  opened,
		Currency:    currency,
		Active:      true,
	}
	b.mutex.Lock()
	b.invoices[inv.ID] = inv
	b.idx = nil
	b.mutex.Unlock()
	return inv, nil
}

// NewEntry creates an entry on an unposted invoice. Prices and taxation
// are set on the returned entry's price blocks; call Touch afterwards if
// the entry was modified after indices have been read.
func (b *Book) NewEntry(inv *invoice.Invoice, date time.Time, description, action string, quantity decimal.Decimal) (*invoice.Entry, error) {
	if _, ok := b.Invoice(inv.ID); !ok {
		return nil, DanglingReferenceError{Kind: "invoice", ID: inv.ID, Referrer: "new entry"}
	}
	if inv.IsPosted() {
		return nil, fmt.Errorf("invoice %s is posted, unpost it before adding entries", inv.Num)
	}
	e := &invoice.Entry{
		ID:          guid.New(),
		Invoice:     inv.ID,
		Date:        date,
		DateEntered: date,
		Description: description,
		Action:      action,
		Quantity:    quantity,
		Inv:         invoice.PriceBlock{Price: decimal.Zero, Discount: decimal.Zero},
		Bill:        invoice.PriceBlock{Price: decimal.Zero, Discount: decimal.Zero},
	}
	b.mutex.Lock()
	b.entries[e.ID] = e
	b.idx = nil
	b.mutex.Unlock()
	return e, nil
}

// NewTaxTable creates a tax table.
func (b *Book) NewTaxTable(name string, entries []taxtable.Entry) *taxtable.TaxTable {
	t := &taxtable.TaxTable{
		ID:      guid.New(),
		Name:    name,
		Entries: entries,
	}
	b.mutex.Lock()
	b.taxTables[t.ID] = t
	b.idx = nil
	b.mutex.Unlock()
	return t
}

// NewBillTerms creates billing terms with exactly one detail block.
func (b *Book) NewBillTerms(name string, days *billterms.Days, proximo *billterms.Proximo) (*billterms.Terms, error) {
	if (days == nil) == (proximo == nil) {
		return nil, fmt.Errorf("bill terms %q: want exactly one of days and proximo", name)
	}
	t := &billterms.Terms{
		ID:      guid.New(),
		Name:    name,
		Days:    days,
		Proximo: proximo,
	}
	if proximo != nil {
		t.Type = billterms.PROXIMO
	}
	b.mutex.Lock()
	b.terms[t.ID] = t
	b.idx = nil
	b.mutex.Unlock()
	return t, nil
}

// Touch invalidates the secondary indices after in-place edits of an
// already indexed entity.
func (b *Book) Touch() {
	b.invalidate()
}

// DeleteEntry removes an entry.
func (b *Book) DeleteEntry(id guid.GUID) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if _, ok := b.entries[id]; !ok {
		return fmt.Errorf("entry %s: %w", id, ErrNotFound)
	}
	delete(b.entries, id)
	b.idx = nil
	return nil
}

// DeleteInvoice removes an unposted invoice and its entries. A posted
// invoice must be unposted first, so its lot associations are dropped
// along with the posting transaction.
func (b *Book) DeleteInvoice(id guid.GUID) error {
	inv, ok := b.Invoice(id)
	if !ok {
		return fmt.Errorf("invoice %s: %w", id, ErrNotFound)
	}
	if inv.IsPosted() {
		return fmt.Errorf("invoice %s is posted, unpost it before deleting", inv.Num)
	}
	b.mutex.Lock()
	defer b.mutex.Unlock()
	for eid, e := range b.entries {
		if e.Invoice == id {
			delete(b.entries, eid)
		}
	}
	delete(b.invoices, id)
	b.idx = nil
	return nil
}

// DeleteTransaction removes a transaction. If it is the posting
// transaction of an invoice, the invoice's post fields are cleared and
// the lot is dropped from any remaining splits so no reference dangles.
func (b *Book) DeleteTransaction(id guid.GUID) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if _, ok := b.transactions[id]; !ok {
		return fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}
	for _, inv := range b.invoices {
		if inv.PostTransaction == id {
			lot := inv.PostLot
			inv.PostTransaction = guid.Nil
			inv.PostAccount = guid.Nil
			inv.PostLot = guid.Nil
			inv.DatePosted = time.Time{}
			if !lot.IsNil() {
				for _, other := range b.transactions {
					for _, s := range other.Splits {
						if s.Lot == lot {
							s.Lot = guid.Nil
						}
					}
				}
			}
		}
	}
	delete(b.transactions, id)
	b.idx = nil
	return nil
}
