// Copyright 2024 Robert Haller
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package book holds the in-memory graph of a bookkeeping file. All
// entities are keyed by GUID; cross-entity references are by ID only and
// are resolved through the book. The graph has a single logical owner at
// a time: load, query and mutate, persist.
package book

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rhaller/gncbook/lib/common/compare"
	"github.com/rhaller/gncbook/lib/common/dict"
	"github.com/rhaller/gncbook/lib/common/filter"
	"github.com/rhaller/gncbook/lib/common/set"
	"github.com/rhaller/gncbook/lib/model/account"
	"github.com/rhaller/gncbook/lib/model/billterms"
	"github.com/rhaller/gncbook/lib/model/guid"
	"github.com/rhaller/gncbook/lib/model/invoice"
	"github.com/rhaller/gncbook/lib/model/owner"
	"github.com/rhaller/gncbook/lib/model/taxtable"
	"github.com/rhaller/gncbook/lib/model/transaction"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Book is the ID-indexed store for all entities of one file.
type Book struct {
	mutex  sync.RWMutex
	logger zerolog.Logger

	accounts     map[guid.GUID]*account.Account
	transactions map[guid.GUID]*transaction.Transaction
	invoices     map[guid.GUID]*invoice.Invoice
	entries      map[guid.GUID]*invoice.Entry
	taxTables    map[guid.GUID]*taxtable.TaxTable
	terms        map[guid.GUID]*billterms.Terms
	customers    map[guid.GUID]*owner.Customer
	vendors      map[guid.GUID]*owner.Vendor
	employees    map[guid.GUID]*owner.Employee
	jobs         map[guid.GUID]*owner.Job

	idx *index
}

// Option configures a book.
type Option func(*Book)

// WithLogger sets the logger for the warning channel. The default
// discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(b *Book) {
		b.logger = logger
	}
}

// New creates an empty book.
func New(opts ...Option) *Book {
	b := &Book{
		logger:       zerolog.Nop(),
		accounts:     make(map[guid.GUID]*account.Account),
		transactions: make(map[guid.GUID]*transaction.Transaction),
		invoices:     make(map[guid.GUID]*invoice.Invoice),
		entries:      make(map[guid.GUID]*invoice.Entry),
		taxTables:    make(map[guid.GUID]*taxtable.TaxTable),
		terms:        make(map[guid.GUID]*billterms.Terms),
		customers:    make(map[guid.GUID]*owner.Customer),
		vendors:      make(map[guid.GUID]*owner.Vendor),
		employees:    make(map[guid.GUID]*owner.Employee),
		jobs:         make(map[guid.GUID]*owner.Job),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Account returns the account with the given ID.
func (b *Book) Account(id guid.GUID) (*account.Account, bool) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	a, ok := b.accounts[id]
	return a, ok
}

// Transaction returns the transaction with the given ID.
func (b *Book) Transaction(id guid.GUID) (*transaction.Transaction, bool) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	t, ok := b.transactions[id]
	return t, ok
}

// Invoice returns the generic invoice with the given ID.
func (b *Book) Invoice(id guid.GUID) (*invoice.Invoice, bool) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	inv, ok := b.invoices[id]
	return inv, ok
}

// InvoiceEntry returns the generic invoice entry with the given ID.
func (b *Book) InvoiceEntry(id guid.GUID) (*invoice.Entry, bool) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	e, ok := b.entries[id]
	return e, ok
}

// TaxTable returns the tax table with the given ID.
func (b *Book) TaxTable(id guid.GUID) (*taxtable.TaxTable, bool) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	t, ok := b.taxTables[id]
	return t, ok
}

// BillTerms returns the billing terms with the given ID.
func (b *Book) BillTerms(id guid.GUID) (*billterms.Terms, bool) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	t, ok := b.terms[id]
	return t, ok
}

// Customer returns the customer with the given ID.
func (b *Book) Customer(id guid.GUID) (*owner.Customer, bool) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	c, ok := b.customers[id]
	return c, ok
}

// Vendor returns the vendor with the given ID.
func (b *Book) Vendor(id guid.GUID) (*owner.Vendor, bool) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	v, ok := b.vendors[id]
	return v, ok
}

// Employee returns the employee with the given ID.
func (b *Book) Employee(id guid.GUID) (*owner.Employee, bool) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	e, ok := b.employees[id]
	return e, ok
}

// Job returns the job with the given ID.
func (b *Book) Job(id guid.GUID) (*owner.Job, bool) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	j, ok := b.jobs[id]
	return j, ok
}

// Accounts returns all accounts, sorted.
func (b *Book) Accounts() []*account.Account {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return dict.SortedValues(b.accounts, account.Compare)
}

// Transactions returns all transactions, sorted by date.
func (b *Book) Transactions() []*transaction.Transaction {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return dict.SortedValues(b.transactions, transaction.Compare)
}

// Invoices returns all generic invoices, sorted by date opened and date
// posted.
func (b *Book) Invoices() []*invoice.Invoice {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return dict.SortedValues(b.invoices, invoice.Compare)
}

// InvoiceEntries returns all generic invoice entries, sorted.
func (b *Book) InvoiceEntries() []*invoice.Entry {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return dict.SortedValues(b.entries, invoice.CompareEntries)
}

// TaxTables returns all tax tables, sorted by name.
func (b *Book) TaxTables() []*taxtable.TaxTable {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return dict.SortedValues(b.taxTables, taxtable.Compare)
}

// AllBillTerms returns all billing terms, sorted by name.
func (b *Book) AllBillTerms() []*billterms.Terms {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return dict.SortedValues(b.terms, billterms.Compare)
}

// Customers returns all customers, sorted by name.
func (b *Book) Customers() []*owner.Customer {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return dict.SortedValues(b.customers, owner.CompareCustomers)
}

// Vendors returns all vendors, sorted by name.
func (b *Book) Vendors() []*owner.Vendor {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return dict.SortedValues(b.vendors, owner.CompareVendors)
}

// Employees returns all employees, sorted by username.
func (b *Book) Employees() []*owner.Employee {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return dict.SortedValues(b.employees, owner.CompareEmployees)
}

// Jobs returns all jobs, sorted by name.
func (b *Book) Jobs() []*owner.Job {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return dict.SortedValues(b.jobs, owner.CompareJobs)
}

// InvoicesWhere returns all invoices matching the filter, sorted.
func (b *Book) InvoicesWhere(f filter.Filter[*invoice.Invoice]) []*invoice.Invoice {
	var res []*invoice.Invoice
	for _, inv := range b.Invoices() {
		if f(inv) {
			res = append(res, inv)
		}
	}
	return res
}

// InvoiceOf resolves the owning invoice of an entry. A dangling entry is
// a data-integrity fault.
func (b *Book) InvoiceOf(e *invoice.Entry) (*invoice.Invoice, error) {
	inv, ok := b.Invoice(e.Invoice)
	if !ok {
		return nil, DanglingReferenceError{Kind: "invoice", ID: e.Invoice, Referrer: fmt.Sprintf("entry %s", e.ID)}
	}
	return inv, nil
}

// TaxTableEntries resolves the effective entries of a tax table,
// following the parent chain while a table has no entries of its own.
func (b *Book) TaxTableEntries(id guid.GUID) ([]taxtable.Entry, error) {
	seen := set.New[guid.GUID]()
	for !id.IsNil() {
		if seen.Has(id) {
			return nil, fmt.Errorf("tax table %s: parent cycle", id)
		}
		seen.Add(id)
		t, ok := b.TaxTable(id)
		if !ok {
			return nil, DanglingReferenceError{Kind: "tax table", ID: id}
		}
		if len(t.Entries) > 0 || t.Parent.IsNil() {
			return t.Entries, nil
		}
		id = t.Parent
	}
	return nil, nil
}

// AccountByName returns the account with the given name.
func (b *Book) AccountByName(name string) (*account.Account, error) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	for _, a := range b.accounts {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, fmt.Errorf("account %q: %w", name, ErrNotFound)
}

// AccountsByType returns all accounts of the given type, sorted.
func (b *Book) AccountsByType(t account.Type) []*account.Account {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	var res []*account.Account
	for _, a := range b.accounts {
		if a.Type == t {
			res = append(res, a)
		}
	}
	compare.Sort(res, account.Compare)
	return res
}

// Balance returns the sum of split quantities booked against the single
// account, excluding children.
func (b *Book) Balance(a *account.Account) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range b.SplitsForAccount(a.ID) {
		sum = sum.Add(s.Quantity)
	}
	return sum
}

// BalanceWithChildren returns the balance of the account subtree.
func (b *Book) BalanceWithChildren(a *account.Account) decimal.Decimal {
	sum := b.Balance(a)
	for _, c := range b.ChildAccounts(a.ID) {
		sum = sum.Add(b.BalanceWithChildren(c))
	}
	return sum
}

// CustomersByName returns all customers whose name contains the given
// string, case-insensitively, sorted.
func (b *Book) CustomersByName(name string) []*owner.Customer {
	var res []*owner.Customer
	for _, c := range b.Customers() {
		if containsFold(c.Name, name) {
			res = append(res, c)
		}
	}
	return res
}

// CustomerByName returns one customer matching the name. With several
// matches it logs a warning and takes the first; callers that must treat
// ambiguity as an error use CustomersByName.
func (b *Book) CustomerByName(name string) (*owner.Customer, error) {
	matches := b.CustomersByName(name)
	if len(matches) == 0 {
		return nil, fmt.Errorf("customer %q: %w", name, ErrNotFound)
	}
	if len(matches) > 1 {
		b.logger.Warn().Str("name", name).Int("matches", len(matches)).Msg("ambiguous customer name, taking first match")
	}
	return matches[0], nil
}

// VendorsByName returns all vendors whose name contains the given
// string, case-insensitively, sorted.
func (b *Book) VendorsByName(name string) []*owner.Vendor {
	var res []*owner.Vendor
	for _, v := range b.Vendors() {
		if containsFold(v.Name, name) {
			res = append(res, v)
		}
	}
	return res
}

// VendorByName returns one vendor matching the name, with the same
// policy as CustomerByName.
func (b *Book) VendorByName(name string) (*owner.Vendor, error) {
	matches := b.VendorsByName(name)
	if len(matches) == 0 {
		return nil, fmt.Errorf("vendor %q: %w", name, ErrNotFound)
	}
	if len(matches) > 1 {
		b.logger.Warn().Str("name", name).Int("matches", len(matches)).Msg("ambiguous vendor name, taking first match")
	}
	return matches[0], nil
}

// EmployeesByName returns all employees whose username or name contains
// the given string, case-insensitively, sorted.
func (b *Book) EmployeesByName(name string) []*owner.Employee {
	var res []*owner.Employee
	for _, e := range b.Employees() {
		if containsFold(e.Username, name) || containsFold(e.Name, name) {
			res = append(res, e)
		}
	}
	return res
}

// EmployeeByName returns one employee matching the name, with the same
// policy as CustomerByName.
func (b *Book) EmployeeByName(name string) (*owner.Employee, error) {
	matches := b.EmployeesByName(name)
	if len(matches) == 0 {
		return nil, fmt.Errorf("employee %q: %w", name, ErrNotFound)
	}
	if len(matches) > 1 {
		b.logger.Warn().Str("name", name).Int("matches", len(matches)).Msg("ambiguous employee name, taking first match")
	}
	return matches[0], nil
}

// JobsByName returns all jobs whose name contains the given string,
// case-insensitively, sorted.
func (b *Book) JobsByName(name string) []*owner.Job {
	var res []*owner.Job
	for _, j := range b.Jobs() {
		if containsFold(j.Name, name) {
			res = append(res, j)
		}
	}
	return res
}

// JobByName returns one job matching the name, with the same policy as
// CustomerByName.
func (b *Book) JobByName(name string) (*owner.Job, error) {
	matches := b.JobsByName(name)
	if len(matches) == 0 {
		return nil, fmt.Errorf("job %q: %w", name, ErrNotFound)
	}
	if len(matches) > 1 {
		b.logger.Warn().Str("name", name).Int("matches", len(matches)).Msg("ambiguous job name, taking first match")
	}
	return matches[0], nil
}

// InvoiceByNum returns the invoice with the given number.
func (b *Book) InvoiceByNum(num string) (*invoice.Invoice, error) {
	for _, inv := range b.Invoices() {
		if inv.Num == num {
			return inv, nil
		}
	}
	return nil, fmt.Errorf("invoice %q: %w", num, ErrNotFound)
}

// Logger returns the book's logger.
func (b *Book) Logger() zerolog.Logger {
	return b.logger
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
