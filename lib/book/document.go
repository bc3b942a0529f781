package book

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/rhaller/gncbook/lib/model/account"
	"github.com/rhaller/gncbook/lib/model/billterms"
	"github.com/rhaller/gncbook/lib/model/commodity"
	"github.com/rhaller/gncbook/lib/model/guid"
	"github.com/rhaller/gncbook/lib/model/invoice"
	"github.com/rhaller/gncbook/lib/model/owner"
	"github.com/rhaller/gncbook/lib/model/taxtable"
	"github.com/rhaller/gncbook/lib/model/transaction"
	"github.com/natefinch/atomic"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"
)

// Document is the raw parsed graph exchanged with the file reader and
// writer. All references are GUID strings, all amounts decimal strings,
// all dates ISO dates; nothing is resolved.
type Document struct {
	Accounts     []AccountDoc     `yaml:"accounts,omitempty"`
	Transactions []TransactionDoc `yaml:"transactions,omitempty"`
	Customers    []CustomerDoc    `yaml:"customers,omitempty"`
	Vendors      []VendorDoc      `yaml:"vendors,omitempty"`
	Employees    []EmployeeDoc    `yaml:"employees,omitempty"`
	Jobs         []JobDoc         `yaml:"jobs,omitempty"`
	TaxTables    []TaxTableDoc    `yaml:"taxtables,omitempty"`
	BillTerms    []BillTermsDoc   `yaml:"billterms,omitempty"`
	Invoices     []InvoiceDoc     `yaml:"invoices,omitempty"`
	Entries      []EntryDoc       `yaml:"entries,omitempty"`
}

type AccountDoc struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Parent      string `yaml:"parent,omitempty"`
	Commodity   string `yaml:"commodity"`
	Code        string `yaml:"code,omitempty"`
	Description string `yaml:"description,omitempty"`
}

type TransactionDoc struct {
	ID          string     `yaml:"id"`
	Currency    string     `yaml:"currency"`
	Description string     `yaml:"description,omitempty"`
	Num         string     `yaml:"num,omitempty"`
	DatePosted  string     `yaml:"date-posted"`
	DateEntered string     `yaml:"date-entered,omitempty"`
	Splits      []SplitDoc `yaml:"splits"`
}

type SplitDoc struct {
	ID       string `yaml:"id"`
	Account  string `yaml:"account"`
	Memo     string `yaml:"memo,omitempty"`
	Action   string `yaml:"action,omitempty"`
	Value    string `yaml:"value"`
	Quantity string `yaml:"quantity"`
	Lot      string `yaml:"lot,omitempty"`
}

type CustomerDoc struct {
	ID       string `yaml:"id"`
	Number   string `yaml:"number,omitempty"`
	Name     string `yaml:"name"`
	Active   bool   `yaml:"active"`
	Discount string `yaml:"discount,omitempty"`
	Credit   string `yaml:"credit,omitempty"`
	TaxTable string `yaml:"taxtable,omitempty"`
	Terms    string `yaml:"terms,omitempty"`
	Notes    string `yaml:"notes,omitempty"`
}

type VendorDoc struct {
	ID       string `yaml:"id"`
	Number   string `yaml:"number,omitempty"`
	Name     string `yaml:"name"`
	Active   bool   `yaml:"active"`
	TaxTable string `yaml:"taxtable,omitempty"`
	Terms    string `yaml:"terms,omitempty"`
	Notes    string `yaml:"notes,omitempty"`
}

type EmployeeDoc struct {
	ID       string `yaml:"id"`
	Number   string `yaml:"number,omitempty"`
	Username string `yaml:"username"`
	Name     string `yaml:"name,omitempty"`
	Active   bool   `yaml:"active"`
	Workday  string `yaml:"workday,omitempty"`
	Rate     string `yaml:"rate,omitempty"`
}

type JobDoc struct {
	ID        string `yaml:"id"`
	Number    string `yaml:"number,omitempty"`
	Name      string `yaml:"name"`
	Active    bool   `yaml:"active"`
	OwnerType string `yaml:"owner-type"`
	OwnerID   string `yaml:"owner-id"`
}

type TaxTableDoc struct {
	ID        string            `yaml:"id"`
	Name      string            `yaml:"name"`
	Parent    string            `yaml:"parent,omitempty"`
	Invisible bool              `yaml:"invisible,omitempty"`
	Entries   []TaxTableItemDoc `yaml:"entries,omitempty"`
}

type TaxTableItemDoc struct {
	Account string `yaml:"account"`
	Amount  string `yaml:"amount"`
	Type    string `yaml:"type"`
}

type BillTermsDoc struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description,omitempty"`
	Type        string          `yaml:"type"`
	Days        *DaysDoc        `yaml:"days,omitempty"`
	Proximo     *ProximoDoc     `yaml:"proximo,omitempty"`
	Parent      string          `yaml:"parent,omitempty"`
	Children    []string        `yaml:"children,omitempty"`
	Invisible   bool            `yaml:"invisible,omitempty"`
}

type DaysDoc struct {
	DueDays      int    `yaml:"due-days"`
	DiscountDays int    `yaml:"discount-days,omitempty"`
	Discount     string `yaml:"discount,omitempty"`
}

type ProximoDoc struct {
	DueDay      int    `yaml:"due-day"`
	DiscountDay int    `yaml:"discount-day,omitempty"`
	Discount    string `yaml:"discount,omitempty"`
	CutoffDay   int    `yaml:"cutoff-day,omitempty"`
}

type InvoiceDoc struct {
	ID              string `yaml:"id"`
	OwnerType       string `yaml:"owner-type"`
	OwnerID         string `yaml:"owner-id"`
	Num             string `yaml:"num"`
	Description     string `yaml:"description,omitempty"`
	DateOpened      string `yaml:"date-opened"`
	DatePosted      string `yaml:"date-posted,omitempty"`
	Currency        string `yaml:"currency"`
	Active          bool   `yaml:"active"`
	Terms           string `yaml:"terms,omitempty"`
	URL             string `yaml:"url,omitempty"`
	PostTransaction string `yaml:"post-transaction,omitempty"`
	PostAccount     string `yaml:"post-account,omitempty"`
	PostLot         string `yaml:"post-lot,omitempty"`
}

type EntryDoc struct {
	ID          string         `yaml:"id"`
	Invoice     string         `yaml:"invoice"`
	Date        string         `yaml:"date"`
	DateEntered string         `yaml:"date-entered,omitempty"`
	Description string         `yaml:"description,omitempty"`
	Action      string         `yaml:"action,omitempty"`
	Quantity    string         `yaml:"quantity"`
	Inv         *PriceBlockDoc `yaml:"invoice-side,omitempty"`
	Bill        *PriceBlockDoc `yaml:"bill-side,omitempty"`
}

type PriceBlockDoc struct {
	Account     string `yaml:"account,omitempty"`
	Price       string `yaml:"price"`
	Taxable     bool   `yaml:"taxable"`
	TaxIncluded bool   `yaml:"tax-included,omitempty"`
	TaxTable    string `yaml:"taxtable,omitempty"`
	Discount    string `yaml:"discount,omitempty"`
}

const dateFormat = "2006-01-02"

// FromDocument resolves a raw document into a book. Malformed numbers,
// dates or GUIDs fail at this point; the integrity check runs afterwards
// and a graph with dangling required references is rejected as a whole.
func FromDocument(doc *Document, opts ...Option) (*Book, error) {
	d := docReader{book: New(opts...)}
	for _, a := range doc.Accounts {
		d.readAccount(a)
	}
	for _, t := range doc.Transactions {
		d.readTransaction(t)
	}
	for _, c := range doc.Customers {
		d.readCustomer(c)
	}
	for _, v := range doc.Vendors {
		d.readVendor(v)
	}
	for _, e := range doc.Employees {
		d.readEmployee(e)
	}
	for _, j := range doc.Jobs {
		d.readJob(j)
	}
	for _, t := range doc.TaxTables {
		d.readTaxTable(t)
	}
	for _, t := range doc.BillTerms {
		d.readBillTerms(t)
	}
	for _, inv := range doc.Invoices {
		d.readInvoice(inv)
	}
	for _, e := range doc.Entries {
		d.readEntry(e)
	}
	if d.err != nil {
		return nil, d.err
	}
	if err := d.book.Check(); err != nil {
		return nil, err
	}
	return d.book, nil
}

// Load reads and resolves a book from a file.
func Load(path string, opts ...Option) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.SetStrict(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return FromDocument(&doc, opts...)
}

// Save atomically persists the book to a file.
func (b *Book) Save(path string) error {
	bs, err := yaml.Marshal(b.Document())
	if err != nil {
		return err
	}
	return atomic.WriteFile(path, bytes.NewReader(bs))
}

// Document re-emits the raw graph, deterministically ordered.
func (b *Book) Document() *Document {
	doc := &Document{}
	for _, a := range b.Accounts() {
		doc.Accounts = append(doc.Accounts, AccountDoc{
			ID:          a.ID.String(),
			Name:        a.Name,
			Type:        a.Type.String(),
			Parent:      a.Parent.String(),
			Commodity:   a.Commodity.Name(),
			Code:        a.Code,
			Description: a.Description,
		})
	}
	for _, t := range b.Transactions() {
		td := TransactionDoc{
			ID:          t.ID.String(),
			Currency:    t.Currency.Name(),
			Description: t.Description,
			Num:         t.Num,
			DatePosted:  formatDate(t.DatePosted),
			DateEntered: formatDate(t.DateEntered),
		}
		for _, s := range t.Splits {
			td.Splits = append(td.Splits, SplitDoc{
				ID:       s.ID.String(),
				Account:  s.Account.String(),
				Memo:     s.Memo,
				Action:   s.Action,
				Value:    s.Value.String(),
				Quantity: s.Quantity.String(),
				Lot:      s.Lot.String(),
			})
		}
		doc.Transactions = append(doc.Transactions, td)
	}
	for _, c := range b.Customers() {
		doc.Customers = append(doc.Customers, CustomerDoc{
			ID:       c.ID.String(),
			Number:   c.Number,
			Name:     c.Name,
			Active:   c.Active,
			Discount: formatDecimal(c.Discount),
			Credit:   formatDecimal(c.Credit),
			TaxTable: c.TaxTable.String(),
			Terms:    c.Terms.String(),
			Notes:    c.Notes,
		})
	}
	for _, v := range b.Vendors() {
		doc.Vendors = append(doc.Vendors, VendorDoc{
			ID:       v.ID.String(),
			Number:   v.Number,
			Name:     v.Name,
			Active:   v.Active,
			TaxTable: v.TaxTable.String(),
			Terms:    v.Terms.String(),
			Notes:    v.Notes,
		})
	}
	for _, e := range b.Employees() {
		doc.Employees = append(doc.Employees, EmployeeDoc{
			ID:       e.ID.String(),
			Number:   e.Number,
			Username: e.Username,
			Name:     e.Name,
			Active:   e.Active,
			Workday:  formatDecimal(e.Workday),
			Rate:     formatDecimal(e.Rate),
		})
	}
	for _, j := range b.Jobs() {
		doc.Jobs = append(doc.Jobs, JobDoc{
			ID:        j.ID.String(),
			Number:    j.Number,
			Name:      j.Name,
			Active:    j.Active,
			OwnerType: j.Owner.Type.String(),
			OwnerID:   j.Owner.ID.String(),
		})
	}
	for _, t := range b.TaxTables() {
		td := TaxTableDoc{
			ID:        t.ID.String(),
			Name:      t.Name,
			Parent:    t.Parent.String(),
			Invisible: t.Invisible,
		}
		for _, e := range t.Entries {
			td.Entries = append(td.Entries, TaxTableItemDoc{
				Account: e.Account.String(),
				Amount:  e.Amount.String(),
				Type:    e.Type.String(),
			})
		}
		doc.TaxTables = append(doc.TaxTables, td)
	}
	for _, t := range b.AllBillTerms() {
		td := BillTermsDoc{
			ID:          t.ID.String(),
			Name:        t.Name,
			Description: t.Description,
			Type:        t.Type.String(),
			Parent:      t.Parent.String(),
			Invisible:   t.Invisible,
		}
		if t.Days != nil {
			td.Days = &DaysDoc{
				DueDays:      t.Days.DueDays,
				DiscountDays: t.Days.DiscountDays,
				Discount:     formatDecimal(t.Days.Discount),
			}
		}
		if t.Proximo != nil {
			td.Proximo = &ProximoDoc{
				DueDay:      t.Proximo.DueDay,
				DiscountDay: t.Proximo.DiscountDay,
				Discount:    formatDecimal(t.Proximo.Discount),
				CutoffDay:   t.Proximo.CutoffDay,
			}
		}
		for _, c := range t.Children {
			td.Children = append(td.Children, c.String())
		}
		doc.BillTerms = append(doc.BillTerms, td)
	}
	for _, inv := range b.Invoices() {
		doc.Invoices = append(doc.Invoices, InvoiceDoc{
			ID:              inv.ID.String(),
			OwnerType:       inv.OwnerRef.Type.String(),
			OwnerID:         inv.OwnerRef.ID.String(),
			Num:             inv.Num,
			Description:     inv.Description,
			DateOpened:      formatDate(inv.DateOpened),
			DatePosted:      formatDate(inv.DatePosted),
			Currency:        inv.Currency.Name(),
			Active:          inv.Active,
			Terms:           inv.Terms.String(),
			URL:             inv.URL,
			PostTransaction: inv.PostTransaction.String(),
			PostAccount:     inv.PostAccount.String(),
			PostLot:         inv.PostLot.String(),
		})
	}
	for _, e := range b.InvoiceEntries() {
		doc.Entries = append(doc.Entries, EntryDoc{
			ID:          e.ID.String(),
			Invoice:     e.Invoice.String(),
			Date:        formatDate(e.Date),
			DateEntered: formatDate(e.DateEntered),
			Description: e.Description,
			Action:      e.Action,
			Quantity:    e.Quantity.String(),
			Inv:         priceBlockDoc(e.Inv),
			Bill:        priceBlockDoc(e.Bill),
		})
	}
	return doc
}

func priceBlockDoc(pb invoice.PriceBlock) *PriceBlockDoc {
	if pb.Account.IsNil() && pb.Price.IsZero() && !pb.Taxable && pb.TaxTable.IsNil() && pb.Discount.IsZero() {
		return nil
	}
	return &PriceBlockDoc{
		Account:     pb.Account.String(),
		Price:       pb.Price.String(),
		Taxable:     pb.Taxable,
		TaxIncluded: pb.TaxIncluded,
		TaxTable:    pb.TaxTable.String(),
		Discount:    formatDecimal(pb.Discount),
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateFormat)
}

func formatDecimal(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}

// docReader accumulates parse errors while resolving a document.
type docReader struct {
	book *Book
	err  error
}

func (d *docReader) fail(err error) {
	d.err = multierr.Append(d.err, err)
}

func (d *docReader) guid(s, where string) guid.GUID {
	id, err := guid.Parse(s)
	if err != nil {
		d.fail(fmt.Errorf("%s: %w", where, err))
		return guid.Nil
	}
	return id
}

func (d *docReader) optGUID(s, where string) guid.GUID {
	if s == "" {
		return guid.Nil
	}
	return d.guid(s, where)
}

func (d *docReader) decimal(s, where string) decimal.Decimal {
	n, err := decimal.NewFromString(s)
	if err != nil {
		d.fail(fmt.Errorf("%s: parsing amount %q: %w", where, s, err))
		return decimal.Zero
	}
	return n
}

func (d *docReader) optDecimal(s, where string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	return d.decimal(s, where)
}

func (d *docReader) date(s, where string) time.Time {
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		d.fail(fmt.Errorf("%s: parsing date %q: %w", where, s, err))
		return time.Time{}
	}
	return t
}

func (d *docReader) optDate(s, where string) time.Time {
	if s == "" {
		return time.Time{}
	}
	return d.date(s, where)
}

func (d *docReader) commodity(s, where string) commodity.Commodity {
	c, err := commodity.Parse(s)
	if err != nil {
		d.fail(fmt.Errorf("%s: %w", where, err))
		return commodity.Commodity{}
	}
	return c
}

func (d *docReader) readAccount(doc AccountDoc) {
	where := fmt.Sprintf("account %q", doc.Name)
	t, err := account.ParseType(doc.Type)
	if err != nil {
		d.fail(fmt.Errorf("%s: %w", where, err))
	}
	a := &account.Account{
		ID:          d.guid(doc.ID, where),
		Name:        doc.Name,
		Type:        t,
		Parent:      d.optGUID(doc.Parent, where),
		Commodity:   d.commodity(doc.Commodity, where),
		Code:        doc.Code,
		Description: doc.Description,
	}
	d.book.accounts[a.ID] = a
}

func (d *docReader) readTransaction(doc TransactionDoc) {
	where := fmt.Sprintf("transaction %s", doc.ID)
	t := &transaction.Transaction{
		ID:          d.guid(doc.ID, where),
		Currency:    d.commodity(doc.Currency, where),
		Description: doc.Description,
		Num:         doc.Num,
		DatePosted:  d.date(doc.DatePosted, where),
		DateEntered: d.optDate(doc.DateEntered, where),
	}
	for _, s := range doc.Splits {
		t.Splits = append(t.Splits, &transaction.Split{
			ID:          d.guid(s.ID, where),
			Transaction: t.ID,
			Account:     d.guid(s.Account, where),
			Memo:        s.Memo,
			Action:      s.Action,
			Value:       d.decimal(s.Value, where),
			Quantity:    d.decimal(s.Quantity, where),
			Lot:         d.optGUID(s.Lot, where),
		})
	}
	d.book.transactions[t.ID] = t
}

func (d *docReader) readCustomer(doc CustomerDoc) {
	where := fmt.Sprintf("customer %q", doc.Name)
	c := &owner.Customer{
		ID:       d.guid(doc.ID, where),
		Number:   doc.Number,
		Name:     doc.Name,
		Active:   doc.Active,
		Discount: d.optDecimal(doc.Discount, where),
		Credit:   d.optDecimal(doc.Credit, where),
		TaxTable: d.optGUID(doc.TaxTable, where),
		Terms:    d.optGUID(doc.Terms, where),
		Notes:    doc.Notes,
	}
	d.book.customers[c.ID] = c
}

func (d *docReader) readVendor(doc VendorDoc) {
	where := fmt.Sprintf("vendor %q", doc.Name)
	v := &owner.Vendor{
		ID:       d.guid(doc.ID, where),
		Number:   doc.Number,
		Name:     doc.Name,
		Active:   doc.Active,
		TaxTable: d.optGUID(doc.TaxTable, where),
		Terms:    d.optGUID(doc.Terms, where),
		Notes:    doc.Notes,
	}
	d.book.vendors[v.ID] = v
}

func (d *docReader) readEmployee(doc EmployeeDoc) {
	where := fmt.Sprintf("employee %q", doc.Username)
	e := &owner.Employee{
		ID:       d.guid(doc.ID, where),
		Number:   doc.Number,
		Username: doc.Username,
		Name:     doc.Name,
		Active:   doc.Active,
		Workday:  d.optDecimal(doc.Workday, where),
		Rate:     d.optDecimal(doc.Rate, where),
	}
	d.book.employees[e.ID] = e
}

func (d *docReader) readJob(doc JobDoc) {
	where := fmt.Sprintf("job %q", doc.Name)
	ot, err := owner.ParseType(doc.OwnerType)
	if err != nil {
		d.fail(fmt.Errorf("%s: %w", where, err))
	}
	j := &owner.Job{
		ID:     d.guid(doc.ID, where),
		Number: doc.Number,
		Name:   doc.Name,
		Active: doc.Active,
		Owner:  owner.Ref{Type: ot, ID: d.guid(doc.OwnerID, where)},
	}
	d.book.jobs[j.ID] = j
}

func (d *docReader) readTaxTable(doc TaxTableDoc) {
	where := fmt.Sprintf("tax table %q", doc.Name)
	t := &taxtable.TaxTable{
		ID:        d.guid(doc.ID, where),
		Name:      doc.Name,
		Parent:    d.optGUID(doc.Parent, where),
		Invisible: doc.Invisible,
	}
	for _, e := range doc.Entries {
		et, err := taxtable.ParseEntryType(e.Type)
		if err != nil {
			d.fail(fmt.Errorf("%s: %w", where, err))
		}
		t.Entries = append(t.Entries, taxtable.Entry{
			Account: d.guid(e.Account, where),
			Amount:  d.decimal(e.Amount, where),
			Type:    et,
		})
	}
	d.book.taxTables[t.ID] = t
}

func (d *docReader) readBillTerms(doc BillTermsDoc) {
	where := fmt.Sprintf("bill terms %q", doc.Name)
	tt, err := billterms.ParseType(doc.Type)
	if err != nil {
		d.fail(fmt.Errorf("%s: %w", where, err))
	}
	t := &billterms.Terms{
		ID:          d.guid(doc.ID, where),
		Name:        doc.Name,
		Description: doc.Description,
		Type:        tt,
		Parent:      d.optGUID(doc.Parent, where),
		Invisible:   doc.Invisible,
	}
	if doc.Days != nil {
		t.Days = &billterms.Days{
			DueDays:      doc.Days.DueDays,
			DiscountDays: doc.Days.DiscountDays,
			Discount:     d.optDecimal(doc.Days.Discount, where),
		}
	}
	if doc.Proximo != nil {
		t.Proximo = &billterms.Proximo{
			DueDay:      doc.Proximo.DueDay,
			DiscountDay: doc.Proximo.DiscountDay,
			Discount:    d.optDecimal(doc.Proximo.Discount, where),
			CutoffDay:   doc.Proximo.CutoffDay,
		}
	}
	for _, c := range doc.Children {
		t.Children = append(t.Children, d.guid(c, where))
	}
	d.book.terms[t.ID] = t
}

func (d *docReader) readInvoice(doc InvoiceDoc) {
	where := fmt.Sprintf("invoice %q", doc.Num)
	ot, err := owner.ParseType(doc.OwnerType)
	if err != nil {
		d.fail(fmt.Errorf("%s: %w", where, err))
	}
	inv := &invoice.Invoice{
		ID:              d.guid(doc.ID, where),
		OwnerRef:        owner.Ref{Type: ot, ID: d.guid(doc.OwnerID, where)},
		Num:             doc.Num,
		Description:     doc.Description,
		DateOpened:      d.date(doc.DateOpened, where),
		DatePosted:      d.optDate(doc.DatePosted, where),
		Currency:        d.commodity(doc.Currency, where),
		Active:          doc.Active,
		Terms:           d.optGUID(doc.Terms, where),
		URL:             doc.URL,
		PostTransaction: d.optGUID(doc.PostTransaction, where),
		PostAccount:     d.optGUID(doc.PostAccount, where),
		PostLot:         d.optGUID(doc.PostLot, where),
	}
	d.book.invoices[inv.ID] = inv
}

func (d *docReader) readEntry(doc EntryDoc) {
	where := fmt.Sprintf("entry %s", doc.ID)
	e := &invoice.Entry{
		ID:          d.guid(doc.ID, where),
		Invoice:     d.guid(doc.Invoice, where),
		Date:        d.date(doc.Date, where),
		DateEntered: d.optDate(doc.DateEntered, where),
		Description: doc.Description,
		Action:      doc.Action,
		Quantity:    d.decimal(doc.Quantity, where),
		Inv:         d.priceBlock(doc.Inv, where),
		Bill:        d.priceBlock(doc.Bill, where),
	}
	d.book.entries[e.ID] = e
}

func (d *docReader) priceBlock(doc *PriceBlockDoc, where string) invoice.PriceBlock {
	if doc == nil {
		return invoice.PriceBlock{Price: decimal.Zero, Discount: decimal.Zero}
	}
	return invoice.PriceBlock{
		Account:     d.optGUID(doc.Account, where),
		Price:       d.decimal(doc.Price, where),
		Taxable:     doc.Taxable,
		TaxIncluded: doc.TaxIncluded,
		TaxTable:    d.optGUID(doc.TaxTable, where),
		Discount:    d.optDecimal(doc.Discount, where),
	}
}
