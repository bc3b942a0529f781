package transaction

import (
	"time"

	"github.com/rhaller/gncbook/lib/common/compare"
	"github.com/rhaller/gncbook/lib/model/commodity"
	"github.com/rhaller/gncbook/lib/model/guid"
	"github.com/shopspring/decimal"
)

// Split actions, as stored in the file. The action on a split sharing an
// invoice's lot distinguishes the original posting from later payments.
const (
	ActionInvoice = "Invoice"
	ActionBill    = "Bill"
	ActionVoucher = "Expense"
	ActionPayment = "Payment"
)

// Transaction represents a transaction with its splits.
type Transaction struct {
	ID          guid.GUID
	Currency    commodity.Commodity
	Description string
	Num         string
	DatePosted  time.Time
	DateEntered time.Time
	Splits      []*Split
}

// Split books a signed value against one account. Value is denominated in
// the transaction currency, Quantity in the account commodity. Lot is the
// grouping key tying invoice postings to their payments; it is Nil on
// splits outside any lot.
type Split struct {
	ID          guid.GUID
	Transaction guid.GUID
	Account     guid.GUID
	Memo        string
	Action      string
	Value       decimal.Decimal
	Quantity    decimal.Decimal
	Lot         guid.GUID
}

// Split returns the split with the given ID, if present.
func (t *Transaction) Split(id guid.GUID) (*Split, bool) {
	for _, s := range t.Splits {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// Balanced reports whether the split values sum to zero.
func (t *Transaction) Balanced() bool {
	sum := decimal.Zero
	for _, s := range t.Splits {
		sum = sum.Add(s.Value)
	}
	return sum.IsZero()
}

func Compare(t1, t2 *Transaction) compare.Order {
	if o := compare.Time(t1.DatePosted, t2.DatePosted); o != compare.Equal {
		return o
	}
	if o := compare.Ordered(t1.Description, t2.Description); o != compare.Equal {
		return o
	}
	return compare.Ordered(t1.ID, t2.ID)
}

func CompareSplits(s1, s2 *Split) compare.Order {
	if o := compare.Ordered(s1.Account, s2.Account); o != compare.Equal {
		return o
	}
	if o := compare.Decimal(s1.Value, s2.Value); o != compare.Equal {
		return o
	}
	return compare.Ordered(s1.ID, s2.ID)
}

// Builder builds transactions.
type Builder struct {
	Currency    commodity.Commodity
	Description string
	Num         string
	DatePosted  time.Time
	DateEntered time.Time
	Splits      []SplitBuilder
}

// SplitBuilder builds a split of a transaction under construction.
type SplitBuilder struct {
	Account  guid.GUID
	Memo     string
	Action   string
	Value    decimal.Decimal
	Quantity decimal.Decimal
	Lot      guid.GUID
}

// Build builds a transaction with fresh IDs.
func (tb Builder) Build() *Transaction {
	t := &Transaction{
		ID:          guid.New(),
		Currency:    tb.Currency,
		Description: tb.Description,
		Num:         tb.Num,
		DatePosted:  tb.DatePosted,
		DateEntered: tb.DateEntered,
	}
	for _, sb := range tb.Splits {
		quantity := sb.Quantity
		if quantity.IsZero() {
			quantity = sb.Value
		}
		t.Splits = append(t.Splits, &Split{
			ID:          guid.New(),
			Transaction: t.ID,
			Account:     sb.Account,
			Memo:        sb.Memo,
			Action:      sb.Action,
			Value:       sb.Value,
			Quantity:    quantity,
			Lot:         sb.Lot,
		})
	}
	return t
}
