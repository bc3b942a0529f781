package taxtable

import (
	"fmt"

	"github.com/rhaller/gncbook/lib/common/compare"
	"github.com/rhaller/gncbook/lib/model/guid"
	"github.com/shopspring/decimal"
)

// EntryType is the kind of a tax table entry.
type EntryType int

const (
	// PERCENT taxes a percentage of the net amount.
	PERCENT EntryType = iota
	// VALUE taxes an absolute amount.
	VALUE
)

func (t EntryType) String() string {
	if t == VALUE {
		return "VALUE"
	}
	return "PERCENT"
}

// ParseEntryType parses an entry type as stored in the file.
func ParseEntryType(s string) (EntryType, error) {
	switch s {
	case "PERCENT":
		return PERCENT, nil
	case "VALUE":
		return VALUE, nil
	}
	return PERCENT, fmt.Errorf("invalid tax table entry type %q", s)
}

// Entry books tax to one account, either as a percentage of the net
// amount or as an absolute value.
type Entry struct {
	Account guid.GUID
	Amount  decimal.Decimal
	Type    EntryType
}

// TaxTable is a named list of tax entries. A table with a parent and no
// entries of its own inherits the parent's entries; child tables are
// created by the original application when a table in use is edited.
type TaxTable struct {
	ID        guid.GUID
	Name      string
	Parent    guid.GUID
	Invisible bool
	Entries   []Entry
}

func (t *TaxTable) String() string {
	return t.Name
}

// TaxOn computes the tax for the given net amount by summing the entries:
// percentage entries contribute pct/100 of net, value entries contribute
// their absolute amount.
func TaxOn(entries []Entry, net decimal.Decimal) decimal.Decimal {
	tax := decimal.Zero
	for _, e := range entries {
		switch e.Type {
		case PERCENT:
			tax = tax.Add(net.Mul(e.Amount).Div(decimal.NewFromInt(100)))
		case VALUE:
			tax = tax.Add(e.Amount)
		}
	}
	return tax
}

// PercentSum returns the summed percentage of all percentage entries,
// used to back tax out of tax-included prices.
func PercentSum(entries []Entry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		if e.Type == PERCENT {
			sum = sum.Add(e.Amount)
		}
	}
	return sum
}

// ValueSum returns the summed amount of all absolute entries.
func ValueSum(entries []Entry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		if e.Type == VALUE {
			sum = sum.Add(e.Amount)
		}
	}
	return sum
}

func Compare(t1, t2 *TaxTable) compare.Order {
	if o := compare.Ordered(t1.Name, t2.Name); o != compare.Equal {
		return o
	}
	return compare.Ordered(t1.ID, t2.ID)
}
