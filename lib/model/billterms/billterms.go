package billterms

import (
	"fmt"
	"time"

	"github.com/rhaller/gncbook/lib/common/compare"
	"github.com/rhaller/gncbook/lib/model/guid"
	"github.com/shopspring/decimal"
)

// Type is the kind of a billing terms policy.
type Type int

const (
	// DAYS terms are due a fixed number of days after posting.
	DAYS Type = iota
	// PROXIMO terms are due on a day of the following month.
	PROXIMO
)

func (t Type) String() string {
	if t == PROXIMO {
		return "PROXIMO"
	}
	return "DAYS"
}

// ParseType parses a terms type as stored in the file.
func ParseType(s string) (Type, error) {
	switch s {
	case "DAYS":
		return DAYS, nil
	case "PROXIMO":
		return PROXIMO, nil
	}
	return DAYS, fmt.Errorf("invalid bill terms type %q", s)
}

// Days is the detail block of DAYS terms.
type Days struct {
	DueDays      int
	DiscountDays int
	Discount     decimal.Decimal
}

// Proximo is the detail block of PROXIMO terms. Invoices posted after
// CutoffDay are due a month later.
type Proximo struct {
	DueDay      int
	DiscountDay int
	Discount    decimal.Decimal
	CutoffDay   int
}

// Terms is a named due-date and discount policy. Exactly one of the two
// detail blocks is present, matching Type. Parent and Children only group
// terms for display.
type Terms struct {
	ID          guid.GUID
	Name        string
	Description string
	Type        Type
	Days        *Days
	Proximo     *Proximo
	Parent      guid.GUID
	Children    []guid.GUID
	Invisible   bool
}

func (t *Terms) String() string {
	return t.Name
}

// TypeError is returned when reading the detail block of the other terms
// type.
type TypeError struct {
	Terms guid.GUID
	Got   Type
	Want  Type
}

func (e TypeError) Error() string {
	return fmt.Sprintf("bill terms %s are %s terms, not %s terms", e.Terms, e.Got, e.Want)
}

// DaysDetail returns the DAYS detail block.
func (t *Terms) DaysDetail() (*Days, error) {
	if t.Type != DAYS || t.Days == nil {
		return nil, TypeError{Terms: t.ID, Got: t.Type, Want: DAYS}
	}
	return t.Days, nil
}

// ProximoDetail returns the PROXIMO detail block.
func (t *Terms) ProximoDetail() (*Proximo, error) {
	if t.Type != PROXIMO || t.Proximo == nil {
		return nil, TypeError{Terms: t.ID, Got: t.Type, Want: PROXIMO}
	}
	return t.Proximo, nil
}

// DueDate computes the due date for an invoice posted on the given date.
func (t *Terms) DueDate(posted time.Time) (time.Time, error) {
	switch t.Type {
	case DAYS:
		d, err := t.DaysDetail()
		if err != nil {
			return time.Time{}, err
		}
		return posted.AddDate(0, 0, d.DueDays), nil
	case PROXIMO:
		p, err := t.ProximoDetail()
		if err != nil {
			return time.Time{}, err
		}
		months := 1
		if p.CutoffDay > 0 && posted.Day() > p.CutoffDay {
			months = 2
		}
		next := time.Date(posted.Year(), posted.Month(), 1, 0, 0, 0, 0, posted.Location()).AddDate(0, months, 0)
		return next.AddDate(0, 0, p.DueDay-1), nil
	}
	return time.Time{}, fmt.Errorf("bill terms %s have invalid type %d", t.ID, t.Type)
}

func Compare(t1, t2 *Terms) compare.Order {
	if o := compare.Ordered(t1.Name, t2.Name); o != compare.Equal {
		return o
	}
	return compare.Ordered(t1.ID, t2.ID)
}
