package account

import (
	"fmt"

	"github.com/rhaller/gncbook/lib/common/compare"
	"github.com/rhaller/gncbook/lib/model/commodity"
	"github.com/rhaller/gncbook/lib/model/guid"
)

// Type is the type of an account.
type Type int

const (
	ROOT Type = iota
	BANK
	CASH
	ASSET
	RECEIVABLE
	PAYABLE
	INCOME
	EXPENSE
	EQUITY
	LIABILITY
	CREDIT
	STOCK
	MUTUAL
	CURRENCY
	TRADING
)

var names = map[Type]string{
	ROOT:       "ROOT",
	BANK:       "BANK",
	CASH:       "CASH",
	ASSET:      "ASSET",
	RECEIVABLE: "RECEIVABLE",
	PAYABLE:    "PAYABLE",
	INCOME:     "INCOME",
	EXPENSE:    "EXPENSE",
	EQUITY:     "EQUITY",
	LIABILITY:  "LIABILITY",
	CREDIT:     "CREDIT",
	STOCK:      "STOCK",
	MUTUAL:     "MUTUAL",
	CURRENCY:   "CURRENCY",
	TRADING:    "TRADING",
}

var types = func() map[string]Type {
	res := make(map[string]Type, len(names))
	for t, n := range names {
		res[n] = t
	}
	return res
}()

func (t Type) String() string {
	return names[t]
}

// ParseType parses an account type as stored in the file.
func ParseType(s string) (Type, error) {
	t, ok := types[s]
	if !ok {
		return ROOT, fmt.Errorf("invalid account type %q", s)
	}
	return t, nil
}

// Account represents an account in the account tree.
type Account struct {
	ID          guid.GUID
	Name        string
	Type        Type
	Parent      guid.GUID
	Commodity   commodity.Commodity
	Code        string
	Description string
}

func (a *Account) String() string {
	return a.Name
}

// IsAPAR reports whether the account accumulates open business lots, i.e.
// whether it is a receivable or payable account.
func (a *Account) IsAPAR() bool {
	return a.Type == RECEIVABLE || a.Type == PAYABLE
}

func Compare(a1, a2 *Account) compare.Order {
	if o := compare.Ordered(a1.Type, a2.Type); o != compare.Equal {
		return o
	}
	if o := compare.Ordered(a1.Name, a2.Name); o != compare.Equal {
		return o
	}
	return compare.Ordered(a1.ID, a2.ID)
}
