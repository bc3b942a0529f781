package commodity

import (
	"fmt"
	"strings"

	"github.com/rhaller/gncbook/lib/common/compare"
)

// Commodity identifies a tradable unit or currency by namespace and code,
// e.g. CURRENCY:EUR. Fraction is the smallest representable unit, as a
// denominator (100 for cent-based currencies).
type Commodity struct {
	Namespace string
	Mnemonic  string
	Fraction  int
}

// Currency is a convenience constructor for ISO currencies.
func Currency(mnemonic string) Commodity {
	return Commodity{Namespace: "CURRENCY", Mnemonic: mnemonic, Fraction: 100}
}

func (c Commodity) Name() string {
	return c.Namespace + ":" + c.Mnemonic
}

func (c Commodity) String() string {
	return c.Name()
}

// IsCurrency reports whether the commodity lives in the currency namespace.
func (c Commodity) IsCurrency() bool {
	return c.Namespace == "CURRENCY" || c.Namespace == "ISO4217"
}

// Parse parses a namespace:mnemonic pair.
func Parse(s string) (Commodity, error) {
	ns, mn, ok := strings.Cut(s, ":")
	if !ok || ns == "" || mn == "" {
		return Commodity{}, fmt.Errorf("invalid commodity %q: want namespace:mnemonic", s)
	}
	return Commodity{Namespace: ns, Mnemonic: mn, Fraction: 100}, nil
}

func Compare(c1, c2 Commodity) compare.Order {
	if o := compare.Ordered(c1.Namespace, c2.Namespace); o != compare.Equal {
		return o
	}
	return compare.Ordered(c1.Mnemonic, c2.Mnemonic)
}
