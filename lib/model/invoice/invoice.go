package invoice

import (
	"fmt"
	"time"

	"github.com/rhaller/gncbook/lib/common/compare"
	"github.com/rhaller/gncbook/lib/model/commodity"
	"github.com/rhaller/gncbook/lib/model/guid"
	"github.com/rhaller/gncbook/lib/model/owner"
	"github.com/shopspring/decimal"
)

// Invoice is the generic record underlying the four business views:
// customer invoice, vendor bill, employee voucher and job invoice. The
// owner type tag is set at creation and never changes.
type Invoice struct {
	ID          guid.GUID
	OwnerRef    owner.Ref
	Num         string
	Description string
	DateOpened  time.Time
	DatePosted  time.Time
	Currency    commodity.Commodity
	Active      bool
	Terms       guid.GUID
	URL         string

	// Post fields are zero until the invoice is posted. PostLot is the
	// key correlating the posting split with later payment splits.
	PostTransaction guid.GUID
	PostAccount     guid.GUID
	PostLot         guid.GUID
}

// OwnerType returns the immutable owner type tag.
func (inv *Invoice) OwnerType() owner.Type {
	return inv.OwnerRef.Type
}

// IsPosted reports whether the invoice has a posting transaction.
func (inv *Invoice) IsPosted() bool {
	return !inv.PostTransaction.IsNil()
}

func (inv *Invoice) String() string {
	return fmt.Sprintf("%s %s", inv.OwnerRef.Type, inv.Num)
}

// Compare orders invoices by date opened, then date posted.
func Compare(i1, i2 *Invoice) compare.Order {
	if o := compare.Time(i1.DateOpened, i2.DateOpened); o != compare.Equal {
		return o
	}
	if o := compare.Time(i1.DatePosted, i2.DatePosted); o != compare.Equal {
		return o
	}
	return compare.Ordered(i1.ID, i2.ID)
}

// Entry actions.
const (
	ActionJob      = "Job"
	ActionHours    = "Hours"
	ActionMaterial = "Material"
	ActionProject  = "Project"
)

// Entry is a line of a generic invoice. The file carries two price and
// taxation blocks per entry: the invoice side, read by customer and job
// views, and the bill side, read by vendor and employee views. Only the
// block matching the owning invoice's type is semantically valid.
type Entry struct {
	ID          guid.GUID
	Invoice     guid.GUID
	Date        time.Time
	DateEntered time.Time
	Description string
	Action      string
	Quantity    decimal.Decimal

	Inv  PriceBlock
	Bill PriceBlock
}

// PriceBlock is one side's price and taxation detail. Account is the
// income or expense account the entry is booked against when the invoice
// is posted.
type PriceBlock struct {
	Account     guid.GUID
	Price       decimal.Decimal
	Taxable     bool
	TaxIncluded bool
	TaxTable    guid.GUID
	// Discount is a percentage applied before tax; only the invoice
	// side carries one in the file.
	Discount decimal.Decimal
}

// Side selects one of the two per-entry price blocks.
type Side int

const (
	InvoiceSide Side = iota
	BillSide
)

// SideFor returns the price block side valid for the given owner type.
// For JOB-typed invoices callers resolve the job's own owner first and
// pass the resolved customer or vendor type.
func SideFor(t owner.Type) Side {
	switch t {
	case VENDOR, EMPLOYEE:
		return BillSide
	default:
		return InvoiceSide
	}
}

// Block returns the price block for the given side.
func (e *Entry) Block(s Side) PriceBlock {
	if s == BillSide {
		return e.Bill
	}
	return e.Inv
}

// CompareEntries orders entries by date, then entry date, then ID.
func CompareEntries(e1, e2 *Entry) compare.Order {
	if o := compare.Time(e1.Date, e2.Date); o != compare.Equal {
		return o
	}
	if o := compare.Time(e1.DateEntered, e2.DateEntered); o != compare.Equal {
		return o
	}
	return compare.Ordered(e1.ID, e2.ID)
}

// WrongInvoiceTypeError is returned when a specialized view or accessor
// is applied to a generic invoice of a different owner type.
type WrongInvoiceTypeError struct {
	Invoice guid.GUID
	Got     owner.Type
	Want    owner.Type
}

func (e WrongInvoiceTypeError) Error() string {
	return fmt.Sprintf("invoice %s is a %s invoice, not a %s invoice", e.Invoice, e.Got, e.Want)
}

// Aliases for the owner types, for readability at call sites.
const (
	CUSTOMER = owner.CUSTOMER
	VENDOR   = owner.VENDOR
	EMPLOYEE = owner.EMPLOYEE
	JOB      = owner.JOB
)
