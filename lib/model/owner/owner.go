package owner

import (
	"fmt"

	"github.com/rhaller/gncbook/lib/common/compare"
	"github.com/rhaller/gncbook/lib/model/guid"
	"github.com/shopspring/decimal"
)

// Type is the type of an invoice or job owner.
type Type int

const (
	CUSTOMER Type = iota
	VENDOR
	EMPLOYEE
	JOB
)

var names = map[Type]string{
	CUSTOMER: "gncCustomer",
	VENDOR:   "gncVendor",
	EMPLOYEE: "gncEmployee",
	JOB:      "gncJob",
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

// ParseType parses an owner type as stored in the file.
func ParseType(s string) (Type, error) {
	t, ok := types[s]
	if !ok {
		return CUSTOMER, fmt.Errorf("invalid owner type %q", s)
	}
	return t, nil
}

// Ref is a typed reference to an owner.
type Ref struct {
	Type Type
	ID   guid.GUID
}

func (r Ref) String() string {
	return fmt.Sprintf("%s:%s", r.Type, r.ID)
}

// WrongOwnerTypeError is returned when an owner reference has an
// unexpected type, e.g. when following the job hop of a directly owned
// invoice, or when a job is itself owned by a job.
type WrongOwnerTypeError struct {
	Got  Type
	Want Type
}

func (e WrongOwnerTypeError) Error() string {
	return fmt.Sprintf("wrong owner type %s, want %s", e.Got, e.Want)
}

// WrongJobTypeError is returned when a job's own owner is not a customer
// or vendor.
type WrongJobTypeError struct {
	Job guid.GUID
	Got Type
}

func (e WrongJobTypeError) Error() string {
	return fmt.Sprintf("job %s is owned by a %s, want customer or vendor", e.Job, e.Got)
}

// Customer is a party that is billed through customer invoices.
type Customer struct {
	ID       guid.GUID
	Number   string
	Name     string
	Active   bool
	Discount decimal.Decimal
	Credit   decimal.Decimal
	TaxTable guid.GUID
	Terms    guid.GUID
	Notes    string
}

// Vendor is a party billing us through vendor bills.
type Vendor struct {
	ID       guid.GUID
	Number   string
	Name     string
	Active   bool
	TaxTable guid.GUID
	Terms    guid.GUID
	Notes    string
}

// Employee is a party reimbursed through expense vouchers.
type Employee struct {
	ID       guid.GUID
	Number   string
	Username string
	Name     string
	Active   bool
	Workday  decimal.Decimal
	Rate     decimal.Decimal
}

// Job groups invoices under a customer or vendor. Its owner is never
// another job.
type Job struct {
	ID     guid.GUID
	Number string
	Name   string
	Active bool
	Owner  Ref
}

// Ref returns the typed reference to the customer.
func (c *Customer) Ref() Ref { return Ref{Type: CUSTOMER, ID: c.ID} }

// Ref returns the typed reference to the vendor.
func (v *Vendor) Ref() Ref { return Ref{Type: VENDOR, ID: v.ID} }

// Ref returns the typed reference to the employee.
func (e *Employee) Ref() Ref { return Ref{Type: EMPLOYEE, ID: e.ID} }

// Ref returns the typed reference to the job.
func (j *Job) Ref() Ref { return Ref{Type: JOB, ID: j.ID} }

func CompareCustomers(c1, c2 *Customer) compare.Order {
	if o := compare.Ordered(c1.Name, c2.Name); o != compare.Equal {
		return o
	}
	return compare.Ordered(c1.ID, c2.ID)
}

func CompareVendors(v1, v2 *Vendor) compare.Order {
	if o := compare.Ordered(v1.Name, v2.Name); o != compare.Equal {
		return o
	}
	return compare.Ordered(v1.ID, v2.ID)
}

func CompareEmployees(e1, e2 *Employee) compare.Order {
	if o := compare.Ordered(e1.Username, e2.Username); o != compare.Equal {
		return o
	}
	return compare.Ordered(e1.ID, e2.ID)
}

func CompareJobs(j1, j2 *Job) compare.Order {
	if o := compare.Ordered(j1.Name, j2.Name); o != compare.Equal {
		return o
	}
	return compare.Ordered(j1.ID, j2.ID)
}
