package view

import (
	"github.com/rhaller/gncbook/lib/book"
	"github.com/rhaller/gncbook/lib/model/invoice"
	"github.com/rhaller/gncbook/lib/model/owner"
	"github.com/shopspring/decimal"
)

// JobInvoice is the job view of a generic invoice. The job's own owner
// decides whether its amounts come from the invoice side or the bill
// side of each entry; that branch is resolved once at construction.
type JobInvoice struct {
	noInvoice
	noBill
	noVoucher
	amounts
	job      *owner.Job
	jobOwner owner.Ref
}

var _ View = (*JobInvoice)(nil)

// WrapJobInvoice wraps inv as a job invoice. It fails with
// WrongInvoiceTypeError if inv is not owned by a job, and with a
// resolution error if the job or its own owner cannot be resolved.
func WrapJobInvoice(b *book.Book, inv *invoice.Invoice) (*JobInvoice, error) {
	if inv.OwnerType() != owner.JOB {
		return nil, mismatch(inv, owner.JOB)
	}
	j, ok := b.Job(inv.OwnerRef.ID)
	if !ok {
		return nil, book.DanglingReferenceError{Kind: "job", ID: inv.OwnerRef.ID, Referrer: string(inv.ID)}
	}
	jobOwner, err := b.JobOwner(j)
	if err != nil {
		return nil, err
	}
	return &JobInvoice{
		noInvoice: noInvoice{err: mismatch(inv, owner.CUSTOMER)},
		noBill:    noBill{err: mismatch(inv, owner.VENDOR)},
		noVoucher: noVoucher{err: mismatch(inv, owner.EMPLOYEE)},
		amounts:   amounts{b: b, inv: inv},
		job:       j,
		jobOwner:  jobOwner,
	}, nil
}

// Job returns the owning job.
func (ji *JobInvoice) Job() *owner.Job {
	return ji.job
}

// JobOwner returns the job's own owner, a customer or vendor.
func (ji *JobInvoice) JobOwner() owner.Ref {
	return ji.jobOwner
}

func (ji *JobInvoice) JobAmountWithoutTax() (decimal.Decimal, error) {
	return ji.withoutTax()
}

func (ji *JobInvoice) JobAmountWithTax() (decimal.Decimal, error) {
	return ji.withTax()
}

func (ji *JobInvoice) JobAmountPaidWithTax() (decimal.Decimal, error) {
	return ji.paidWithTax()
}

func (ji *JobInvoice) JobAmountPaidWithoutTax() (decimal.Decimal, error) {
	return ji.paidWithoutTax()
}

func (ji *JobInvoice) JobAmountUnpaidWithTax() (decimal.Decimal, error) {
	return ji.unpaidWithTax()
}

func (ji *JobInvoice) JobIsFullyPaid() (bool, error) {
	return ji.fullyPaid()
}

func (ji *JobInvoice) JobIsNotFullyPaid() (bool, error) {
	return ji.notFullyPaid()
}
