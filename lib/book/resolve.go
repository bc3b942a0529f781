package book

import (
	"fmt"

	"github.com/rhaller/gncbook/lib/model/invoice"
	"github.com/rhaller/gncbook/lib/model/owner"
)

// Variant selects between the two owner read variants of an invoice.
type Variant int

const (
	// Direct returns the invoice's immediate owner as stored.
	Direct Variant = iota
	// ViaJob follows the job indirection one level and returns the
	// job's own owner. Only valid for JOB-typed invoices.
	ViaJob
)

func (v Variant) String() string {
	if v == ViaJob {
		return "via job"
	}
	return "direct"
}

// ResolveOwner resolves the owner of an invoice according to the given
// variant. ViaJob on a directly owned invoice fails with
// WrongOwnerTypeError.
func (b *Book) ResolveOwner(inv *invoice.Invoice, v Variant) (owner.Ref, error) {
	switch v {
	case Direct:
		return inv.OwnerRef, nil
	case ViaJob:
		if inv.OwnerRef.Type != owner.JOB {
			return owner.Ref{}, owner.WrongOwnerTypeError{Got: inv.OwnerRef.Type, Want: owner.JOB}
		}
		job, ok := b.Job(inv.OwnerRef.ID)
		if !ok {
			return owner.Ref{}, DanglingReferenceError{Kind: "job", ID: inv.OwnerRef.ID, Referrer: fmt.Sprintf("invoice %s", inv.ID)}
		}
		return b.JobOwner(job)
	}
	return owner.Ref{}, fmt.Errorf("invalid owner variant %d", v)
}

// EffectiveOwner resolves the owner an invoice is ultimately billed to,
// following the job hop when present.
func (b *Book) EffectiveOwner(inv *invoice.Invoice) (owner.Ref, error) {
	if inv.OwnerRef.Type == owner.JOB {
		return b.ResolveOwner(inv, ViaJob)
	}
	return inv.OwnerRef, nil
}

// JobOwner returns the validated owner of a job: a customer or vendor,
// never another job.
func (b *Book) JobOwner(job *owner.Job) (owner.Ref, error) {
	switch job.Owner.Type {
	case owner.CUSTOMER:
		if _, ok := b.Customer(job.Owner.ID); !ok {
			return owner.Ref{}, DanglingReferenceError{Kind: "customer", ID: job.Owner.ID, Referrer: fmt.Sprintf("job %s", job.ID)}
		}
	case owner.VENDOR:
		if _, ok := b.Vendor(job.Owner.ID); !ok {
			return owner.Ref{}, DanglingReferenceError{Kind: "vendor", ID: job.Owner.ID, Referrer: fmt.Sprintf("job %s", job.ID)}
		}
	default:
		return owner.Ref{}, owner.WrongJobTypeError{Job: job.ID, Got: job.Owner.Type}
	}
	return job.Owner, nil
}

// OwnerName returns the display name of an owner reference.
func (b *Book) OwnerName(ref owner.Ref) (string, error) {
	switch ref.Type {
	case owner.CUSTOMER:
		if c, ok := b.Customer(ref.ID); ok {
			return c.Name, nil
		}
	case owner.VENDOR:
		if v, ok := b.Vendor(ref.ID); ok {
			return v.Name, nil
		}
	case owner.EMPLOYEE:
		if e, ok := b.Employee(ref.ID); ok {
			return e.Username, nil
		}
	case owner.JOB:
		if j, ok := b.Job(ref.ID); ok {
			return j.Name, nil
		}
	}
	return "", DanglingReferenceError{Kind: ref.Type.String(), ID: ref.ID}
}
