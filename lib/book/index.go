package book

import (
	"github.com/rhaller/gncbook/lib/common/compare"
	"github.com/rhaller/gncbook/lib/model/account"
	"github.com/rhaller/gncbook/lib/model/guid"
	"github.com/rhaller/gncbook/lib/model/invoice"
	"github.com/rhaller/gncbook/lib/model/owner"
	"github.com/rhaller/gncbook/lib/model/transaction"
)

// index holds the secondary indices over the graph. The file format has
// no back-pointers, so these replace the per-query full scans. The index
// is dropped on every mutation and rebuilt lazily on the next read.
type index struct {
	entriesByInvoice map[guid.GUID][]*invoice.Entry
	invoicesByOwner  map[owner.Ref][]*invoice.Invoice
	jobsByOwner      map[owner.Ref][]*owner.Job
	splitsByLot      map[guid.GUID][]*transaction.Split
	splitsByAccount  map[guid.GUID][]*transaction.Split
	childAccounts    map[guid.GUID][]*account.Account
}

func (b *Book) getIndex() *index {
	b.mutex.RLock()
	idx := b.idx
	b.mutex.RUnlock()
	if idx != nil {
		return idx
	}
	b.mutex.Lock()
	defer b.mutex.Unlock()
	// check if the index has been rebuilt in the meantime
	if b.idx != nil {
		return b.idx
	}
	idx = &index{
		entriesByInvoice: make(map[guid.GUID][]*invoice.Entry),
		invoicesByOwner:  make(map[owner.Ref][]*invoice.Invoice),
		jobsByOwner:      make(map[owner.Ref][]*owner.Job),
		splitsByLot:      make(map[guid.GUID][]*transaction.Split),
		splitsByAccount:  make(map[guid.GUID][]*transaction.Split),
		childAccounts:    make(map[guid.GUID][]*account.Account),
	}
	for _, e := range b.entries {
		idx.entriesByInvoice[e.Invoice] = append(idx.entriesByInvoice[e.Invoice], e)
	}
	for _, inv := range b.invoices {
		idx.invoicesByOwner[inv.OwnerRef] = append(idx.invoicesByOwner[inv.OwnerRef], inv)
	}
	for _, j := range b.jobs {
		idx.jobsByOwner[j.Owner] = append(idx.jobsByOwner[j.Owner], j)
	}
	for _, t := range b.transactions {
		for _, s := range t.Splits {
			if !s.Lot.IsNil() {
				idx.splitsByLot[s.Lot] = append(idx.splitsByLot[s.Lot], s)
			}
			idx.splitsByAccount[s.Account] = append(idx.splitsByAccount[s.Account], s)
		}
	}
	for _, a := range b.accounts {
		if !a.Parent.IsNil() {
			idx.childAccounts[a.Parent] = append(idx.childAccounts[a.Parent], a)
		}
	}
	for _, es := range idx.entriesByInvoice {
		compare.Sort(es, invoice.CompareEntries)
	}
	for _, is := range idx.invoicesByOwner {
		compare.Sort(is, invoice.Compare)
	}
	for _, js := range idx.jobsByOwner {
		compare.Sort(js, owner.CompareJobs)
	}
	for _, as := range idx.childAccounts {
		compare.Sort(as, account.Compare)
	}
	for _, ss := range idx.splitsByLot {
		compare.Sort(ss, transaction.CompareSplits)
	}
	for _, ss := range idx.splitsByAccount {
		compare.Sort(ss, transaction.CompareSplits)
	}
	b.idx = idx
	return idx
}

// invalidate drops the secondary indices. Callers hold no lock.
func (b *Book) invalidate() {
	b.mutex.Lock()
	b.idx = nil
	b.mutex.Unlock()
}

// Entries returns the entries of an invoice, sorted by date.
func (b *Book) Entries(inv *invoice.Invoice) []*invoice.Entry {
	return b.getIndex().entriesByInvoice[inv.ID]
}

// InvoicesFor returns the invoices immediately owned by the given owner,
// sorted.
func (b *Book) InvoicesFor(ref owner.Ref) []*invoice.Invoice {
	return b.getIndex().invoicesByOwner[ref]
}

// JobsFor returns the jobs owned by the given owner, sorted by name.
func (b *Book) JobsFor(ref owner.Ref) []*owner.Job {
	return b.getIndex().jobsByOwner[ref]
}

// SplitsForLot returns all splits carrying the given lot.
func (b *Book) SplitsForLot(lot guid.GUID) []*transaction.Split {
	return b.getIndex().splitsByLot[lot]
}

// SplitsForAccount returns all splits booked against the given account.
func (b *Book) SplitsForAccount(id guid.GUID) []*transaction.Split {
	return b.getIndex().splitsByAccount[id]
}

// ChildAccounts returns the direct children of the given account.
func (b *Book) ChildAccounts(id guid.GUID) []*account.Account {
	return b.getIndex().childAccounts[id]
}
