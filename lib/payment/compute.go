// Package payment infers payment state from the transaction graph. The
// file format never records which transactions pay an invoice; the only
// link is the lot shared between the posting split and later payment
// splits on the same receivable or payable account.
package payment

import (
	"github.com/rhaller/gncbook/lib/book"
	"github.com/rhaller/gncbook/lib/model/invoice"
	"github.com/rhaller/gncbook/lib/model/owner"
	"github.com/rhaller/gncbook/lib/model/taxtable"
	"github.com/shopspring/decimal"
)

// Epsilon is the magnitude below which an unpaid remainder counts as
// settled. Stored values are exact decimals; the epsilon only absorbs
// rounding noise from percentage arithmetic.
var Epsilon = decimal.New(1, -5)

var hundred = decimal.NewFromInt(100)

// SideOf returns the price block side valid for the invoice, resolving
// the job hop when present: a job owned by a customer is billed like a
// customer invoice, a job owned by a vendor like a vendor bill.
func SideOf(b *book.Book, inv *invoice.Invoice) (invoice.Side, error) {
	t := inv.OwnerType()
	if t == owner.JOB {
		ref, err := b.ResolveOwner(inv, book.ViaJob)
		if err != nil {
			return invoice.InvoiceSide, err
		}
		t = ref.Type
	}
	return invoice.SideFor(t), nil
}

// EntryNet returns the entry's amount without tax: quantity times price,
// less the entry discount, with tax backed out of tax-included prices.
func EntryNet(b *book.Book, e *invoice.Entry, side invoice.Side) (decimal.Decimal, error) {
	pb := e.Block(side)
	net := e.Quantity.Mul(pb.Price)
	if !pb.Discount.IsZero() {
		net = net.Sub(net.Mul(pb.Discount).Div(hundred))
	}
	if pb.TaxIncluded && pb.Taxable && !pb.TaxTable.IsNil() {
		entries, err := b.TaxTableEntries(pb.TaxTable)
		if err != nil {
			return decimal.Zero, err
		}
		pct := taxtable.PercentSum(entries)
		net = net.Sub(taxtable.ValueSum(entries)).Mul(hundred).Div(hundred.Add(pct))
	}
	return net, nil
}

// EntryTax returns the entry's tax amount. Entries without a tax table
// or with the taxable flag unset contribute zero.
func EntryTax(b *book.Book, e *invoice.Entry, side invoice.Side) (decimal.Decimal, error) {
	pb := e.Block(side)
	if !pb.Taxable || pb.TaxTable.IsNil() {
		return decimal.Zero, nil
	}
	entries, err := b.TaxTableEntries(pb.TaxTable)
	if err != nil {
		return decimal.Zero, err
	}
	net, err := EntryNet(b, e, side)
	if err != nil {
		return decimal.Zero, err
	}
	return taxtable.TaxOn(entries, net), nil
}

// AmountWithoutTax sums the entries' net amounts.
func AmountWithoutTax(b *book.Book, inv *invoice.Invoice) (decimal.Decimal, error) {
	side, err := SideOf(b, inv)
	if err != nil {
		return decimal.Zero, err
	}
	sum := decimal.Zero
	for _, e := range b.Entries(inv) {
		net, err := EntryNet(b, e, side)
		if err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(net)
	}
	return sum, nil
}

// AmountWithTax sums the entries' net amounts plus their tax.
func AmountWithTax(b *book.Book, inv *invoice.Invoice) (decimal.Decimal, error) {
	side, err := SideOf(b, inv)
	if err != nil {
		return decimal.Zero, err
	}
	sum := decimal.Zero
	for _, e := range b.Entries(inv) {
		net, err := EntryNet(b, e, side)
		if err != nil {
			return decimal.Zero, err
		}
		tax, err := EntryTax(b, e, side)
		if err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(net).Add(tax)
	}
	return sum, nil
}
