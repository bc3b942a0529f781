package payment

import (
	"fmt"
	"time"

	"github.com/rhaller/gncbook/lib/book"
	"github.com/rhaller/gncbook/lib/model/account"
	"github.com/rhaller/gncbook/lib/model/guid"
	"github.com/rhaller/gncbook/lib/model/invoice"
	"github.com/rhaller/gncbook/lib/model/owner"
	"github.com/rhaller/gncbook/lib/model/taxtable"
	"github.com/rhaller/gncbook/lib/model/transaction"
	"github.com/shopspring/decimal"
)

// Post books the invoice against a receivable or payable account. It
// creates the posting transaction whose split on that account carries a
// fresh lot, books each entry's net amount to the entry's account and
// its tax to the tax table's accounts, and records the post fields on
// the invoice.
func Post(b *book.Book, inv *invoice.Invoice, postAcc *account.Account, date time.Time) (*transaction.Transaction, error) {
	if inv.IsPosted() {
		return nil, fmt.Errorf("invoice %s is already posted", inv.Num)
	}
	side, err := SideOf(b, inv)
	if err != nil {
		return nil, err
	}
	if side == invoice.InvoiceSide && postAcc.Type != account.RECEIVABLE {
		return nil, fmt.Errorf("invoice %s must be posted to a receivable account, got %s", inv.Num, postAcc.Type)
	}
	if side == invoice.BillSide && postAcc.Type != account.PAYABLE {
		return nil, fmt.Errorf("invoice %s must be posted to a payable account, got %s", inv.Num, postAcc.Type)
	}

	// A receivable split is positive, income and tax negative; a
	// payable posting mirrors the signs.
	sign := decimal.NewFromInt(1)
	if side == invoice.BillSide {
		sign = sign.Neg()
	}

	lot := guid.New()
	tb := transaction.Builder{
		Currency:    inv.Currency,
		Description: inv.Description,
		Num:         inv.Num,
		DatePosted:  date,
		DateEntered: date,
	}
	gross := decimal.Zero
	for _, e := range b.Entries(inv) {
		pb := e.Block(side)
		if pb.Account.IsNil() {
			return nil, fmt.Errorf("entry %s of invoice %s has no account", e.ID, inv.Num)
		}
		net, err := EntryNet(b, e, side)
		if err != nil {
			return nil, err
		}
		gross = gross.Add(net)
		tb.Splits = append(tb.Splits, transaction.SplitBuilder{
			Account: pb.Account,
			Memo:    e.Description,
			Value:   net.Mul(sign).Neg(),
		})
		if !pb.Taxable || pb.TaxTable.IsNil() {
			continue
		}
		entries, err := b.TaxTableEntries(pb.TaxTable)
		if err != nil {
			return nil, err
		}
		for _, te := range entries {
			var tax decimal.Decimal
			switch te.Type {
			case taxtable.PERCENT:
				tax = net.Mul(te.Amount).Div(decimal.NewFromInt(100))
			case taxtable.VALUE:
				tax = te.Amount
			}
			gross = gross.Add(tax)
			tb.Splits = append(tb.Splits, transaction.SplitBuilder{
				Account: te.Account,
				Memo:    e.Description,
				Value:   tax.Mul(sign).Neg(),
			})
		}
	}
	tb.Splits = append(tb.Splits, transaction.SplitBuilder{
		Account: postAcc.ID,
		Memo:    inv.Description,
		Action:  postAction(inv.OwnerType(), side),
		Value:   gross.Mul(sign),
		Lot:     lot,
	})

	t := b.AddTransaction(tb)
	inv.PostTransaction = t.ID
	inv.PostAccount = postAcc.ID
	inv.PostLot = lot
	inv.DatePosted = date
	b.Touch()
	return t, nil
}

// Pay records a payment of the given amount against a posted invoice,
// transferring from or to the given asset account. The payment split on
// the posting account carries the invoice's lot, which is what later
// correlates it with the invoice.
func Pay(b *book.Book, inv *invoice.Invoice, transferAcc *account.Account, amount decimal.Decimal, date time.Time) (*transaction.Transaction, error) {
	if !inv.IsPosted() {
		return nil, fmt.Errorf("invoice %s is not posted", inv.Num)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("payment amount %s must be positive", amount)
	}
	postAcc, ok := b.Account(inv.PostAccount)
	if !ok {
		return nil, book.DanglingReferenceError{Kind: "account", ID: inv.PostAccount, Referrer: fmt.Sprintf("invoice %s", inv.Num)}
	}
	sign := decimal.NewFromInt(1)
	if postAcc.Type == account.RECEIVABLE {
		sign = sign.Neg()
	}
	t := b.AddTransaction(transaction.Builder{
		Currency:    inv.Currency,
		Description: fmt.Sprintf("payment %s", inv.Num),
		DatePosted:  date,
		DateEntered: date,
		Splits: []transaction.SplitBuilder{
			{
				Account: postAcc.ID,
				Action:  transaction.ActionPayment,
				Value:   amount.Mul(sign),
				Lot:     inv.PostLot,
			},
			{
				Account: transferAcc.ID,
				Value:   amount.Mul(sign).Neg(),
			},
		},
	})
	return t, nil
}

// Unpost deletes the posting transaction and clears the invoice's post
// fields; the lot is dropped from any payment splits so no reference
// dangles.
func Unpost(b *book.Book, inv *invoice.Invoice) error {
	if !inv.IsPosted() {
		return fmt.Errorf("invoice %s is not posted", inv.Num)
	}
	return b.DeleteTransaction(inv.PostTransaction)
}

func postAction(t owner.Type, side invoice.Side) string {
	if t == owner.EMPLOYEE {
		return transaction.ActionVoucher
	}
	if side == invoice.BillSide {
		return transaction.ActionBill
	}
	return transaction.ActionInvoice
}
