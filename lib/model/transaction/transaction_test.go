package transaction

import (
	"testing"
	"time"

	"github.com/rhaller/gncbook/lib/common/compare"
	"github.com/rhaller/gncbook/lib/model/commodity"
	"github.com/rhaller/gncbook/lib/model/guid"
	"github.com/shopspring/decimal"
)

func TestBuild(t *testing.T) {
	var (
		receivable = guid.New()
		income     = guid.New()
		lot        = guid.New()
	)
	trx := Builder{
		Currency:    commodity.Currency("EUR"),
		Description: "posting",
		DatePosted:  time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
		Splits: []SplitBuilder{
			{Account: receivable, Action: ActionInvoice, Value: decimal.NewFromInt(100), Lot: lot},
			{Account: income, Value: decimal.NewFromInt(-100)},
		},
	}.Build()

	if trx.ID.IsNil() {
		t.Fatal("Build() did not assign a transaction ID")
	}
	if len(trx.Splits) != 2 {
		t.Fatalf("Build() created %d splits, want 2", len(trx.Splits))
	}
	for _, s := range trx.Splits {
		if s.ID.IsNil() {
			t.Error("Build() did not assign a split ID")
		}
		if s.Transaction != trx.ID {
			t.Errorf("split references transaction %s, want %s", s.Transaction, trx.ID)
		}
		if !s.Quantity.Equal(s.Value) {
			t.Errorf("split quantity %s, want defaulted to value %s", s.Quantity, s.Value)
		}
	}
	if trx.Splits[0].Lot != lot {
		t.Errorf("split lot = %s, want %s", trx.Splits[0].Lot, lot)
	}
	if !trx.Balanced() {
		t.Error("Balanced() = false, want true")
	}
}

func TestSplitLookup(t *testing.T) {
	trx := Builder{
		Currency: commodity.Currency("EUR"),
		Splits: []SplitBuilder{
			{Account: guid.New(), Value: decimal.NewFromInt(100)},
			{Account: guid.New(), Value: decimal.NewFromInt(-100)},
		},
	}.Build()
	s, ok := trx.Split(trx.Splits[1].ID)
	if !ok {
		t.Fatal("Split() did not find an existing split")
	}
	if s != trx.Splits[1] {
		t.Errorf("Split() = %v, want %v", s, trx.Splits[1])
	}
	if _, ok := trx.Split(guid.New()); ok {
		t.Error("Split() found a split for an unknown ID")
	}
}

func TestBalanced(t *testing.T) {
	trx := Builder{
		Currency: commodity.Currency("EUR"),
		Splits: []SplitBuilder{
			{Account: guid.New(), Value: decimal.NewFromInt(100)},
			{Account: guid.New(), Value: decimal.NewFromInt(-99)},
		},
	}.Build()
	if trx.Balanced() {
		t.Error("Balanced() = true, want false")
	}
}

func TestCompare(t *testing.T) {
	var (
		early = Builder{DatePosted: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)}.Build()
		late  = Builder{DatePosted: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)}.Build()
	)
	if got := Compare(early, late); got != compare.Smaller {
		t.Errorf("Compare(early, late) = %v, want Smaller", got)
	}
	if got := Compare(late, early); got != compare.Greater {
		t.Errorf("Compare(late, early) = %v, want Greater", got)
	}
	if got := Compare(early, early); got != compare.Equal {
		t.Errorf("Compare(early, early) = %v, want Equal", got)
	}
}
