// Copyright 2024 Robert Haller
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"testing"

	"github.com/rhaller/gncbook/cmd/cmdtest"
	"github.com/rhaller/gncbook/lib/book"
	"github.com/rhaller/gncbook/lib/payment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayCommand(t *testing.T) {
	path := copyBook(t)

	out := cmdtest.Run(t, CreatePayCommand(), []string{path, "INV-001", "690", "--account", "Checking", "--date", "2024-03-01"})
	assert.Equal(t, "paid 690 against INV-001, 0 unpaid\n", string(out))

	b, err := book.Load(path)
	require.NoError(t, err)
	inv, err := b.InvoiceByNum("INV-001")
	require.NoError(t, err)

	s, err := payment.Calculate(b, inv)
	require.NoError(t, err)
	assert.True(t, s.Paid.Equal(decimal.RequireFromString("1190")))
	assert.True(t, s.Unpaid.IsZero())
	assert.True(t, s.FullyPaid)

	checking, err := b.AccountByName("Checking")
	require.NoError(t, err)
	assert.True(t, b.Balance(checking).Equal(decimal.RequireFromString("1190")))
}

func TestPayPartial(t *testing.T) {
	path := copyBook(t)

	out := cmdtest.Run(t, CreatePayCommand(), []string{path, "INV-001", "100", "--account", "Checking", "--date", "2024-03-01"})
	assert.Equal(t, "paid 100 against INV-001, 590 unpaid\n", string(out))

	b, err := book.Load(path)
	require.NoError(t, err)
	inv, err := b.InvoiceByNum("INV-001")
	require.NoError(t, err)

	s, err := payment.Calculate(b, inv)
	require.NoError(t, err)
	assert.True(t, s.Paid.Equal(decimal.RequireFromString("600")))
	assert.False(t, s.FullyPaid)
}
