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
	"os"
	"path/filepath"
	"testing"

	"github.com/rhaller/gncbook/cmd/cmdtest"
	"github.com/rhaller/gncbook/lib/book"
	"github.com/rhaller/gncbook/lib/payment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// copyBook copies the fixture into a temp dir so mutating commands can
// write it back.
func copyBook(t *testing.T) string {
	t.Helper()
	src, err := os.ReadFile("testdata/book.gncbook")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "book.gncbook")
	require.NoError(t, os.WriteFile(path, src, 0644))
	return path
}

func TestPostCommand(t *testing.T) {
	path := copyBook(t)

	out := cmdtest.Run(t, CreatePostCommand(), []string{path, "BILL-001", "--account", "Payable", "--date", "2024-02-28"})
	assert.Equal(t, "posted BILL-001 to Payable\n", string(out))

	b, err := book.Load(path)
	require.NoError(t, err)
	inv, err := b.InvoiceByNum("BILL-001")
	require.NoError(t, err)
	assert.True(t, inv.IsPosted())
	assert.Equal(t, "2024-02-28", inv.DatePosted.Format("2006-01-02"))

	s, err := payment.Calculate(b, inv)
	require.NoError(t, err)
	assert.True(t, s.WithTax.Equal(decimal.RequireFromString("600")))
	assert.True(t, s.Unpaid.Equal(decimal.RequireFromString("600")))
	assert.False(t, s.FullyPaid)
}

func TestUnpostCommand(t *testing.T) {
	path := copyBook(t)

	cmdtest.Run(t, CreatePostCommand(), []string{path, "BILL-001", "--account", "Payable", "--date", "2024-02-28"})
	out := cmdtest.Run(t, CreatePostCommand(), []string{path, "BILL-001", "--unpost"})
	assert.Equal(t, "unposted BILL-001\n", string(out))

	b, err := book.Load(path)
	require.NoError(t, err)
	inv, err := b.InvoiceByNum("BILL-001")
	require.NoError(t, err)
	assert.False(t, inv.IsPosted())

	s, err := payment.Calculate(b, inv)
	require.NoError(t, err)
	assert.True(t, s.Paid.IsZero())
}
