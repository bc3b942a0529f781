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
	"fmt"
	"os"
	"strings"

	"github.com/rhaller/gncbook/lib/common/table"
	"github.com/rhaller/gncbook/lib/payment"

	"github.com/spf13/cobra"
)

// CreateInvoicesCommand creates the command.
func CreateInvoicesCommand() *cobra.Command {

	var r invoicesRunner

	c := &cobra.Command{
		Use:   "invoices",
		Short: "list invoices",
		Long:  `List the invoices of a book file with their amounts and payment state.`,
		Args:  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run:   r.run,
	}
	r.setupFlags(c)
	return c
}

type invoicesRunner struct {
	tableFlags

	open  bool
	owner string
}

func (r *invoicesRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", err.Error())
		os.Exit(1)
	}
}

func (r *invoicesRunner) setupFlags(c *cobra.Command) {
	r.tableFlags.setup(c)
	c.Flags().BoolVar(&r.open, "open", false, "list only open invoices")
	c.Flags().StringVar(&r.owner, "owner", "", "filter by owner name")
}

func (r *invoicesRunner) execute(cmd *cobra.Command, args []string) error {
	b, err := loadBook(cmd, args[0])
	if err != nil {
		return err
	}
	tbl := table.New(4, 4, 1)
	tbl.AddSeparatorRow()
	tbl.AddRow().
		AddText("Invoice", table.Center).
		AddText("Type", table.Center).
		AddText("Owner", table.Center).
		AddText("Opened", table.Center).
		AddText("Net", table.Center).
		AddText("Gross", table.Center).
		AddText("Paid", table.Center).
		AddText("Unpaid", table.Center).
		AddText("State", table.Center)
	tbl.AddSeparatorRow()
	for _, inv := range b.Invoices() {
		name, err := b.OwnerName(inv.OwnerRef)
		if err != nil {
			return err
		}
		if r.owner != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(r.owner)) {
			continue
		}
		s, err := payment.Calculate(b, inv)
		if err != nil {
			return fmt.Errorf("invoice %s: %w", inv.Num, err)
		}
		state := "open"
		switch {
		case !inv.IsPosted():
			state = "draft"
		case s.FullyPaid:
			state = "paid"
		}
		if r.open && state != "open" {
			continue
		}
		tbl.AddRow().
			AddText(inv.Num, table.Left).
			AddText(kindLabel(inv.OwnerType()), table.Left).
			AddText(name, table.Left).
			AddText(formatDate(inv.DateOpened), table.Left).
			AddNumber(s.WithoutTax).
			AddNumber(s.WithTax).
			AddNumber(s.Paid).
			AddNumber(s.Unpaid).
			AddText(state, table.Left)
	}
	tbl.AddSeparatorRow()
	return r.render(tbl, cmd.OutOrStdout())
}
