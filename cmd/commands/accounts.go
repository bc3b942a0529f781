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

	"github.com/rhaller/gncbook/lib/book"
	"github.com/rhaller/gncbook/lib/common/table"
	"github.com/rhaller/gncbook/lib/model/account"

	"github.com/spf13/cobra"
)

// CreateAccountsCommand creates the command.
func CreateAccountsCommand() *cobra.Command {

	var r accountsRunner

	c := &cobra.Command{
		Use:   "accounts",
		Short: "list the account tree",
		Long:  `List the account tree of a book file with the balance of each account and of its subtree.`,
		Args:  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run:   r.run,
	}
	r.setupFlags(c)
	return c
}

type accountsRunner struct {
	tableFlags
}

func (r *accountsRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", err.Error())
		os.Exit(1)
	}
}

func (r *accountsRunner) setupFlags(c *cobra.Command) {
	r.tableFlags.setup(c)
}

func (r *accountsRunner) execute(cmd *cobra.Command, args []string) error {
	b, err := loadBook(cmd, args[0])
	if err != nil {
		return err
	}
	tbl := table.New(1, 1, 2)
	tbl.AddSeparatorRow()
	tbl.AddRow().
		AddText("Account", table.Center).
		AddText("Type", table.Center).
		AddText("Balance", table.Center).
		AddText("Total", table.Center)
	tbl.AddSeparatorRow()
	for _, a := range b.Accounts() {
		if !a.Parent.IsNil() {
			continue
		}
		renderSubtree(b, tbl, a, 0)
		tbl.AddEmptyRow()
		tbl.AddRow().
			AddText("Total", table.Left).
			AddEmpty().
			AddEmpty().
			AddNumber(b.BalanceWithChildren(a))
	}
	tbl.AddSeparatorRow()
	return r.tableFlags.render(tbl, cmd.OutOrStdout())
}

func renderSubtree(b *book.Book, tbl *table.Table, a *account.Account, indent int) {
	if a.Type == account.ROOT {
		// Root accounts are placeholders and carry no splits.
		tbl.AddRow().
			AddIndented(a.Name, indent).
			FillEmpty()
	} else {
		tbl.AddRow().
			AddIndented(a.Name, indent).
			AddText(a.Type.String(), table.Left).
			AddNumber(b.Balance(a)).
			AddNumber(b.BalanceWithChildren(a))
	}
	for _, c := range b.ChildAccounts(a.ID) {
		renderSubtree(b, tbl, c, indent+2)
	}
}
