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
	"github.com/rhaller/gncbook/lib/payment"

	"github.com/spf13/cobra"
)

// CreateJobsCommand creates the command.
func CreateJobsCommand() *cobra.Command {

	var r jobsRunner

	c := &cobra.Command{
		Use:   "jobs",
		Short: "list jobs",
		Long:  `List the jobs of a book file with their owners and aggregate invoice state.`,
		Args:  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run:   r.run,
	}
	r.setupFlags(c)
	return c
}

type jobsRunner struct {
	tableFlags
}

func (r *jobsRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", err.Error())
		os.Exit(1)
	}
}

func (r *jobsRunner) setupFlags(c *cobra.Command) {
	r.tableFlags.setup(c)
}

func (r *jobsRunner) execute(cmd *cobra.Command, args []string) error {
	b, err := loadBook(cmd, args[0])
	if err != nil {
		return err
	}
	tbl := table.New(3, 2, 3)
	tbl.AddSeparatorRow()
	tbl.AddRow().
		AddText("Name", table.Center).
		AddText("Number", table.Center).
		AddText("Owner", table.Center).
		AddText("Invoices", table.Center).
		AddText("Open", table.Center).
		AddText("Net", table.Center).
		AddText("Gross", table.Center).
		AddText("Unpaid", table.Center)
	tbl.AddSeparatorRow()
	for _, j := range b.Jobs() {
		ownerName, err := b.OwnerName(j.Owner)
		if err != nil {
			return fmt.Errorf("job %s: %w", j.Name, err)
		}
		st, err := payment.JobStatus(b, j)
		if err != nil {
			return fmt.Errorf("job %s: %w", j.Name, err)
		}
		open, err := payment.NofOpenInvoices(b, j.Ref(), book.Direct)
		if err != nil {
			return fmt.Errorf("job %s: %w", j.Name, err)
		}
		tbl.AddRow().
			AddText(j.Name, table.Left).
			AddText(j.Number, table.Left).
			AddText(ownerName, table.Left).
			AddText(fmt.Sprint(len(payment.InvoicesOf(b, j.Ref(), book.Direct))), table.Right).
			AddText(fmt.Sprint(open), table.Right).
			AddNumber(st.WithoutTax).
			AddNumber(st.WithTax).
			AddNumber(st.Unpaid)
	}
	tbl.AddSeparatorRow()
	return r.render(tbl, cmd.OutOrStdout())
}
