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
	"io"
	"os"

	"github.com/rhaller/gncbook/lib/book"
	"github.com/rhaller/gncbook/lib/common/table"
	"github.com/rhaller/gncbook/lib/model/owner"
	"github.com/rhaller/gncbook/lib/payment"

	"github.com/spf13/cobra"
)

// ownerLine is one row of an owner listing.
type ownerLine struct {
	name   string
	number string
	ref    owner.Ref
}

// renderOwners renders the aggregate invoice state per owner. Amounts
// are aggregated over the owner's directly owned invoices.
func renderOwners(b *book.Book, lines []ownerLine, flags *tableFlags, w io.Writer) error {
	tbl := table.New(2, 2, 3)
	tbl.AddSeparatorRow()
	tbl.AddRow().
		AddText("Name", table.Center).
		AddText("Number", table.Center).
		AddText("Invoices", table.Center).
		AddText("Open", table.Center).
		AddText("Net", table.Center).
		AddText("Gross", table.Center).
		AddText("Unpaid", table.Center)
	tbl.AddSeparatorRow()
	for _, line := range lines {
		st, err := payment.OwnerStatus(b, line.ref, book.Direct)
		if err != nil {
			return fmt.Errorf("%s: %w", line.name, err)
		}
		open, err := payment.NofOpenInvoices(b, line.ref, book.Direct)
		if err != nil {
			return fmt.Errorf("%s: %w", line.name, err)
		}
		tbl.AddRow().
			AddText(line.name, table.Left).
			AddText(line.number, table.Left).
			AddText(fmt.Sprint(len(payment.InvoicesOf(b, line.ref, book.Direct))), table.Right).
			AddText(fmt.Sprint(open), table.Right).
			AddNumber(st.WithoutTax).
			AddNumber(st.WithTax).
			AddNumber(st.Unpaid)
	}
	tbl.AddSeparatorRow()
	return flags.render(tbl, w)
}

// CreateCustomersCommand creates the command.
func CreateCustomersCommand() *cobra.Command {

	var r customersRunner

	c := &cobra.Command{
		Use:   "customers",
		Short: "list customers",
		Long:  `List the customers of a book file with their aggregate invoice state.`,
		Args:  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run:   r.run,
	}
	r.setupFlags(c)
	return c
}

type customersRunner struct {
	tableFlags
}

func (r *customersRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", err.Error())
		os.Exit(1)
	}
}

func (r *customersRunner) setupFlags(c *cobra.Command) {
	r.tableFlags.setup(c)
}

func (r *customersRunner) execute(cmd *cobra.Command, args []string) error {
	b, err := loadBook(cmd, args[0])
	if err != nil {
		return err
	}
	var lines []ownerLine
	for _, c := range b.Customers() {
		lines = append(lines, ownerLine{name: c.Name, number: c.Number, ref: c.Ref()})
	}
	return renderOwners(b, lines, &r.tableFlags, cmd.OutOrStdout())
}

// CreateVendorsCommand creates the command.
func CreateVendorsCommand() *cobra.Command {

	var r vendorsRunner

	c := &cobra.Command{
		Use:   "vendors",
		Short: "list vendors",
		Long:  `List the vendors of a book file with their aggregate bill state.`,
		Args:  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run:   r.run,
	}
	r.setupFlags(c)
	return c
}

type vendorsRunner struct {
	tableFlags
}

func (r *vendorsRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", err.Error())
		os.Exit(1)
	}
}

func (r *vendorsRunner) setupFlags(c *cobra.Command) {
	r.tableFlags.setup(c)
}

func (r *vendorsRunner) execute(cmd *cobra.Command, args []string) error {
	b, err := loadBook(cmd, args[0])
	if err != nil {
		return err
	}
	var lines []ownerLine
	for _, v := range b.Vendors() {
		lines = append(lines, ownerLine{name: v.Name, number: v.Number, ref: v.Ref()})
	}
	return renderOwners(b, lines, &r.tableFlags, cmd.OutOrStdout())
}

// CreateEmployeesCommand creates the command.
func CreateEmployeesCommand() *cobra.Command {

	var r employeesRunner

	c := &cobra.Command{
		Use:   "employees",
		Short: "list employees",
		Long:  `List the employees of a book file with their aggregate voucher state.`,
		Args:  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run:   r.run,
	}
	r.setupFlags(c)
	return c
}

type employeesRunner struct {
	tableFlags
}

func (r *employeesRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", err.Error())
		os.Exit(1)
	}
}

func (r *employeesRunner) setupFlags(c *cobra.Command) {
	r.tableFlags.setup(c)
}

func (r *employeesRunner) execute(cmd *cobra.Command, args []string) error {
	b, err := loadBook(cmd, args[0])
	if err != nil {
		return err
	}
	var lines []ownerLine
	for _, e := range b.Employees() {
		lines = append(lines, ownerLine{name: e.Username, number: e.Number, ref: e.Ref()})
	}
	return renderOwners(b, lines, &r.tableFlags, cmd.OutOrStdout())
}
