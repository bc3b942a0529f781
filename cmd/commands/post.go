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

	"github.com/rhaller/gncbook/lib/payment"

	"github.com/spf13/cobra"
)

// CreatePostCommand creates the command.
func CreatePostCommand() *cobra.Command {

	var r postRunner

	c := &cobra.Command{
		Use:   "post <file> <invoice>",
		Short: "post or unpost an invoice",
		Long:  `Post an invoice against a receivable or payable account, or unpost it again.`,
		Args:  cobra.MatchAll(cobra.ExactArgs(2), cobra.OnlyValidArgs),
		Run:   r.run,
	}
	r.setupFlags(c)
	return c
}

type postRunner struct {
	account string
	date    dateFlag
	unpost  bool
}

func (r *postRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", err.Error())
		os.Exit(1)
	}
}

func (r *postRunner) setupFlags(c *cobra.Command) {
	c.Flags().StringVarP(&r.account, "account", "a", "", "receivable or payable account to post against")
	c.Flags().VarP(&r.date, "date", "d", "posting date")
	c.Flags().BoolVar(&r.unpost, "unpost", false, "unpost the invoice instead")
}

func (r *postRunner) execute(cmd *cobra.Command, args []string) error {
	b, err := loadBook(cmd, args[0])
	if err != nil {
		return err
	}
	inv, err := b.InvoiceByNum(args[1])
	if err != nil {
		return err
	}
	if r.unpost {
		if err := payment.Unpost(b, inv); err != nil {
			return err
		}
		if err := b.Save(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "unposted %s\n", inv.Num)
		return nil
	}
	if r.account == "" {
		return fmt.Errorf("--account is required to post")
	}
	acc, err := b.AccountByName(r.account)
	if err != nil {
		return err
	}
	if _, err := payment.Post(b, inv, acc, r.date.Value()); err != nil {
		return err
	}
	if err := b.Save(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "posted %s to %s\n", inv.Num, acc.Name)
	return nil
}
