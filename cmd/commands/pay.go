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

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// CreatePayCommand creates the command.
func CreatePayCommand() *cobra.Command {

	var r payRunner

	c := &cobra.Command{
		Use:   "pay <file> <invoice> <amount>",
		Short: "record a payment",
		Long:  `Record a payment against a posted invoice, transferring from or to an asset account.`,
		Args:  cobra.MatchAll(cobra.ExactArgs(3), cobra.OnlyValidArgs),
		Run:   r.run,
	}
	r.setupFlags(c)
	return c
}

type payRunner struct {
	account string
	date    dateFlag
}

func (r *payRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", err.Error())
		os.Exit(1)
	}
}

func (r *payRunner) setupFlags(c *cobra.Command) {
	c.Flags().StringVarP(&r.account, "account", "a", "", "asset account the payment transfers from or to")
	c.Flags().VarP(&r.date, "date", "d", "payment date")
}

func (r *payRunner) execute(cmd *cobra.Command, args []string) error {
	if r.account == "" {
		return fmt.Errorf("--account is required")
	}
	b, err := loadBook(cmd, args[0])
	if err != nil {
		return err
	}
	inv, err := b.InvoiceByNum(args[1])
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(args[2])
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[2], err)
	}
	acc, err := b.AccountByName(r.account)
	if err != nil {
		return err
	}
	if _, err := payment.Pay(b, inv, acc, amount, r.date.Value()); err != nil {
		return err
	}
	if err := b.Save(args[0]); err != nil {
		return err
	}
	s, err := payment.Calculate(b, inv)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "paid %s against %s, %s unpaid\n", amount, inv.Num, s.Unpaid)
	return nil
}
