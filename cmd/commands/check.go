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

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

// CreateCheckCommand creates the command.
func CreateCheckCommand() *cobra.Command {

	var r checkRunner

	c := &cobra.Command{
		Use:   "check",
		Short: "check a book file",
		Long:  `Check the referential integrity of a book file and recompute the payment state of every invoice.`,
		Args:  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run:   r.run,
	}
	r.setupFlags(c)
	return c
}

type checkRunner struct {
	progress bool
}

func (r *checkRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", err.Error())
		os.Exit(1)
	}
}

func (r *checkRunner) setupFlags(c *cobra.Command) {
	c.Flags().BoolVar(&r.progress, "progress", false, "show a progress bar")
}

func (r *checkRunner) execute(cmd *cobra.Command, args []string) error {
	b, err := loadBook(cmd, args[0])
	if err != nil {
		return err
	}
	invoices := b.Invoices()
	var bar *pb.ProgressBar
	if r.progress {
		bar = pb.New(len(invoices))
		bar.SetWriter(cmd.ErrOrStderr())
		bar.Start()
	}
	var errs error
	for _, inv := range invoices {
		if _, err := payment.Calculate(b, inv); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("invoice %s: %w", inv.Num, err))
		}
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}
	if errs != nil {
		return errs
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d accounts\n", len(b.Accounts()))
	fmt.Fprintf(out, "%d transactions\n", len(b.Transactions()))
	fmt.Fprintf(out, "%d invoices\n", len(invoices))
	fmt.Fprintln(out, "ok")
	return nil
}
