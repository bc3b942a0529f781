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

// Package cmd is the main command file for Cobra
package cmd

import (
	"fmt"
	"os"

	"github.com/rhaller/gncbook/cmd/commands"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gncbook",
	Short: "gncbook works with double-entry bookkeeping files",
	Long:  `gncbook reads and writes double-entry bookkeeping files with accounts, transactions, invoices and the receivable and payable objects around them.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(commands.CreateAccountsCommand())
	rootCmd.AddCommand(commands.CreateCheckCommand())
	rootCmd.AddCommand(commands.CreateInvoicesCommand())
	rootCmd.AddCommand(commands.CreateCustomersCommand())
	rootCmd.AddCommand(commands.CreateVendorsCommand())
	rootCmd.AddCommand(commands.CreateEmployeesCommand())
	rootCmd.AddCommand(commands.CreateJobsCommand())
	rootCmd.AddCommand(commands.CreatePostCommand())
	rootCmd.AddCommand(commands.CreatePayCommand())
}
