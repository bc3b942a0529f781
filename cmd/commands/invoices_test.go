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

	"github.com/sebdah/goldie/v2"
)

func TestInvoicesGolden(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
	}{
		{name: "invoices"},
		{name: "invoices-open", flags: []string{"--open"}},
		{name: "invoices-csv", flags: []string{"--csv"}},
		{name: "invoices-owner", flags: []string{"--csv", "--owner", "bolt"}},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			g := goldie.New(t)
			args := append([]string{"testdata/book.gncbook"}, test.flags...)
			got := cmdtest.Run(t, CreateInvoicesCommand(), args)
			g.Assert(t, test.name, got)
		})
	}
}
