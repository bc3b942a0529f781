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

// Package commands implements the command line surface of gncbook.
package commands

import (
	"bufio"
	"io"
	"time"

	"github.com/rhaller/gncbook/lib/book"
	"github.com/rhaller/gncbook/lib/common/table"
	"github.com/rhaller/gncbook/lib/model/owner"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const dateFormat = "2006-01-02"

func loadBook(cmd *cobra.Command, path string) (*book.Book, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()})
	return book.Load(path, book.WithLogger(logger))
}

// tableFlags are the formatting flags shared by the listing commands.
type tableFlags struct {
	csv    bool
	color  bool
	digits int32
}

func (f *tableFlags) setup(c *cobra.Command) {
	c.Flags().BoolVar(&f.csv, "csv", false, "render as csv")
	c.Flags().BoolVar(&f.color, "color", false, "print output in color")
	c.Flags().Int32Var(&f.digits, "digits", 2, "round to number of digits")
}

func (f *tableFlags) render(t *table.Table, w io.Writer) error {
	out := bufio.NewWriter(w)
	var err error
	if f.csv {
		err = (&table.CSVRenderer{}).Render(t, out)
	} else {
		err = (&table.TextRenderer{Color: f.color, Round: f.digits}).Render(t, out)
	}
	if err != nil {
		return err
	}
	return out.Flush()
}

// dateFlag is a cobra flag holding an ISO date.
type dateFlag struct {
	date time.Time
}

var _ pflag.Value = (*dateFlag)(nil)

func (f *dateFlag) Set(s string) (err error) {
	f.date, err = time.Parse(dateFormat, s)
	return err
}

func (f *dateFlag) Type() string {
	return "date"
}

func (f *dateFlag) String() string {
	if f.date.IsZero() {
		return ""
	}
	return f.date.Format(dateFormat)
}

// Value returns the date, defaulting to today.
func (f *dateFlag) Value() time.Time {
	if f.date.IsZero() {
		return time.Now().Truncate(24 * time.Hour)
	}
	return f.date
}

func kindLabel(t owner.Type) string {
	switch t {
	case owner.VENDOR:
		return "bill"
	case owner.EMPLOYEE:
		return "voucher"
	case owner.JOB:
		return "job"
	}
	return "invoice"
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateFormat)
}
