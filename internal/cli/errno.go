/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cli

import (
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"dirpx.dev/convention/errno"
)

type errnoRow struct {
	Name   string `json:"name" yaml:"name"`
	Errno  int    `json:"errno" yaml:"errno"`
	Return int    `json:"return" yaml:"return"`
	Code   string `json:"code,omitempty" yaml:"code,omitempty"`
	Mapped bool   `json:"mapped" yaml:"mapped"`
}

func newErrnoRow(e syscall.Errno) errnoRow {
	row := errnoRow{
		Name:   errno.Name(e),
		Errno:  int(e),
		Return: errno.Normalize(int(e)),
	}
	if c, ok := errno.Lookup(int(e)); ok {
		row.Code = c.String()
		row.Mapped = true
	}
	return row
}

type errnoRows []errnoRow

func (errnoRows) header() []string { return []string{"NAME", "ERRNO", "RETURN", "CODE"} }

func (rs errnoRows) rows() [][]string {
	out := make([][]string, 0, len(rs))
	for _, r := range rs {
		c := r.Code
		if !r.Mapped {
			c = "-"
		}
		out = append(out, []string{r.Name, strconv.Itoa(r.Errno), strconv.Itoa(r.Return), c})
	}
	return out
}

func newErrnoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "errno <value|NAME>...",
		Short: "Normalize platform errno values to project return codes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make(errnoRows, 0, len(args))
			for _, s := range args {
				e, err := errno.Parse(s)
				if err != nil {
					return exitf(ExitNotFound, "errno %q: %w", s, err)
				}
				row := newErrnoRow(e)
				if !row.Mapped && e != 0 {
					a.log.WithField("errno", row.Errno).Debug("errno has no project code")
				}
				rows = append(rows, row)
			}
			return a.render(cmd.OutOrStdout(), rows)
		},
	}
}

func newTableCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "List the platform normalization table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries := errno.Table()
			rows := make(errnoRows, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, errnoRow{
					Name:   errno.Name(e.Errno),
					Errno:  int(e.Errno),
					Return: e.Code.Return(),
					Code:   e.Code.String(),
					Mapped: true,
				})
			}
			a.log.WithField("entries", len(rows)).Debug("normalization table")
			return a.render(cmd.OutOrStdout(), rows)
		},
	}
}

