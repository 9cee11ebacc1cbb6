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
	"strings"

	"github.com/spf13/cobra"

	"dirpx.dev/convention"
	"dirpx.dev/convention/adapter"
	"dirpx.dev/convention/apis"
	"dirpx.dev/convention/code"
	"dirpx.dev/convention/reason"
)

type codeReport struct {
	apis.ErrorDescriptor `yaml:",inline"`
	Explain              []string `json:"explain" yaml:"explain"`
}

type codeReports []codeReport

func (codeReports) header() []string {
	return []string{"CODE", "RETURN", "BAND", "REASON", "HTTP", "GRPC"}
}

func (rs codeReports) rows() [][]string {
	out := make([][]string, 0, len(rs))
	for _, r := range rs {
		rsn := r.Reason
		if rsn == "" {
			rsn = "-"
		}
		out = append(out, []string{
			r.Code,
			strconv.Itoa(r.Return),
			r.Band,
			rsn,
			strconv.Itoa(r.HTTPStatus),
			strconv.Itoa(r.GRPCCode),
		})
		for _, l := range r.Explain {
			out = append(out, []string{"  " + l})
		}
	}
	return out
}

func newCodeCommand(a *app) *cobra.Command {
	var rsn string
	cmd := &cobra.Command{
		Use:   "code <NAME|value>...",
		Short: "Describe project codes and the statuses they map to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := reason.Parse(rsn)
			if err != nil {
				return exitf(ExitInvalidInvocation, "reason %q: %w", rsn, err)
			}
			reports := make(codeReports, 0, len(args))
			for _, s := range args {
				c, err := code.Parse(s)
				if err != nil {
					return exitf(ExitNotFound, "code %q: %w", s, err)
				}
				e := convention.E(c, "").WithReason(r)
				st := a.mapper.Status(c, r)
				reports = append(reports, codeReport{
					ErrorDescriptor: adapter.ToDescriptor(e, st),
					Explain:         strings.Split(a.mapper.Explain(c, r), "\n"),
				})
			}
			return a.render(cmd.OutOrStdout(), reports)
		},
	}
	cmd.Flags().StringVarP(&rsn, "reason", "r", "", "reason used for prefix rules, e.g. errno.eacces")
	return cmd
}
