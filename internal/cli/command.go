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
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"dirpx.dev/convention/command"
)

type wordRow struct {
	Word      string `json:"word" yaml:"word"`
	Value     uint32 `json:"value" yaml:"value"`
	Direction string `json:"direction" yaml:"direction"`
	Type      uint32 `json:"type" yaml:"type"`
	Number    uint32 `json:"number" yaml:"number"`
	Size      uint32 `json:"size" yaml:"size"`
}

func newWordRow(w command.Word) wordRow {
	f := w.Fields()
	return wordRow{
		Word:      w.Hex(),
		Value:     uint32(w),
		Direction: f.Direction.String(),
		Type:      f.Type,
		Number:    f.Number,
		Size:      f.Size,
	}
}

type wordRows []wordRow

func (wordRows) header() []string { return []string{"WORD", "DIR", "TYPE", "NR", "SIZE"} }

func (rs wordRows) rows() [][]string {
	out := make([][]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, []string{
			r.Word,
			r.Direction,
			fmt.Sprintf("0x%02x", r.Type),
			fmt.Sprintf("0x%02x", r.Number),
			strconv.FormatUint(uint64(r.Size), 10),
		})
	}
	return out
}

// encodeInput is validated before packing unless --unchecked is given.
type encodeInput struct {
	Dir    string `validate:"oneof=none w r rw"`
	Type   uint32 `validate:"lte=255"`
	Number uint32 `validate:"lte=255"`
	Size   uint32 `validate:"lte=16383"`
}

var validate = validator.New()

// parseType accepts a number in any base strconv understands, or a single
// non-digit character such as 'j'.
func parseType(s string) (uint32, error) {
	if utf8.RuneCountInString(s) == 1 && (s[0] < '0' || s[0] > '9') {
		r, _ := utf8.DecodeRuneInString(s)
		return uint32(r), nil
	}
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

func newCmdCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cmd",
		Short: "Encode and decode device command words",
	}
	cmd.AddCommand(newEncodeCommand(a), newDecodeCommand(a))
	return cmd
}

func newEncodeCommand(a *app) *cobra.Command {
	var (
		dir       string
		typ       string
		nr, size  uint32
		unchecked bool
	)
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Pack direction, type, number and size into a command word",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := parseType(typ)
			if err != nil {
				return exitf(ExitInvalidInvocation, "type %q: %w", typ, err)
			}
			d, err := command.ParseDirection(dir)
			if err != nil {
				return exitf(ExitInvalidInvocation, "%w", err)
			}
			in := encodeInput{
				Dir:    strings.ToLower(d.String()),
				Type:   t,
				Number: nr,
				Size:   size,
			}
			if !unchecked {
				if err := validate.Struct(&in); err != nil {
					return exitf(ExitInvalidInvocation, "invalid command fields: %w", err)
				}
			} else if err := command.Check(d, t, nr, size); err != nil {
				a.log.WithError(err).Warn("fields overflow their width; encoding anyway")
			}
			w := command.New(d, t, nr, size)
			return a.render(cmd.OutOrStdout(), wordRows{newWordRow(w)})
		},
	}
	f := cmd.Flags()
	f.StringVar(&dir, "dir", "none", "direction: none, w, r or rw")
	f.StringVar(&typ, "type", "0", "type: a number or a single character")
	f.Uint32Var(&nr, "nr", 0, "command number")
	f.Uint32Var(&size, "size", 0, "argument size in bytes")
	f.BoolVar(&unchecked, "unchecked", false, "skip range validation")
	return cmd
}

func newDecodeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <word>...",
		Short: "Unpack command words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make(wordRows, 0, len(args))
			for _, s := range args {
				w, err := command.ParseWord(s)
				if err != nil {
					return exitf(ExitInvalidInvocation, "%w", err)
				}
				rows = append(rows, newWordRow(w))
			}
			return a.render(cmd.OutOrStdout(), rows)
		},
	}
}
