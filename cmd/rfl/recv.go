/*
Copyright © 2022 - 2025 SUSE LLC

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

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/elastic-sync/rfl/pkg/flist"
	"github.com/elastic-sync/rfl/pkg/flistutil"
	"github.com/elastic-sync/rfl/pkg/wire"
)

func NewRecvCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "recv",
		Short: "Decode a file list from stdin and print it",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := contextFromFlags()
			if err != nil {
				return err
			}

			fl := flist.New()
			dec := wire.NewDecoder(cmd.InOrStdin(), ctx)
			for {
				e, err := dec.Decode()
				if errors.Is(err, wire.ErrTerminator) {
					break
				}
				if err != nil {
					if errors.Is(err, io.EOF) {
						break
					}
					return err
				}
				fl.Add(e)
			}

			for _, e := range fl.Entries {
				fmt.Fprintln(cmd.OutOrStdout(), e.FullName())
			}
			fmt.Fprintln(cmd.OutOrStdout(), flistutil.HumanStats(fl))
			return nil
		},
	}
	root.AddCommand(c)
	return c
}

var _ = NewRecvCmd(rootCmd)
