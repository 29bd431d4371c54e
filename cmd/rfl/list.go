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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elastic-sync/rfl/pkg/flist"
	"github.com/elastic-sync/rfl/pkg/flistutil"
)

func NewListCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "list ROOT...",
		Short: "Build a file list from one or more roots and print it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := contextFromFlags()
			if err != nil {
				return err
			}
			b, err := builderFromFlags(ctx)
			if err != nil {
				return err
			}

			fl, err := b.Build(args)
			if err != nil {
				return err
			}
			flist.Clean(fl, ctx, ctx.StripRoot, ctx.NoDups, ctx.PruneEmptyDirs)

			for i := fl.Low; i <= fl.High && i < len(fl.Entries); i++ {
				e := fl.Entries[i]
				if !e.IsActive() {
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), e.FullName())
			}
			fmt.Fprintln(cmd.OutOrStdout(), flistutil.HumanStats(fl))
			return nil
		},
	}
	root.AddCommand(c)
	return c
}

// register the subcommand into rootCmd
var _ = NewListCmd(rootCmd)
