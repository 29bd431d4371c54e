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

// Package cmd wires the file-list subsystem to a cobra/viper CLI: list,
// send and recv subcommands sharing one set of persistent flags that
// map onto pkg/config.Context.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/elastic-sync/rfl/pkg/filelisterr"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rfl",
		Short: "rfl builds, compares and transmits rsync-style file lists",
	}
	cmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	cmd.PersistentFlags().Bool("quiet", false, "Accepted for compatibility; does not change any output")

	cmd.PersistentFlags().BoolP("recursive", "r", true, "Recurse into directories")
	cmd.PersistentFlags().Bool("relative", false, "Use relative path names, synthesizing implied directories")
	cmd.PersistentFlags().StringSlice("exclude", nil, "Exclude files matching PATTERN")
	cmd.PersistentFlags().StringSlice("include", nil, "Include files matching PATTERN, overriding excludes")
	cmd.PersistentFlags().StringSlice("exclude-from", nil, "Read exclude patterns from FILE")
	cmd.PersistentFlags().StringSlice("include-from", nil, "Read include patterns from FILE")
	cmd.PersistentFlags().Bool("cvs-exclude", false, "Auto-ignore files in the same way CVS does")
	cmd.PersistentFlags().String("filter-file-name", "", "Per-directory merge filename to honor while recursing")
	cmd.PersistentFlags().Int("protocol", 0, "Wire protocol version to speak (0 = latest)")
	cmd.PersistentFlags().Bool("owner", false, "Preserve owner (uid)")
	cmd.PersistentFlags().Bool("group", false, "Preserve group (gid)")
	cmd.PersistentFlags().Bool("links", false, "Preserve symlinks instead of following them")
	cmd.PersistentFlags().Bool("devices", false, "Preserve device files")
	cmd.PersistentFlags().Bool("checksum", false, "Carry per-file checksums on the wire")
	cmd.PersistentFlags().Bool("one-file-system", false, "Don't cross filesystem boundaries")
	cmd.PersistentFlags().Bool("strict-one-file-system", false, "Drop, instead of mark, directories that cross a filesystem boundary")
	cmd.PersistentFlags().Bool("copy-unsafe-links", false, "Follow symlinks that point outside the tree")
	cmd.PersistentFlags().Bool("keep-dirlinks", false, "Treat a symlink to a directory on the receiver as the directory itself")
	cmd.PersistentFlags().String("dest", "", "Destination root to check keep-dirlinks promotions against")
	cmd.PersistentFlags().Bool("prune-empty-dirs", false, "Remove directories emptied by filtering")
	cmd.PersistentFlags().Bool("no-dups", false, "Drop duplicate entries after sorting")
	cmd.PersistentFlags().Bool("strip-root", false, "Strip leading '/' from entry directory names")
	cmd.PersistentFlags().Bool("ignore-errors", false, "Do not log I/O errors (they are still recorded in the list's error bits)")
	cmd.PersistentFlags().Bool("list-only", false, "Only build and print the list, don't transfer")

	for _, name := range []string{
		"debug", "quiet", "recursive", "relative", "exclude", "include",
		"exclude-from", "include-from", "cvs-exclude", "filter-file-name",
		"protocol", "owner", "group", "links", "devices", "checksum",
		"one-file-system", "strict-one-file-system", "copy-unsafe-links",
		"keep-dirlinks", "dest", "prune-empty-dirs", "no-dups", "strip-root",
		"ignore-errors", "list-only",
	} {
		_ = viper.BindPFlag(name, cmd.PersistentFlags().Lookup(name))
	}

	return cmd
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = NewRootCmd()

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once by main.main.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		switch t := err.(type) {
		case *filelisterr.FileListError:
			os.Exit(t.ExitCode())
		default:
			os.Exit(1)
		}
	}
}
