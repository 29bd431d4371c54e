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
	"github.com/spf13/viper"
	"github.com/twpayne/go-vfs"

	"github.com/elastic-sync/rfl/pkg/config"
	"github.com/elastic-sync/rfl/pkg/match"
	"github.com/elastic-sync/rfl/pkg/rfltypes"
	"github.com/elastic-sync/rfl/pkg/walk"
)

// contextFromFlags builds a *config.Context from the bound persistent
// flags, the way the teacher's ReadConfigRun builds a *v1.RunConfig from
// viper.
func contextFromFlags() (*config.Context, error) {
	logger := rfltypes.NewLogger()
	if viper.GetBool("debug") {
		logger.SetLevel(rfltypes.DebugLevel())
	}

	opts := []config.Option{
		config.WithFs(vfs.OSFS),
		config.WithLogger(logger),
		config.WithRecurse(viper.GetBool("recursive")),
		config.WithRelative(viper.GetBool("relative")),
		config.WithPreserve(
			viper.GetBool("owner"),
			viper.GetBool("group"),
			viper.GetBool("links"),
			viper.GetBool("devices"),
		),
		config.WithChecksum(viper.GetBool("checksum")),
		config.WithOneFileSystem(viper.GetBool("one-file-system"), viper.GetBool("strict-one-file-system")),
		config.WithCopyUnsafeLinks(viper.GetBool("copy-unsafe-links")),
		config.WithKeepDirlinks(viper.GetBool("keep-dirlinks")),
		config.WithPruneEmptyDirs(viper.GetBool("prune-empty-dirs")),
		config.WithNoDups(viper.GetBool("no-dups")),
		config.WithStripRoot(viper.GetBool("strip-root")),
		config.WithIgnoreErrors(viper.GetBool("ignore-errors")),
		config.WithListOnly(viper.GetBool("list-only")),
	}
	if p := viper.GetInt("protocol"); p != 0 {
		opts = append(opts, config.WithProtocol(p))
	}

	return config.NewContext(opts...)
}

// userRulesFromFlags loads --include/--exclude/--include-from/
// --exclude-from/--cvs-exclude into a single RuleList in this order: all
// --include patterns, then all --exclude patterns (so an include always
// wins over an exclude, whatever their order on the command line), then
// the *-from files, then CVS defaults last.
func userRulesFromFlags(ctx *config.Context) (*match.RuleList, error) {
	l := match.NewRuleList()

	for _, p := range viper.GetStringSlice("include") {
		l.Add(match.Compile(p, match.CompileOptions{DefaultInclude: true}))
	}
	for _, p := range viper.GetStringSlice("exclude") {
		l.Add(match.Compile(p, match.CompileOptions{DefaultInclude: false}))
	}
	for _, f := range viper.GetStringSlice("include-from") {
		if err := match.LoadFileFromFS(l, ctx.Fs, f, true); err != nil {
			return nil, err
		}
	}
	for _, f := range viper.GetStringSlice("exclude-from") {
		if err := match.LoadFileFromFS(l, ctx.Fs, f, false); err != nil {
			return nil, err
		}
	}
	if viper.GetBool("cvs-exclude") {
		match.LoadCVSDefaults(l, ctx.Fs, "")
	}

	return l, nil
}

// builderFromFlags assembles a *walk.Builder from the current flag set.
func builderFromFlags(ctx *config.Context) (*walk.Builder, error) {
	userRules, err := userRulesFromFlags(ctx)
	if err != nil {
		return nil, err
	}
	opts := []walk.Option{walk.WithUserRules(userRules)}
	if name := viper.GetString("filter-file-name"); name != "" {
		opts = append(opts, walk.WithPerDirFilterName(name))
	}
	if dest := viper.GetString("dest"); dest != "" {
		opts = append(opts, walk.WithDestFS(vfs.NewPathFS(vfs.OSFS, dest)))
	}
	return walk.NewBuilder(ctx, opts...), nil
}
