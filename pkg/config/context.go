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

// Package config holds the process-wide mutable configuration the spec
// calls out as something to pass explicitly rather than stash in globals:
// protocol version, preserve flags, recursion/pruning switches, and the
// filesystem and logger every other package is threaded through.
package config

import (
	"github.com/twpayne/go-vfs"

	"github.com/elastic-sync/rfl/pkg/rfltypes"
)

// LatestProtocol is the newest wire protocol this module speaks. Several
// comparator, cleaner and wire-codec behaviors branch on Protocol rather
// than hardcoding "new" behavior, so interop with older peers stays exact.
const LatestProtocol = 29

// ProtocolDirOrdering is the first protocol version where a directory and
// a non-directory of the same name never compare equal (see pkg/flist's
// comparator and cleaner).
const ProtocolDirOrdering = 29

// Context is the explicit handle threaded through every pattern-engine,
// builder, cleaner and codec call. Nothing in this module reaches for a
// global; everything that varies by protocol version or by invocation
// flag lives here.
type Context struct {
	Fs     rfltypes.FS
	Logger rfltypes.Logger

	Protocol int

	PreserveUID     bool
	PreserveGID     bool
	PreserveLinks   bool
	PreserveDevices bool
	Checksum        bool

	Recurse        bool
	OneFileSystem  bool
	StrictFS       bool
	CopyUnsafeLinks bool
	ListOnly       bool
	KeepDirlinks   bool

	PruneEmptyDirs bool
	NoDups         bool
	StripRoot      bool

	IgnoreErrors bool
	Relative     bool
}

// Option mutates a Context during construction, mirroring the teacher's
// v1.GenericOptions/v1.NewConfig pattern.
type Option func(c *Context) error

func WithFs(fs rfltypes.FS) Option {
	return func(c *Context) error {
		c.Fs = fs
		return nil
	}
}

func WithLogger(logger rfltypes.Logger) Option {
	return func(c *Context) error {
		c.Logger = logger
		return nil
	}
}

func WithProtocol(protocol int) Option {
	return func(c *Context) error {
		c.Protocol = protocol
		return nil
	}
}

func WithPreserve(uid, gid, links, devices bool) Option {
	return func(c *Context) error {
		c.PreserveUID = uid
		c.PreserveGID = gid
		c.PreserveLinks = links
		c.PreserveDevices = devices
		return nil
	}
}

func WithChecksum(enabled bool) Option {
	return func(c *Context) error {
		c.Checksum = enabled
		return nil
	}
}

func WithRecurse(enabled bool) Option {
	return func(c *Context) error {
		c.Recurse = enabled
		return nil
	}
}

func WithOneFileSystem(enabled, strict bool) Option {
	return func(c *Context) error {
		c.OneFileSystem = enabled
		c.StrictFS = strict
		return nil
	}
}

func WithCopyUnsafeLinks(enabled bool) Option {
	return func(c *Context) error {
		c.CopyUnsafeLinks = enabled
		return nil
	}
}

func WithListOnly(enabled bool) Option {
	return func(c *Context) error {
		c.ListOnly = enabled
		return nil
	}
}

func WithKeepDirlinks(enabled bool) Option {
	return func(c *Context) error {
		c.KeepDirlinks = enabled
		return nil
	}
}

func WithPruneEmptyDirs(enabled bool) Option {
	return func(c *Context) error {
		c.PruneEmptyDirs = enabled
		return nil
	}
}

func WithNoDups(enabled bool) Option {
	return func(c *Context) error {
		c.NoDups = enabled
		return nil
	}
}

func WithStripRoot(enabled bool) Option {
	return func(c *Context) error {
		c.StripRoot = enabled
		return nil
	}
}

func WithIgnoreErrors(enabled bool) Option {
	return func(c *Context) error {
		c.IgnoreErrors = enabled
		return nil
	}
}

func WithRelative(enabled bool) Option {
	return func(c *Context) error {
		c.Relative = enabled
		return nil
	}
}

// NewContext builds a Context with the teacher's NewConfig defaults: an
// OS-backed vfs.FS, a real logrus logger, latest protocol, no preserve
// flags, recursion on.
func NewContext(opts ...Option) (*Context, error) {
	c := &Context{
		Fs:       vfs.OSFS,
		Logger:   rfltypes.NewLogger(),
		Protocol: LatestProtocol,
		Recurse:  true,
	}
	for _, o := range opts {
		if err := o(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// DirOrderingApplies reports whether this Context's protocol uses the
// newer comparator/cleaner semantics where a directory never compares
// equal to a non-directory of the same name (spec.md §9's first Open
// Question).
func (c *Context) DirOrderingApplies() bool {
	return c.Protocol >= ProtocolDirOrdering
}
