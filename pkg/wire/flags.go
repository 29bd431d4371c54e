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

// Package wire is the sender/receiver codec: per-entry delta-against-
// previous compression with an extended-flag escape hatch, byte-exact
// with spec.md §4.6/§6.
package wire

// Low-byte flags, values fixed by the wire protocol.
const (
	FlagTopDir          = 0x01
	FlagSameMode        = 0x02
	FlagExtendedFlags   = 0x04
	FlagSameRdevPre28   = 0x08
	FlagSameUID         = 0x08
	FlagSameGID         = 0x10
	FlagSameName        = 0x20
	FlagLongName        = 0x40
	FlagSameTime        = 0x80
)

// High-byte flags, sent only when FlagExtendedFlags is set.
const (
	FlagSameDev           = 0x01
	FlagRdevMinorIsSmall  = 0x02
	FlagHasIdevData       = 0x04
	FlagSameRdevMajor     = 0x08
)

// wireSymlinkMode is the canonical on-wire mode bits for a symlink
// (0120000 octal) regardless of what the local platform's S_IFLNK value
// happens to be.
const wireSymlinkMode = 0120000

// modeTypeMask isolates the POSIX file-type bits of a mode word.
const modeTypeMask = 0170000

const modeSymlink = 0120000
