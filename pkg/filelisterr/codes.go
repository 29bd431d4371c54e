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

package filelisterr

//
// Exit codes for the rfl commands. Only the fatal classes from the spec's
// error taxonomy get a code here: Syntax and Out-of-memory. Everything
// else (vanished entry, general I/O, overflow while sending) is
// non-fatal and is latched into flist.IOErrorBits instead.

// Fatal: a relative-mode root contains ".." in its active path component
const SyntaxDotDot = 10

// Fatal: allocation failed while building or receiving a file list
const OutOfMemory = 11

// Fatal: the peer's wire stream could not be decoded (length overflow,
// truncated entry, bad flag combination)
const WireDecodeFatal = 12

// Fatal: a rule-file path could not be opened and XFLG_FATAL_ERRORS-style
// strictness was requested
const RuleFileUnreadable = 13

// Fatal: a root argument could not be stat'd at all (not merely vanished
// after enumeration started)
const RootUnreachable = 14

// Unknown error
const Unknown int = 255
