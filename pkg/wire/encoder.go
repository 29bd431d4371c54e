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

package wire

import (
	"encoding/binary"
	"io"

	"github.com/elastic-sync/rfl/pkg/config"
	"github.com/elastic-sync/rfl/pkg/flist"
)

// Encoder is the stateful delta cursor the spec calls for (§9: "model
// them as a small codec object owned by the caller, not as hidden
// state"). Its fields are exactly the "retained across entries, reset
// on entry terminator" state spec.md §4.6 lists.
type Encoder struct {
	ctx *config.Context
	w   io.Writer

	prevModtime   int64
	prevMode      uint32
	prevRdevMajor uint32
	prevUID, prevGID uint32
	prevName      string
	started       bool
}

// NewEncoder returns an Encoder writing to w under ctx.
func NewEncoder(w io.Writer, ctx *config.Context) *Encoder {
	return &Encoder{w: w, ctx: ctx}
}

// Encode writes one entry, computing delta flags against the previous
// entry sent on this Encoder.
func (enc *Encoder) Encode(e *flist.Entry) error {
	name := e.FullName()

	var flagsLow, flagsHigh byte

	sameMode := enc.started && e.Mode == enc.prevMode
	sameUID := enc.started && enc.ctx.PreserveUID && e.UID == enc.prevUID
	sameGID := enc.started && enc.ctx.PreserveGID && e.GID == enc.prevGID
	sameTime := enc.started && e.Modtime == enc.prevModtime

	if sameMode {
		flagsLow |= FlagSameMode
	}
	if sameUID {
		flagsLow |= FlagSameUID
	}
	if sameGID {
		flagsLow |= FlagSameGID
	}
	if sameTime {
		flagsLow |= FlagSameTime
	}

	l1 := commonPrefixLen(enc.prevName, name, 255)
	l2 := len(name) - l1
	sameName := enc.started && l1 > 0
	longName := l2 > 255
	if sameName {
		flagsLow |= FlagSameName
	}
	if longName {
		flagsLow |= FlagLongName
	}

	isDevice := enc.ctx.PreserveDevices && e.HasRdev
	sameRdevMajor := false
	rdevMinorSmall := false
	if isDevice {
		if enc.ctx.Protocol >= 28 {
			sameRdevMajor = enc.started && e.RdevMajor == enc.prevRdevMajor
			rdevMinorSmall = e.RdevMinor <= 0xff
			if sameRdevMajor {
				flagsHigh |= FlagSameRdevMajor
			}
			if rdevMinorSmall {
				flagsHigh |= FlagRdevMinorIsSmall
			}
		} else if enc.started && e.RdevMajor == enc.prevRdevMajor {
			flagsLow |= FlagSameRdevPre28
		}
	}

	if e.HasHardlinkKey {
		flagsHigh |= FlagHasIdevData
	}

	if flagsHigh != 0 {
		flagsLow |= FlagExtendedFlags
	}

	// The sender must never emit an all-zero flag byte for a real
	// entry: it would be read back as the stream terminator.
	if flagsLow == 0 {
		if e.IsDir() && enc.ctx.Protocol < 28 {
			flagsLow |= FlagLongName
		} else {
			flagsLow |= FlagTopDir
		}
	}

	if err := writeByte(enc.w, flagsLow); err != nil {
		return err
	}
	if flagsLow&FlagExtendedFlags != 0 {
		if err := writeByte(enc.w, flagsHigh); err != nil {
			return err
		}
	}

	if sameName {
		if err := writeByte(enc.w, byte(l1)); err != nil {
			return err
		}
	}
	if longName {
		if err := writeUint32(enc.w, uint32(l2)); err != nil {
			return err
		}
	} else {
		if err := writeByte(enc.w, byte(l2)); err != nil {
			return err
		}
	}
	if _, err := enc.w.Write([]byte(name[l1:])); err != nil {
		return err
	}

	if err := writeUint64(enc.w, e.Size); err != nil {
		return err
	}
	if !sameTime {
		if err := writeUint32(enc.w, uint32(e.Modtime)); err != nil {
			return err
		}
	}
	if !sameMode {
		if err := writeUint32(enc.w, encodeMode(e)); err != nil {
			return err
		}
	}
	if enc.ctx.PreserveUID && !sameUID {
		if err := writeUint32(enc.w, e.UID); err != nil {
			return err
		}
	}
	if enc.ctx.PreserveGID && !sameGID {
		if err := writeUint32(enc.w, e.GID); err != nil {
			return err
		}
	}

	if isDevice {
		if enc.ctx.Protocol >= 28 {
			if !sameRdevMajor {
				if err := writeUint32(enc.w, e.RdevMajor); err != nil {
					return err
				}
			}
			if rdevMinorSmall {
				if err := writeByte(enc.w, byte(e.RdevMinor)); err != nil {
					return err
				}
			} else {
				if err := writeUint32(enc.w, e.RdevMinor); err != nil {
					return err
				}
			}
		} else if flagsLow&FlagSameRdevPre28 == 0 {
			combined := e.RdevMajor<<8 | (e.RdevMinor & 0xff)
			if err := writeUint32(enc.w, combined); err != nil {
				return err
			}
		}
	}

	if e.HasSymlink {
		if err := writeUint32(enc.w, uint32(len(e.SymlinkTarget))); err != nil {
			return err
		}
		if _, err := enc.w.Write([]byte(e.SymlinkTarget)); err != nil {
			return err
		}
	}

	if e.HasHardlinkKey {
		if enc.ctx.Protocol < 26 {
			if err := writeUint32(enc.w, uint32(e.HardlinkDev)); err != nil {
				return err
			}
			if err := writeUint32(enc.w, uint32(e.HardlinkIno)); err != nil {
				return err
			}
		} else {
			sameDev := enc.started && flagsHigh&FlagSameDev != 0
			if !sameDev {
				if err := writeUint64(enc.w, e.HardlinkDev); err != nil {
					return err
				}
			}
			if err := writeUint64(enc.w, e.HardlinkIno); err != nil {
				return err
			}
		}
	}

	if e.HasChecksum {
		if _, err := enc.w.Write(e.Checksum); err != nil {
			return err
		}
	}

	enc.prevModtime = e.Modtime
	enc.prevMode = e.Mode
	enc.prevUID = e.UID
	enc.prevGID = e.GID
	enc.prevRdevMajor = e.RdevMajor
	enc.prevName = name
	enc.started = true

	return nil
}

// Close writes the zero-flag terminator and resets delta state.
func (enc *Encoder) Close() error {
	defer enc.reset()
	return writeByte(enc.w, 0)
}

func (enc *Encoder) reset() {
	*enc = Encoder{w: enc.w, ctx: enc.ctx}
}

func encodeMode(e *flist.Entry) uint32 {
	if e.IsSymlink() {
		return (e.Mode &^ modeTypeMask) | wireSymlinkMode
	}
	return e.Mode
}

func commonPrefixLen(a, b string, cap int) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n > cap {
		n = cap
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

func writeByte(w io.Writer, b byte) error {
	_, err := w.Write([]byte{b})
	return err
}

func writeUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func writeUint64(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}
