/*
 * Copyright © 2024 The qrforge Authors.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrforge

import "unicode/utf8"

// EncodingMode classifies how a segment's payload is packed into the bit
// stream. Kanji and ECI are out of scope here.
type EncodingMode int8

const (
	// ModeNumeric packs digits three-at-a-time into 10-bit groups (7 for a
	// trailing pair, 4 for a trailing single).
	ModeNumeric EncodingMode = iota
	// ModeAlphanumeric packs characters from the 45-symbol alphanumeric
	// table two-at-a-time into 11-bit groups (6 for a trailing single).
	ModeAlphanumeric
	// ModeByte packs the input's raw UTF-8 bytes 8 bits each.
	ModeByte
)

// modeIndicator is the 4-bit mode indicator field.
func (m EncodingMode) modeIndicator() int {
	switch m {
	case ModeNumeric:
		return 0x1
	case ModeAlphanumeric:
		return 0x2
	case ModeByte:
		return 0x4
	default:
		panic("qrforge: unknown encoding mode")
	}
}

// charCountBits is the character-count indicator width in bits for this
// mode at the given version, per the version bands [1,9], [10,26],
// [27,40].
func (m EncodingMode) charCountBits(version int) int {
	var widths [3]int
	switch m {
	case ModeNumeric:
		widths = [3]int{10, 12, 14}
	case ModeAlphanumeric:
		widths = [3]int{9, 11, 13}
	case ModeByte:
		widths = [3]int{8, 16, 16}
	default:
		panic("qrforge: unknown encoding mode")
	}

	switch {
	case version <= 9:
		return widths[0]
	case version <= 26:
		return widths[1]
	default:
		return widths[2]
	}
}

func (m EncodingMode) String() string {
	switch m {
	case ModeNumeric:
		return "Numeric"
	case ModeAlphanumeric:
		return "Alphanumeric"
	case ModeByte:
		return "Byte"
	default:
		return "invalid"
	}
}

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// alphanumericValue returns the table index of r in the alphanumeric
// charset, or -1 if r is not a member.
func alphanumericValue(r rune) int {
	if r > 127 {
		return -1
	}
	for i := 0; i < len(alphanumericCharset); i++ {
		if rune(alphanumericCharset[i]) == r {
			return i
		}
	}
	return -1
}

// detectMode classifies value by monotonic promotion: Numeric unless a
// non-digit forces at least Alphanumeric, Alphanumeric unless a character
// outside the alphanumeric charset forces Byte. Returns the mode and the
// character count the bit stream should report (characters for
// Numeric/Alphanumeric, UTF-8 bytes for Byte). Fails with ErrEmptyValue if
// value is empty.
func detectMode(value string) (EncodingMode, int, error) {
	if value == "" {
		return 0, 0, ErrEmptyValue{}
	}

	mode := ModeNumeric
	count := 0
	for _, r := range value {
		count++
		if mode == ModeNumeric && (r < '0' || r > '9') {
			mode = ModeAlphanumeric
		}
		if mode != ModeByte && alphanumericValue(r) == -1 {
			mode = ModeByte
		}
	}

	if mode == ModeByte {
		if !utf8.ValidString(value) {
			return 0, 0, ErrInvalidUtf8Encoding{}
		}
		count = len(value)
	}

	return mode, count, nil
}
