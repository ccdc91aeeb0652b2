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

// MinVersion and MaxVersion bound the QR code version range this encoder
// supports.
const (
	MinVersion = 1
	MaxVersion = 40
)

// matrixSize returns the module grid width/height for a version: 4v+17.
func matrixSize(version int) int {
	return version*4 + 17
}

// Maximum version-40 character capacities by mode, quoted in
// ErrProvidedValueExceedsCapacity when no version fits.
const (
	maxCapacityNumeric      = 7089
	maxCapacityAlphanumeric = 4296
	maxCapacityByte         = 2953
)

func maxCapacityForMode(mode EncodingMode) int {
	switch mode {
	case ModeNumeric:
		return maxCapacityNumeric
	case ModeAlphanumeric:
		return maxCapacityAlphanumeric
	case ModeByte:
		return maxCapacityByte
	default:
		panic("qrforge: unknown encoding mode")
	}
}

// selectVersion finds the smallest version >= minVersion whose
// data-codeword capacity at level fits the payload (mode indicator +
// character-count indicator + payload body).
func selectVersion(mode EncodingMode, charCount, payloadBodyBits int, level ErrorCorrectionLevel, minVersion int) (int, error) {
	if minVersion < MinVersion || minVersion > MaxVersion {
		return 0, ErrInvalidVersion{Version: minVersion}
	}

	for v := minVersion; v <= MaxVersion; v++ {
		ccBits := mode.charCountBits(v)
		if charCount >= 1<<uint(ccBits) {
			continue // Character count does not fit this version's indicator width.
		}

		payloadBits := 4 + ccBits + payloadBodyBits
		if payloadBits <= 8*ecInfo(level, v).DataCodewords {
			return v, nil
		}
	}

	return 0, ErrProvidedValueExceedsCapacity{
		ValueLength: charCount,
		Capacity:    maxCapacityForMode(mode),
	}
}
