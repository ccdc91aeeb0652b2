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

// ErrorCorrectionLevel selects how much of a QR symbol's data codewords
// are spent on Reed-Solomon redundancy versus payload.
type ErrorCorrectionLevel int8

// Error correction levels, ordered to match their table index (L, M, Q,
// H) used throughout the capacity tables. Note the 2-bit format-info
// field uses a different, non-monotonic encoding (L=01, M=00, Q=11,
// H=10) - see formatBits.
const (
	L ErrorCorrectionLevel = iota // Low, recovers ~7% of data.
	M                             // Medium, recovers ~15% of data.
	Q                             // Quartile, recovers ~25% of data.
	H                             // High, recovers ~30% of data.
)

// formatBits returns the 2-bit field value this level contributes to the
// 15-bit format-info word.
func (e ErrorCorrectionLevel) formatBits() int {
	switch e {
	case L:
		return 1
	case M:
		return 0
	case Q:
		return 3
	case H:
		return 2
	default:
		panic("qrforge: unknown error correction level")
	}
}

func (e ErrorCorrectionLevel) String() string {
	switch e {
	case L:
		return "L"
	case M:
		return "M"
	case Q:
		return "Q"
	case H:
		return "H"
	default:
		return "invalid"
	}
}
