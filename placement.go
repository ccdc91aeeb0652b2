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

// placeCodewords walks the zig-zag two-column scan, writing one bit per
// non-function cell from the interleaved codeword stream (MSB first
// within each codeword). Every function module (laid down by
// buildFunctionPatterns) is skipped; function modules are never written
// here. If the stream runs out before the coordinates do, the remaining
// cells stay Light - the same result as placing zero-valued remainder
// bits, which the interleaver does not append.
func (m *Matrix) placeCodewords(data []byte) {
	bitIndex := 0
	totalBits := len(data) * 8

	for right := m.Size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		upward := (right+1)&2 == 0

		for vert := 0; vert < m.Size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j

				var y int
				if upward {
					y = m.Size - 1 - vert
				} else {
					y = vert
				}

				if m.isFunctionModule(x, y) {
					continue
				}
				if bitIndex < totalBits {
					bit := data[bitIndex>>3]>>uint(7-bitIndex&7)&1 == 1
					m.cells[y][x] = Module(bit)
					bitIndex++
				}
			}
		}
	}
}
