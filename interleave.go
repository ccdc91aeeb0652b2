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

// splitAndCorrect splits data into the blocks described by info (group 1
// then group 2), computes Reed-Solomon EC codewords for each block
// independently (sharing one generator polynomial sized to
// ECCodewordsPerBlock), and returns the blocks for interleaving.
func splitAndCorrect(data []byte, info ECInfo) (dataBlocks, ecBlocks [][]byte) {
	if len(data) != info.DataCodewords {
		panic("qrforge: data codeword count does not match capacity table")
	}

	generator := rsGeneratorPolynomial(info.ECCodewordsPerBlock)
	numBlocks := info.G1Blocks + info.G2Blocks

	dataBlocks = make([][]byte, numBlocks)
	ecBlocks = make([][]byte, numBlocks)

	offset := 0
	for i := 0; i < info.G1Blocks; i++ {
		dataBlocks[i] = data[offset : offset+info.G1Size]
		offset += info.G1Size
	}
	for i := 0; i < info.G2Blocks; i++ {
		dataBlocks[info.G1Blocks+i] = data[offset : offset+info.G2Size]
		offset += info.G2Size
	}

	for i, block := range dataBlocks {
		ecBlocks[i] = rsComputeRemainder(block, generator)
	}

	return dataBlocks, ecBlocks
}

// interleave produces the final codeword stream: data codewords
// column-major across blocks (skipping blocks shorter than the current
// column), followed by EC codewords column-major (all EC blocks share a
// length so this is a plain traversal). Trailing remainder bits are not
// appended here - the data placer simply leaves any non-function cell
// past the last codeword bit at its zero-initialized Light value, which
// is bit-for-bit identical to appending zero remainder bits.
func interleave(dataBlocks, ecBlocks [][]byte, info ECInfo) []byte {
	result := make([]byte, 0, info.DataCodewords+len(ecBlocks)*info.ECCodewordsPerBlock)

	maxDataLen := info.G1Size
	if info.G2Size > maxDataLen {
		maxDataLen = info.G2Size
	}
	for i := 0; i < maxDataLen; i++ {
		for _, block := range dataBlocks {
			if i < len(block) {
				result = append(result, block[i])
			}
		}
	}

	for i := 0; i < info.ECCodewordsPerBlock; i++ {
		for _, block := range ecBlocks {
			result = append(result, block[i])
		}
	}

	return result
}
