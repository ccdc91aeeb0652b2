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

// Per-(version, error-correction level) capacity tables: total data
// codewords, EC codewords per block, and the group-1/group-2 block
// layout, plus alignment-pattern centers and trailing remainder-bit
// counts. All tables are process-wide read-only constants, computed once
// in init() and indexed [level][version] (version 0 is an unused
// placeholder so 1-based version numbers index directly).

// ECInfo is the per-(version, level) capacity record. g1Blocks*g1Size +
// g2Blocks*g2Size always equals DataCodewords; g2Size is either 0 or
// g1Size+1.
type ECInfo struct {
	DataCodewords      int
	ECCodewordsPerBlock int
	G1Blocks           int
	G1Size             int
	G2Blocks           int
	G2Size             int
}

var (
	eccCodewordsPerBlock = [4][41]int{
		// Version:  0(unused) 1,  2,  3,  4,  5,  6,  7,  8,  9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40
		{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},  // L
		{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28}, // M
		{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // Q
		{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // H
	}

	numErrorCorrectionBlocks = [4][41]int{
		{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},              // L
		{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},     // M
		{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},  // Q
		{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81}, // H
	}

	numRawDataModules [41]int
	ecTable           [4][41]ECInfo
	alignmentCenters  [41][]int

	remainderBitsByVersion [41]int
)

func init() {
	// numRawDataModules[v]: total data bit capacity of version v after
	// excluding all function modules, including any trailing remainder
	// bits, so it is not necessarily a multiple of 8. Range [208, 29648].
	for v := 1; v <= 40; v++ {
		result := (16*v+128)*v + 64
		if v >= 2 {
			numAlign := v/7 + 2
			result -= (25*numAlign-10)*numAlign - 55
			if v >= 7 {
				result -= 36
			}
		}
		if result < 208 || result > 29648 {
			panic("qrforge: numRawDataModules miscalculated")
		}
		numRawDataModules[v] = result
	}

	for level := 0; level < 4; level++ {
		for v := 1; v <= 40; v++ {
			numBlocks := numErrorCorrectionBlocks[level][v]
			eccLen := eccCodewordsPerBlock[level][v]
			dataCodewords := numRawDataModules[v]/8 - eccLen*numBlocks

			g2Blocks := dataCodewords % numBlocks
			g1Blocks := numBlocks - g2Blocks
			g1Size := dataCodewords / numBlocks
			g2Size := 0
			if g2Blocks > 0 {
				g2Size = g1Size + 1
			}

			ecTable[level][v] = ECInfo{
				DataCodewords:       dataCodewords,
				ECCodewordsPerBlock: eccLen,
				G1Blocks:            g1Blocks,
				G1Size:              g1Size,
				G2Blocks:            g2Blocks,
				G2Size:              g2Size,
			}
		}
	}

	for v := 1; v <= 40; v++ {
		alignmentCenters[v] = computeAlignmentPatternPositions(v)
	}

	for v := 1; v <= 40; v++ {
		remainderBitsByVersion[v] = remainderBitsForVersion(v)
	}
}

func remainderBitsForVersion(v int) int {
	switch {
	case v == 1:
		return 0
	case v >= 2 && v <= 6:
		return 7
	case v >= 7 && v <= 13:
		return 0
	case v >= 14 && v <= 20:
		return 3
	case v >= 21 && v <= 27:
		return 4
	case v >= 28 && v <= 34:
		return 3
	default: // 35..40
		return 0
	}
}

// ecInfo looks up the capacity record for a (version, level) pair.
func ecInfo(level ErrorCorrectionLevel, version int) ECInfo {
	return ecTable[level][version]
}

// computeAlignmentPatternPositions returns the ascending list of alignment
// pattern centers for the given version, used on both axes. Empty for
// version 1.
func computeAlignmentPatternPositions(version int) []int {
	if version == 1 {
		return nil
	}

	numAlign := version/7 + 2
	var step int
	if version == 32 { // Special snowflake, per ISO/IEC 18004 table.
		step = 26
	} else {
		step = (version*4+numAlign*2+1)/(numAlign*2-2) * 2
	}

	result := make([]int, numAlign)
	result[0] = 6
	pos := version*4 + 17 - 7
	for i := len(result) - 1; i >= 1; i-- {
		result[i] = pos
		pos -= step
	}

	return result
}
