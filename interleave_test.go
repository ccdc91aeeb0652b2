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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAndCorrectBlockSizes(t *testing.T) {
	info := ecInfo(M, 5)
	data := make([]byte, info.DataCodewords)
	for i := range data {
		data[i] = byte(i)
	}

	dataBlocks, ecBlocks := splitAndCorrect(data, info)

	assert.Equal(t, info.G1Blocks+info.G2Blocks, len(dataBlocks))
	assert.Equal(t, len(dataBlocks), len(ecBlocks))

	for i := 0; i < info.G1Blocks; i++ {
		assert.Equal(t, info.G1Size, len(dataBlocks[i]))
	}
	for i := 0; i < info.G2Blocks; i++ {
		assert.Equal(t, info.G2Size, len(dataBlocks[info.G1Blocks+i]))
	}
	for _, block := range ecBlocks {
		assert.Equal(t, info.ECCodewordsPerBlock, len(block))
	}
}

func TestSplitAndCorrectPanicsOnLengthMismatch(t *testing.T) {
	info := ecInfo(M, 1)
	assert.Panics(t, func() { splitAndCorrect(make([]byte, info.DataCodewords+1), info) })
}

func TestInterleaveLength(t *testing.T) {
	info := ecInfo(Q, 5) // version 5 has unequal group sizes, exercising the skip-short-block path.
	data := make([]byte, info.DataCodewords)
	dataBlocks, ecBlocks := splitAndCorrect(data, info)

	interleaved := interleave(dataBlocks, ecBlocks, info)

	numBlocks := info.G1Blocks + info.G2Blocks
	assert.Equal(t, info.DataCodewords+numBlocks*info.ECCodewordsPerBlock, len(interleaved))
}

func TestInterleaveOrdersDataColumnMajorThenECBlocks(t *testing.T) {
	info := ECInfo{G1Blocks: 2, G1Size: 2, G2Blocks: 1, G2Size: 3, ECCodewordsPerBlock: 2, DataCodewords: 7}
	dataBlocks := [][]byte{{1, 2}, {3, 4}, {5, 6, 7}}
	ecBlocks := [][]byte{{100, 101}, {102, 103}, {104, 105}}

	got := interleave(dataBlocks, ecBlocks, info)

	assert.Equal(t, []byte{1, 3, 5, 2, 4, 6, 7, 100, 102, 104, 101, 103, 105}, got)
}
