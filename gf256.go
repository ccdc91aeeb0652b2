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

// GF(256) arithmetic over the primitive polynomial x^8+x^4+x^3+x^2+1
// (0x11D), generator alpha=2. Tables are precomputed once at package init
// and shared read-only across every call; see gfExp/gfLog below.

const gfPrimitivePoly = 0x11D

var (
	gfExp [256]byte
	gfLog [256]byte
)

func init() {
	x := 1
	for i := 0; i < 255; i++ {
		gfExp[i] = byte(x)
		gfLog[byte(x)] = byte(i)
		x <<= 1
		if x&0x100 != 0 {
			x ^= gfPrimitivePoly
		}
	}
	gfExp[255] = gfExp[0]
}

// gfMul multiplies two GF(256) elements using the precomputed exp/log
// tables.
func gfMul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return gfExp[(int(gfLog[a])+int(gfLog[b]))%255]
}

// rsGeneratorPolynomial builds the Reed-Solomon generator polynomial for k
// EC codewords: G(x) = product_{i=0..k-1} (x - alpha^i), built iteratively.
// Coefficients are stored highest-to-lowest degree, excluding the implicit
// leading 1.
func rsGeneratorPolynomial(k int) []byte {
	if k < 1 || k > 255 {
		panic("qrforge: ec codeword count out of range")
	}

	coeffs := make([]byte, k)
	coeffs[k-1] = 1 // Start with the monomial x^0.

	root := byte(1)
	for i := 0; i < k; i++ {
		for j := 0; j < len(coeffs); j++ {
			coeffs[j] = gfMul(coeffs[j], root)
			if j+1 < len(coeffs) {
				coeffs[j] ^= coeffs[j+1]
			}
		}
		root = gfMul(root, 2)
	}

	return coeffs
}

// rsComputeRemainder performs polynomial long division of data (appended
// with len(generator) zero codewords) by generator over GF(256), returning
// the remainder coefficients in descending-degree order: the EC codewords
// for one block.
func rsComputeRemainder(data, generator []byte) []byte {
	remainder := make([]byte, len(generator))
	for _, b := range data {
		factor := b ^ remainder[0]
		copy(remainder, remainder[1:])
		remainder[len(remainder)-1] = 0
		for i, g := range generator {
			remainder[i] ^= gfMul(g, factor)
		}
	}
	return remainder
}
