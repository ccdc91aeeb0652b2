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

// Module is a single QR symbol cell: Dark (encoded 1) or Light (encoded
// 0).
type Module bool

// Module values.
const (
	Light Module = false
	Dark  Module = true
)

func (m Module) String() string {
	if m {
		return "Dark"
	}
	return "Light"
}

// Matrix is the finished module grid for a QR symbol: an n x n square,
// n = 4*version+17. Two parallel grids back it during construction - the
// module colors and a function-cell mask - but the function mask is a
// build-time concept only: it is unexported, and callers only ever see
// colors via At/Rows.
type Matrix struct {
	Size     int
	cells    [][]Module
	function [][]bool
}

func newMatrix(version int) *Matrix {
	size := matrixSize(version)
	m := &Matrix{Size: size, cells: make([][]Module, size), function: make([][]bool, size)}
	for i := 0; i < size; i++ {
		m.cells[i] = make([]Module, size)
		m.function[i] = make([]bool, size)
	}
	return m
}

// At returns the module at (row, col).
func (m *Matrix) At(row, col int) Module {
	return m.cells[row][col]
}

// Rows returns the full row-major grid. The returned slices are not
// copies; callers must not mutate them.
func (m *Matrix) Rows() [][]Module {
	return m.cells
}

func (m *Matrix) clone() *Matrix {
	c := &Matrix{Size: m.Size, cells: make([][]Module, m.Size), function: make([][]bool, m.Size)}
	for i := 0; i < m.Size; i++ {
		c.cells[i] = append([]Module(nil), m.cells[i]...)
		c.function[i] = append([]bool(nil), m.function[i]...)
	}
	return c
}

// setFunctionModule sets the module at column x, row y and marks it as a
// function cell, so the masker and data placer will never touch it again.
func (m *Matrix) setFunctionModule(x, y int, dark bool) {
	m.cells[y][x] = Module(dark)
	m.function[y][x] = true
}

func (m *Matrix) isFunctionModule(x, y int) bool {
	return m.function[y][x]
}

// buildFunctionPatterns lays down every fixed pattern for version: timing,
// the three finder patterns (each including its separator, drawn as one
// 9x9 region), alignment patterns, the dark module, and placeholder
// (mask-0) format/version info reservations that get overwritten with
// real bits during mask selection.
func (m *Matrix) buildFunctionPatterns(version int) {
	size := m.Size

	for i := 0; i < size; i++ {
		m.setFunctionModule(6, i, i%2 == 0)
		m.setFunctionModule(i, 6, i%2 == 0)
	}

	m.drawFinderPattern(3, 3)
	m.drawFinderPattern(size-4, 3)
	m.drawFinderPattern(3, size-4)

	for _, cx := range alignmentCenters[version] {
		for _, cy := range alignmentCenters[version] {
			if overlapsFinder(cx, cy, size) {
				continue
			}
			m.drawAlignmentPattern(cx, cy)
		}
	}

	m.drawDarkModule(version)
	m.writeFormatInfo(M, 0) // Placeholder; overwritten during mask selection.
	m.writeVersionInfo(version)
}

// overlapsFinder reports whether a 5x5 alignment pattern centered at
// (cx, cy) would intersect any of the three finder regions.
func overlapsFinder(cx, cy, size int) bool {
	return (cx <= 8 && cy <= 8) ||
		(cx <= 8 && cy >= size-8) ||
		(cx >= size-8 && cy <= 8)
}

// drawFinderPattern draws a 9x9 finder pattern, including its one-module
// light separator ring, centered at (x, y).
func (m *Matrix) drawFinderPattern(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= m.Size || yy < 0 || yy >= m.Size {
				continue
			}
			dist := maxInt(absInt(dx), absInt(dy))
			m.setFunctionModule(xx, yy, dist != 2 && dist != 4)
		}
	}
}

// drawAlignmentPattern draws a 5x5 alignment pattern centered at (x, y).
func (m *Matrix) drawAlignmentPattern(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			m.setFunctionModule(x+dx, y+dy, maxInt(absInt(dx), absInt(dy)) != 1)
		}
	}
}

// drawDarkModule sets the single always-dark module at column 8, row
// 4*version+9.
func (m *Matrix) drawDarkModule(version int) {
	m.setFunctionModule(8, 4*version+9, true)
}

// writeFormatInfo computes and writes both 15-bit format-info copies for
// the given level/mask combination.
func (m *Matrix) writeFormatInfo(level ErrorCorrectionLevel, mask int) {
	bits := formatInfoBits(level.formatBits(), mask)

	for i := 0; i <= 5; i++ {
		m.setFunctionModule(8, i, bitSet(bits, i))
	}
	m.setFunctionModule(8, 7, bitSet(bits, 6))
	m.setFunctionModule(8, 8, bitSet(bits, 7))
	m.setFunctionModule(7, 8, bitSet(bits, 8))
	for i := 9; i < 15; i++ {
		m.setFunctionModule(14-i, 8, bitSet(bits, i))
	}

	for i := 0; i < 8; i++ {
		m.setFunctionModule(m.Size-1-i, 8, bitSet(bits, i))
	}
	for i := 8; i < 15; i++ {
		m.setFunctionModule(8, m.Size-15+i, bitSet(bits, i))
	}
}

// writeVersionInfo writes both 18-bit version-info copies for versions
// 7-40; a no-op below version 7.
func (m *Matrix) writeVersionInfo(version int) {
	if version < 7 {
		return
	}

	bits := versionInfoBits(version)
	for i := 0; i < 18; i++ {
		dark := bitSet(bits, i)
		a := m.Size - 11 + i%3
		b := i / 3
		m.setFunctionModule(a, b, dark)
		m.setFunctionModule(b, a, dark)
	}
}

func bitSet(x, i int) bool {
	return x>>uint(i)&1 == 1
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
