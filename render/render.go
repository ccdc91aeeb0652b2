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

// Package render turns a qrforge.Matrix into text or SVG. Neither
// function needs anything from the core encoder beyond the finished
// Matrix; they're external collaborators, not part of the encoder
// pipeline itself, and take a Matrix value rather than being methods on
// the core type.
package render

import (
	"fmt"
	"strings"

	"github.com/kaelith/qrforge"
)

const quietZone = 4

// ToText renders matrix as a string with a 4-module quiet zone on every
// side, using block glyphs to pack two module rows into one text line:
// "█" for (Dark,Dark), "▀" for (Dark,Light), "▄" for (Light,Dark), and a
// space for (Light,Light). The bottom row pairs against a phantom
// all-Light row when the padded row count is odd.
func ToText(matrix *qrforge.Matrix) string {
	total := matrix.Size + 2*quietZone

	var sb strings.Builder
	for i := 0; i < total; i += 2 {
		for j := 0; j < total; j++ {
			top := pixelAt(matrix, i-quietZone, j-quietZone)
			bottom := qrforge.Light
			if i+1 < total {
				bottom = pixelAt(matrix, i+1-quietZone, j-quietZone)
			}

			switch {
			case top == qrforge.Dark && bottom == qrforge.Dark:
				sb.WriteRune('█')
			case top == qrforge.Dark && bottom == qrforge.Light:
				sb.WriteRune('▀')
			case top == qrforge.Light && bottom == qrforge.Dark:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func pixelAt(matrix *qrforge.Matrix, row, col int) qrforge.Module {
	if row < 0 || row >= matrix.Size || col < 0 || col >= matrix.Size {
		return qrforge.Light
	}
	return matrix.At(row, col)
}

// ToSVG renders matrix as an SVG document: a T x T viewBox (T = size +
// 2*border), a white background, and one 1x1 black rect per dark module
// offset by border modules. Returns an error if border is negative.
func ToSVG(matrix *qrforge.Matrix, border int, includeDocType bool) (string, error) {
	if border < 0 {
		return "", fmt.Errorf("render: border must be non-negative")
	}

	t := matrix.Size + 2*border

	var sb strings.Builder
	if includeDocType {
		sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
		sb.WriteString("<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n")
	}
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %[1]d %[1]d\">\n", t)
	fmt.Fprintf(&sb, "\t<rect width=\"%d\" height=\"%d\" fill=\"white\"/>\n", t, t)
	sb.WriteString("\t<g fill=\"black\" shape-rendering=\"crispEdges\">\n")

	rows := matrix.Rows()
	for r := 0; r < matrix.Size; r++ {
		for c := 0; c < matrix.Size; c++ {
			if rows[r][c] == qrforge.Dark {
				fmt.Fprintf(&sb, "\t\t<rect x=\"%d\" y=\"%d\" width=\"1\" height=\"1\"/>\n", c+border, r+border)
			}
		}
	}

	sb.WriteString("\t</g>\n")
	sb.WriteString("</svg>\n")

	return sb.String(), nil
}
