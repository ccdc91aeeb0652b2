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

import "strconv"

// encodePayload packs value's characters into a bitStream according to
// mode. The caller is responsible for having classified value with
// detectMode first; the error returns here are internal consistency
// checks, unreachable if that classification was sound.
func encodePayload(mode EncodingMode, value string) (bitStream, error) {
	switch mode {
	case ModeNumeric:
		return encodeNumeric(value)
	case ModeAlphanumeric:
		return encodeAlphanumeric(value)
	case ModeByte:
		return encodeByte(value), nil
	default:
		panic("qrforge: unknown encoding mode")
	}
}

func encodeNumeric(digits string) (bitStream, error) {
	bits := make(bitStream, 0, len(digits)*3+(len(digits)+2)/3)
	for i := 0; i < len(digits); {
		n := min(len(digits)-i, 3)
		chunk := digits[i : i+n]
		d, err := strconv.Atoi(chunk)
		if err != nil {
			return nil, ErrInvalidNumericEncoding{Chunk: chunk}
		}
		bits.appendBits(d, n*3+1)
		i += n
	}
	return bits, nil
}

func encodeAlphanumeric(text string) (bitStream, error) {
	runes := []rune(text)
	bits := make(bitStream, 0, len(runes)*6)

	i := 0
	for ; i+1 < len(runes); i += 2 {
		v1 := alphanumericValue(runes[i])
		v2 := alphanumericValue(runes[i+1])
		if v1 == -1 {
			return nil, ErrInvalidAlphanumericEncoding{Rune: runes[i]}
		}
		if v2 == -1 {
			return nil, ErrInvalidAlphanumericEncoding{Rune: runes[i+1]}
		}
		bits.appendBits(45*v1+v2, 11)
	}
	if i < len(runes) {
		v := alphanumericValue(runes[i])
		if v == -1 {
			return nil, ErrInvalidAlphanumericEncoding{Rune: runes[i]}
		}
		bits.appendBits(v, 6)
	}

	return bits, nil
}

func encodeByte(value string) bitStream {
	data := []byte(value)
	bits := make(bitStream, 0, len(data)*8)
	for _, b := range data {
		bits.appendBits(int(b), 8)
	}
	return bits
}
