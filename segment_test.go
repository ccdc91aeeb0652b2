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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeNumeric(t *testing.T) {
	cases := []struct {
		text      string
		bitLength int
		bytes     []byte
	}{
		{"", 0, []byte{}},
		{"9", 4, []byte{0x1, 0x0, 0x0, 0x1}},
		{"81", 7, []byte{0x1, 0x0, 0x1, 0x0, 0x0, 0x0, 0x1}},
		{"673", 10, []byte{0x1, 0x0, 0x1, 0x0, 0x1, 0x0, 0x0, 0x0, 0x0, 0x1}},
		{"3141592653", 34, []byte{0x0, 0x1, 0x0, 0x0, 0x1, 0x1, 0x1, 0x0, 0x1, 0x0, 0x0, 0x0, 0x1, 0x0, 0x0, 0x1, 0x1, 0x1,
			0x1, 0x1, 0x0, 0x1, 0x0, 0x0, 0x0, 0x0, 0x1, 0x0, 0x0, 0x1, 0x0, 0x0, 0x1, 0x1}},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			bits, err := encodeNumeric(tc.text)
			assert.NoError(t, err)
			assert.Equal(t, tc.bitLength, len(bits))
			assert.Equal(t, bitStream(tc.bytes), bits)
		})
	}
}

func TestEncodeAlphanumeric(t *testing.T) {
	cases := []struct {
		text      string
		bitLength int
		bytes     []byte
	}{
		{"", 0, []byte{}},
		{"A", 6, []byte{0x0, 0x0, 0x1, 0x0, 0x1, 0x0}},
		{"%:", 11, []byte{0x1, 0x1, 0x0, 0x1, 0x1, 0x0, 0x1, 0x1, 0x0, 0x1, 0x0}},
		{"Q R", 17, []byte{0x1, 0x0, 0x0, 0x1, 0x0, 0x1, 0x1, 0x0, 0x1, 0x1, 0x0, 0x0, 0x1, 0x1, 0x0, 0x1, 0x1}},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			bits, err := encodeAlphanumeric(tc.text)
			assert.NoError(t, err)
			assert.Equal(t, tc.bitLength, len(bits))
			assert.Equal(t, bitStream(tc.bytes), bits)
		})
	}
}

func TestEncodeByte(t *testing.T) {
	cases := []struct {
		data  []byte
		bytes []byte
	}{
		{[]byte{}, []byte{}},
		{[]byte{0x00}, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{[]byte{0xEF, 0xBB, 0xBF}, []byte{0x1, 0x1, 0x1, 0x0, 0x1, 0x1, 0x1, 0x1, 0x1, 0x0, 0x1, 0x1, 0x1, 0x0, 0x1, 0x1, 0x1, 0x0, 0x1, 0x1, 0x1, 0x1, 0x1, 0x1}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v", tc.data), func(t *testing.T) {
			bits := encodeByte(string(tc.data))
			assert.Equal(t, bitStream(tc.bytes), bits)
		})
	}
}

func TestEncodePayloadDispatches(t *testing.T) {
	bits, err := encodePayload(ModeNumeric, "123")
	assert.NoError(t, err)
	assert.Equal(t, 10, len(bits))
}
