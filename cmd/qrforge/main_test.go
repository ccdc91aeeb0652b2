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

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kaelith/qrforge"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want qrforge.ErrorCorrectionLevel
	}{
		{"L", qrforge.L},
		{"M", qrforge.M},
		{"Q", qrforge.Q},
		{"H", qrforge.H},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseLevel(tc.in)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseLevelUnknown(t *testing.T) {
	_, err := parseLevel("X")
	assert.Error(t, err)
	assert.Equal(t, "unknown error correction level X", err.Error())
}
