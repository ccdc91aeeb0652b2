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

func TestSelectVersionFindsSmallestFit(t *testing.T) {
	version, err := selectVersion(ModeAlphanumeric, 11, 61, M, MinVersion)
	assert.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestSelectVersionHonorsMinVersion(t *testing.T) {
	version, err := selectVersion(ModeAlphanumeric, 11, 61, M, 5)
	assert.NoError(t, err)
	assert.Equal(t, 5, version)
}

func TestSelectVersionInvalidMinVersion(t *testing.T) {
	_, err := selectVersion(ModeNumeric, 1, 4, M, 0)
	assert.Equal(t, ErrInvalidVersion{Version: 0}, err)

	_, err = selectVersion(ModeNumeric, 1, 4, M, 41)
	assert.Equal(t, ErrInvalidVersion{Version: 41}, err)
}

func TestSelectVersionExceedsCapacity(t *testing.T) {
	_, err := selectVersion(ModeAlphanumeric, 4297, 4297*6, L, MinVersion)
	assert.Equal(t, ErrProvidedValueExceedsCapacity{ValueLength: 4297, Capacity: maxCapacityAlphanumeric}, err)
}

func TestSelectVersionCharCountOverflowSkipsVersion(t *testing.T) {
	// 20000 exceeds even the widest numeric character-count indicator (14
	// bits, max 16383) at every version, so every version is skipped and
	// the loop falls through to the capacity error.
	_, err := selectVersion(ModeNumeric, 20000, 1, L, MinVersion)
	assert.Equal(t, ErrProvidedValueExceedsCapacity{ValueLength: 20000, Capacity: maxCapacityNumeric}, err)
}

func TestMaxCapacityForMode(t *testing.T) {
	assert.Equal(t, maxCapacityNumeric, maxCapacityForMode(ModeNumeric))
	assert.Equal(t, maxCapacityAlphanumeric, maxCapacityForMode(ModeAlphanumeric))
	assert.Equal(t, maxCapacityByte, maxCapacityForMode(ModeByte))
}
