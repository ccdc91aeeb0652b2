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

import "fmt"

// ErrEmptyValue is returned when Generate is asked to encode the empty
// string, which has no valid mode.
type ErrEmptyValue struct{}

func (ErrEmptyValue) Error() string {
	return "qrforge: value must not be empty"
}

// ErrInvalidVersion is returned when a requested minimum version falls
// outside [MinVersion, MaxVersion].
type ErrInvalidVersion struct {
	Version int
}

func (e ErrInvalidVersion) Error() string {
	return fmt.Sprintf("qrforge: invalid version %d, must be in [%d, %d]", e.Version, MinVersion, MaxVersion)
}

// ErrProvidedValueExceedsCapacity is returned when no version in
// [MinVersion, MaxVersion] can hold the encoded payload at the requested
// error correction level.
type ErrProvidedValueExceedsCapacity struct {
	ValueLength int
	Capacity    int
}

func (e ErrProvidedValueExceedsCapacity) Error() string {
	return fmt.Sprintf("qrforge: value length %d exceeds maximum capacity %d", e.ValueLength, e.Capacity)
}

// ErrInvalidNumericEncoding signals that a numeric segment could not be
// parsed as digits. Unreachable if mode detection is sound; surfaced
// rather than recovered from, per the internal-consistency policy.
type ErrInvalidNumericEncoding struct {
	Chunk string
}

func (e ErrInvalidNumericEncoding) Error() string {
	return fmt.Sprintf("qrforge: invalid numeric chunk %q", e.Chunk)
}

// ErrInvalidAlphanumericEncoding signals that a character fell outside the
// alphanumeric table during alphanumeric encoding. Unreachable if mode
// detection is sound.
type ErrInvalidAlphanumericEncoding struct {
	Rune rune
}

func (e ErrInvalidAlphanumericEncoding) Error() string {
	return fmt.Sprintf("qrforge: rune %q is not valid alphanumeric", e.Rune)
}

// ErrInvalidUtf8Encoding signals that the input was not valid UTF-8 when
// byte-mode encoding required its byte serialization.
type ErrInvalidUtf8Encoding struct{}

func (ErrInvalidUtf8Encoding) Error() string {
	return "qrforge: value is not valid UTF-8"
}

// ErrInvalidRemainingBits signals that bit-stream assembly produced a
// length that is not byte-aligned after the terminator and padding steps.
// Reachable only if the terminator/pad arithmetic is wrong; treated as an
// assertion, never recovered from.
type ErrInvalidRemainingBits struct {
	Length int
}

func (e ErrInvalidRemainingBits) Error() string {
	return fmt.Sprintf("qrforge: bit stream length %d is not byte-aligned", e.Length)
}
