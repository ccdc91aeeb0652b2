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

// Config controls a single Generate call. Value is the text to encode;
// ErrorCorrection defaults to M and MinVersion to 1 when built via New.
type Config struct {
	Value           string
	ErrorCorrection ErrorCorrectionLevel
	MinVersion      int
}

// New builds a Config with sensible defaults: Medium error correction,
// minimum version 1.
func New(value string) Config {
	return Config{
		Value:           value,
		ErrorCorrection: M,
		MinVersion:      MinVersion,
	}
}
