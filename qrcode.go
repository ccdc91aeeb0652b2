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

// QRCode is a generated symbol: its chosen version, error correction
// level, mask, and the resulting module Matrix.
type QRCode struct {
	Version              int
	ErrorCorrectionLevel ErrorCorrectionLevel
	Mask                 int
	Matrix               *Matrix
}

// Generate runs the full encoder pipeline against config and returns the
// resulting QR code, or a tagged error describing why the value couldn't
// be encoded. The pipeline runs as named stages - mode detection, payload
// encoding, version selection, bit-stream assembly, error correction,
// interleaving, matrix construction, and mask selection - rather than one
// large function.
func Generate(config Config) (*QRCode, error) {
	mode, charCount, err := detectMode(config.Value)
	if err != nil {
		return nil, err
	}

	payload, err := encodePayload(mode, config.Value)
	if err != nil {
		return nil, err
	}

	version, err := selectVersion(mode, charCount, len(payload), config.ErrorCorrection, config.MinVersion)
	if err != nil {
		return nil, err
	}

	info := ecInfo(config.ErrorCorrection, version)
	capacityBits := info.DataCodewords * 8

	bits := make(bitStream, 0, capacityBits)
	bits.appendBits(mode.modeIndicator(), 4)
	bits.appendBits(charCount, mode.charCountBits(version))
	bits = append(bits, payload...)

	terminatorLen := capacityBits - len(bits)
	if terminatorLen > 4 {
		terminatorLen = 4
	}
	if terminatorLen < 0 {
		terminatorLen = 0
	}
	bits.appendBits(0, terminatorLen)
	bits.appendBits(0, (8-len(bits)%8)%8)

	for padByte := 0xEC; len(bits) < capacityBits; padByte ^= 0xEC ^ 0x11 {
		bits.appendBits(padByte, 8)
	}

	codewords, err := bits.toCodewords()
	if err != nil {
		return nil, err
	}

	dataBlocks, ecBlocks := splitAndCorrect(codewords, info)
	interleaved := interleave(dataBlocks, ecBlocks, info)

	if len(interleaved)*8+remainderBitsByVersion[version] != numRawDataModules[version] {
		panic("qrforge: interleaved codeword count does not match raw data module capacity")
	}

	matrix := newMatrix(version)
	matrix.buildFunctionPatterns(version)
	matrix.placeCodewords(interleaved)

	best, mask := selectBestMask(matrix, config.ErrorCorrection, version)

	return &QRCode{
		Version:              version,
		ErrorCorrectionLevel: config.ErrorCorrection,
		Mask:                 mask,
		Matrix:               best,
	}, nil
}
