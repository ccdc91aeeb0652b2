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
 *
 * See https://www.thonky.com/qr-code-tutorial/introduction and
 * https://en.wikipedia.org/wiki/QR_code for an explanation of how QR codes
 * are formatted.
 */

// Package qrforge builds QR Code (ISO/IEC 18004 Model 2, versions 1-40)
// symbols from text input. It covers mode detection, bit-stream assembly,
// Reed-Solomon error correction, block interleaving, matrix construction,
// data placement, and mask selection. Rendering the resulting Matrix as
// text or SVG lives in the sibling render package; qrforge itself touches
// no I/O.
package qrforge
