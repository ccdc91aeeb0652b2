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

// Command qrforge renders a QR code for a single value and opens it in
// the default browser, so the library's SVG output can be eyeballed
// without wiring up a server. It has no role in the encoder itself.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/pkg/browser"

	"github.com/kaelith/qrforge"
	"github.com/kaelith/qrforge/render"
)

func main() {
	value := flag.String("value", "", "text to encode")
	level := flag.String("level", "M", "error correction level: L, M, Q, or H")
	minVersion := flag.Int("min-version", 1, "minimum QR version (1-40)")
	flag.Parse()

	if *value == "" {
		log.Fatal("qrforge: -value is required")
	}

	ecl, err := parseLevel(*level)
	if err != nil {
		log.Fatalf("qrforge: %v", err)
	}

	code, err := qrforge.Generate(qrforge.Config{
		Value:           *value,
		ErrorCorrection: ecl,
		MinVersion:      *minVersion,
	})
	if err != nil {
		log.Fatalf("qrforge: generate failed: %v", err)
	}

	svg, err := render.ToSVG(code.Matrix, 4, true)
	if err != nil {
		log.Fatalf("qrforge: render failed: %v", err)
	}

	f, err := os.CreateTemp("", "qrforge-*.svg")
	if err != nil {
		log.Fatalf("qrforge: could not create temp file: %v", err)
	}
	defer f.Close()

	if _, err := f.WriteString(svg); err != nil {
		log.Fatalf("qrforge: could not write svg: %v", err)
	}

	if err := browser.OpenFile(f.Name()); err != nil {
		log.Fatalf("qrforge: could not open browser: %v", err)
	}

	log.Printf("qrforge: version %d, level %s, mask %d -> %s", code.Version, code.ErrorCorrectionLevel, code.Mask, f.Name())
}

func parseLevel(s string) (qrforge.ErrorCorrectionLevel, error) {
	switch s {
	case "L":
		return qrforge.L, nil
	case "M":
		return qrforge.M, nil
	case "Q":
		return qrforge.Q, nil
	case "H":
		return qrforge.H, nil
	default:
		return 0, errUnknownLevel(s)
	}
}

type errUnknownLevel string

func (e errUnknownLevel) Error() string {
	return "unknown error correction level " + string(e)
}
