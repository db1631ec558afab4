// Package ingest parses readings files for batch processing.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/single1709/hw-python-oop/internal/sensor"
)

// Parse reads a readings file and returns the raw sensor packages in input
// order. One reading per line, semicolon-separated:
//
//	SWM;720;1;80;25;40
//	RUN;15000;1;75
//
// Blank lines and lines starting with # are skipped. A malformed numeric
// field fails the whole parse; whether a reading makes sense semantically is
// decided later by sensor.Decode.
func Parse(r io.Reader) ([]sensor.Package, error) {
	scanner := bufio.NewScanner(r)
	var packages []sensor.Package
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, ";")
		code := strings.TrimSpace(fields[0])
		if code == "" {
			return nil, fmt.Errorf("line %d: missing workout code", lineNum)
		}

		params := make([]float64, 0, len(fields)-1)
		for _, field := range fields[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: parsing parameter %q: %w", lineNum, field, err)
			}
			params = append(params, v)
		}

		packages = append(packages, sensor.Package{Code: code, Params: params})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return packages, nil
}
