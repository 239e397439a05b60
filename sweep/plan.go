package sweep

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DefaultTargetCapacity is the default initial capacity for the target list.
const DefaultTargetCapacity = 64

// Plan is the host-supplied sweep program: the static reference/comparison
// frequency pair and the ordered list of target output frequencies.
// Order is significant; it defines transmission order.
type Plan struct {
	// RefMHz is the reference input frequency in megahertz
	RefMHz float64

	// PfdKHz is the phase-detector comparison frequency in kilohertz
	PfdKHz float64

	// Targets are the output frequencies in megahertz, in sweep order
	Targets []float64
}

// Parse parses a sweep plan file from the given path.
//
// Example:
//
//	plan, err := sweep.Parse("xband.plan")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d targets\n", len(plan.Targets))
func Parse(path string) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f)
}

// ParseReader parses a sweep plan from any io.Reader.
// This is useful for testing and reading from non-file sources.
//
// The format is line oriented. Blank lines and lines starting with '#' are
// skipped. The first significant line is the header:
//
//	<reference MHz> <comparison kHz>
//
// Every following significant line is one target frequency in megahertz.
// At least one target is required.
func ParseReader(r io.Reader) (*Plan, error) {
	scanner := bufio.NewScanner(r)

	plan := &Plan{
		Targets: make([]float64, 0, DefaultTargetCapacity),
	}

	lineNum := 0
	haveHeader := false
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !haveHeader {
			ref, pfd, err := parseHeader(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			plan.RefMHz = ref
			plan.PfdKHz = pfd
			haveHeader = true
			continue
		}

		target, err := parseTarget(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		plan.Targets = append(plan.Targets, target)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}

	if !haveHeader {
		return nil, fmt.Errorf("empty plan: missing header line")
	}
	if len(plan.Targets) == 0 {
		return nil, fmt.Errorf("no target frequencies in plan")
	}

	return plan, nil
}

// parseHeader parses the plan header line.
//
// Header format:
//
//	<reference MHz> <comparison kHz>
//
// Example: "100.000 1250.000" = 100 MHz reference, 1250 kHz comparison.
func parseHeader(line string) (refMHz, pfdKHz float64, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("invalid header: got %d fields, expected 2 (reference MHz, comparison kHz)", len(fields))
	}

	refMHz, err = strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid reference frequency %q: %w", fields[0], err)
	}
	pfdKHz, err = strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid comparison frequency %q: %w", fields[1], err)
	}

	if refMHz <= 0 {
		return 0, 0, fmt.Errorf("reference frequency must be positive, got %g MHz", refMHz)
	}
	if pfdKHz <= 0 {
		return 0, 0, fmt.Errorf("comparison frequency must be positive, got %g kHz", pfdKHz)
	}

	return refMHz, pfdKHz, nil
}

// parseTarget parses a single target frequency line.
func parseTarget(line string) (float64, error) {
	target, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid target frequency %q: %w", line, err)
	}
	if target <= 0 {
		return 0, fmt.Errorf("target frequency must be positive, got %g MHz", target)
	}
	return target, nil
}
