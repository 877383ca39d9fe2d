package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim"
)

// recordFields lists the per-task columns of each batch kind.
var recordFields = map[sim.BatchKind][]string{
	sim.KindGeneral:   {"name", "arrival", "estimated"},
	sim.KindAperiodic: {"name", "arrival", "execution_time", "start_deadline"},
	sim.KindPeriodic:  {"name", "arrival", "execution_time", "end_deadline"},
}

// headerFields lists the header columns of each batch kind, after the kind token.
var headerFields = map[sim.BatchKind][]string{
	sim.KindGeneral:   {"num_processes", "rr_quantum"},
	sim.KindAperiodic: {"num_processes"},
	sim.KindPeriodic:  {"num_processes", "ending_time"},
}

// LoadBatch reads and parses a batch file.
func LoadBatch(path string) (*sim.Batch, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening batch %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // read-only file
	return ParseBatch(file, path)
}

// ParseBatch parses a batch from r. source names the input in errors and logs.
//
// The first line is the header: "U,<n>,<quantum>", "RA,<n>" or
// "RP,<n>,<ending_time>"; any other kind token is read as a periodic header.
// Each following line is one task. Fields are integers except the name, and
// surrounding spaces are ignored. Blank lines are skipped.
func ParseBatch(r io.Reader, source string) (*sim.Batch, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // arity depends on the header; checked below
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &ParseError{Path: source, Line: 1, Err: errors.New("empty batch: missing header")}
	}
	if err != nil {
		return nil, &ParseError{Path: source, Line: csvLine(err), Err: err}
	}
	line, _ := reader.FieldPos(0)
	batch, err := parseHeader(trimAll(header), source, line)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Path: source, Line: csvLine(err), Err: err}
		}
		line, _ := reader.FieldPos(0)
		task, err := parseTask(batch.Kind, trimAll(record), source, line)
		if err != nil {
			return nil, err
		}
		if seen[task.Name] {
			return nil, &ParseError{Path: source, Line: line, Field: "name", Err: fmt.Errorf("duplicate task name %q", task.Name)}
		}
		seen[task.Name] = true
		batch.Tasks = append(batch.Tasks, task)
	}

	if batch.NumProcesses != len(batch.Tasks) {
		logrus.Warnf("%s: header declares %d processes but %d tasks were read", source, batch.NumProcesses, len(batch.Tasks))
	}
	return batch, nil
}

// csvLine extracts the line number carried by a csv read error.
func csvLine(err error) int {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return pe.Line
	}
	return 0
}

func trimAll(fields []string) []string {
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

func parseHeader(fields []string, source string, line int) (*sim.Batch, error) {
	kind := sim.BatchKind(fields[0])
	switch kind {
	case sim.KindGeneral, sim.KindAperiodic, sim.KindPeriodic:
	case "":
		return nil, &ParseError{Path: source, Line: line, Field: "kind", Err: errors.New("missing batch kind")}
	default:
		logrus.Warnf("%s: unrecognised batch kind %q, reading it as %s", source, fields[0], sim.KindPeriodic)
		kind = sim.KindPeriodic
	}

	names := headerFields[kind]
	if len(fields)-1 != len(names) {
		return nil, &ParseError{Path: source, Line: line,
			Err: fmt.Errorf("%s header: expected %d fields, got %d", kind, len(names)+1, len(fields))}
	}
	values, err := parseInts(fields[1:], names, source, line)
	if err != nil {
		return nil, err
	}

	batch := &sim.Batch{Source: source, Kind: kind, NumProcesses: int(values[0])}
	switch kind {
	case sim.KindGeneral:
		if values[1] <= 0 {
			return nil, &ParseError{Path: source, Line: line, Field: "rr_quantum", Err: fmt.Errorf("must be positive, got %d", values[1])}
		}
		batch.Quantum = values[1]
	case sim.KindPeriodic:
		if values[1] < 0 {
			return nil, &ParseError{Path: source, Line: line, Field: "ending_time", Err: fmt.Errorf("must be non-negative, got %d", values[1])}
		}
		batch.Horizon = values[1]
	}
	return batch, nil
}

func parseTask(kind sim.BatchKind, fields []string, source string, line int) (*sim.Task, error) {
	names := recordFields[kind]
	if len(fields) != len(names) {
		return nil, &ParseError{Path: source, Line: line,
			Err: fmt.Errorf("%s record: expected %d fields, got %d", kind, len(names), len(fields))}
	}
	name := fields[0]
	if name == "" {
		return nil, &ParseError{Path: source, Line: line, Field: "name", Err: errors.New("must not be empty")}
	}
	values, err := parseInts(fields[1:], names[1:], source, line)
	if err != nil {
		return nil, err
	}
	arrival, estimated := values[0], values[1]
	if arrival < 0 {
		return nil, &ParseError{Path: source, Line: line, Field: names[1], Err: fmt.Errorf("must be non-negative, got %d", arrival)}
	}
	if estimated <= 0 {
		return nil, &ParseError{Path: source, Line: line, Field: names[2], Err: fmt.Errorf("must be positive, got %d", estimated)}
	}

	switch kind {
	case sim.KindAperiodic:
		return sim.NewRealtimeTask(name, arrival, estimated, sim.Tick(values[2]), nil), nil
	case sim.KindPeriodic:
		if values[2] <= 0 {
			return nil, &ParseError{Path: source, Line: line, Field: names[3], Err: fmt.Errorf("must be positive, got %d", values[2])}
		}
		return sim.NewRealtimeTask(name, arrival, estimated, nil, sim.Tick(values[2])), nil
	default:
		return sim.NewTask(name, arrival, estimated), nil
	}
}

func parseInts(fields, names []string, source string, line int) ([]int64, error) {
	values := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, &ParseError{Path: source, Line: line, Field: names[i], Err: fmt.Errorf("invalid integer %q", f)}
		}
		values[i] = v
	}
	return values, nil
}
