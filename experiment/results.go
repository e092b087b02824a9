package experiment

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
)

// Result is the outcome of one trial.
type Result struct {
	RunID    string
	Trial    int // 1-based, counted per protocol across the whole sweep
	Protocol string
	Sweep    SweepConfig
	Point    float64 // swept value

	Nodes        int // vertices when the trial started
	Edges        int // edges when the trial started
	Reachability float64
	Messages     int
	Hops         int
	EdgeChanges  int // edges removed plus re-added by the instability model
}

// AvgEdgeChanges returns the mean number of changed edges per hop, truncated
// as the churn result files report it.
func (r Result) AvgEdgeChanges() int {
	if r.Hops == 0 {
		return 0
	}
	return r.EdgeChanges / r.Hops
}

// Sink receives trial results as they are produced.
type Sink interface {
	// Begin announces a protocol before its first result.
	Begin(protocol string, sweep SweepConfig) error
	// Write records one result.
	Write(r Result) error
	// Close flushes and releases every resource.
	Close() error
}

// Header returns the CSV header for sweep: the classic columns followed by
// edgeChanges and runId.
func Header(sweep SweepConfig) []string {
	h := []string{"id", "nodeNum"}
	h = append(h, sweep.ParamColumns()...)
	h = append(h, "reachability", "msgNum", "hopNum")
	if sweep.Kind == KindChurn {
		h = append(h, "aveChangeEdgeNum", "edgeNum")
	}

	return append(h, "edgeChanges", "runId")
}

// Record renders r as a CSV row matching Header(r.Sweep).
func (r Result) Record() []string {
	row := []string{strconv.Itoa(r.Trial), strconv.Itoa(r.Nodes)}
	for _, v := range r.Sweep.ParamValues(r.Point) {
		row = append(row, formatFloat(v))
	}
	row = append(row, formatFloat(r.Reachability), strconv.Itoa(r.Messages), strconv.Itoa(r.Hops))
	if r.Sweep.Kind == KindChurn {
		row = append(row, strconv.Itoa(r.AvgEdgeChanges()), strconv.Itoa(r.Edges))
	}

	return append(row, strconv.Itoa(r.EdgeChanges), r.RunID)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FileName returns the result file name of protocol for sweep.
func FileName(protocol string, sweep SweepConfig) string {
	if sweep.Kind == KindUpdate {
		return protocol + "_updateMBC.csv"
	}
	return protocol + ".csv"
}

// CSVSink writes one CSV file per protocol under a directory. Every file
// starts with a single-field line holding the protocol name, then the header.
type CSVSink struct {
	dir   string
	mu    sync.Mutex
	files map[string]*csvFile
}

type csvFile struct {
	f *os.File
	w *csv.Writer
}

// NewCSVSink creates dir if needed.
func NewCSVSink(dir string) (*CSVSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("NewCSVSink: %w", err)
	}

	return &CSVSink{dir: dir, files: make(map[string]*csvFile)}, nil
}

// Begin creates (truncating) the protocol's file and writes its preamble.
func (s *CSVSink) Begin(protocol string, sweep SweepConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.files[protocol]; ok {
		if err := old.close(); err != nil {
			return fmt.Errorf("Begin(%s): %w", protocol, err)
		}
	}
	path := filepath.Join(s.dir, FileName(protocol, sweep))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Begin(%s): %w", protocol, err)
	}
	cf := &csvFile{f: f, w: csv.NewWriter(f)}
	if err := cf.w.Write([]string{protocol}); err != nil {
		f.Close()
		return fmt.Errorf("Begin(%s): %w", protocol, err)
	}
	if err := cf.w.Write(Header(sweep)); err != nil {
		f.Close()
		return fmt.Errorf("Begin(%s): %w", protocol, err)
	}
	s.files[protocol] = cf

	return nil
}

// Write appends r to its protocol's file. Begin must have been called.
func (s *CSVSink) Write(r Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cf, ok := s.files[r.Protocol]
	if !ok {
		return fmt.Errorf("Write: protocol %s not begun", r.Protocol)
	}
	if err := cf.w.Write(r.Record()); err != nil {
		return fmt.Errorf("Write(%s): %w", r.Protocol, err)
	}

	return nil
}

// Close flushes and closes every file, returning the first error.
func (s *CSVSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.files))
	for name := range s.files {
		names = append(names, name)
	}
	sort.Strings(names)

	var first error
	for _, name := range names {
		if err := s.files[name].close(); err != nil && first == nil {
			first = fmt.Errorf("Close(%s): %w", name, err)
		}
		delete(s.files, name)
	}

	return first
}

func (cf *csvFile) close() error {
	cf.w.Flush()
	werr := cf.w.Error()
	cerr := cf.f.Close()
	if werr != nil {
		return werr
	}
	return cerr
}

// MemorySink keeps every result in memory.
type MemorySink struct {
	mu      sync.Mutex
	Begun   []string
	Results []Result
}

// Begin records the protocol name.
func (m *MemorySink) Begin(protocol string, _ SweepConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Begun = append(m.Begun, protocol)
	return nil
}

// Write appends r.
func (m *MemorySink) Write(r Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Results = append(m.Results, r)
	return nil
}

// Close is a no-op.
func (m *MemorySink) Close() error { return nil }
