package czkcurve

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
)

// The embedded snapshot is a quant JSON export captured from a live fetch.
// It is the fast path when the benchmark page is unreachable or when the
// caller explicitly asks for reproducible input.
//
//go:embed snapshot.json
var embeddedSnapshot []byte

// SnapshotSource reads observations from a quant JSON document, either the
// embedded snapshot or a file previously exported by this tool.
type SnapshotSource struct {
	// Path of the quant JSON file to read. Empty means the embedded snapshot.
	Path string
}

func (s *SnapshotSource) CurveName() string { return SnapshotCurveName }

// Fetch implements Source by decoding the snapshot document.
func (s *SnapshotSource) Fetch() (Table, error) {
	raw := embeddedSnapshot
	if s.Path != "" {
		var err error
		raw, err = os.ReadFile(s.Path)
		if err != nil {
			return nil, fmt.Errorf("reading snapshot %q: %w: %w", s.Path, ErrSourceUnavailable, err)
		}
	}
	t, err := decodeQuantJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w: %w", ErrSourceUnavailable, err)
	}
	return t, nil
}

// decodeQuantJSON extracts the observation table from a quant JSON document.
// Only tenor and rate_pct are read back; days and discount factors are
// derived values and are recomputed from the rate.
func decodeQuantJSON(raw []byte) (Table, error) {
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return nil, err
	}

	tenors, err := jsonpath.Get("$.data[*].tenor", jobj)
	if err != nil {
		return nil, fmt.Errorf("no tenors in document: %w", err)
	}
	rates, err := jsonpath.Get("$.data[*].rate_pct", jobj)
	if err != nil {
		return nil, fmt.Errorf("no rates in document: %w", err)
	}

	jtenors, ok := tenors.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected tenor list type %T", tenors)
	}
	jrates, ok := rates.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected rate list type %T", rates)
	}
	if len(jtenors) != len(jrates) {
		return nil, fmt.Errorf("mismatched document: %d tenors for %d rates", len(jtenors), len(jrates))
	}
	if len(jtenors) == 0 {
		return nil, fmt.Errorf("document holds no observations")
	}

	t := make(Table, 0, len(jtenors))
	for i := range jtenors {
		label, ok := jtenors[i].(string)
		if !ok {
			return nil, fmt.Errorf("tenor %d: not a string: %v", i, jtenors[i])
		}
		rate, ok := jrates[i].(float64)
		if !ok {
			return nil, fmt.Errorf("rate %d: not a number: %v", i, jrates[i])
		}
		years, err := ParseTenor(label)
		if err != nil {
			return nil, err
		}
		t = append(t, Observation{Tenor: label, Years: years, Rate: rate})
	}

	t.Sort()
	if err := t.Check(); err != nil {
		return nil, err
	}
	return t, nil
}
