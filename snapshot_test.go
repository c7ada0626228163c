package czkcurve

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSnapshotSource_embedded(t *testing.T) {
	src := &SnapshotSource{}
	if src.CurveName() != "CZK_GOVT_BOND_SNAPSHOT" {
		t.Errorf("CurveName() = %q", src.CurveName())
	}

	table, err := src.Fetch()
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(table) != 14 {
		t.Fatalf("got %d observations, want 14", len(table))
	}
	if err := table.Check(); err != nil {
		t.Errorf("embedded snapshot fails Check: %v", err)
	}

	first, last := table[0], table[len(table)-1]
	if first.Tenor != "3 months" || first.Years != 0.25 || first.Rate != 3.51 {
		t.Errorf("first observation = %+v", first)
	}
	if last.Tenor != "20 years" || last.Years != 20 || last.Rate != 4.58 {
		t.Errorf("last observation = %+v", last)
	}
}

// A document exported by EncodeQuantJSON reads back unchanged.
func TestSnapshotSource_roundTrip(t *testing.T) {
	table := Table{
		{Tenor: "3 months", Years: 0.25, Rate: 3.8},
		{Tenor: "1 year", Years: 1, Rate: 3.6},
		{Tenor: "5 years", Years: 5, Rate: 3.2},
	}

	path := filepath.Join(t.TempDir(), "curve.json")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := EncodeQuantJSON(f, NewMetadata(LiveCurveName), table); err != nil {
		t.Fatalf("EncodeQuantJSON: %v", err)
	}
	f.Close()

	got, err := (&SnapshotSource{Path: path}).Fetch()
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(got) != len(table) {
		t.Fatalf("got %d observations, want %d", len(got), len(table))
	}
	for i := range table {
		if got[i].Tenor != table[i].Tenor || got[i].Years != table[i].Years || got[i].Rate != table[i].Rate {
			t.Errorf("observation %d = %+v, want %+v", i, got[i], table[i])
		}
	}
}

func TestSnapshotSource_unavailable(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		src := &SnapshotSource{Path: filepath.Join(t.TempDir(), "nope.json")}
		if _, err := src.Fetch(); !errors.Is(err, ErrSourceUnavailable) {
			t.Errorf("got %v, want ErrSourceUnavailable", err)
		}
	})

	t.Run("not json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "garbage.json")
		if err := os.WriteFile(path, []byte("not a document"), 0o600); err != nil {
			t.Fatal(err)
		}
		src := &SnapshotSource{Path: path}
		if _, err := src.Fetch(); !errors.Is(err, ErrSourceUnavailable) {
			t.Errorf("got %v, want ErrSourceUnavailable", err)
		}
	})

	t.Run("no observations", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.json")
		doc := `{"curve_metadata": {"name": "X"}, "data": []}`
		if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
			t.Fatal(err)
		}
		src := &SnapshotSource{Path: path}
		if _, err := src.Fetch(); !errors.Is(err, ErrSourceUnavailable) {
			t.Errorf("got %v, want ErrSourceUnavailable", err)
		}
	})
}
