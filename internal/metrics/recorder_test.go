package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_Counts(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.SeasonsLoaded("GWBB", 3)
	r.Rows("GWBB", RowKept, 10)
	r.Rows("GWBB", RowUnmapped, 2)
	r.Rows("GWBB", RowNoRoster, 0)
	r.Careers("GWBB", 4)
	r.Careers("GWBB", 5)
	r.Artifacts(ArtWritten, 6)

	if got := testutil.ToFloat64(r.seasons.WithLabelValues("GWBB")); got != 3 {
		t.Fatalf("seasons = %v, want 3", got)
	}
	if got := testutil.ToFloat64(r.rows.WithLabelValues("GWBB", RowUnmapped)); got != 2 {
		t.Fatalf("unmapped rows = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.careers.WithLabelValues("GWBB")); got != 5 {
		t.Fatalf("careers gauge = %v, want 5", got)
	}
	if got := testutil.CollectAndCount(r.rows); got != 2 {
		t.Fatalf("row series = %d, want 2", got)
	}
}

func TestRecorder_NilIsNoop(t *testing.T) {
	t.Parallel()

	var r *Recorder
	r.SeasonsLoaded("GWBB", 1)
	r.Duration(time.Second)
	if err := r.WriteTextfile(filepath.Join(t.TempDir(), "x.prom")); err != nil {
		t.Fatalf("nil WriteTextfile: %v", err)
	}
}

func TestRecorder_WriteTextfile(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.Minted(2)
	r.MergeCycles(1)
	path := filepath.Join(t.TempDir(), "almanac.prom")

	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	for _, want := range []string{"almanac_ids_minted_total 2", "almanac_merge_cycles_total 1"} {
		if !strings.Contains(string(raw), want) {
			t.Fatalf("textfile missing %q:\n%s", want, raw)
		}
	}
}
