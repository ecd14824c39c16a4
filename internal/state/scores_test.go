// Tests in this file run the score store against a throwaway sqlite file.
package state

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *ScoreStore {
	t.Helper()

	ctx := context.Background()
	db, err := Open(ctx, Config{Path: filepath.Join(t.TempDir(), "state.db")})
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store, err := NewScoreStore(ctx, db)
	if err != nil {
		t.Fatalf("NewScoreStore returned error: %v", err)
	}
	return store
}

func TestRecordAndTotals(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	if err := store.RecordMatch(ctx, []string{"a.py", "b.py"}, []int{2, 1}); err != nil {
		t.Fatalf("RecordMatch returned error: %v", err)
	}
	if err := store.RecordMatch(ctx, []string{"a.py", "b.py"}, []int{0, 3}); err != nil {
		t.Fatalf("RecordMatch returned error: %v", err)
	}

	totals, err := store.Totals(ctx)
	if err != nil {
		t.Fatalf("Totals returned error: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("len(totals) = %d, want 2", len(totals))
	}

	// b.py leads with 4 points over a.py's 2.
	if totals[0].Bot != "b.py" || totals[0].Points != 4 || totals[0].Matches != 2 {
		t.Fatalf("totals[0] = %+v", totals[0])
	}
	if totals[1].Bot != "a.py" || totals[1].Points != 2 {
		t.Fatalf("totals[1] = %+v", totals[1])
	}
}

func TestRecordMatchLengthMismatch(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	if err := store.RecordMatch(context.Background(), []string{"a.py"}, []int{1, 2}); err == nil {
		t.Fatal("expected error for mismatched slices")
	}
}

func TestTotalsEmpty(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	totals, err := store.Totals(context.Background())
	if err != nil {
		t.Fatalf("Totals returned error: %v", err)
	}
	if len(totals) != 0 {
		t.Fatalf("totals = %v, want empty", totals)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), Config{}); err == nil {
		t.Fatal("expected error for empty path")
	}
}
