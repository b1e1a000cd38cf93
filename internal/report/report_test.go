package report

import (
	"math"
	"path/filepath"
	"testing"
)

func TestLRE(t *testing.T) {
	tests := []struct {
		computed, reference float64
		expected            float64
		delta               float64
	}{
		{1, 1, 17, 0},
		{1 + 1e-12, 1, 12, 0.01},
		{2, 1, 0, 0.01},
		{1e-300, 1e-300, 17, 0},
	}

	for _, tt := range tests {
		got := LRE(tt.computed, tt.reference)
		if math.Abs(got-tt.expected) > tt.delta {
			t.Errorf("LRE(%v, %v) = %v, want %v", tt.computed, tt.reference, got, tt.expected)
		}
	}

	if LRE(math.NaN(), 1) != 0 || LRE(1, math.NaN()) != 0 {
		t.Error("NaN on either side should score 0")
	}
}

func TestRoundTripStorage(t *testing.T) {
	db, err := NewDB(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	run, err := db.BeginRun("unit test")
	if err != nil {
		t.Fatalf("beginning run: %v", err)
	}
	if run.ID == "" {
		t.Fatal("run id should be non-empty")
	}

	cases := []Result{
		{RunID: run.ID, Function: "gamma", Args: [3]float64{4, 0.7, 0}, Computed: 0.9942465424077004, Reference: 0.9942465424077004, LRE: 17},
		{RunID: run.ID, Function: "gamma", Args: [3]float64{2, 10, 0}, Computed: 4.99e-4, Reference: 4.99e-4, LRE: 17},
		{RunID: run.ID, Function: "beta", Args: [3]float64{0.4, 3, 5}, Computed: 0.580096, Reference: 0.58009601, LRE: 7.8},
	}
	for _, c := range cases {
		if err := db.AddResult(c); err != nil {
			t.Fatalf("adding result: %v", err)
		}
	}

	summaries, err := db.Summarize(run.ID)
	if err != nil {
		t.Fatalf("summarizing: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}
	if summaries[0].Function != "beta" || summaries[0].Cases != 1 {
		t.Errorf("beta summary = %+v", summaries[0])
	}
	if summaries[1].Function != "gamma" || summaries[1].Cases != 2 || summaries[1].MinLRE != 17 {
		t.Errorf("gamma summary = %+v", summaries[1])
	}

	worst, err := db.WorstResults(run.ID, 1)
	if err != nil {
		t.Fatalf("querying worst: %v", err)
	}
	if len(worst) != 1 || worst[0].Function != "beta" {
		t.Errorf("worst = %+v, want the beta case", worst)
	}
}
