package scoring

import "testing"

func TestTotalScoreWeights(t *testing.T) {
	cases := []struct {
		name           string
		t, i, p, q     float64
		expected       float64
		expectedLevel  string
	}{
		{"all max", 1.5, 1.5, 1.5, 1.5, 1.5, LevelL5},
		{"all nominal", 1.0, 1.0, 1.0, 1.0, 1.0, LevelL3},
		{"all min", 0.5, 0.5, 0.5, 0.5, 0.5, LevelL1},
		{"mixed", 1.2, 1.0, 0.8, 1.4, 1.08, LevelL3},
		{"rounding", 1.33, 1.21, 0.97, 1.11, 1.2, LevelL4},
	}
	for _, tc := range cases {
		total := TotalScore(tc.t, tc.i, tc.p, tc.q)
		if total != tc.expected {
			t.Fatalf("%s: expected total %v, got %v", tc.name, tc.expected, total)
		}
		if level := ScoreToLevel(total); level != tc.expectedLevel {
			t.Fatalf("%s: expected level %s, got %s", tc.name, tc.expectedLevel, level)
		}
	}
}

func TestScoreToLevelBoundaries(t *testing.T) {
	cases := map[float64]string{
		1.5:  LevelL5,
		1.4:  LevelL5,
		1.39: LevelL4,
		1.15: LevelL4,
		1.14: LevelL3,
		0.9:  LevelL3,
		0.89: LevelL2,
		0.65: LevelL2,
		0.64: LevelL1,
		0.5:  LevelL1,
	}
	for score, expected := range cases {
		if level := ScoreToLevel(score); level != expected {
			t.Fatalf("score %v: expected %s, got %s", score, expected, level)
		}
	}
}

func TestLevelScoreRoundTrip(t *testing.T) {
	for _, level := range []string{LevelL1, LevelL2, LevelL3, LevelL4, LevelL5} {
		if got := ScoreToLevel(LevelToScore(level)); got != level {
			t.Fatalf("round trip for %s produced %s", level, got)
		}
	}
	if LevelToScore(LevelL4) != 1.2 {
		t.Fatalf("expected canonical L4 score 1.2, got %v", LevelToScore(LevelL4))
	}
	if ScoreToLevel(1.2) != LevelL4 {
		t.Fatalf("expected 1.2 to map to L4, got %s", ScoreToLevel(1.2))
	}
}

func TestLevelToScoreUnknownDefaults(t *testing.T) {
	for _, input := range []string{"", "l5", "L6", "level3", "L 1"} {
		if got := LevelToScore(input); got != 1.0 {
			t.Fatalf("expected default 1.0 for %q, got %v", input, got)
		}
	}
}
