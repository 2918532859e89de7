package wordle

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCheckResultDecodesScores(t *testing.T) {
	raw := `{"guess":"slate","correct":false,"result":[1,2,0,2,2]}`

	var got CheckResult
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []Score{ScorePresent, ScoreAbsent, ScoreCorrect, ScoreAbsent, ScoreAbsent}
	if len(got.Result) != len(want) {
		t.Fatalf("expected %d scores, got %d", len(want), len(got.Result))
	}
	for i := range want {
		if got.Result[i] != want[i] {
			t.Errorf("result[%d] = %d, want %d", i, got.Result[i], want[i])
		}
	}
	if got.Codes() != "1, 2, 0, 2, 2" {
		t.Errorf("Codes() = %q", got.Codes())
	}
	if got.Share() != "🟨⬛🟩⬛⬛" {
		t.Errorf("Share() = %q", got.Share())
	}
}

func TestScoreString(t *testing.T) {
	cases := []struct {
		score Score
		want  string
	}{
		{ScoreCorrect, "correct"},
		{ScorePresent, "present"},
		{ScoreAbsent, "absent"},
		{Score(7), "unknown"},
	}
	for _, c := range cases {
		if got := c.score.String(); got != c.want {
			t.Errorf("Score(%d).String() = %q, want %q", c.score, got, c.want)
		}
	}
}

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2025, 3, 2, 5, 0, 0, 0, loc)

	if got := DateKey(ts); got != "2025-03-01" {
		t.Fatalf("DateKey = %q, want 2025-03-01", got)
	}

	parsed, err := ParseDate("2025-03-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if DateKey(parsed) != "2025-03-01" {
		t.Fatalf("round trip mismatch: %s", DateKey(parsed))
	}
}
