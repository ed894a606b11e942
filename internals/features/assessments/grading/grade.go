// file: internals/features/assessments/grading/grade.go
package grading

/* =========================================================
   Derived grade

   percentage = 100 * score / max. Not clamped: scoring above
   max legitimately yields >100%. Letter + label come from the
   first matching threshold, evaluated high to low; boundaries
   are closed above (exactly 90.0 is an A+).
========================================================= */

const DefaultMaxScore = 100

type GradeResult struct {
	Percentage float64 `json:"percentage"`
	Letter     string  `json:"letter"`
	Label      string  `json:"label"`
}

type threshold struct {
	Min    float64
	Letter string
	Label  string
}

var thresholds = []threshold{
	{90, "A+", "Excellent"},
	{85, "A", "Very Good"},
	{80, "A-", "Good"},
	{75, "B+", "Above Average"},
	{70, "B", "Average"},
	{65, "B-", "Satisfactory"},
	{60, "C+", "Below Average"},
	{55, "C", "Needs Improvement"},
	{50, "C-", "Poor"},
	{45, "D+", "Very Poor"},
	{40, "D", "Fail"},
}

// Grade converts a raw score against a max into percentage, letter
// and performance label. maxScore <= 0 falls back to the default
// of 100. Negative scores are rejected upstream by validation;
// this function never errors.
func Grade(score, maxScore float64) GradeResult {
	if maxScore <= 0 {
		maxScore = DefaultMaxScore
	}
	pct := 100 * score / maxScore

	for _, t := range thresholds {
		if pct >= t.Min {
			return GradeResult{Percentage: pct, Letter: t.Letter, Label: t.Label}
		}
	}
	return GradeResult{Percentage: pct, Letter: "F", Label: "Fail"}
}
