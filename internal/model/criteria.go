package model

// ScoringCriteria is a named, weighted dimension shown alongside the score
// matrix (e.g. Revenue Impact). Weights are informational: they are not fed
// into the total-score formula and are not required to sum to 100.
type ScoringCriteria struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Weight      int    `json:"weight"`
	Order       int    `json:"order"`
}

// CriteriaInput carries the fields accepted when creating a criterion.
type CriteriaInput struct {
	Name        string
	Description string
	Weight      int
	Order       int
}

// CriteriaPatch is a partial update for a criterion. Nil fields are left
// untouched.
type CriteriaPatch struct {
	Name        *string
	Description *string
	Weight      *int
	Order       *int
}

// DefaultCriteriaWeight is applied when a create request omits the weight.
const DefaultCriteriaWeight = 20

// ValidWeight reports whether n is a valid criteria weight.
func ValidWeight(n int) bool { return n >= 0 && n <= 100 }
