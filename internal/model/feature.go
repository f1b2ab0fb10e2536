package model

import "time"

// Feature is a candidate product change being scored and tracked. TotalScore
// is derived: after every create, and after every update that touches
// ImpactScore or EffortScore, it equals ComputeTotalScore(impact, effort).
type Feature struct {
	ID            uint64    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	CreatedByID   uint64    `json:"createdById"`
	ImpactScore   int       `json:"impactScore"`
	EffortScore   int       `json:"effortScore"`
	TotalScore    int       `json:"totalScore"`
	Status        string    `json:"status"`
	CustomerType  string    `json:"customerType"`
	CustomerCount int       `json:"customerCount"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// FeatureInput carries the fields accepted when creating a feature. Any
// caller-supplied total score is ignored; the store computes it.
type FeatureInput struct {
	Title         string
	Description   string
	CreatedByID   uint64
	ImpactScore   int
	EffortScore   int
	Status        string
	CustomerType  string
	CustomerCount int
	Category      string
	Tags          []string
}

// FeaturePatch is a partial update. Nil fields are left untouched; the
// store merges the rest onto the stored feature and re-stamps UpdatedAt.
type FeaturePatch struct {
	Title         *string
	Description   *string
	ImpactScore   *int
	EffortScore   *int
	Status        *string
	CustomerType  *string
	CustomerCount *int
	Category      *string
	Tags          *[]string
}

// TouchesScore reports whether applying the patch requires recomputing the
// total score.
func (p FeaturePatch) TouchesScore() bool {
	return p.ImpactScore != nil || p.EffortScore != nil
}

// Defaults applied when a create request omits the corresponding field.
// They mirror the column defaults of the original dashboard schema.
const (
	DefaultImpactScore  = 50
	DefaultEffortScore  = 50
	DefaultStatus       = "pending"
	DefaultCustomerType = "internal"
	DefaultCategory     = "feature"
)

// featureStatuses is the closed set of accepted workflow states. The set is
// deliberately wide: it covers every value observed in historical data, not
// just the three-state pending/approved/rejected core.
var featureStatuses = map[string]bool{
	"pending":     true,
	"approved":    true,
	"rejected":    true,
	"in_progress": true,
	"completed":   true,
	"planning":    true,
	"research":    true,
	"development": true,
	"backlog":     true,
}

// customerTypes is the closed set of accepted customer segments, including
// the "mid-market" and "all" values present in seed data.
var customerTypes = map[string]bool{
	"internal":   true,
	"enterprise": true,
	"smb":        true,
	"mid-market": true,
	"all":        true,
}

// ValidStatus reports whether s is an accepted feature status.
func ValidStatus(s string) bool { return featureStatuses[s] }

// ValidCustomerType reports whether s is an accepted customer segment.
func ValidCustomerType(s string) bool { return customerTypes[s] }

// ValidScore reports whether n is a valid impact or effort score.
func ValidScore(n int) bool { return n >= 0 && n <= 100 }
