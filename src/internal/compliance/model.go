package compliance

import "time"

// Check statuses
const (
	StatusCompliant    = "compliant"
	StatusWarning      = "warning"
	StatusNonCompliant = "non-compliant"
)

type Check struct {
	Category        string   `bson:"category" json:"category"`
	Status          string   `bson:"status" json:"status"`
	Score           float64  `bson:"score" json:"score"`
	Issues          []string `bson:"issues" json:"issues"`
	Recommendations []string `bson:"recommendations" json:"recommendations"`
}

type Report struct {
	ID           string    `bson:"id" json:"id"`
	Timestamp    time.Time `bson:"timestamp" json:"timestamp"`
	Checks       []Check   `bson:"checks" json:"checks"`
	OverallScore float64   `bson:"overall_score" json:"overall_score"`
	UserID       string    `bson:"user_id" json:"user_id"`
}

type CheckRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	Industry    string `json:"industry" binding:"required"`
	Size        string `json:"size" binding:"required"`
	Location    string `json:"location" binding:"required"`
	UserID      string `json:"user_id"`
}

func baselineChecks() []Check {
	return []Check{
		{
			Category:        "Data Privacy",
			Status:          StatusCompliant,
			Score:           92.0,
			Issues:          []string{},
			Recommendations: []string{"Update privacy policy annually"},
		},
		{
			Category:        "Employment Law",
			Status:          StatusWarning,
			Score:           75.0,
			Issues:          []string{"Missing harassment training records"},
			Recommendations: []string{"Schedule annual training", "Update employee handbook"},
		},
	}
}

// OverallScore is the mean of the check scores.
func OverallScore(checks []Check) float64 {
	if len(checks) == 0 {
		return 0
	}
	var total float64
	for _, check := range checks {
		total += check.Score
	}
	return total / float64(len(checks))
}
