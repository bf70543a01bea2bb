package funding

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Service interface {
	Search(req *SearchRequest) []Opportunity
}

type service struct{}

func NewService() Service {
	return &service{}
}

// Search returns the curated catalog. Matching against the request is not
// implemented; the request is only logged.
func (s *service) Search(req *SearchRequest) []Opportunity {
	logrus.WithFields(logrus.Fields{
		"industry": req.Industry,
		"stage":    req.Stage,
		"location": req.Location,
	}).Debug("Funding search")

	return catalog()
}

func catalog() []Opportunity {
	deadline := "2025-12-31"

	return []Opportunity{
		{
			ID:             uuid.NewString(),
			Name:           "Small Business Innovation Grant",
			Type:           TypeGrant,
			AmountMin:      25000,
			AmountMax:      100000,
			Provider:       "State Economic Development",
			Eligibility:    []string{"Registered business", "< 50 employees", "Technology sector"},
			MatchScore:     87.5,
			Deadline:       &deadline,
			Requirements:   []string{"Business plan", "Financial statements", "Pitch deck"},
			ApplicationURL: "https://example.com/apply",
		},
		{
			ID:             uuid.NewString(),
			Name:           "Growth Capital Loan",
			Type:           TypeLoan,
			AmountMin:      50000,
			AmountMax:      500000,
			Provider:       "Regional Development Bank",
			Eligibility:    []string{"2+ years in business", "Positive cash flow"},
			MatchScore:     72.0,
			Requirements:   []string{"Credit check", "Collateral", "Business financials"},
			ApplicationURL: "https://example.com/loan",
		},
	}
}
