package funding

type Opportunity struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	AmountMin      float64  `json:"amount_min"`
	AmountMax      float64  `json:"amount_max"`
	Provider       string   `json:"provider"`
	Eligibility    []string `json:"eligibility"`
	MatchScore     float64  `json:"match_score"`
	Deadline       *string  `json:"deadline"`
	Requirements   []string `json:"requirements"`
	ApplicationURL string   `json:"application_url"`
}

// Opportunity types
const (
	TypeGrant       = "grant"
	TypeLoan        = "loan"
	TypeEquity      = "equity"
	TypeCompetition = "competition"
)

type SearchRequest struct {
	Industry      string   `json:"industry" binding:"required"`
	Stage         string   `json:"stage" binding:"required"`
	Location      string   `json:"location" binding:"required"`
	Revenue       string   `json:"revenue" binding:"required"`
	EmployeeCount int      `json:"employee_count" binding:"gte=0"`
	Needs         []string `json:"needs"`
}
