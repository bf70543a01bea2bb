package persona

import "time"

type Stakeholder struct {
	Name           string   `bson:"name" json:"name"`
	Role           string   `bson:"role" json:"role"`
	InfluenceLevel float64  `bson:"influence_level" json:"influence_level"`
	Concerns       []string `bson:"concerns" json:"concerns"`
}

type ClientPersona struct {
	ID              string        `bson:"id" json:"id"`
	Name            string        `bson:"name" json:"name"`
	Title           string        `bson:"title" json:"title"`
	Company         string        `bson:"company" json:"company"`
	Industry        string        `bson:"industry" json:"industry"`
	CompanySize     string        `bson:"company_size" json:"company_size"`
	BudgetRange     string        `bson:"budget_range" json:"budget_range"`
	PainPoints      []string      `bson:"pain_points" json:"pain_points"`
	Goals           []string      `bson:"goals" json:"goals"`
	DecisionStyle   string        `bson:"decision_style" json:"decision_style"`
	Stakeholders    []Stakeholder `bson:"stakeholders" json:"stakeholders"`
	ConfidenceScore float64       `bson:"confidence_score" json:"confidence_score"`
	CreatedAt       time.Time     `bson:"created_at" json:"created_at"`
	UserID          string        `bson:"user_id" json:"user_id"`
	AISummary       string        `bson:"ai_summary,omitempty" json:"ai_summary,omitempty"`
}

type GenerateRequest struct {
	Industry    string  `json:"industry" binding:"required"`
	CompanySize string  `json:"company_size" binding:"required"`
	BudgetRange string  `json:"budget_range" binding:"required"`
	Context     *string `json:"context"`
	UserID      string  `json:"user_id"`
}

// template fills the persona fields the model output does not drive yet.
func template() ClientPersona {
	return ClientPersona{
		Name:    "Sarah Johnson",
		Title:   "Director of Operations",
		Company: "TechCorp Solutions",
		PainPoints: []string{
			"Manual processes consuming too much time",
			"Difficulty scaling operations",
			"Data silos across departments",
		},
		Goals: []string{
			"Automate 50% of manual tasks",
			"Improve team productivity by 30%",
			"Centralize data management",
		},
		DecisionStyle: "Data-driven with focus on ROI",
		Stakeholders: []Stakeholder{
			{
				Name:           "John Smith",
				Role:           "CTO",
				InfluenceLevel: 85,
				Concerns:       []string{"Technical integration", "Security"},
			},
		},
		ConfidenceScore: 0.82,
	}
}
