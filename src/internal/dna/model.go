package dna

import "time"

type PersonalityMetrics struct {
	InnovationIndex    float64 `bson:"innovation_index" json:"innovation_index"`
	RiskTolerance      float64 `bson:"risk_tolerance" json:"risk_tolerance"`
	CustomerCentricity float64 `bson:"customer_centricity" json:"customer_centricity"`
	DataOrientation    float64 `bson:"data_orientation" json:"data_orientation"`
	Agility            float64 `bson:"agility" json:"agility"`
}

type SWOT struct {
	Strengths     []string `bson:"strengths" json:"strengths"`
	Weaknesses    []string `bson:"weaknesses" json:"weaknesses"`
	Opportunities []string `bson:"opportunities" json:"opportunities"`
	Threats       []string `bson:"threats" json:"threats"`
}

type BusinessDNA struct {
	ID          string             `bson:"id" json:"id"`
	CompanyID   string             `bson:"company_id" json:"company_id"`
	CompanyName string             `bson:"company_name" json:"company_name"`
	Industry    string             `bson:"industry" json:"industry"`
	Stage       string             `bson:"stage" json:"stage"`
	Personality PersonalityMetrics `bson:"personality" json:"personality"`
	SWOT        SWOT               `bson:"swot" json:"swot"`
	Preferences map[string]string  `bson:"preferences" json:"preferences"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UserID      string             `bson:"user_id" json:"user_id"`
	AISummary   string             `bson:"ai_summary,omitempty" json:"ai_summary,omitempty"`
}

type GenerateRequest struct {
	CompanyName string   `json:"company_name" binding:"required"`
	Industry    string   `json:"industry" binding:"required"`
	Stage       string   `json:"stage" binding:"required"`
	Size        string   `json:"size" binding:"required"`
	Values      []string `json:"values"`
	Challenges  []string `json:"challenges"`
	UserID      string   `json:"user_id"`
}

func baselinePersonality() PersonalityMetrics {
	return PersonalityMetrics{
		InnovationIndex:    78.0,
		RiskTolerance:      65.0,
		CustomerCentricity: 88.0,
		DataOrientation:    72.0,
		Agility:            80.0,
	}
}

func baselineSWOT() SWOT {
	return SWOT{
		Strengths:     []string{"Strong customer base", "Innovative product"},
		Weaknesses:    []string{"Limited resources", "Small team"},
		Opportunities: []string{"Market expansion", "New partnerships"},
		Threats:       []string{"Competition", "Economic uncertainty"},
	}
}

func baselinePreferences() map[string]string {
	return map[string]string{
		"communication_style": "casual",
		"decision_speed":      "moderate",
		"growth_strategy":     "organic",
	}
}
