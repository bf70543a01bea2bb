package team

import "time"

type Member struct {
	ID               string  `bson:"id" json:"id"`
	Name             string  `bson:"name" json:"name"`
	Role             string  `bson:"role" json:"role"`
	Avatar           *string `bson:"avatar" json:"avatar"`
	PerformanceScore float64 `bson:"performance_score" json:"performance_score"`
	UserID           string  `bson:"user_id" json:"user_id"`
}

// Performance is a point-in-time team snapshot. A team is identified by the
// id of the user that owns its members.
type Performance struct {
	ID                 string    `bson:"id" json:"id"`
	TeamID             string    `bson:"team_id" json:"team_id"`
	ProductivityScore  float64   `bson:"productivity_score" json:"productivity_score"`
	CollaborationLevel float64   `bson:"collaboration_level" json:"collaboration_level"`
	Morale             float64   `bson:"morale" json:"morale"`
	BurnoutRisk        float64   `bson:"burnout_risk" json:"burnout_risk"`
	TeamSize           int       `bson:"team_size" json:"team_size"`
	Timestamp          time.Time `bson:"timestamp" json:"timestamp"`
}

type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Impact      string `json:"impact"`
	Category    string `json:"category"`
}

type AddMemberRequest struct {
	Name   string  `json:"name" binding:"required"`
	Role   string  `json:"role" binding:"required"`
	Avatar *string `json:"avatar"`
	UserID string  `json:"user_id"`
}

type AnalyzeRequest struct {
	TeamID string `json:"team_id" binding:"required"`
}

var recommendations = []Recommendation{
	{
		Title:       "Schedule Team Building Activity",
		Description: "Morale is slightly below optimal. Consider organizing a team event.",
		Priority:    "medium",
		Impact:      "Improved collaboration and morale",
		Category:    "team_building",
	},
	{
		Title:       "Monitor Workload Distribution",
		Description: "Some team members may be overloaded. Review task assignments.",
		Priority:    "high",
		Impact:      "Reduced burnout risk",
		Category:    "workload",
	},
}
