package community

import "time"

// Insight types
const (
	InsightTrend        = "trend"
	InsightBestPractice = "best_practice"
	InsightWarning      = "warning"
	InsightOpportunity  = "opportunity"
)

type Insight struct {
	ID             string         `bson:"id" json:"id"`
	Title          string         `bson:"title" json:"title"`
	Description    string         `bson:"description" json:"description"`
	Type           string         `bson:"type" json:"type"`
	Category       string         `bson:"category" json:"category"`
	RelevanceScore float64        `bson:"relevance_score" json:"relevance_score"`
	Source         string         `bson:"source" json:"source"`
	Engagement     map[string]int `bson:"engagement" json:"engagement"`
	Timestamp      time.Time      `bson:"timestamp" json:"timestamp"`
	UserID         string         `bson:"user_id" json:"-"`
	AISummary      string         `bson:"ai_summary,omitempty" json:"ai_summary,omitempty"`
}

type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	Author    string    `json:"author"`
	ReadTime  int       `json:"read_time"`
	CreatedAt time.Time `json:"created_at"`
}

type Expert struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Title          string   `json:"title"`
	Specialization []string `json:"specialization"`
	ExpertiseLevel float64  `json:"expertise_level"`
	Rating         float64  `json:"rating"`
	Bio            string   `json:"bio"`
}

// Insight timeframes
const (
	TimeframeDay   = "day"
	TimeframeWeek  = "week"
	TimeframeMonth = "month"
)

type InsightsRequest struct {
	Industry  string `json:"industry" binding:"required"`
	Topic     string `json:"topic" binding:"required"`
	Timeframe string `json:"timeframe" binding:"required,oneof=day week month"`
}

type SearchQuery struct {
	Query string `form:"query"`
	Limit int    `form:"limit"`
}
