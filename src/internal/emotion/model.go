package emotion

import "time"

type Analysis struct {
	ID              string             `bson:"id" json:"id"`
	UserID          string             `bson:"user_id" json:"user_id"`
	Text            string             `bson:"text" json:"text"`
	Emotions        map[string]float64 `bson:"emotions" json:"emotions"`
	DominantEmotion string             `bson:"dominant_emotion" json:"dominant_emotion"`
	Confidence      float64            `bson:"confidence" json:"confidence"`
	Timestamp       time.Time          `bson:"timestamp" json:"timestamp"`
	Context         *string            `bson:"context" json:"context"`
	AISummary       string             `bson:"ai_summary,omitempty" json:"ai_summary,omitempty"`
}

type AnalyzeRequest struct {
	UserID  string  `json:"user_id"`
	Text    string  `json:"text" binding:"required"`
	Context *string `json:"context"`
}

// baselineScores are reported until the model output is parsed into scores.
func baselineScores() map[string]float64 {
	return map[string]float64{
		"joy":      0.3,
		"sadness":  0.1,
		"anger":    0.05,
		"fear":     0.05,
		"surprise": 0.2,
		"neutral":  0.3,
	}
}

const (
	baselineDominant   = "joy"
	baselineConfidence = 0.75
)
