package models

import "time"

type ActivityMessage struct {
	UserID      string            `json:"user_id"`
	ServiceName string            `json:"service_name"`
	Action      string            `json:"action"`
	IPAddress   string            `json:"ip_address,omitempty"`
	UserAgent   string            `json:"user_agent,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
}

// Activity action constants
const (
	ActionSessionCreated    = "session_created"
	ActionLogout            = "logout"
	ActionEmotionAnalyzed   = "emotion_analyzed"
	ActionTeamMemberAdded   = "team_member_added"
	ActionTeamAnalyzed      = "team_analyzed"
	ActionPersonaGenerated  = "persona_generated"
	ActionPersonaDeleted    = "persona_deleted"
	ActionComplianceChecked = "compliance_checked"
	ActionDNAGenerated      = "dna_generated"
	ActionInsightsGenerated = "insights_generated"
)

// Service name constants
const (
	ServiceAuth       = "bizpulse.auth"
	ServiceEmotion    = "bizpulse.emotion"
	ServiceTeam       = "bizpulse.team"
	ServicePersona    = "bizpulse.persona"
	ServiceCompliance = "bizpulse.compliance"
	ServiceDNA        = "bizpulse.dna"
	ServiceCommunity  = "bizpulse.community"
)
