package dashboard

type Activity struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Time    string `json:"time"`
}

var recentActivities = []Activity{
	{Type: "customer", Message: "New customer: Acme Corp", Time: "2 hours ago"},
	{Type: "payment", Message: "Payment received: $5,000", Time: "5 hours ago"},
	{Type: "analysis", Message: "AI analysis completed", Time: "1 day ago"},
}
