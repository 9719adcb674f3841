package models

// Engagement holds the raw metrics the analytics endpoint reports for a post.
type Engagement struct {
	Views    int `json:"views"`
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
}

// HookScore is a historical hook with its best observed engagement score.
type HookScore struct {
	Hook  string  `json:"hook"`
	Score float64 `json:"score"`
}

// AnalyticsSummary aggregates post performance for the dashboard collaborator.
type AnalyticsSummary struct {
	TotalPosts            int     `json:"totalPosts"`
	TotalViews            int     `json:"totalViews"`
	TotalLikes            int     `json:"totalLikes"`
	TotalComments         int     `json:"totalComments"`
	TotalShares           int     `json:"totalShares"`
	AverageEngagementRate float64 `json:"averageEngagementRate"`
	BestPerformingPost    string  `json:"bestPerformingPost,omitempty"`
	WorstPerformingPost   string  `json:"worstPerformingPost,omitempty"`
}
