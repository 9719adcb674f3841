package analytics

import "linkedin-agent/models"

// TopHookThreshold is the engagement score above which a hook is remembered
// as a top hook.
const TopHookThreshold = 0.075

// Score derives the engagement score (comments + likes) / views. A post with
// no views scores zero.
func Score(e models.Engagement) float64 {
	if e.Views == 0 {
		return 0
	}
	return float64(e.Comments+e.Likes) / float64(e.Views)
}
