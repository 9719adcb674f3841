package content

import "linkedin-agent/models"

// defaultTemplates is the set synthesized on first run. The structure slots
// reference the standard variable categories so composed posts draw from the
// candidate pools below.
var defaultTemplates = []models.Template{
	{
		Name:        "ai-development",
		Title:       "AI Development Progress",
		Description: "Daily updates on AI development journey",
		Category:    "tech",
		Hooks: []string{
			"Just automated my LinkedIn posting with AI!",
			"The future of work is here - AI automation is game-changing!",
			"From zero to automation hero in just {days} days!",
		},
		Structure: map[string]string{
			"metrics":   "{metrics}",
			"technical": "{technical_details}",
			"challenge": "{challenges}",
			"solution":  "{solutions}",
			"insight":   "{insights}",
			"question":  "{questions}",
		},
		Hashtags: []string{"#AI", "#Automation", "#Productivity", "#CursorAI"},
		Variables: map[string][]string{
			"metrics": {
				"📊 80% time reduction on content creation",
				"📊 Automated 3 social media platforms in one day",
				"📊 AI agent handling repetitive tasks 10x faster",
			},
			"technical_details": {
				"🔧 Built with Go, cron and the LinkedIn API v2",
				"🔧 LinkedIn API integration working perfectly",
				"🔧 Mastered workflow automation end to end",
			},
			"challenges": {
				"🎯 LinkedIn API rate limiting during peak hours",
				"🎯 Adding Twitter automation next",
				"🎯 Scaling to multiple platforms",
			},
			"solutions": {
				"✅ Implemented exponential backoff for API retries",
				"✅ Verified app credentials unlocked stable API access",
			},
			"insights": {
				"💡 AI agents can handle repetitive tasks 10x faster",
				"💡 Verified apps are crucial for API access",
				"💡 No-code tools + AI = unlimited possibilities",
			},
			"questions": {
				"🤔 What's your biggest automation challenge?",
				"🤔 Which task would you automate first?",
			},
		},
	},
	{
		Name:        "productivity",
		Title:       "Productivity Breakthrough",
		Description: "Workflow and productivity wins",
		Category:    "business",
		Hooks: []string{
			"Just saved {hours} hours with automation!",
			"This {tool} changed my workflow forever!",
			"Productivity hack: {method} = {result}!",
		},
		Structure: map[string]string{
			"metrics":   "{metrics}",
			"technical": "{technical_details}",
			"challenge": "{challenges}",
			"solution":  "{solutions}",
			"insight":   "{insights}",
			"question":  "{questions}",
		},
		Hashtags: []string{"#Productivity", "#Automation", "#Workflow", "#Efficiency"},
		Variables: map[string][]string{
			"metrics": {
				"📊 Reclaimed 10+ hours a week through automation",
				"📊 Cut my content pipeline from hours to minutes",
			},
			"technical_details": {
				"🔧 One daily cron job replaces a whole checklist",
				"🔧 Templates + rotation keep the feed fresh hands-free",
			},
			"challenges": {
				"🎯 Building the analytics dashboard next",
				"🎯 Keeping generated content from sounding robotic",
			},
			"solutions": {
				"✅ Variable pools keep every post a little different",
				"✅ Dry-run mode caught issues before they went live",
			},
			"insights": {
				"💡 Automation is the future of social media management",
				"💡 Consistency beats intensity when posting daily",
			},
			"questions": {
				"🤔 What's the most tedious part of your workflow?",
				"🤔 What would you do with 10 extra hours a week?",
			},
		},
	},
	{
		Name:        "learning-journey",
		Title:       "Learning Journey",
		Description: "Lessons from learning in public",
		Category:    "lifestyle",
		Hooks: []string{
			"Learning {skill} in {timeframe} - here's what worked!",
			"From beginner to {level} in {days} days!",
			"The {number} things I learned about {topic}!",
		},
		Structure: map[string]string{
			"metrics":   "{metrics}",
			"technical": "{technical_details}",
			"challenge": "{challenges}",
			"solution":  "{solutions}",
			"insight":   "{insights}",
			"question":  "{questions}",
		},
		Hashtags: []string{"#Learning", "#Growth", "#Development", "#Skills"},
		Variables: map[string][]string{
			"metrics": {
				"📊 Shipped something small every single day",
				"📊 One month of daily posts without missing a day",
			},
			"technical_details": {
				"🔧 Learned by wiring real APIs, not toy examples",
				"🔧 Reading production code taught me more than tutorials",
			},
			"challenges": {
				"🎯 Integrating with new APIs without documentation",
				"🎯 Staying consistent when motivation dips",
			},
			"solutions": {
				"✅ A scheduler that posts even when I forget",
				"✅ Small daily goals instead of big weekly ones",
			},
			"insights": {
				"💡 Learning in public compounds faster than studying alone",
				"💡 The best way to learn a system is to automate it",
			},
			"questions": {
				"🤔 What are you learning right now?",
				"🤔 What skill paid off the most for you this year?",
			},
		},
	},
}
