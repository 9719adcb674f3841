package content

import (
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"linkedin-agent/models"
)

// Picker selects one element from a candidate list. The composer is a pure
// function apart from this draw, so tests inject a deterministic Picker.
type Picker interface {
	PickOne(candidates []string) string
}

// RandPicker draws uniformly at random.
type RandPicker struct {
	rng *rand.Rand
}

func NewRandPicker() *RandPicker {
	return &RandPicker{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (p *RandPicker) PickOne(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	return candidates[p.rng.Intn(len(candidates))]
}

// Composition is the final post text plus the hook chosen for it. The hook is
// not part of the body; it is the join key the performance tracker scores.
type Composition struct {
	Text string
	Hook string
}

// categoryFallbacks are the fixed strings used when a template references a
// variable category it does not define.
var categoryFallbacks = map[string]string{
	"metrics":           "📊 80% time reduction on content creation",
	"technical_details": "🔧 Built with Go, cron and the LinkedIn API v2",
	"challenges":        "🎯 LinkedIn API rate limiting during peak hours",
	"solutions":         "✅ Implemented exponential backoff for API retries",
	"insights":          "💡 AI agents can handle repetitive tasks 10x faster",
	"questions":         "🤔 What's your biggest automation challenge?",
}

// genericFallback covers categories outside the standard set.
const genericFallback = "Making steady progress every day"

// slotOrder fixes the rendering order of known structure slots. Slots not
// listed here render afterwards in name order; JSON objects carry no order of
// their own.
var slotOrder = []string{
	"day", "hook", "metrics", "technical", "recentWin",
	"challenge", "inProgress", "solution", "insight", "question",
}

var tokenPattern = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Composer fills a template's structure slots with drawn variable values and
// date-derived fields.
type Composer struct {
	Picker Picker
}

func NewComposer(picker Picker) *Composer {
	return &Composer{Picker: picker}
}

// Compose builds the post for tpl on the calendar day of now. The output
// always starts with the day-of-year header, then the rendered structure
// slots, a blank line, and the joined hashtags.
func (c *Composer) Compose(tpl models.Template, now time.Time) Composition {
	day := now.YearDay()

	header := fmt.Sprintf("Day %d of building my AI Agent:", day)
	if custom, ok := tpl.Structure["day"]; ok {
		header = c.substitute(custom, tpl, day)
	}

	lines := []string{header, ""}
	slots := orderedSlots(tpl.Structure)
	for i, slot := range slots {
		if i == len(slots)-1 && len(slots) > 1 {
			lines = append(lines, "")
		}
		lines = append(lines, c.substitute(tpl.Structure[slot], tpl, day))
	}

	text := strings.Join(lines, "\n")
	if len(tpl.Hashtags) > 0 {
		text += "\n\n" + strings.Join(tpl.Hashtags, " ")
	}
	if !strings.Contains(text, strconv.Itoa(day)) {
		text = fmt.Sprintf("Day %d of building my AI Agent:\n\n", day) + text
	}

	var hook string
	if len(tpl.Hooks) > 0 {
		hook = c.substitute(c.Picker.PickOne(tpl.Hooks), tpl, day)
	}

	return Composition{Text: text, Hook: hook}
}

// orderedSlots returns the non-day structure slot names in canonical order.
func orderedSlots(structure map[string]string) []string {
	seen := make(map[string]bool, len(structure))
	var slots []string
	for _, name := range slotOrder {
		if name == "day" {
			continue
		}
		if _, ok := structure[name]; ok {
			slots = append(slots, name)
			seen[name] = true
		}
	}
	var rest []string
	for name := range structure {
		if name != "day" && !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(slots, rest...)
}

// substitute replaces {current_day}, {days} and variable-category tokens in s.
// Categories the template does not define fall back to a fixed string.
func (c *Composer) substitute(s string, tpl models.Template, day int) string {
	return tokenPattern.ReplaceAllStringFunc(s, func(match string) string {
		token := strings.Trim(match, "{}")
		switch token {
		case "current_day", "days":
			return strconv.Itoa(day)
		}
		if candidates := tpl.Variables[token]; len(candidates) > 0 {
			return c.Picker.PickOne(candidates)
		}
		if fallback, ok := categoryFallbacks[token]; ok {
			return fallback
		}
		return genericFallback
	})
}
