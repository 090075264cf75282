package derive

import (
	"strings"
	"time"

	"repairsync/internal/domain/lifecycle"
	vo "repairsync/internal/domain/lifecycle/valueobjects"
)

// NormalizeComment maps the closed set of known raw comment shapes to the
// canonical form. The external service uses body/text/comment for content,
// author/user_name/tech for the writer, and created_at/date/timestamp for
// the time, depending on endpoint. Returns ok=false when no content field
// is present in any recognized variant.
func NormalizeComment(raw lifecycle.RawComment) (lifecycle.NormalizedComment, bool) {
	text := firstString(raw.Body, raw.Text, raw.Comment)
	if text == "" {
		return lifecycle.NormalizedComment{}, false
	}

	author := firstString(raw.Author, raw.UserName, raw.Tech)
	if author == "" {
		author = "Unknown"
	}

	timestamp := firstTime(raw.CreatedAt, raw.Date, raw.Timestamp)
	if timestamp.IsZero() {
		return lifecycle.NormalizedComment{}, false
	}

	isInternal := raw.Hidden != nil && *raw.Hidden

	return lifecycle.NormalizedComment{
		Text:       strings.TrimSpace(text),
		Author:     strings.TrimSpace(author),
		Timestamp:  timestamp.UTC(),
		IsInternal: isInternal,
	}, true
}

func firstString(candidates ...*string) string {
	for _, c := range candidates {
		if c != nil && strings.TrimSpace(*c) != "" {
			return *c
		}
	}
	return ""
}

func firstTime(candidates ...*time.Time) time.Time {
	for _, c := range candidates {
		if c != nil && !c.IsZero() {
			return *c
		}
	}
	return time.Time{}
}

var (
	reworkTagKeywords  = []string{"rework", "redo", "fix again", "not working", "still broken", "returned", "failed"}
	qualityTagKeywords = []string{"quality", "defect", "issue", "problem", "damaged", "scratch"}
	partsTagKeywords   = []string{"part", "screen", "battery", "component", "replacement", "ordered"}
	timeTagKeywords    = []string{"hour", "minute", "delay", "waiting", "eta", "tomorrow", "schedule"}
)

// ClassifyCommentTags computes the four independent classification flags by
// keyword-set membership over the comment text.
func ClassifyCommentTags(text string) vo.CommentTags {
	lower := strings.ToLower(text)
	return vo.CommentTags{
		MentionsRework:  containsAny(lower, reworkTagKeywords),
		MentionsQuality: containsAny(lower, qualityTagKeywords),
		MentionsParts:   containsAny(lower, partsTagKeywords),
		MentionsTime:    containsAny(lower, timeTagKeywords),
	}
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
