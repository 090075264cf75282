package derive

import (
	"fmt"
	"strings"

	"repairsync/internal/domain/lifecycle"
	vo "repairsync/internal/domain/lifecycle/valueobjects"
)

// reworkKeywords is the fixed keyword set indicating a repair had to be
// redone or failed after initial completion.
var reworkKeywords = []string{
	"rework",
	"redo",
	"fix again",
	"not working",
	"still broken",
	"returned",
	"failed",
}

// DetectRework scans the description and then every comment for rework
// language. The first hit in a source text sets the reason; each source
// text contributes at most one increment to the count regardless of how
// many keywords it contains.
func DetectRework(description string, comments []lifecycle.NormalizedComment) vo.ReworkInfo {
	info := vo.ReworkInfo{}

	if kw := firstReworkKeyword(description); kw != "" {
		info.IsRework = true
		info.Reason = fmt.Sprintf("%q found in description", kw)
		info.Count++
	}

	for i, c := range comments {
		kw := firstReworkKeyword(c.Text)
		if kw == "" {
			continue
		}
		if !info.IsRework {
			info.IsRework = true
			info.Reason = fmt.Sprintf("%q found in comment %d", kw, i+1)
		}
		info.Count++
	}

	return info
}

func firstReworkKeyword(text string) string {
	lower := strings.ToLower(text)
	for _, kw := range reworkKeywords {
		if strings.Contains(lower, kw) {
			return kw
		}
	}
	return ""
}
