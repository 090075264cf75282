// Package derive contains the pure derivation functions applied to external
// ticket data during reconciliation: device and repair classification,
// comment normalization, rework detection, timing estimation, quality
// scoring, and sync-priority scheduling. No function in this package
// performs I/O.
package derive

import "regexp"

// devicePatterns is the ordered list of fixed device patterns matched
// against free-text descriptions. First match wins.
var devicePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)iPhone\s*\d+\s*(Pro\s*Max|Pro|Plus|mini)?`),
	regexp.MustCompile(`(?i)Galaxy\s*(S|A|Z|Note)\s*\d+\s*(Ultra|Plus|FE)?`),
	regexp.MustCompile(`(?i)iPad\s*(Pro|Air|mini)?\s*\d*`),
	regexp.MustCompile(`(?i)MacBook\s*(Pro|Air)?`),
	regexp.MustCompile(`(?i)Apple\s*Watch\s*(Series\s*\d+|Ultra)?`),
	regexp.MustCompile(`(?i)Pixel\s*\d+\s*(Pro|a)?`),
	regexp.MustCompile(`(?i)Surface\s*(Pro|Laptop|Go)?\s*\d*`),
}

// ExtractDeviceInfo returns the first device pattern matched in the
// description, or the empty string when nothing matches.
func ExtractDeviceInfo(description string) string {
	for _, pattern := range devicePatterns {
		if match := pattern.FindString(description); match != "" {
			return match
		}
	}
	return ""
}

// deviceCategories maps keyword groups to reporting buckets. Ordered,
// first match wins, same pattern as repair-type classification.
var deviceCategories = []struct {
	category string
	pattern  *regexp.Regexp
}{
	{"iPhone", regexp.MustCompile(`(?i)iphone`)},
	{"Samsung", regexp.MustCompile(`(?i)galaxy|samsung`)},
	{"iPad", regexp.MustCompile(`(?i)ipad`)},
	{"MacBook", regexp.MustCompile(`(?i)macbook|imac`)},
	{"Watch", regexp.MustCompile(`(?i)apple\s*watch|smartwatch`)},
	{"Android", regexp.MustCompile(`(?i)pixel|android|oneplus|xiaomi|huawei`)},
	{"Laptop", regexp.MustCompile(`(?i)laptop|surface|thinkpad|notebook`)},
}

// ClassifyDeviceCategory buckets a ticket for device-level analytics using
// the extracted device info first and the raw description as fallback.
func ClassifyDeviceCategory(deviceInfo, description string) string {
	for _, dc := range deviceCategories {
		if dc.pattern.MatchString(deviceInfo) {
			return dc.category
		}
	}
	for _, dc := range deviceCategories {
		if dc.pattern.MatchString(description) {
			return dc.category
		}
	}
	return "Other"
}
