package derive

import "strings"

// repairTypes is the ordered first-match-wins keyword list for single-label
// repair classification over the description.
var repairTypes = []struct {
	label    string
	keywords []string
}{
	{"Screen Repair", []string{"screen", "display", "lcd"}},
	{"Battery Replacement", []string{"battery"}},
	{"Charging Port", []string{"charging", "port"}},
	{"Camera Repair", []string{"camera"}},
	{"Water Damage", []string{"water", "liquid"}},
	{"Software Issue", []string{"software", "update", "reset"}},
	{"Button Repair", []string{"button", "home"}},
}

// DefaultRepairType is assigned when no keyword group matches.
const DefaultRepairType = "General Repair"

// ClassifyRepairType assigns a single repair-type label to the description.
func ClassifyRepairType(description string) string {
	lower := strings.ToLower(description)
	for _, rt := range repairTypes {
		for _, kw := range rt.keywords {
			if strings.Contains(lower, kw) {
				return rt.label
			}
		}
	}
	return DefaultRepairType
}
