package formatter

import "strings"

type headerIcon struct {
	Keywords []string
	Icon     string
}

// headerIcons is scanned in order, the first entry with a keyword contained in the header wins.
var headerIcons = []headerIcon{
	{Keywords: []string{"IDENTIFICATION", "PLANT"}, Icon: "🌿"},
	{Keywords: []string{"HEALTH", "STATUS"}, Icon: "💚"},
	{Keywords: []string{"DISEASE", "PROBLEM"}, Icon: "🦠"},
	{Keywords: []string{"SEVERITY"}, Icon: "⚠️"},
	{Keywords: []string{"SYMPTOMS"}, Icon: "🔍"},
	{Keywords: []string{"CAUSES"}, Icon: "🎯"},
	{Keywords: []string{"TREATMENT", "RECOMMENDATIONS"}, Icon: "💊"},
	{Keywords: []string{"PREVENTION"}, Icon: "🛡️"},
	{Keywords: []string{"PROGNOSIS"}, Icon: "📊"},
	{Keywords: []string{"NOTES", "ADDITIONAL"}, Icon: "📝"},
	{Keywords: []string{"CARE"}, Icon: "🌱"},
	{Keywords: []string{"CLASSIFICATION"}, Icon: "📋"},
	{Keywords: []string{"CHARACTERISTICS"}, Icon: "✨"},
	{Keywords: []string{"TOXICITY"}, Icon: "⚠️"},
	{Keywords: []string{"PROPAGATION"}, Icon: "🌱"},
}

// IconFor returns the decoration for a header line, or "" when no keyword matches.
func IconFor(header string) string {
	for _, v := range headerIcons {
		for _, keyword := range v.Keywords {
			if strings.Contains(header, keyword) {
				return v.Icon
			}
		}
	}
	return ""
}
