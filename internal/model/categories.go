package model

import "strings"

// Well-known profile categories.
const (
	CategoryLanguages = "languages"
	CategoryWeb       = "web"
	CategoryWeb3      = "web3"
	CategoryData      = "data"
	CategoryMobile    = "mobile"
	CategoryDevOps    = "devops"
	CategoryOther     = "other"
)

// categoryPatterns maps id/name tokens to category names. Order matters for
// substring matches: more specific tokens come first.
var categoryPatterns = []struct {
	token    string
	category string
}{
	// Web3
	{"solidity", CategoryWeb3},
	{"ethereum", CategoryWeb3},
	{"hardhat", CategoryWeb3},
	{"foundry", CategoryWeb3},
	{"web3", CategoryWeb3},

	// Mobile
	{"flutter", CategoryMobile},
	{"react-native", CategoryMobile},
	{"android", CategoryMobile},
	{"ios", CategoryMobile},
	{"mobile", CategoryMobile},

	// Data
	{"data-science", CategoryData},
	{"jupyter", CategoryData},
	{"pytorch", CategoryData},
	{"tensorflow", CategoryData},
	{"ml", CategoryData},

	// DevOps
	{"docker", CategoryDevOps},
	{"podman", CategoryDevOps},
	{"kubernetes", CategoryDevOps},
	{"terraform", CategoryDevOps},
	{"ansible", CategoryDevOps},

	// Web
	{"frontend", CategoryWeb},
	{"fullstack", CategoryWeb},
	{"react", CategoryWeb},
	{"web", CategoryWeb},

	// Languages
	{"python", CategoryLanguages},
	{"nodejs", CategoryLanguages},
	{"node", CategoryLanguages},
	{"golang", CategoryLanguages},
	{"go", CategoryLanguages},
	{"rust", CategoryLanguages},
	{"java", CategoryLanguages},
}

// CategorizeProfile guesses a category from a profile's id and name.
// It returns "" when nothing matches.
func CategorizeProfile(id, name string) string {
	// Try exact id match first
	lowerID := strings.ToLower(id)
	for _, p := range categoryPatterns {
		if lowerID == p.token {
			return p.category
		}
	}

	// Then substrings of the longer tokens, then whole words
	lower := strings.ToLower(id + " " + name)
	for _, p := range categoryPatterns {
		if len(p.token) > 3 && strings.Contains(lower, p.token) {
			return p.category
		}
	}
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '.'
	})
	for _, p := range categoryPatterns {
		for _, w := range words {
			if w == p.token {
				return p.category
			}
		}
	}

	return ""
}
