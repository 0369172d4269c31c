package skills

import (
	"strings"
)

// Group is a category with its skills in insertion order
type Group struct {
	Category string
	Skills   []string
}

// Line formats the group as "{Category}: {comma-joined skills}"
func (g Group) Line() string {
	return g.Category + ": " + strings.Join(g.Skills, ", ")
}

// CategorizeSkill returns the canonical category and display name for one skill.
// An explicit "Category: Skill" prefix wins; an unrecognized prefix falls into Other.
func CategorizeSkill(raw string) (category string, name string) {
	skill := strings.TrimSpace(raw)
	if prefix, rest, found := strings.Cut(skill, ":"); found {
		prefix = strings.TrimSpace(prefix)
		rest = strings.TrimSpace(rest)
		if prefix != "" && rest != "" {
			if canonical, ok := categoryAliases[strings.ToLower(prefix)]; ok {
				return canonical, rest
			}
			return CategoryOther, rest
		}
	}
	return matchKeyword(skill), skill
}

func matchKeyword(skill string) string {
	lower := strings.ToLower(skill)
	for _, rule := range keywordTable {
		for _, kw := range rule.keywords {
			if len(kw) < 3 {
				if lower == kw {
					return rule.category
				}
				continue
			}
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return CategoryOther
}

// Categorize groups skills by category. Groups follow CanonicalOrder,
// skills keep their input order within a group, and empty groups are omitted.
func Categorize(skills []string) []Group {
	buckets := make(map[string][]string)
	for _, raw := range skills {
		category, name := CategorizeSkill(raw)
		if name == "" {
			continue
		}
		buckets[category] = append(buckets[category], name)
	}

	groups := make([]Group, 0, len(buckets))
	for _, category := range CanonicalOrder {
		if names := buckets[category]; len(names) > 0 {
			groups = append(groups, Group{Category: category, Skills: names})
		}
	}
	return groups
}

// FormatLines returns one formatted line per non-empty category
func FormatLines(skills []string) []string {
	groups := Categorize(skills)
	lines := make([]string, len(groups))
	for i, g := range groups {
		lines[i] = g.Line()
	}
	return lines
}
