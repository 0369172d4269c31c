package rendering

import (
	"regexp"
	"sort"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	urlPattern   = regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:[A-Za-z0-9-]+\.)+[A-Za-z]{2,}(?:/[^\s|•]*)?`)
)

// Link is a clickable substring of a text line. Start and End are byte offsets.
type Link struct {
	Start  int
	End    int
	Text   string
	Target string
}

// FindLinks returns the email addresses and URL-like substrings of text in
// order of appearance. URL matches inside an email address are dropped.
func FindLinks(text string) []Link {
	var links []Link
	for _, m := range emailPattern.FindAllStringIndex(text, -1) {
		match := text[m[0]:m[1]]
		links = append(links, Link{Start: m[0], End: m[1], Text: match, Target: "mailto:" + match})
	}
	emails := len(links)

	for _, m := range urlPattern.FindAllStringIndex(text, -1) {
		if overlaps(links[:emails], m[0], m[1]) {
			continue
		}
		match := strings.TrimRight(text[m[0]:m[1]], ".,;:)")
		end := m[0] + len(match)
		links = append(links, Link{Start: m[0], End: end, Text: match, Target: linkTarget(match)})
	}

	sort.Slice(links, func(i, j int) bool { return links[i].Start < links[j].Start })
	return links
}

func overlaps(links []Link, start, end int) bool {
	for _, l := range links {
		if start < l.End && end > l.Start {
			return true
		}
	}
	return false
}

func linkTarget(match string) string {
	lower := strings.ToLower(match)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return match
	}
	return "https://" + match
}
