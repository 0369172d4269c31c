// Package transform converts a validated résumé into an ordered, layout-neutral document.
package transform

import "github.com/jonathan/resume-pdf/internal/types"

// NormalizeOrder resolves a requested section order:
//   - contact is always first
//   - unknown and duplicate keys are dropped
//   - experienceProjects subsumes experience and projects
//   - with combine set, the first of experience/projects becomes experienceProjects
//   - canonical sections missing from the request are appended in canonical order
func NormalizeOrder(requested []string, combine bool) []types.SectionKey {
	keys := make([]types.SectionKey, 0, len(requested))
	seen := make(map[types.SectionKey]bool)
	hasCombined := false
	for _, raw := range requested {
		key, ok := types.ParseSectionKey(raw)
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
		if key == types.SectionExperienceProjects {
			hasCombined = true
		}
	}

	if combine && !hasCombined {
		keys = combineFirst(keys)
		hasCombined = true
	}

	order := []types.SectionKey{types.SectionContact}
	placed := map[types.SectionKey]bool{types.SectionContact: true}
	for _, key := range keys {
		if placed[key] {
			continue
		}
		if hasCombined && subsumed(key) {
			continue
		}
		placed[key] = true
		order = append(order, key)
	}

	for _, key := range types.CanonicalSections {
		if placed[key] {
			continue
		}
		if hasCombined && subsumed(key) {
			if !placed[types.SectionExperienceProjects] {
				placed[types.SectionExperienceProjects] = true
				order = append(order, types.SectionExperienceProjects)
			}
			continue
		}
		placed[key] = true
		order = append(order, key)
	}
	return order
}

// combineFirst replaces the first experience or projects key with the
// combined key. With neither present the combined key is placed in
// canonical position later.
func combineFirst(keys []types.SectionKey) []types.SectionKey {
	out := make([]types.SectionKey, 0, len(keys))
	replaced := false
	for _, key := range keys {
		if subsumed(key) {
			if !replaced {
				out = append(out, types.SectionExperienceProjects)
				replaced = true
			}
			continue
		}
		out = append(out, key)
	}
	return out
}

func subsumed(key types.SectionKey) bool {
	return key == types.SectionExperience || key == types.SectionProjects
}
