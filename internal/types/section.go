package types

// SectionKey identifies a résumé section in a section ordering
type SectionKey string

const (
	SectionContact    SectionKey = "contact"
	SectionSummary    SectionKey = "summary"
	SectionExperience SectionKey = "experience"
	SectionEducation  SectionKey = "education"
	SectionSkills     SectionKey = "skills"
	SectionProjects   SectionKey = "projects"

	// SectionExperienceProjects is a virtual key rendering experience and
	// projects under a single heading.
	SectionExperienceProjects SectionKey = "experienceProjects"
)

// CanonicalSections is the default section order.
var CanonicalSections = []SectionKey{
	SectionContact,
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
}

// ParseSectionKey returns the section key for s and whether it is known.
func ParseSectionKey(s string) (SectionKey, bool) {
	key := SectionKey(s)
	switch key {
	case SectionContact, SectionSummary, SectionExperience, SectionEducation,
		SectionSkills, SectionProjects, SectionExperienceProjects:
		return key, true
	}
	return "", false
}
