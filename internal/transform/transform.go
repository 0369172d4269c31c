package transform

import (
	"strings"

	"github.com/jonathan/resume-pdf/internal/skills"
	"github.com/jonathan/resume-pdf/internal/types"
)

// Section headings
const (
	HeadingSummary            = "Professional Summary"
	HeadingExperience         = "Work Experience"
	HeadingEducation          = "Education"
	HeadingSkills             = "Skills"
	HeadingProjects           = "Projects"
	HeadingExperienceProjects = "Experience & Projects"
)

const (
	fieldSeparator = " | "
	presentLabel   = "Present"
)

// Transform builds the document for a validated résumé. A nil order falls
// back to the résumé's own section order. Sections with no data are skipped
// entirely and exactly one section break separates consecutive sections.
func Transform(resume *types.Resume, order []string) *types.Document {
	doc := types.NewDocument()
	if resume == nil {
		return doc
	}
	if order == nil {
		order = resume.SectionOrder
	}

	wrote := false
	for _, key := range NormalizeOrder(order, resume.CombineExperienceProjects) {
		elements := buildSection(resume, key)
		if len(elements) == 0 {
			continue
		}
		if wrote {
			doc.Append(types.SectionBreak())
		}
		doc.Append(elements...)
		wrote = true
	}
	return doc
}

func buildSection(resume *types.Resume, key types.SectionKey) []types.Element {
	switch key {
	case types.SectionContact:
		return contactSection(resume.Contact)
	case types.SectionSummary:
		return summarySection(resume.Summary)
	case types.SectionExperience:
		return experienceSection(resume.Experience)
	case types.SectionEducation:
		return educationSection(resume.Education)
	case types.SectionSkills:
		return skillsSection(resume.Skills)
	case types.SectionProjects:
		return projectsSection(resume.Projects)
	case types.SectionExperienceProjects:
		return combinedSection(resume.Experience, resume.Projects)
	default:
		return nil
	}
}

func contactSection(c types.Contact) []types.Element {
	name := strings.TrimSpace(c.FullName)
	if name == "" {
		return nil
	}

	elements := []types.Element{types.Heading(1, name)}
	if title := strings.TrimSpace(c.JobTitle); title != "" {
		elements = append(elements, types.SubtitleLine(title))
	}
	if line := joinPresent(c.Email, c.Phone, c.Location); line != "" {
		elements = append(elements, types.TextLine(line))
	}
	if line := joinPresent(c.LinkedIn, c.GitHub, c.Portfolio, c.Twitter); line != "" {
		elements = append(elements, types.TextLine(line))
	}
	return elements
}

func summarySection(summary string) []types.Element {
	if strings.TrimSpace(summary) == "" {
		return nil
	}
	return []types.Element{
		types.Heading(2, HeadingSummary),
		types.Paragraph(summary),
	}
}

func experienceSection(entries []types.Experience) []types.Element {
	if len(entries) == 0 {
		return nil
	}
	elements := []types.Element{types.Heading(2, HeadingExperience)}
	for i, exp := range entries {
		if i > 0 {
			elements = append(elements, spacer())
		}
		elements = append(elements, experienceEntry(exp)...)
	}
	return elements
}

func experienceEntry(exp types.Experience) []types.Element {
	elements := []types.Element{
		types.Heading(3, exp.Role),
		types.TextLine(joinPresent(exp.Company, exp.Location)),
		types.TextLine(dateRange(exp.StartDate, exp.EndDate)),
	}
	if items := nonEmpty(exp.Description); len(items) > 0 {
		elements = append(elements, types.List(items))
	}
	return elements
}

func educationSection(entries []types.Education) []types.Element {
	if len(entries) == 0 {
		return nil
	}
	elements := []types.Element{types.Heading(2, HeadingEducation)}
	for i, edu := range entries {
		if i > 0 {
			elements = append(elements, spacer())
		}
		degree := edu.Degree
		if field := strings.TrimSpace(edu.FieldOfStudy); field != "" {
			degree += " in " + field
		}
		elements = append(elements,
			types.Heading(3, degree),
			types.TextLine(joinPresent(edu.Institution, edu.Location)),
			types.TextLine(dateRange(edu.StartDate, edu.EndDate)),
		)
	}
	return elements
}

func skillsSection(list []string) []types.Element {
	lines := skills.FormatLines(list)
	if len(lines) == 0 {
		return nil
	}
	elements := make([]types.Element, 0, len(lines)+1)
	elements = append(elements, types.Heading(2, HeadingSkills))
	for _, line := range lines {
		elements = append(elements, types.TextLine(line))
	}
	return elements
}

func projectsSection(entries []types.Project) []types.Element {
	if len(entries) == 0 {
		return nil
	}
	elements := []types.Element{types.Heading(2, HeadingProjects)}
	for i, p := range entries {
		if i > 0 {
			elements = append(elements, spacer())
		}
		elements = append(elements, projectEntry(p)...)
	}
	return elements
}

func projectEntry(p types.Project) []types.Element {
	elements := []types.Element{types.Heading(3, p.Name)}
	if tech := nonEmpty(p.Technologies); len(tech) > 0 {
		elements = append(elements, types.TextLine("Technologies: "+strings.Join(tech, ", ")))
	}
	if link := strings.TrimSpace(p.Link); link != "" {
		elements = append(elements, types.TextLine(link))
	}
	if items := nonEmpty(p.Description); len(items) > 0 {
		elements = append(elements, types.List(items))
	}
	return elements
}

// combinedSection places every experience entry before every project entry
// under one heading, with spacers between all entries.
func combinedSection(experience []types.Experience, projects []types.Project) []types.Element {
	if len(experience) == 0 && len(projects) == 0 {
		return nil
	}
	elements := []types.Element{types.Heading(2, HeadingExperienceProjects)}
	first := true
	for _, exp := range experience {
		if !first {
			elements = append(elements, spacer())
		}
		elements = append(elements, experienceEntry(exp)...)
		first = false
	}
	for _, p := range projects {
		if !first {
			elements = append(elements, spacer())
		}
		elements = append(elements, projectEntry(p)...)
		first = false
	}
	return elements
}

func spacer() types.Element {
	return types.TextLine("")
}

func dateRange(start, end string) string {
	end = strings.TrimSpace(end)
	if end == "" {
		end = presentLabel
	}
	start = strings.TrimSpace(start)
	if start == "" {
		return end
	}
	return start + " - " + end
}

// joinPresent joins the non-blank values with the field separator
func joinPresent(values ...string) string {
	return strings.Join(nonEmpty(values), fieldSeparator)
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
