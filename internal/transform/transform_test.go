package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-pdf/internal/types"
)

func sampleResume() *types.Resume {
	return &types.Resume{
		Contact: types.Contact{
			FullName: "Jane Doe",
			JobTitle: "Staff Engineer",
			Email:    "jane@example.com",
			Location: "Berlin",
			GitHub:   "github.com/janedoe",
		},
		Summary: "Builds reliable systems.",
		Experience: []types.Experience{
			{Company: "Acme", Role: "Engineer", Location: "Remote", StartDate: "2020", EndDate: "2022", Description: []string{"Shipped things"}},
			{Company: "Globex", Role: "Senior Engineer", StartDate: "2022"},
		},
		Education: []types.Education{
			{Institution: "TU Berlin", Degree: "BSc", FieldOfStudy: "Computer Science", StartDate: "2014", EndDate: "2018"},
		},
		Skills: []string{"Go", "React", "Frontend: Vue"},
		Projects: []types.Project{
			{Name: "resume-pdf", Technologies: []string{"Go", "fpdf"}, Link: "github.com/janedoe/resume-pdf", Description: []string{"Renders PDFs"}},
		},
	}
}

func texts(doc *types.Document) []string {
	out := make([]string, 0, doc.Len())
	for _, el := range doc.Elements {
		out = append(out, el.String())
	}
	return out
}

func TestTransform_FullResume(t *testing.T) {
	doc := Transform(sampleResume(), nil)

	assert.Equal(t, []string{
		`h1("Jane Doe")`,
		`line("Staff Engineer")`,
		`line("jane@example.com | Berlin")`,
		`line("github.com/janedoe")`,
		"break",
		`h2("Professional Summary")`,
		`p("Builds reliable systems.")`,
		"break",
		`h2("Work Experience")`,
		`h3("Engineer")`,
		`line("Acme | Remote")`,
		`line("2020 - 2022")`,
		"list(1 items)",
		`line("")`,
		`h3("Senior Engineer")`,
		`line("Globex")`,
		`line("2022 - Present")`,
		"break",
		`h2("Education")`,
		`h3("BSc in Computer Science")`,
		`line("TU Berlin")`,
		`line("2014 - 2018")`,
		"break",
		`h2("Skills")`,
		`line("Languages: Go")`,
		`line("Frontend: React, Vue")`,
		"break",
		`h2("Projects")`,
		`h3("resume-pdf")`,
		`line("Technologies: Go, fpdf")`,
		`line("github.com/janedoe/resume-pdf")`,
		"list(1 items)",
	}, texts(doc))
}

func TestTransform_IndicesStamped(t *testing.T) {
	doc := Transform(sampleResume(), nil)
	for i, el := range doc.Elements {
		assert.Equal(t, i, el.Index)
	}
}

func TestTransform_Deterministic(t *testing.T) {
	resume := sampleResume()
	order := []string{"skills", "projects"}

	first := Transform(resume, order)
	second := Transform(resume, order)
	assert.Equal(t, first, second)
}

func TestTransform_SkipsEmptySections(t *testing.T) {
	resume := &types.Resume{
		Contact: types.Contact{FullName: "Jane Doe", Email: "jane@example.com"},
		Skills:  []string{"Bagels"},
	}

	doc := Transform(resume, nil)

	assert.Equal(t, []string{
		`h1("Jane Doe")`,
		`line("jane@example.com")`,
		"break",
		`h2("Skills")`,
		`line("Other: Bagels")`,
	}, texts(doc))
}

func TestTransform_OneBreakBetweenSections(t *testing.T) {
	doc := Transform(sampleResume(), []string{"projects", "summary"})

	breaks := 0
	prevBreak := false
	for i, el := range doc.Elements {
		isBreak := el.Kind == types.KindSectionBreak
		if isBreak {
			breaks++
			assert.False(t, prevBreak, "consecutive breaks at %d", i)
		}
		prevBreak = isBreak
	}
	assert.Equal(t, 5, breaks)
	assert.NotEqual(t, types.KindSectionBreak, doc.Elements[doc.Len()-1].Kind)
	assert.NotEqual(t, types.KindSectionBreak, doc.Elements[0].Kind)
}

func TestTransform_UsesResumeOrder(t *testing.T) {
	resume := sampleResume()
	resume.SectionOrder = []string{"skills"}

	doc := Transform(resume, nil)

	headings := []string{}
	for _, el := range doc.Elements {
		if el.Kind == types.KindHeading && el.Level == 2 {
			headings = append(headings, el.Text)
		}
	}
	assert.Equal(t, []string{
		HeadingSkills, HeadingSummary, HeadingExperience, HeadingEducation, HeadingProjects,
	}, headings)
}

func TestTransform_CombinedSection(t *testing.T) {
	resume := sampleResume()
	resume.CombineExperienceProjects = true

	doc := Transform(resume, nil)

	start := -1
	for i, el := range doc.Elements {
		if el.Kind == types.KindHeading && el.Text == HeadingExperienceProjects {
			start = i
		}
		assert.NotEqual(t, HeadingExperience, el.Text)
		assert.NotEqual(t, HeadingProjects, el.Text)
	}
	require.GreaterOrEqual(t, start, 0)

	var entries []string
	spacers := 0
	for _, el := range doc.Elements[start+1:] {
		if el.Kind == types.KindSectionBreak {
			break
		}
		if el.Kind == types.KindHeading {
			entries = append(entries, el.Text)
		}
		if el.Kind == types.KindTextLine && el.Text == "" {
			spacers++
		}
	}
	assert.Equal(t, []string{"Engineer", "Senior Engineer", "resume-pdf"}, entries)
	assert.Equal(t, 2, spacers)
}

func TestTransform_NilResume(t *testing.T) {
	assert.Equal(t, 0, Transform(nil, nil).Len())
}

func TestTransform_JobTitleIsSubtitle(t *testing.T) {
	doc := Transform(sampleResume(), nil)
	require.GreaterOrEqual(t, doc.Len(), 3)

	title, contact := doc.Elements[1], doc.Elements[2]
	assert.Equal(t, "Staff Engineer", title.Text)
	assert.True(t, title.Subtitle)
	assert.Equal(t, "jane@example.com | Berlin", contact.Text)
	assert.False(t, contact.Subtitle)
}
