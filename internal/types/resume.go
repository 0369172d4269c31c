// Package types provides type definitions for structured data used throughout the resume-pdf system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Resume represents a validated résumé record. All strings are plain text.
type Resume struct {
	Contact                   Contact      `json:"contact"`
	Summary                   string       `json:"summary,omitempty"`
	Experience                []Experience `json:"experience,omitempty"`
	Education                 []Education  `json:"education,omitempty"`
	Skills                    []string     `json:"skills,omitempty"`
	Projects                  []Project    `json:"projects,omitempty"`
	SectionOrder              []string     `json:"sectionOrder,omitempty"`
	CombineExperienceProjects bool         `json:"combineExperienceProjects,omitempty"`
}

// Contact holds identity and contact details shown at the top of the résumé
type Contact struct {
	FullName  string `json:"fullName"`
	JobTitle  string `json:"jobTitle,omitempty"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

// Experience represents a single work history entry
type Experience struct {
	Company     string   `json:"company"`
	Role        string   `json:"role"`
	Location    string   `json:"location,omitempty"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate,omitempty"`
	Description []string `json:"description,omitempty"`
}

// Education represents a single education entry
type Education struct {
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy,omitempty"`
	Location     string `json:"location,omitempty"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate,omitempty"`
}

// Project represents a notable project
type Project struct {
	Name         string   `json:"name"`
	Technologies []string `json:"technologies,omitempty"`
	Link         string   `json:"link,omitempty"`
	Description  []string `json:"description,omitempty"`
}
