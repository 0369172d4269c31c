package validation

const (
	defaultMaxSizeBytes        = 1 << 20
	defaultMaxDepth            = 5
	defaultMaxStringLength     = 1000
	defaultMaxSummaryLength    = 500
	defaultMaxDescriptionItems = 10
	defaultMaxSkills           = 100
	defaultMaxArrayItems       = 50
	defaultMaxExperience       = 20
	defaultMaxEducation        = 10
	defaultMaxProjects         = 15
)

// Limits bounds payload size, nesting and field cardinalities.
// Zero values fall back to the defaults.
type Limits struct {
	MaxSizeBytes        int `json:"max_size_bytes,omitempty"`
	MaxDepth            int `json:"max_depth,omitempty"`
	MaxStringLength     int `json:"max_string_length,omitempty"`
	MaxSummaryLength    int `json:"max_summary_length,omitempty"`
	MaxDescriptionItems int `json:"max_description_items,omitempty"`
	MaxSkills           int `json:"max_skills,omitempty"`
	MaxArrayItems       int `json:"max_array_items,omitempty"`
	MaxExperience       int `json:"max_experience,omitempty"`
	MaxEducation        int `json:"max_education,omitempty"`
	MaxProjects         int `json:"max_projects,omitempty"`
}

// DefaultLimits returns the standard limits
func DefaultLimits() Limits {
	return Limits{}.withDefaults()
}

// MaxRawBytes is the largest raw payload accepted for decoding: twice the
// serialized size ceiling, leaving room for whitespace.
func (l Limits) MaxRawBytes() int {
	return 2 * limitOr(l.MaxSizeBytes, defaultMaxSizeBytes)
}

func (l Limits) withDefaults() Limits {
	return Limits{
		MaxSizeBytes:        limitOr(l.MaxSizeBytes, defaultMaxSizeBytes),
		MaxDepth:            limitOr(l.MaxDepth, defaultMaxDepth),
		MaxStringLength:     limitOr(l.MaxStringLength, defaultMaxStringLength),
		MaxSummaryLength:    limitOr(l.MaxSummaryLength, defaultMaxSummaryLength),
		MaxDescriptionItems: limitOr(l.MaxDescriptionItems, defaultMaxDescriptionItems),
		MaxSkills:           limitOr(l.MaxSkills, defaultMaxSkills),
		MaxArrayItems:       limitOr(l.MaxArrayItems, defaultMaxArrayItems),
		MaxExperience:       limitOr(l.MaxExperience, defaultMaxExperience),
		MaxEducation:        limitOr(l.MaxEducation, defaultMaxEducation),
		MaxProjects:         limitOr(l.MaxProjects, defaultMaxProjects),
	}
}

func limitOr(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}
