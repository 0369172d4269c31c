package validation

func (c *collector) validateContact(root map[string]any) {
	v, present := root["contact"]
	if !present || v == nil {
		c.add(ErrRequiredFieldMissing, "contact", "contact is required", nil)
		return
	}
	contact, ok := v.(map[string]any)
	if !ok {
		c.add(ErrInvalidType, "contact", "contact must be an object", jsonTypeName(v))
		return
	}

	maxLen := c.limits.MaxStringLength
	c.requiredString(contact, "fullName", "contact", maxLen)
	c.requiredString(contact, "email", "contact", maxLen)
	for _, key := range []string{"jobTitle", "phone", "location", "linkedin", "github", "portfolio", "twitter"} {
		c.optionalString(contact, key, "contact", maxLen)
	}
}

func (c *collector) validateSummary(root map[string]any) {
	c.optionalString(root, "summary", "", c.limits.MaxSummaryLength)
}

func (c *collector) validateExperience(root map[string]any) {
	maxLen := c.limits.MaxStringLength
	c.objectArray(root, "experience", c.limits.MaxExperience, func(entry map[string]any, path string) {
		c.requiredString(entry, "company", path, maxLen)
		c.requiredString(entry, "role", path, maxLen)
		c.requiredString(entry, "startDate", path, maxLen)
		c.optionalString(entry, "location", path, maxLen)
		c.optionalString(entry, "endDate", path, maxLen)
		c.stringArray(entry, "description", path, c.limits.MaxDescriptionItems, maxLen)
	})
}

func (c *collector) validateEducation(root map[string]any) {
	maxLen := c.limits.MaxStringLength
	c.objectArray(root, "education", c.limits.MaxEducation, func(entry map[string]any, path string) {
		c.requiredString(entry, "institution", path, maxLen)
		c.requiredString(entry, "degree", path, maxLen)
		c.requiredString(entry, "startDate", path, maxLen)
		c.optionalString(entry, "fieldOfStudy", path, maxLen)
		c.optionalString(entry, "location", path, maxLen)
		c.optionalString(entry, "endDate", path, maxLen)
	})
}

func (c *collector) validateSkills(root map[string]any) {
	c.stringArray(root, "skills", "", c.limits.MaxSkills, c.limits.MaxStringLength)
}

func (c *collector) validateProjects(root map[string]any) {
	maxLen := c.limits.MaxStringLength
	c.objectArray(root, "projects", c.limits.MaxProjects, func(entry map[string]any, path string) {
		c.requiredString(entry, "name", path, maxLen)
		c.optionalString(entry, "link", path, maxLen)
		c.stringArray(entry, "technologies", path, c.limits.MaxArrayItems, maxLen)
		c.stringArray(entry, "description", path, c.limits.MaxDescriptionItems, maxLen)
	})
}

var (
	fontProfiles   = []string{"sans", "serif", "mono"}
	densityPresets = []string{"normal", "compact", "ultra-compact"}
)

// validateOptions checks the ordering override, the combine flag and the
// style hints. Unknown section keys are not errors; the transformer drops them.
func (c *collector) validateOptions(root map[string]any) {
	c.stringArray(root, "sectionOrder", "", c.limits.MaxArrayItems, c.limits.MaxStringLength)
	c.optionalBool(root, "combineExperienceProjects")
	c.optionalEnum(root, "fontProfile", fontProfiles)
	c.optionalEnum(root, "densityPreset", densityPresets)
}
