package sheet

// SkillDefinition names a skill and the attribute whose modifier feeds its total
type SkillDefinition struct {
	Name      string `yaml:"name" json:"name"`
	Attribute string `yaml:"attribute" json:"attribute"`
}

// ClassDefinition is a class gated by minimum attribute scores
type ClassDefinition struct {
	Name         string         `yaml:"name" json:"name"`
	Requirements map[string]int `yaml:"requirements" json:"requirements"`
}

// Ruleset is the process-wide static configuration. It is built once at start and
// must not be modified afterwards.
type Ruleset struct {
	AttributePool int               `yaml:"attributePool"`
	Baseline      int               `yaml:"baseline"`
	SkillPoints   int               `yaml:"skillPoints"`
	Attributes    []string          `yaml:"attributes"`
	Skills        []SkillDefinition `yaml:"skills"`
	Classes       []ClassDefinition `yaml:"classes"`
}

// HasAttribute reports whether name is a configured attribute
func (r *Ruleset) HasAttribute(name string) bool {
	for _, a := range r.Attributes {
		if a == name {
			return true
		}
	}
	return false
}

// Skill looks up a skill definition by name
func (r *Ruleset) Skill(name string) (SkillDefinition, bool) {
	for _, s := range r.Skills {
		if s.Name == name {
			return s, true
		}
	}
	return SkillDefinition{}, false
}

// Class looks up a class definition by name
func (r *Ruleset) Class(name string) (ClassDefinition, bool) {
	for _, c := range r.Classes {
		if c.Name == name {
			return c, true
		}
	}
	return ClassDefinition{}, false
}
