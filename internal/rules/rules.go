// Package rules loads and validates the static rule tables
package rules

import (
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/character-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/character-sheet/internal/errors"
)

//go:embed default.yaml
var defaultRules []byte

// Default returns the built-in rule tables
func Default() (*sheet.Ruleset, error) {
	return Parse(defaultRules)
}

// MustDefault returns the built-in rule tables and panics if they are invalid
func MustDefault() *sheet.Ruleset {
	rs, err := Default()
	if err != nil {
		panic(err)
	}
	return rs
}

// Load reads a ruleset from a YAML file. An empty path returns the defaults.
func Load(path string) (*sheet.Ruleset, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read rules file %s", path)
	}

	rs, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load rules file %s", path)
	}
	return rs, nil
}

// Parse decodes and validates a YAML ruleset
func Parse(data []byte) (*sheet.Ruleset, error) {
	var rs sheet.Ruleset
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse rules")
	}

	if err := Validate(&rs); err != nil {
		return nil, err
	}
	return &rs, nil
}

// Validate checks a ruleset for internal consistency
func Validate(rs *sheet.Ruleset) error {
	if rs == nil {
		return errors.InvalidArgument("ruleset is required")
	}

	vb := errors.NewValidationBuilder()

	errors.ValidateNonNegative("attributePool", rs.AttributePool, vb)
	errors.ValidateNonNegative("baseline", rs.Baseline, vb)
	errors.ValidateNonNegative("skillPoints", rs.SkillPoints, vb)

	if len(rs.Attributes) == 0 {
		vb.RequiredField("attributes")
	}

	known := make(map[string]bool, len(rs.Attributes))
	for _, name := range rs.Attributes {
		if name == "" {
			vb.Field("attributes", "name must not be empty")
			continue
		}
		if known[name] {
			vb.Fieldf("attributes", "duplicate attribute %q", name)
		}
		known[name] = true
	}

	skills := make(map[string]bool, len(rs.Skills))
	for _, skill := range rs.Skills {
		if skill.Name == "" {
			vb.Field("skills", "name must not be empty")
			continue
		}
		if skills[skill.Name] {
			vb.Fieldf("skills", "duplicate skill %q", skill.Name)
		}
		skills[skill.Name] = true
		if !known[skill.Attribute] {
			vb.Fieldf("skills", "skill %q references unknown attribute %q", skill.Name, skill.Attribute)
		}
	}

	classes := make(map[string]bool, len(rs.Classes))
	for _, class := range rs.Classes {
		if class.Name == "" {
			vb.Field("classes", "name must not be empty")
			continue
		}
		if classes[class.Name] {
			vb.Fieldf("classes", "duplicate class %q", class.Name)
		}
		classes[class.Name] = true
		for attr, minimum := range class.Requirements {
			if !known[attr] {
				vb.Fieldf("classes", "class %q references unknown attribute %q", class.Name, attr)
			}
			if minimum < 0 {
				vb.Fieldf("classes", "class %q has negative minimum for %s", class.Name, attr)
			}
		}
	}

	return vb.Build()
}
