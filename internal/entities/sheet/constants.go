package sheet

// Attribute names used by the default rule tables
const (
	AttributeStrength     = "Strength"
	AttributeDexterity    = "Dexterity"
	AttributeConstitution = "Constitution"
	AttributeIntelligence = "Intelligence"
	AttributeWisdom       = "Wisdom"
	AttributeCharisma     = "Charisma"
)

// Class names used by the default rule tables
const (
	ClassBarbarian = "Barbarian"
	ClassWizard    = "Wizard"
	ClassBard      = "Bard"
)

// Skill names used by the default rule tables
const (
	SkillAcrobatics     = "Acrobatics"
	SkillAnimalHandling = "Animal Handling"
	SkillArcana         = "Arcana"
	SkillAthletics      = "Athletics"
	SkillDeception      = "Deception"
	SkillHistory        = "History"
	SkillInsight        = "Insight"
	SkillIntimidation   = "Intimidation"
	SkillInvestigation  = "Investigation"
	SkillMedicine       = "Medicine"
	SkillNature         = "Nature"
	SkillPerception     = "Perception"
	SkillPerformance    = "Performance"
	SkillPersuasion     = "Persuasion"
	SkillReligion       = "Religion"
	SkillSleightOfHand  = "Sleight of Hand"
	SkillStealth        = "Stealth"
	SkillSurvival       = "Survival"
)

// Defaults for a freshly built ruleset
const (
	DefaultAttributePool = 70
	DefaultBaseline      = 10
	DefaultSkillPoints   = 10
)
