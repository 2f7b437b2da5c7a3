package scoring

// Dimension is one of the six WISCAR competency dimensions.
type Dimension int

const (
	DimWill Dimension = iota
	DimInterest
	DimSkill
	DimCognitive
	DimAbility
	DimRealWorld
)

// AllDimensions returns all dimensions in display order.
func AllDimensions() []Dimension {
	return []Dimension{DimWill, DimInterest, DimSkill, DimCognitive, DimAbility, DimRealWorld}
}

// Tag returns the question category string that maps onto the dimension.
func (d Dimension) Tag() string {
	switch d {
	case DimWill:
		return "will"
	case DimInterest:
		return "interest"
	case DimSkill:
		return "skill"
	case DimCognitive:
		return "cognitive"
	case DimAbility:
		return "ability"
	case DimRealWorld:
		return "realWorld"
	default:
		return ""
	}
}

// DisplayName returns the label shown next to the dimension score.
func (d Dimension) DisplayName() string {
	switch d {
	case DimWill:
		return "Will"
	case DimInterest:
		return "Interest"
	case DimSkill:
		return "Skill"
	case DimCognitive:
		return "Cognitive"
	case DimAbility:
		return "Ability"
	case DimRealWorld:
		return "Real-World Fit"
	default:
		return "Unknown"
	}
}

// Description returns a short explanation of what the dimension measures.
func (d Dimension) Description() string {
	switch d {
	case DimWill:
		return "Motivation and persistence"
	case DimInterest:
		return "Interest in human behavior"
	case DimSkill:
		return "Relevant experience"
	case DimCognitive:
		return "Cognitive readiness"
	case DimAbility:
		return "Ability to learn"
	case DimRealWorld:
		return "Real-world alignment"
	default:
		return ""
	}
}

// DimensionFromCategory maps a question category onto a dimension. Matching is
// exact and case-sensitive.
func DimensionFromCategory(category string) (Dimension, bool) {
	for _, d := range AllDimensions() {
		if d.Tag() == category {
			return d, true
		}
	}
	return 0, false
}
