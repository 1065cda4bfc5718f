package entities

import "fmt"

// AttributeID identifies one of the eight Palladium attributes
type AttributeID string

const (
	IQ  AttributeID = "IQ"  // Intelligence Quotient
	ME  AttributeID = "ME"  // Mental Endurance
	MA  AttributeID = "MA"  // Mental Affinity
	PS  AttributeID = "PS"  // Physical Strength
	PP  AttributeID = "PP"  // Physical Prowess
	PE  AttributeID = "PE"  // Physical Endurance
	PB  AttributeID = "PB"  // Physical Beauty
	SPD AttributeID = "SPD" // Speed
)

// AttributeOrder is the canonical roll and display order for attributes
var AttributeOrder = []AttributeID{IQ, ME, MA, PS, PP, PE, PB, SPD}

// Attribute score bounds: 4d6 drop lowest is at least 3, and a 16-18 base
// can gain at most two bonus dice for a ceiling of 30.
const (
	MinAttributeScore = 3
	MaxAttributeScore = 30
)

// Bonus represents a single derived benefit of a high attribute score
type Bonus struct {
	Label   string // ex "Save vs Psionic" or "Trust/Intimidate"
	Value   int
	Percent bool // render with a trailing %
	Signed  bool // render with a leading +
}

// String returns the bonus formatted the way it reads on a character sheet
func (b Bonus) String() string {
	sign := ""
	if b.Signed {
		sign = "+"
	}
	suffix := ""
	if b.Percent {
		suffix = "%"
	}
	return fmt.Sprintf("%s %s%d%s", b.Label, sign, b.Value, suffix)
}

// Attribute is one rolled attribute with its chart-derived bonuses
type Attribute struct {
	ID      AttributeID
	Score   int
	Bonuses []Bonus
}

// AnimalType is the result of the two-step animal roll: d100 for the
// habitat category, then d100 for the animal within it
type AnimalType struct {
	CategoryRoll int
	Category     string
	AnimalRoll   int
	Animal       string
}

// Background is the Road Hogs Step 3 mutant background roll
type Background struct {
	Roll    int
	Name    string
	Summary string
}

// CharacterSheet is one complete generated character. It is a value object:
// created fresh per invocation, never mutated after generation, never stored.
type CharacterSheet struct {
	Name       string // optional, provided by the invoker
	Attributes []Attribute
	Animal     AnimalType
	Background Background
}

// Attribute returns the attribute with the given ID and whether it exists
func (c *CharacterSheet) Attribute(id AttributeID) (Attribute, bool) {
	for _, attr := range c.Attributes {
		if attr.ID == id {
			return attr, true
		}
	}
	return Attribute{}, false
}
