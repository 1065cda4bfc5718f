package generator

import (
	"fmt"

	"github.com/fadedpez/roadhogs/internal/types"
	"github.com/fadedpez/roadhogs/pkg/dice"
	"github.com/fadedpez/roadhogs/pkg/entities"
	"github.com/fadedpez/roadhogs/pkg/tables"
)

// Service is the generation engine: one complete character sheet per call,
// shaped entirely by draws from its roller. It holds no state between
// invocations and performs no I/O.
type Service struct {
	roller *dice.Roller
}

// NewService creates a generator backed by the given roller. Tests pass a
// seeded roller for reproducible sheets.
func NewService(roller *dice.Roller) *Service {
	return &Service{roller: roller}
}

// Generate rolls one complete character sheet. The optional name is only
// carried through for display. Attributes roll first in canonical order,
// then animal category, animal, and mutant background, so a seeded roller
// always yields an identical sheet.
func (s *Service) Generate(name string) (*entities.CharacterSheet, error) {
	sheet := &entities.CharacterSheet{
		Name:       name,
		Attributes: make([]entities.Attribute, 0, len(entities.AttributeOrder)),
	}

	for _, id := range entities.AttributeOrder {
		score := s.roller.Attribute()
		bonuses, err := bonusesFor(id, score)
		if err != nil {
			return nil, err
		}
		sheet.Attributes = append(sheet.Attributes, entities.Attribute{
			ID:      id,
			Score:   score,
			Bonuses: bonuses,
		})
	}

	animal, err := s.rollAnimal()
	if err != nil {
		return nil, err
	}
	sheet.Animal = animal

	background, err := s.rollBackground()
	if err != nil {
		return nil, err
	}
	sheet.Background = background

	return sheet, nil
}

// bonusesFor derives the chart bonuses for a single attribute score.
// Zero-valued bonuses are omitted, matching how the chart reads.
func bonusesFor(id entities.AttributeID, score int) ([]entities.Bonus, error) {
	var bonuses []entities.Bonus

	add := func(label string, value int, percent, signed bool) {
		if value != 0 {
			bonuses = append(bonuses, entities.Bonus{
				Label:   label,
				Value:   value,
				Percent: percent,
				Signed:  signed,
			})
		}
	}

	switch id {
	case entities.IQ:
		add("Skills", tables.IQSkillBonus(score), true, true)

	case entities.ME:
		add("Save vs Psionic", tables.StepEveryTwo(score), false, true)
		add("Save vs Insanity", tables.MEInsanityBonus(score), false, true)

	case entities.MA:
		pct, err := tables.MATrustIntimidate(score)
		if err != nil {
			return nil, err
		}
		add("Trust/Intimidate", pct, true, false)

	case entities.PS:
		add("Damage", tables.PSDamageBonus(score), false, true)

	case entities.PP:
		pd := tables.StepEveryTwo(score)
		add("Parry/Dodge", pd, false, true)
		add("Strike", pd, false, true)

	case entities.PE:
		coma, err := tables.PEComaDeath(score)
		if err != nil {
			return nil, err
		}
		add("Save vs Coma/Death", coma, true, true)
		add("Save vs Magic/Poison", tables.StepEveryTwo(score), false, true)

	case entities.PB:
		pct, err := tables.PBCharmImpress(score)
		if err != nil {
			return nil, err
		}
		add("Charm/Impress", pct, true, false)

	case entities.SPD:
		// SPD has no chart bonuses

	default:
		return nil, types.NewSheetError(types.ErrInternalError,
			fmt.Sprintf("unknown attribute %q", id))
	}

	return bonuses, nil
}

// rollAnimal runs the two-step animal roll: d100 for habitat category,
// then d100 on that category's table
func (s *Service) rollAnimal() (entities.AnimalType, error) {
	categoryRoll := s.roller.D100()
	category, err := tables.AnimalCategories.Pick(categoryRoll)
	if err != nil {
		return entities.AnimalType{}, err
	}

	animalTable, ok := tables.AnimalsByCategory[category]
	if !ok {
		return entities.AnimalType{}, types.NewSheetError(types.ErrTableGap,
			fmt.Sprintf("no animal table for category %q", category))
	}

	animalRoll := s.roller.D100()
	animal, err := animalTable.Pick(animalRoll)
	if err != nil {
		return entities.AnimalType{}, err
	}

	return entities.AnimalType{
		CategoryRoll: categoryRoll,
		Category:     category,
		AnimalRoll:   animalRoll,
		Animal:       animal,
	}, nil
}

// rollBackground runs the Road Hogs Step 3 mutant background roll
func (s *Service) rollBackground() (entities.Background, error) {
	roll := s.roller.D100()
	name, err := tables.MutantBackgrounds.Pick(roll)
	if err != nil {
		return entities.Background{}, err
	}

	return entities.Background{
		Roll:    roll,
		Name:    name,
		Summary: tables.BackgroundSummaries[name],
	}, nil
}
