package tables

import (
	"fmt"

	"github.com/fadedpez/roadhogs/internal/types"
)

// Row covers an inclusive d100 range and the value it maps to
type Row struct {
	Lo    int
	Hi    int
	Value string
}

// RangeTable maps d100 rolls to values. Rows are kept in ascending order
// and must cover 1..100 with no gaps or overlaps.
type RangeTable []Row

// Pick returns the value for a d100 roll. A roll no row covers means the
// table itself is malformed, so this fails loudly instead of defaulting.
func (t RangeTable) Pick(roll int) (string, error) {
	for _, row := range t {
		if roll >= row.Lo && roll <= row.Hi {
			return row.Value, nil
		}
	}
	return "", types.NewSheetError(types.ErrTableGap, fmt.Sprintf("no entry for roll %d", roll))
}

// Validate checks that the table covers 1..100 contiguously
func (t RangeTable) Validate() error {
	next := 1
	for _, row := range t {
		if row.Lo != next {
			return types.NewSheetError(types.ErrTableGap,
				fmt.Sprintf("table row %q starts at %d, expected %d", row.Value, row.Lo, next))
		}
		if row.Hi < row.Lo {
			return types.NewSheetError(types.ErrTableGap,
				fmt.Sprintf("table row %q has inverted range %d-%d", row.Value, row.Lo, row.Hi))
		}
		next = row.Hi + 1
	}
	if next != 101 {
		return types.NewSheetError(types.ErrTableGap,
			fmt.Sprintf("table ends at %d, expected coverage through 100", next-1))
	}
	return nil
}

// AnimalCategories is the d100 habitat category table
var AnimalCategories = RangeTable{
	{1, 15, "Urban"},
	{16, 25, "Rural"},
	{26, 45, "Forest"},
	{46, 70, "Desert/Plains"},
	{71, 75, "Aquatic"},
	{76, 95, "Wild Birds"},
	{96, 100, "Zoo"},
}

// AnimalsByCategory maps each habitat category to its d100 animal table
var AnimalsByCategory = map[string]RangeTable{
	"Urban": {
		{1, 25, "Dog"},
		{26, 45, "Cat"},
		{46, 50, "Mouse"},
		{51, 55, "Rat"},
		{56, 58, "Hamster"},
		{59, 60, "Guinea Pig"},
		{61, 65, "Squirrel"},
		{66, 75, "Sparrow"},
		{76, 83, "Pigeon"},
		{84, 85, "Parrot"},
		{86, 88, "Bat"},
		{89, 92, "Turtle"},
		{93, 95, "Frog"},
		{96, 97, "Lizard"},
		{98, 100, "Chameleon"},
	},
	"Rural": {
		{1, 10, "Dog"},
		{11, 15, "Cat"},
		{16, 20, "Cow"},
		{21, 35, "Pig"},
		{36, 45, "Chicken"},
		{46, 50, "Duck"},
		{51, 58, "Horse"},
		{59, 62, "Donkey"},
		{63, 65, "Rabbit"},
		{66, 75, "Mouse"},
		{76, 80, "Jumping Mouse"},
		{81, 85, "Sheep"},
		{86, 90, "Goat"},
		{91, 94, "Turkey"},
		{95, 100, "Bat"},
	},
	"Forest": {
		{1, 3, "Wolf"},
		{4, 6, "Fox"},
		{7, 13, "Coyote"},
		{14, 16, "Badger"},
		{17, 20, "Black Bear"},
		{21, 24, "Grizzly Bear"},
		{25, 30, "Mountain Lion"},
		{31, 32, "Bobcat"},
		{33, 34, "Lynx"},
		{35, 36, "Wolverine"},
		{37, 40, "Weasel"},
		{41, 45, "Raccoon"},
		{46, 54, "Ringtail"},
		{55, 60, "Opossum"},
		{61, 65, "Skunk"},
		{66, 70, "Porcupine"},
		{71, 76, "Mole"},
		{77, 78, "Squirrel"},
		{79, 84, "Marten"},
		{85, 94, "Deer"},
		{95, 100, "Elk"},
	},
	"Desert/Plains": {
		{1, 15, "Coyote"},
		{16, 20, "Mountain Lion"},
		{21, 30, "Armadillo"},
		{31, 35, "Peccary (treat as a Boar)"},
		{36, 40, "Coati"},
		{41, 45, "Gila Monster"},
		{46, 55, "Lizard"},
		{56, 65, "Pack Rat"},
		{66, 75, "Prairie Dog"},
		{76, 80, "Pronghorn"},
		{81, 90, "Road Runner"},
		{91, 95, "Kangaroo Rat"},
		{96, 100, "Jumping Mouse"},
	},
	"Aquatic": {
		{1, 20, "Otter"},
		{21, 30, "Beaver"},
		{31, 50, "Muskrat"},
		{51, 55, "Dolphin"},
		{56, 60, "Whale"},
		{61, 65, "Octopus"},
		{66, 70, "Sea Turtle"},
		{71, 80, "Sea Lion"},
		{81, 90, "Seal"},
		{91, 100, "Walrus"},
	},
	"Wild Birds": {
		{1, 10, "Sparrow"},
		{11, 15, "Robin"},
		{16, 18, "Blue Jay"},
		{19, 21, "Cardinal"},
		{22, 23, "Wild Turkey"},
		{24, 25, "Pheasant"},
		{26, 27, "Grouse"},
		{28, 29, "Quail"},
		{30, 34, "Crow"},
		{35, 39, "Duck"},
		{40, 45, "Owl"},
		{46, 50, "Condor"},
		{51, 55, "Buzzard"},
		{56, 65, "Vulture"},
		{66, 70, "Hawk"},
		{71, 75, "Falcon"},
		{76, 85, "Goose"},
		{86, 90, "Eagle"},
		{91, 100, "Hummingbird"},
	},
	"Zoo": {
		{1, 10, "Lion"},
		{11, 15, "Tiger"},
		{16, 20, "Leopard"},
		{21, 25, "Cheetah"},
		{26, 30, "Polar Bear"},
		{31, 35, "Crocodile (or Alligator)"},
		{36, 40, "Aardvark"},
		{41, 45, "Rhinoceros"},
		{46, 50, "Hippopotamus"},
		{51, 60, "Elephant"},
		{61, 65, "Chimpanzee"},
		{66, 70, "Orangutan"},
		{71, 75, "Gorilla"},
		{76, 85, "Monkey"},
		{86, 90, "Baboon"},
		{91, 95, "Camel"},
		{96, 100, "Buffalo"},
	},
}

// MutantBackgrounds is the Road Hogs Step 3 d100 background table
var MutantBackgrounds = RangeTable{
	{1, 15, "Mechanic"},
	{16, 35, "Biker"},
	{36, 45, "Trooper"},
	{46, 55, "Feral Mutant Animal"},
	{56, 75, "Ninja"},
	{76, 85, "Trucker"},
	{86, 95, "Highway Engineer"},
	{96, 100, "Natural Mechanical Genius"},
}

// BackgroundSummaries gives an at-a-glance description per background
var BackgroundSummaries = map[string]string{
	"Mechanic":                  "Garage-trained; strong repair/diagnostics focus; significant vehicle expense.",
	"Biker":                     "Biker-gang upbringing; piloting & combat skills; often revenge-motivated.",
	"Trooper":                   "Road Patrol tradition; military-style training; law & order focus.",
	"Feral Mutant Animal":       "Wilderness survivor; tougher/rougher; no vehicle expense.",
	"Ninja":                     "Adopted into a ninja school; stealth & martial training; weapon proficiencies.",
	"Trucker":                   "Armed convoy specialist; freight/semi piloting; practical combat training.",
	"Highway Engineer":          "Roads/bridges/tunnels specialist; engineering & heavy machinery; respected trade.",
	"Natural Mechanical Genius": "Innate machine intuition; fixes are perfect but may only last while nearby.",
}
