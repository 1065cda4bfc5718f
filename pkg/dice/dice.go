package dice

import (
	"math/rand"
	"sort"
	"time"
)

// Roller produces die rolls from a private random source. A seeded roller
// replays the exact same sequence, which is what the generation engine
// relies on for reproducible character sheets.
type Roller struct {
	rnd *rand.Rand
}

// NewRoller creates a roller seeded from the current time
func NewRoller() *Roller {
	return NewSeededRoller(time.Now().UnixNano())
}

// NewSeededRoller creates a roller with a fixed seed
func NewSeededRoller(seed int64) *Roller {
	return &Roller{rnd: rand.New(rand.NewSource(seed))}
}

// D6 rolls a single six-sided die
func (r *Roller) D6() int {
	return r.rnd.Intn(6) + 1
}

// D100 rolls percentile dice, 1..100 inclusive (00 reads as 100)
func (r *Roller) D100() int {
	return r.rnd.Intn(100) + 1
}

// Attribute rolls one Palladium attribute: 4d6 drop lowest, and if the
// base total lands on 16-18 an extra d6 is added, with a second extra d6
// when the first bonus die shows a 6. Two bonus dice is the cap, so the
// result is always within 3..30.
func (r *Roller) Attribute() int {
	rolls := []int{r.D6(), r.D6(), r.D6(), r.D6()}
	sort.Ints(rolls)
	total := rolls[1] + rolls[2] + rolls[3]

	if total >= 16 && total <= 18 {
		bonus := r.D6()
		total += bonus
		if bonus == 6 {
			total += r.D6()
		}
	}

	return total
}
