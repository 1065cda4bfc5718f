package tables

import (
	"fmt"

	"github.com/fadedpez/roadhogs/internal/types"
)

// The Palladium bonus chart runs 16..30. Scores above 30 use the 30 row;
// scores below 16 carry no bonus at all.
const (
	ChartMin = 16
	ChartMax = 30
)

var maTrustIntimidate = map[int]int{
	16: 40, 17: 45, 18: 50, 19: 55, 20: 60,
	21: 65, 22: 70, 23: 75, 24: 80, 25: 84,
	26: 88, 27: 92, 28: 94, 29: 96, 30: 97,
}

var peComaDeath = map[int]int{
	16: 4, 17: 5, 18: 6, 19: 8, 20: 10,
	21: 12, 22: 14, 23: 16, 24: 18, 25: 20,
	26: 22, 27: 24, 28: 26, 29: 28, 30: 30,
}

var pbCharmImpress = map[int]int{
	16: 30, 17: 35, 18: 40, 19: 45, 20: 50,
	21: 55, 22: 60, 23: 65, 24: 70, 25: 75,
	26: 80, 27: 83, 28: 86, 29: 90, 30: 92,
}

// clampForChart caps a score at the top chart row
func clampForChart(score int) int {
	if score > ChartMax {
		return ChartMax
	}
	return score
}

// lookupChart reads one of the map-backed chart columns. A clamped score
// with no entry means the chart itself is broken, which must not pass
// silently.
func lookupChart(chart map[int]int, name string, score int) (int, error) {
	if score < ChartMin {
		return 0, nil
	}
	value, ok := chart[clampForChart(score)]
	if !ok {
		return 0, types.NewSheetError(types.ErrChartGap,
			fmt.Sprintf("%s chart has no entry for score %d", name, clampForChart(score)))
	}
	return value, nil
}

// IQSkillBonus returns the skill percentage bonus for an IQ score.
// Chart: 16 -> +2% rising by one per point through 30 -> +16%.
func IQSkillBonus(iq int) int {
	if iq < ChartMin {
		return 0
	}
	return clampForChart(iq) - 14
}

// StepEveryTwo covers the chart rows that climb one point per two scores:
// 16-17 -> +1, 18-19 -> +2, through 30 -> +8. Used for ME save vs psionic,
// PP parry/dodge/strike, and PE save vs magic/poison.
func StepEveryTwo(score int) int {
	if score < ChartMin {
		return 0
	}
	return (clampForChart(score) - 14) / 2
}

// MEInsanityBonus returns the save vs insanity bonus for an ME score.
// Chart: 16-17 -> +1, 18-19 -> +2, 20 -> +3, then one per point to 30 -> +13.
func MEInsanityBonus(me int) int {
	if me < ChartMin {
		return 0
	}
	s := clampForChart(me)
	if s <= 20 {
		return (s - 14) / 2
	}
	return s - 17
}

// PSDamageBonus returns the hand-to-hand damage bonus for a PS score.
// Chart: 16 -> +1 rising by one per point through 30 -> +15.
func PSDamageBonus(ps int) int {
	if ps < ChartMin {
		return 0
	}
	return clampForChart(ps) - 15
}

// MATrustIntimidate returns the trust/intimidate percentage for an MA score
func MATrustIntimidate(ma int) (int, error) {
	return lookupChart(maTrustIntimidate, "MA trust/intimidate", ma)
}

// PEComaDeath returns the save vs coma/death percentage for a PE score
func PEComaDeath(pe int) (int, error) {
	return lookupChart(peComaDeath, "PE coma/death", pe)
}

// PBCharmImpress returns the charm/impress percentage for a PB score
func PBCharmImpress(pb int) (int, error) {
	return lookupChart(pbCharmImpress, "PB charm/impress", pb)
}
