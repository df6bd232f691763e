package domain

// XPPerLevel is the coefficient of the linear XP curve: level N requires
// N*XPPerLevel XP to advance, so each level costs more than the last.
const XPPerLevel = 100

// Progression holds the player's level and XP within the current level.
// Invariant after every award: 0 <= XP < Level*XPPerLevel.
type Progression struct {
	Level int
	XP    int
}

// NewProgression returns the starting progression state.
func NewProgression() Progression {
	return Progression{Level: 1, XP: 0}
}

// Required returns the XP needed to finish the current level.
func (p Progression) Required() int {
	return p.Level * XPPerLevel
}

// ApplyXP folds an award into (level, xp-within-level), cascading through
// as many level-ups as the total covers. Award amounts are quest XP values
// and therefore always positive.
func ApplyXP(level, xp, award int) (int, int) {
	total := xp + award
	required := level * XPPerLevel
	for total >= required {
		total -= required
		level++
		required = level * XPPerLevel
	}
	return level, total
}

// Award applies quest XP to the progression in place.
func (p *Progression) Award(xp int) {
	p.Level, p.XP = ApplyXP(p.Level, p.XP, xp)
}
