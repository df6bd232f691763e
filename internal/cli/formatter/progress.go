package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/questlog/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderXPBar renders progression toward the next level, for example
// "Lv 3  [████░░░░░░] 120/300 XP". The bar turns green as the level-up
// approaches.
func RenderXPBar(p domain.Progression, width int) string {
	if width < 2 {
		width = 2
	}

	required := p.Required()
	pct := 0.0
	if required > 0 {
		pct = float64(p.XP) / float64(required)
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleBlue
	if pct >= 0.75 {
		style = StyleGreen
	}

	return fmt.Sprintf("%s  [%s] %d/%d XP",
		StyleHeader.Render(fmt.Sprintf("Lv %d", p.Level)),
		style.Render(bar),
		p.XP, required)
}
