package display

import (
	"fmt"
	"strconv"
	"strings"
)

// A card is encoded as four digits in 1..3: shape, color, shading, amount.
// 2112 is two open purple squiggles.

var shapeNames = [3]string{"diamond", "squiggle", "oval"}
var colorNames = [3]string{"purple", "red", "green"}
var shadingNames = [3]string{"open", "striped", "solid"}

var cardColors = [3]string{Magenta, Red, Green}

// glyphs[shape][shading]
var glyphs = [3][3]string{
	{"◇", "◈", "◆"},
	{"~", "≈", "≋"},
	{"○", "◍", "●"},
}

// cardDigits splits a card into zero-based feature indexes
func cardDigits(card int) ([4]int, error) {
	var d [4]int
	s := strconv.Itoa(card)
	if len(s) != 4 {
		return d, fmt.Errorf("card %d: expected 4 feature digits", card)
	}
	for i, r := range s {
		if r < '1' || r > '3' {
			return d, fmt.Errorf("card %d: feature digit %c out of range", card, r)
		}
		d[i] = int(r - '1')
	}
	return d, nil
}

// DescribeCard spells a card out, e.g. "2 open purple squiggles" for 2112
func DescribeCard(card int) string {
	d, err := cardDigits(card)
	if err != nil {
		return strconv.Itoa(card)
	}
	amount := d[3] + 1
	shape := shapeNames[d[0]]
	if amount > 1 {
		shape += "s"
	}
	return fmt.Sprintf("%d %s %s %s", amount, shadingNames[d[2]], colorNames[d[1]], shape)
}

// CardGlyphs renders a card as colored repeated symbols
func CardGlyphs(card int) string {
	d, err := cardDigits(card)
	if err != nil {
		return "?"
	}
	return cardColors[d[1]] + strings.Repeat(glyphs[d[0]][d[2]], d[3]+1) + Reset
}

// RenderGrid prints the cards on display, one grid row per line
func RenderGrid(grid [][]int) {
	for _, row := range grid {
		cells := make([]string, 0, len(row))
		for _, card := range row {
			// pad on the glyph count so ANSI codes do not skew the columns
			glyph := CardGlyphs(card)
			pad := 3 - visibleCount(card)
			cells = append(cells, fmt.Sprintf("%s%d%s %s%s", Cyan, card, Reset, glyph, strings.Repeat(" ", pad)))
		}
		fmt.Println("  " + strings.Join(cells, "   "))
	}
}

func visibleCount(card int) int {
	d, err := cardDigits(card)
	if err != nil {
		return 1
	}
	return d[3] + 1
}

// RenderSet prints a set on one line with descriptions
func RenderSet(set []int) {
	parts := make([]string, 0, len(set))
	for _, card := range set {
		parts = append(parts, fmt.Sprintf("%s (%s)", CardGlyphs(card), DescribeCard(card)))
	}
	fmt.Println("  " + strings.Join(parts, "  "))
}
