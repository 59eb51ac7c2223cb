package card

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card/color"
)

type Rank int

const (
	Skip Rank = 10 + iota
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

func (r Rank) IsNumber() bool {
	return r >= 0 && r <= 9
}

func (r Rank) IsWild() bool {
	return r == Wild || r == WildDrawFour
}

func (r Rank) String() string {
	if r.IsNumber() {
		return fmt.Sprintf("%d", int(r))
	}
	switch r {
	case Skip:
		return "skip"
	case Reverse:
		return "reverse"
	case DrawTwo:
		return "draw-two"
	case Wild:
		return "wild"
	case WildDrawFour:
		return "wild-draw-four"
	default:
		return fmt.Sprintf("rank(%d)", int(r))
	}
}

// Card is a comparable value. Wild cards carry color.Wild until they are
// placed on the discard pile with a chosen color.
type Card struct {
	color color.Color
	rank  Rank
}

func NewNumberCard(c color.Color, number int) Card {
	return Card{color: c, rank: Rank(number)}
}

func NewSkipCard(c color.Color) Card {
	return Card{color: c, rank: Skip}
}

func NewReverseCard(c color.Color) Card {
	return Card{color: c, rank: Reverse}
}

func NewDrawTwoCard(c color.Color) Card {
	return Card{color: c, rank: DrawTwo}
}

func NewWildCard() Card {
	return Card{color: color.Wild, rank: Wild}
}

func NewWildDrawFourCard() Card {
	return Card{color: color.Wild, rank: WildDrawFour}
}

func (c Card) Color() color.Color {
	return c.color
}

func (c Card) Rank() Rank {
	return c.rank
}

func (c Card) IsWild() bool {
	return c.rank.IsWild()
}

// WithColor returns the same rank painted with chosen.
func (c Card) WithColor(chosen color.Color) Card {
	return Card{color: chosen, rank: c.rank}
}

func (c Card) String() string {
	switch c.rank {
	case Skip:
		return c.color.Paint("(/)")
	case Reverse:
		return c.color.Paint("<=>")
	case DrawTwo:
		return c.color.Paint("+2!")
	case Wild:
		return c.color.Paint("(*)")
	case WildDrawFour:
		return c.color.Paint("+4!")
	default:
		return c.color.Paintf("[%d]", int(c.rank))
	}
}

// Label is the uncolored description used in logs and history.
func (c Card) Label() string {
	return fmt.Sprintf("%s %s", c.color.Name(), c.rank)
}
