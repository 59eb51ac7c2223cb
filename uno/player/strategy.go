package player

import (
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// Move is what a strategy wants to do on its turn. Index points into the
// viewer's hand and is ignored when Draw is set.
type Move struct {
	Draw    bool
	Index   int
	Color   color.Color
	CallUno bool
}

// Strategy plays on behalf of a seat that has no human input.
type Strategy interface {
	Name() string
	Move(state game.State) Move
	// AcceptDrawFour reports whether the challenge victim takes the four cards
	// instead of challenging.
	AcceptDrawFour(state game.State) bool
}

func New(name string) Strategy {
	switch name {
	case NaiveName:
		return NewNaiveStrategy(nil)
	default:
		return NewGoodStrategy()
	}
}

type basicStrategy struct {
	name string
}

func (s basicStrategy) Name() string {
	return s.name
}

// AcceptDrawFour declines to challenge: the opponents' hands are hidden.
func (s basicStrategy) AcceptDrawFour(game.State) bool {
	return true
}

func playableIndexes(state game.State) []int {
	indexes := make([]int, 0, len(state.CurrentPlayerHand))
	for index, c := range state.CurrentPlayerHand {
		if game.Playable(c, state.LastPlayedCard) {
			indexes = append(indexes, index)
		}
	}
	return indexes
}

// shouldCall is true when playing leaves a single card.
func shouldCall(state game.State) bool {
	return len(state.CurrentPlayerHand) == 2
}
