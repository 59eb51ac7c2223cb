package player

import (
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

const GoodName = "good"

type goodStrategy struct {
	basicStrategy
}

func NewGoodStrategy() Strategy {
	return goodStrategy{basicStrategy: basicStrategy{name: GoodName}}
}

func (s goodStrategy) Move(state game.State) Move {
	indexes := playableIndexes(state)
	if len(indexes) == 0 {
		return Move{Draw: true}
	}
	index := s.mostDiscardable(state, indexes)
	return Move{
		Index:   index,
		Color:   s.pickColor(state, index),
		CallUno: shouldCall(state),
	}
}

// mostDiscardable prefers the card after which most of the hand stays playable;
// wild cards are held back while anything else fits.
func (s goodStrategy) mostDiscardable(state game.State, indexes []int) int {
	best, maxSpareCards := -1, -1
	for _, index := range indexes {
		candidate := state.CurrentPlayerHand[index]
		if candidate.IsWild() && best >= 0 {
			continue
		}
		spareCards := 0
		for handIndex, handCard := range state.CurrentPlayerHand {
			if handIndex != index && !handCard.IsWild() && game.Playable(handCard, candidate) {
				spareCards++
			}
		}
		if best < 0 || state.CurrentPlayerHand[best].IsWild() || spareCards > maxSpareCards {
			best, maxSpareCards = index, spareCards
		}
	}
	return best
}

// pickColor names the most frequent base color left in hand, blue when there is none.
func (s goodStrategy) pickColor(state game.State, playedIndex int) color.Color {
	colorCounts := make(map[color.Color]int)
	for index, c := range state.CurrentPlayerHand {
		if index != playedIndex && c.Color().IsBase() {
			colorCounts[c.Color()]++
		}
	}

	mostFrequentColor, mostFrequentColorAmount := color.Blue, 0
	for _, availableColor := range color.Base {
		if amount := colorCounts[availableColor]; amount > mostFrequentColorAmount {
			mostFrequentColorAmount = amount
			mostFrequentColor = availableColor
		}
	}
	return mostFrequentColor
}
