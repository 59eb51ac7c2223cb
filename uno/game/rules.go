package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Playable reports whether candidateCard may go on top of lastPlayedCard.
// A wild on the pile already carries its chosen color.
func Playable(candidateCard card.Card, lastPlayedCard card.Card) bool {
	if candidateCard.IsWild() {
		return true
	}
	return candidateCard.Color() == lastPlayedCard.Color() ||
		candidateCard.Rank() == lastPlayedCard.Rank()
}

// ChallengeSucceeds reports whether handBeforePlay held a non-wild card of colorBeforePlay,
// which makes the wild draw four an illegal bluff.
func ChallengeSucceeds(handBeforePlay []card.Card, colorBeforePlay color.Color) bool {
	for _, c := range handBeforePlay {
		if !c.IsWild() && c.Color() == colorBeforePlay {
			return true
		}
	}
	return false
}
