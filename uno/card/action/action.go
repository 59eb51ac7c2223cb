package action

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Action records one side effect of a resolved play.
type Action interface{}

type DrawCardsAction struct {
	PlayerName string
	Cards      []card.Card
}

func NewDrawCardsAction(playerName string, cards []card.Card) Action {
	return DrawCardsAction{PlayerName: playerName, Cards: cards}
}

func (a DrawCardsAction) Amount() int {
	return len(a.Cards)
}

type ReverseTurnsAction struct{}

func NewReverseTurnsAction() Action {
	return ReverseTurnsAction{}
}

type SkipTurnAction struct {
	PlayerName string
}

func NewSkipTurnAction(playerName string) Action {
	return SkipTurnAction{PlayerName: playerName}
}

type PickColorAction struct {
	Color color.Color
}

func NewPickColorAction(c color.Color) Action {
	return PickColorAction{Color: c}
}

// ChallengeOpenedAction marks a wild draw four awaiting the victim's decision.
type ChallengeOpenedAction struct {
	VictimName string
}

func NewChallengeOpenedAction(victimName string) Action {
	return ChallengeOpenedAction{VictimName: victimName}
}

// UnoPenaltyAction is a forgotten call: the player drew Cards.
type UnoPenaltyAction struct {
	PlayerName string
	Cards      []card.Card
}

func NewUnoPenaltyAction(playerName string, cards []card.Card) Action {
	return UnoPenaltyAction{PlayerName: playerName, Cards: cards}
}
