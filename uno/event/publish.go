package event

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/game"
)

func (b *Bus) PublishFirstCard(c card.Card) {
	b.FirstCardPlayed.Emit(FirstCardPlayedPayload{Card: c})
}

// PublishPlay emits the played card, then each of its effects in the order they resolved.
func (b *Bus) PublishPlay(result game.PlayResult) {
	b.CardPlayed.Emit(CardPlayedPayload{PlayerName: result.PlayerName, Card: result.Card})
	for _, a := range result.Actions {
		switch a := a.(type) {
		case action.PickColorAction:
			b.ColorPicked.Emit(ColorPickedPayload{PlayerName: result.PlayerName, Color: a.Color})
		case action.DrawCardsAction:
			b.CardsDrawn.Emit(CardsDrawnPayload{PlayerName: a.PlayerName, Cards: a.Cards})
		case action.SkipTurnAction:
			b.TurnSkipped.Emit(TurnSkippedPayload{PlayerName: a.PlayerName})
		case action.ReverseTurnsAction:
			b.TurnOrderReversed.Emit(TurnOrderReversedPayload{})
		case action.ChallengeOpenedAction:
			b.ChallengeOpened.Emit(ChallengeOpenedPayload{VictimName: a.VictimName, PlayedByName: result.PlayerName})
		case action.UnoPenaltyAction:
			b.UnoPenalized.Emit(UnoPenalizedPayload{PlayerName: a.PlayerName, Cards: a.Cards})
		}
	}
	if result.Won() {
		b.MatchWon.Emit(MatchWonPayload{PlayerName: result.WinnerName})
	}
}

func (b *Bus) PublishDraw(result game.DrawResult) {
	b.CardsDrawn.Emit(CardsDrawnPayload{PlayerName: result.PlayerName, Cards: []card.Card{result.Card}})
	if !result.Playable {
		b.PlayerPassed.Emit(PlayerPassedPayload{PlayerName: result.PlayerName})
	}
}

func (b *Bus) PublishCall(playerName string) {
	b.UnoCalled.Emit(UnoCalledPayload{PlayerName: playerName})
}

func (b *Bus) PublishChallenge(result game.ChallengeResult) {
	b.ChallengeResolved.Emit(ChallengeResolvedPayload{
		VictimName:   result.VictimName,
		PlayedByName: result.PlayedByName,
		Challenged:   result.Challenged,
		Succeeded:    result.Succeeded,
	})
	b.CardsDrawn.Emit(CardsDrawnPayload{PlayerName: result.DrawerName, Cards: result.Cards})
}
