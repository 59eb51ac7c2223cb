package msg

import "github.com/ratel-online/uno/uno/event"

// Narrator turns match events into messages and hands each one to write.
type Narrator struct {
	write func(string)
}

func NewNarrator(write func(string)) *Narrator {
	return &Narrator{write: write}
}

func (n *Narrator) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	n.write(Message.FirstCardPlayed(payload.Card))
}

func (n *Narrator) OnCardPlayed(payload event.CardPlayedPayload) {
	n.write(Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (n *Narrator) OnColorPicked(payload event.ColorPickedPayload) {
	n.write(Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (n *Narrator) OnCardsDrawn(payload event.CardsDrawnPayload) {
	n.write(Message.PlayerDrewCards(payload.PlayerName, payload.Cards))
}

func (n *Narrator) OnPlayerPassed(payload event.PlayerPassedPayload) {
	n.write(Message.PlayerPassed(payload.PlayerName))
}

func (n *Narrator) OnTurnSkipped(payload event.TurnSkippedPayload) {
	n.write(Message.PlayerTurnSkipped(payload.PlayerName))
}

func (n *Narrator) OnTurnOrderReversed(event.TurnOrderReversedPayload) {
	n.write(Message.TurnOrderReversed())
}

func (n *Narrator) OnUnoCalled(payload event.UnoCalledPayload) {
	n.write(Message.PlayerCalledUno(payload.PlayerName))
}

func (n *Narrator) OnUnoPenalized(payload event.UnoPenalizedPayload) {
	n.write(Message.PlayerPenalized(payload.PlayerName, payload.Cards))
}

func (n *Narrator) OnChallengeOpened(payload event.ChallengeOpenedPayload) {
	n.write(Message.ChallengeOpened(payload.VictimName, payload.PlayedByName))
}

func (n *Narrator) OnChallengeResolved(payload event.ChallengeResolvedPayload) {
	n.write(Message.ChallengeResolved(payload.VictimName, payload.PlayedByName, payload.Challenged, payload.Succeeded))
}

func (n *Narrator) OnMatchWon(payload event.MatchWonPayload) {
	n.write(Message.WinnerFound(payload.PlayerName))
}
