package event

// Bus holds one emitter per event kind. Each match owns its own Bus.
type Bus struct {
	FirstCardPlayed   *FirstCardPlayedEmitter
	CardPlayed        *CardPlayedEmitter
	ColorPicked       *ColorPickedEmitter
	CardsDrawn        *CardsDrawnEmitter
	PlayerPassed      *PlayerPassedEmitter
	TurnSkipped       *TurnSkippedEmitter
	TurnOrderReversed *TurnOrderReversedEmitter
	UnoCalled         *UnoCalledEmitter
	UnoPenalized      *UnoPenalizedEmitter
	ChallengeOpened   *ChallengeOpenedEmitter
	ChallengeResolved *ChallengeResolvedEmitter
	MatchWon          *MatchWonEmitter
}

func NewBus() *Bus {
	return &Bus{
		FirstCardPlayed:   &FirstCardPlayedEmitter{},
		CardPlayed:        &CardPlayedEmitter{},
		ColorPicked:       &ColorPickedEmitter{},
		CardsDrawn:        &CardsDrawnEmitter{},
		PlayerPassed:      &PlayerPassedEmitter{},
		TurnSkipped:       &TurnSkippedEmitter{},
		TurnOrderReversed: &TurnOrderReversedEmitter{},
		UnoCalled:         &UnoCalledEmitter{},
		UnoPenalized:      &UnoPenalizedEmitter{},
		ChallengeOpened:   &ChallengeOpenedEmitter{},
		ChallengeResolved: &ChallengeResolvedEmitter{},
		MatchWon:          &MatchWonEmitter{},
	}
}

// AddListener registers listener on every emitter whose listener interface it implements
// and reports whether it matched any.
func (b *Bus) AddListener(listener interface{}) bool {
	matched := false
	if l, ok := listener.(FirstCardPlayedListener); ok {
		b.FirstCardPlayed.AddListener(l)
		matched = true
	}
	if l, ok := listener.(CardPlayedListener); ok {
		b.CardPlayed.AddListener(l)
		matched = true
	}
	if l, ok := listener.(ColorPickedListener); ok {
		b.ColorPicked.AddListener(l)
		matched = true
	}
	if l, ok := listener.(CardsDrawnListener); ok {
		b.CardsDrawn.AddListener(l)
		matched = true
	}
	if l, ok := listener.(PlayerPassedListener); ok {
		b.PlayerPassed.AddListener(l)
		matched = true
	}
	if l, ok := listener.(TurnSkippedListener); ok {
		b.TurnSkipped.AddListener(l)
		matched = true
	}
	if l, ok := listener.(TurnOrderReversedListener); ok {
		b.TurnOrderReversed.AddListener(l)
		matched = true
	}
	if l, ok := listener.(UnoCalledListener); ok {
		b.UnoCalled.AddListener(l)
		matched = true
	}
	if l, ok := listener.(UnoPenalizedListener); ok {
		b.UnoPenalized.AddListener(l)
		matched = true
	}
	if l, ok := listener.(ChallengeOpenedListener); ok {
		b.ChallengeOpened.AddListener(l)
		matched = true
	}
	if l, ok := listener.(ChallengeResolvedListener); ok {
		b.ChallengeResolved.AddListener(l)
		matched = true
	}
	if l, ok := listener.(MatchWonListener); ok {
		b.MatchWon.AddListener(l)
		matched = true
	}
	return matched
}
