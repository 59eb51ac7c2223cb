package event

import "github.com/ratel-online/uno/uno/card"

type UnoPenalizedPayload struct {
	PlayerName string
	Cards      []card.Card
}

type UnoPenalizedListener interface {
	OnUnoPenalized(UnoPenalizedPayload)
}

type UnoPenalizedEmitter struct {
	listeners []UnoPenalizedListener
}

func (e *UnoPenalizedEmitter) AddListener(listener UnoPenalizedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *UnoPenalizedEmitter) Emit(payload UnoPenalizedPayload) {
	for _, listener := range e.listeners {
		listener.OnUnoPenalized(payload)
	}
}
