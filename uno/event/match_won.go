package event

type MatchWonPayload struct {
	PlayerName string
}

type MatchWonListener interface {
	OnMatchWon(MatchWonPayload)
}

type MatchWonEmitter struct {
	listeners []MatchWonListener
}

func (e *MatchWonEmitter) AddListener(listener MatchWonListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *MatchWonEmitter) Emit(payload MatchWonPayload) {
	for _, listener := range e.listeners {
		listener.OnMatchWon(payload)
	}
}
