package event

type ChallengeOpenedPayload struct {
	VictimName   string
	PlayedByName string
}

type ChallengeOpenedListener interface {
	OnChallengeOpened(ChallengeOpenedPayload)
}

type ChallengeOpenedEmitter struct {
	listeners []ChallengeOpenedListener
}

func (e *ChallengeOpenedEmitter) AddListener(listener ChallengeOpenedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *ChallengeOpenedEmitter) Emit(payload ChallengeOpenedPayload) {
	for _, listener := range e.listeners {
		listener.OnChallengeOpened(payload)
	}
}
