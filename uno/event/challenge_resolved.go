package event

// ChallengeResolvedPayload closes a wild draw four window. Challenged is false when the victim declined.
type ChallengeResolvedPayload struct {
	VictimName   string
	PlayedByName string
	Challenged   bool
	Succeeded    bool
}

type ChallengeResolvedListener interface {
	OnChallengeResolved(ChallengeResolvedPayload)
}

type ChallengeResolvedEmitter struct {
	listeners []ChallengeResolvedListener
}

func (e *ChallengeResolvedEmitter) AddListener(listener ChallengeResolvedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *ChallengeResolvedEmitter) Emit(payload ChallengeResolvedPayload) {
	for _, listener := range e.listeners {
		listener.OnChallengeResolved(payload)
	}
}
