package event

type UnoCalledPayload struct {
	PlayerName string
}

type UnoCalledListener interface {
	OnUnoCalled(UnoCalledPayload)
}

type UnoCalledEmitter struct {
	listeners []UnoCalledListener
}

func (e *UnoCalledEmitter) AddListener(listener UnoCalledListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *UnoCalledEmitter) Emit(payload UnoCalledPayload) {
	for _, listener := range e.listeners {
		listener.OnUnoCalled(payload)
	}
}
