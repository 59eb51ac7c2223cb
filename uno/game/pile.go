package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Pile is the discard pile. Its last card decides what can be played next.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(card card.Card) {
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

// Top returns the zero Card when the pile is empty.
func (p *Pile) Top() card.Card {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return card.Card{}
	}
	return p.cards[pileSize-1]
}

func (p *Pile) Size() int {
	return len(p.cards)
}

func (p *Pile) takeUnderTop() []card.Card {
	if len(p.cards) <= 1 {
		return nil
	}
	top := len(p.cards) - 1
	under := make([]card.Card, top)
	copy(under, p.cards[:top])
	p.cards = []card.Card{p.cards[top]}
	return under
}
