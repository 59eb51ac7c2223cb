package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// SetHand replaces the player's hand, moving cards between deck and hands so the
// total card count is unchanged.
func (m *Match) SetHand(name string, cards ...card.Card) {
	player := m.find(name)
	for _, c := range player.hand.cards {
		m.deck.Put(c)
	}
	player.hand.cards = make([]card.Card, 0, len(cards))
	for _, c := range cards {
		m.take(c, player)
		player.hand.cards = append(player.hand.cards, c)
	}
}

// SetTop swaps the discard top for c. Wild cards keep the color given in c.
func (m *Match) SetTop(c card.Card) {
	top := m.pile.Top()
	if top.IsWild() {
		top = top.WithColor(color.Wild)
	}
	m.deck.Put(top)
	raw := c
	if c.IsWild() {
		raw = c.WithColor(color.Wild)
	}
	m.take(raw, nil)
	m.pile.ReplaceTop(c)
}

func (p *Pile) ReplaceTop(c card.Card) {
	p.cards[len(p.cards)-1] = c
}

func (m *Match) SetCurrent(name string) {
	m.cycler.current = m.find(name).seat
}

// Bury moves amount cards from the deck under the discard top.
func (m *Match) Bury(amount int) {
	top := m.pile.Top()
	m.pile.cards = m.pile.cards[:len(m.pile.cards)-1]
	for i := 0; i < amount; i++ {
		c, _ := m.deck.Draw()
		m.pile.Add(c)
	}
	m.pile.Add(top)
}

// EmptyDeckInto hands every remaining deck card to the named player.
func (m *Match) EmptyDeckInto(name string) {
	player := m.find(name)
	player.hand.AddCards(m.deck.cards)
	m.deck.cards = nil
}

func (m *Match) take(c card.Card, except *Player) {
	if removeCard(&m.deck.cards, c) {
		return
	}
	for _, player := range m.players {
		if player == except {
			continue
		}
		if removeCard(&player.hand.cards, c) {
			replacement, _ := m.deck.Draw()
			player.hand.cards = append(player.hand.cards, replacement)
			return
		}
	}
	panic("card not available: " + c.Label())
}

func removeCard(cards *[]card.Card, c card.Card) bool {
	for i := len(*cards) - 1; i >= 0; i-- {
		if (*cards)[i] == c {
			*cards = append((*cards)[:i], (*cards)[i+1:]...)
			return true
		}
	}
	return false
}

// StackDeck puts c on top of the deck so the next draw returns it.
func (m *Match) StackDeck(c card.Card) {
	m.take(c, nil)
	m.deck.Put(c)
}
