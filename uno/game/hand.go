package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Hand keeps cards in the order they were received so indexes stay stable for the owner.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, StartingHandSize)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) At(index int) (card.Card, error) {
	if index < 0 || index >= len(h.cards) {
		return card.Card{}, ErrInvalidCardIndex
	}
	return h.cards[index], nil
}

func (h *Hand) RemoveAt(index int) (card.Card, error) {
	removed, err := h.At(index)
	if err != nil {
		return card.Card{}, err
	}
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return removed, nil
}

func (h *Hand) Size() int {
	return len(h.cards)
}
