package game

import (
	"math/rand"
	"time"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

const DeckSize = 108

// Deck is a draw pile. The top card is the last element.
type Deck struct {
	cards []card.Card
	rand  *rand.Rand
}

// NewDeck returns the 108 cards in canonical order. A nil source seeds from the clock.
func NewDeck(source *rand.Rand) *Deck {
	if source == nil {
		source = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	deck := &Deck{rand: source}
	deck.Build()
	return deck
}

func (d *Deck) Build() {
	cards := make([]card.Card, 0, DeckSize)
	for _, cardColor := range color.Base {
		cards = append(cards, createColorCards(cardColor)...)
	}
	cards = append(cards, createBlackCards()...)
	d.cards = cards
}

func (d *Deck) Shuffle() {
	shuffleCards(d.rand, d.cards)
}

// Draw removes the top card. ok is false when the deck is empty.
func (d *Deck) Draw() (c card.Card, ok bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	top := len(d.cards) - 1
	c = d.cards[top]
	d.cards = d.cards[:top]
	return c, true
}

// Put places c back on top of the deck.
func (d *Deck) Put(c card.Card) {
	d.cards = append(d.cards, c)
}

// RecycleFrom turns everything under the pile's top into a freshly shuffled deck.
// Wild cards lose their chosen color on the way back.
func (d *Deck) RecycleFrom(pile *Pile) bool {
	under := pile.takeUnderTop()
	if len(under) == 0 {
		return false
	}
	for i, c := range under {
		if c.IsWild() {
			under[i] = c.WithColor(color.Wild)
		}
	}
	shuffleCards(d.rand, under)
	d.cards = under
	return true
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func createColorCards(cardColor color.Color) []card.Card {
	cards := []card.Card{card.NewNumberCard(cardColor, 0)}

	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	skipCard := card.NewSkipCard(cardColor)
	reverseCard := card.NewReverseCard(cardColor)
	drawTwoCard := card.NewDrawTwoCard(cardColor)

	return append(cards,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	)
}

func createBlackCards() []card.Card {
	wildCard := card.NewWildCard()
	wildDrawFourCard := card.NewWildDrawFourCard()

	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}

func shuffleCards(source *rand.Rand, cards []card.Card) {
	source.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}
