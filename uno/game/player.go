package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Player is a seat in a match. Names are unique within a match and identify the player
// in every command.
type Player struct {
	seat      int
	name      string
	hand      *Hand
	calledUno bool
}

func newPlayer(seat int, name string) *Player {
	return &Player{
		seat: seat,
		name: name,
		hand: NewHand(),
	}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Hand() []card.Card {
	return p.hand.Cards()
}

func (p *Player) HandSize() int {
	return p.hand.Size()
}

// CalledUno is true between a declared call and the next resolved play.
func (p *Player) CalledUno() bool {
	return p.calledUno
}
