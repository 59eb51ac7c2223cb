package player

import (
	"math/rand"
	"time"

	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

const NaiveName = "naive"

// naiveStrategy plays its first legal card, picks a random color and never calls uno.
type naiveStrategy struct {
	basicStrategy
	rand *rand.Rand
}

func NewNaiveStrategy(source *rand.Rand) Strategy {
	if source == nil {
		source = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return naiveStrategy{basicStrategy: basicStrategy{name: NaiveName}, rand: source}
}

func (s naiveStrategy) Move(state game.State) Move {
	indexes := playableIndexes(state)
	if len(indexes) == 0 {
		return Move{Draw: true}
	}
	return Move{
		Index: indexes[0],
		Color: color.Base[s.rand.Intn(len(color.Base))],
	}
}
