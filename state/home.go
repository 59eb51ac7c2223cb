package state

import (
	"strings"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/database"
)

const homeMenu = "1.Join\n2.New\n3.Rules\n"

const rules = `Match the color or the rank of the top card, or play a wild and name a color.
  play <index> [color]  play a card from your hand, wilds need a color
  draw                  draw one card, a playable card keeps your turn
  uno                   call before playing your second last card, or draw two
  challenge / accept    answer a wild draw four: a wrong challenge costs six cards
  hand, state, history  look at your cards, the table or the match log
Idle players are played for after the turn timeout.
`

var homeOptions = map[string]consts.StateID{
	"1":      consts.StateJoin,
	"join":   consts.StateJoin,
	"j":      consts.StateJoin,
	"2":      consts.StateCreate,
	"new":    consts.StateCreate,
	"n":      consts.StateCreate,
	"create": consts.StateCreate,
	"3":      consts.StateHome,
	"rules":  consts.StateHome,
	"r":      consts.StateHome,
}

type home struct{}

func (*home) Next(player *database.Player) (consts.StateID, error) {
	err := player.WriteString(homeMenu)
	if err != nil {
		return 0, player.WriteError(err)
	}
	selected, err := player.AskForString()
	if err != nil {
		return 0, player.WriteError(err)
	}
	next, ok := homeOption(selected)
	if !ok {
		return 0, player.WriteError(consts.ErrorsInputInvalid)
	}
	if next == consts.StateHome {
		return next, player.WriteString(rules)
	}
	return next, nil
}

func (*home) Exit(player *database.Player) consts.StateID {
	return 0
}

func homeOption(selected string) (consts.StateID, bool) {
	next, ok := homeOptions[strings.ToLower(strings.TrimSpace(selected))]
	return next, ok
}
