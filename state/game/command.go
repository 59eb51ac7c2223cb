package game

import (
	"strconv"
	"strings"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/color"
	unogame "github.com/ratel-online/uno/uno/game"
)

type CommandKind int

const (
	_ CommandKind = iota
	CommandPlay
	CommandDraw
	CommandUno
	CommandChallenge
	CommandAccept
	CommandHand
	CommandState
	CommandHistory
)

// Command is one parsed line of player input. Index and Color are only set for plays;
// Color is color.None when no color was named.
type Command struct {
	Kind  CommandKind
	Index int
	Color color.Color
}

var keywords = map[string]CommandKind{
	"play":      CommandPlay,
	"p":         CommandPlay,
	"draw":      CommandDraw,
	"d":         CommandDraw,
	"uno":       CommandUno,
	"challenge": CommandChallenge,
	"accept":    CommandAccept,
	"hand":      CommandHand,
	"h":         CommandHand,
	"state":     CommandState,
	"ls":        CommandState,
	"history":   CommandHistory,
}

// ParseCommand reads "play <index> [color]", "draw", "uno", "challenge", "accept",
// "hand", "state" or "history". Anything else is ErrorsUnknownCommand.
func ParseCommand(input string) (Command, error) {
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 {
		return Command{}, consts.ErrorsUnknownCommand
	}
	kind, ok := keywords[fields[0]]
	if !ok {
		return Command{}, consts.ErrorsUnknownCommand
	}
	if kind != CommandPlay {
		if len(fields) > 1 {
			return Command{}, consts.ErrorsInputInvalid
		}
		return Command{Kind: kind}, nil
	}

	if len(fields) < 2 || len(fields) > 3 {
		return Command{}, consts.ErrorsInputInvalid
	}
	index, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{}, consts.ErrorsInputInvalid
	}
	command := Command{Kind: CommandPlay, Index: index, Color: color.None}
	if len(fields) == 3 {
		chosen, err := color.ByName(fields[2])
		if err != nil {
			return Command{}, unogame.ErrInvalidColorChoice
		}
		command.Color = chosen
	}
	return command, nil
}
