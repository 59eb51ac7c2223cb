package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

var Message = MessageWriter{}

// MessageWriter renders one line per match event, newline terminated.
type MessageWriter struct{}

func sprintfln(format string, args ...interface{}) string {
	return fmt.Sprintln(fmt.Sprintf(format, args...))
}

func (m MessageWriter) ChallengeOpened(victimName, playedByName string) string {
	return sprintfln("%s played a wild draw four on %s! %s, type 'challenge' or 'accept'.", playedByName, victimName, victimName)
}

func (m MessageWriter) ChallengeResolved(victimName, playedByName string, challenged, succeeded bool) string {
	switch {
	case !challenged:
		return sprintfln("%s accepted the wild draw four from %s.", victimName, playedByName)
	case succeeded:
		return sprintfln("%s challenged %s and was right!", victimName, playedByName)
	default:
		return sprintfln("%s challenged %s and was wrong!", victimName, playedByName)
	}
}

func (m MessageWriter) FirstCardPlayed(c card.Card) string {
	return sprintfln("First card is %s", c)
}

func (m MessageWriter) Hand(hand []card.Card) string {
	labels := make([]string, 0, len(hand))
	for index, c := range hand {
		labels = append(labels, fmt.Sprintf("%d:%s", index, c))
	}
	return sprintfln("Your hand: %s", strings.Join(labels, " "))
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return sprintfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerCalledUno(playerName string) string {
	return sprintfln("%s calls UNO!", playerName)
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []card.Card) string {
	switch len(cards) {
	case 0:
		return sprintfln("%s had nothing left to draw!", playerName)
	case 1:
		return sprintfln("%s drew a card!", playerName)
	default:
		return sprintfln("%s drew %d cards!", playerName, len(cards))
	}
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return sprintfln("%s passed!", playerName)
}

func (m MessageWriter) PlayerPenalized(playerName string, cards []card.Card) string {
	return sprintfln("%s forgot to call UNO and draws %d cards!", playerName, len(cards))
}

func (m MessageWriter) PlayerPickedColor(playerName string, c color.Color) string {
	return sprintfln("%s picked color %s!", playerName, c)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, c card.Card) string {
	return sprintfln("%s played %s!", playerName, c)
}

func (m MessageWriter) PlayerTimedOut(playerName string) string {
	return sprintfln("%s ran out of time and plays automatically.", playerName)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return sprintfln("%s's turn skipped!", playerName)
}

func (m MessageWriter) TurnOrderReversed() string {
	return fmt.Sprintln("Turn order has been reversed!")
}

func (m MessageWriter) TurnStarted(playerName string) string {
	return sprintfln("It's %s's turn.", playerName)
}

func (m MessageWriter) Welcome() string {
	return sprintfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return sprintfln("%s wins!", playerName)
}
