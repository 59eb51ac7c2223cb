package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

type Phase int

const (
	AwaitingPlay Phase = iota + 1
	AwaitingChallengeDecision
	MatchWon
)

func (p Phase) String() string {
	switch p {
	case AwaitingPlay:
		return "awaiting play"
	case AwaitingChallengeDecision:
		return "awaiting challenge decision"
	case MatchWon:
		return "match won"
	default:
		return "unknown"
	}
}

// PendingChallenge is opened by a legal wild draw four and closed by the victim's decision.
type PendingChallenge struct {
	VictimName      string
	PlayedByName    string
	HandBeforePlay  []card.Card
	ColorBeforePlay color.Color
}

func (c PendingChallenge) Succeeds() bool {
	return ChallengeSucceeds(c.HandBeforePlay, c.ColorBeforePlay)
}

func (c PendingChallenge) clone() *PendingChallenge {
	hand := make([]card.Card, len(c.HandBeforePlay))
	copy(hand, c.HandBeforePlay)
	c.HandBeforePlay = hand
	return &c
}

// PlayResult describes a resolved play for the caller to broadcast.
type PlayResult struct {
	PlayerName     string
	Card           card.Card
	Actions        []action.Action
	NextPlayerName string
	Challenge      *PendingChallenge
	WinnerName     string
}

func (r PlayResult) Won() bool {
	return r.WinnerName != ""
}

type DrawResult struct {
	PlayerName     string
	Card           card.Card
	Playable       bool
	NextPlayerName string
}

// ChallengeResult describes how a wild draw four window closed.
// Challenged is false when the victim accepted the draw.
type ChallengeResult struct {
	VictimName     string
	PlayedByName   string
	Challenged     bool
	Succeeded      bool
	DrawerName     string
	Cards          []card.Card
	NextPlayerName string
}
