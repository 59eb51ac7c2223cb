package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
)

// State is a read-only view of a match as seen by one player.
type State struct {
	LastPlayedCard    card.Card
	PlayedCards       []card.Card
	CurrentPlayerHand []card.Card
	PlayerSequence    []string
	PlayerHandCounts  map[string]int
	CurrentPlayer     string
	Direction         int
	Phase             Phase
	Pending           *PendingChallenge
	WinnerName        string
	DeckSize          int
}

// ExtractState builds the view for viewer. An unknown viewer gets an empty hand.
func (m *Match) ExtractState(viewer string) State {
	playerSequence := make([]string, 0, len(m.players))
	playerHandCounts := make(map[string]int, len(m.players))
	for _, player := range m.players {
		playerSequence = append(playerSequence, player.name)
		playerHandCounts[player.name] = player.hand.Size()
	}

	state := State{
		LastPlayedCard:   m.pile.Top(),
		PlayedCards:      m.pile.Cards(),
		PlayerSequence:   playerSequence,
		PlayerHandCounts: playerHandCounts,
		CurrentPlayer:    m.Current().name,
		Direction:        m.cycler.Direction(),
		Phase:            m.Phase(),
		DeckSize:         m.deck.Size(),
	}
	if player := m.find(viewer); player != nil {
		state.CurrentPlayerHand = player.Hand()
	}
	if m.pending != nil {
		state.Pending = m.pending.clone()
	}
	if m.winner != nil {
		state.WinnerName = m.winner.name
	}
	return state
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s", s.LastPlayedCard))

	var playerStatuses []string
	for _, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[playerName])
		if playerName == s.CurrentPlayer {
			playerStatus = "*" + playerStatus
		}
		playerStatuses = append(playerStatuses, playerStatus)
	}
	order := "clockwise"
	if s.Direction < 0 {
		order = "counter-clockwise"
	}
	lines = append(lines, fmt.Sprintf("Turn order (%s): %s", order, strings.Join(playerStatuses, ", ")))

	handLabels := make([]string, 0, len(s.CurrentPlayerHand))
	for index, c := range s.CurrentPlayerHand {
		handLabels = append(handLabels, fmt.Sprintf("%d:%s", index, c))
	}
	lines = append(lines, fmt.Sprintf("Your hand: %s", strings.Join(handLabels, " ")))

	if s.Pending != nil {
		lines = append(lines, fmt.Sprintf("%s may challenge the wild draw four played by %s", s.Pending.VictimName, s.Pending.PlayedByName))
	}

	return strings.Join(lines, "\n")
}
