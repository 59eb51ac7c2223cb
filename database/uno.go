package database

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/player"
)

const (
	HistoryStart     = "start"
	HistoryPlay      = "play"
	HistoryDraw      = "draw"
	HistoryCall      = "uno"
	HistoryChallenge = "challenge"
	HistoryAccept    = "accept"
)

// HistoryEntry is one resolved command.
type HistoryEntry struct {
	Action     string    `json:"action"`
	PlayerName string    `json:"playerName"`
	Details    string    `json:"details"`
	NextPlayer string    `json:"nextPlayer"`
	Time       time.Time `json:"time"`
}

// UnoGame is a running match in a room. Commands are serialized by its lock and every
// resolved command is published on Bus and appended to the history.
type UnoGame struct {
	sync.Mutex

	ID     string      `json:"id"`
	RoomID int64       `json:"roomId"`
	Match  *game.Match `json:"-"`
	Bus    *event.Bus  `json:"-"`

	ids        map[string]int64
	history    []HistoryEntry
	lastActive time.Time
	autoPlayer player.Strategy
	done       chan struct{}
	closeOnce  sync.Once
}

// NewUnoGame starts a match for names. listeners are registered before the first
// discard is announced; autoPlayer acts for idle seats.
func NewUnoGame(roomID int64, names []string, listeners []interface{}, autoPlayer player.Strategy, opts ...game.Option) (*UnoGame, error) {
	match, err := game.New(names, opts...)
	if err != nil {
		return nil, err
	}
	ug := &UnoGame{
		ID:         uuid.NewString(),
		RoomID:     roomID,
		Match:      match,
		Bus:        event.NewBus(),
		ids:        map[string]int64{},
		lastActive: time.Now(),
		autoPlayer: autoPlayer,
		done:       make(chan struct{}),
	}
	for _, listener := range listeners {
		if !ug.Bus.AddListener(listener) {
			log.Errorf("uno game %s: listener %T handles no events\n", ug.ID, listener)
		}
	}
	ug.Bus.PublishFirstCard(match.TopOfDiscard())
	ug.record(HistoryStart, "", match.TopOfDiscard().Label())
	return ug, nil
}

// StartUnoGame seats the room's players in join order. Duplicate display names are
// qualified with the player id so every seat has a unique name.
func StartUnoGame(room *Room, autoPlayer player.Strategy) (*UnoGame, error) {
	names := make([]string, 0, len(room.seats))
	ids := map[string]int64{}
	for _, id := range room.seats {
		p := getPlayer(id)
		if p == nil {
			continue
		}
		name := p.Name
		if _, ok := ids[name]; ok || name == "" {
			name = p.String()
		}
		names = append(names, name)
		ids[name] = id
	}
	roomID := room.ID
	narrator := msg.NewNarrator(func(line string) {
		Broadcast(roomID, line)
	})
	ug, err := NewUnoGame(roomID, names, []interface{}{narrator}, autoPlayer)
	if err != nil {
		return nil, err
	}
	ug.ids = ids
	log.Infof("[Uno.Start] room %d match %s players %v auto %s\n", roomID, ug.ID, names, ug.AutoStrategy())
	return ug, nil
}

// NameOf returns the seat name of a connected player, or "" when they are not seated.
func (ug *UnoGame) NameOf(playerID int64) string {
	for name, id := range ug.ids {
		if id == playerID {
			return name
		}
	}
	return ""
}

func (ug *UnoGame) PlayerID(name string) (int64, bool) {
	id, ok := ug.ids[name]
	return id, ok
}

func (ug *UnoGame) Play(name string, index int, chosen color.Color) (game.PlayResult, error) {
	ug.Lock()
	defer ug.Unlock()
	return ug.play(name, index, chosen)
}

func (ug *UnoGame) play(name string, index int, chosen color.Color) (game.PlayResult, error) {
	result, err := ug.Match.Play(name, index, chosen)
	if err != nil {
		return result, err
	}
	ug.Bus.PublishPlay(result)
	ug.record(HistoryPlay, name, describePlay(result))
	return result, nil
}

func (ug *UnoGame) Draw(name string) (game.DrawResult, error) {
	ug.Lock()
	defer ug.Unlock()
	return ug.draw(name)
}

func (ug *UnoGame) draw(name string) (game.DrawResult, error) {
	result, err := ug.Match.Draw(name)
	if err != nil {
		return result, err
	}
	ug.Bus.PublishDraw(result)
	details := "passed"
	if result.Playable {
		details = "playable"
	}
	ug.record(HistoryDraw, name, details)
	return result, nil
}

func (ug *UnoGame) CallUno(name string) error {
	ug.Lock()
	defer ug.Unlock()
	return ug.callUno(name)
}

func (ug *UnoGame) callUno(name string) error {
	if err := ug.Match.DeclareCall(name); err != nil {
		return err
	}
	ug.Bus.PublishCall(name)
	ug.record(HistoryCall, name, "")
	return nil
}

// Decide resolves the pending wild draw four: accept takes the cards, otherwise the victim challenges.
func (ug *UnoGame) Decide(name string, accept bool) (game.ChallengeResult, error) {
	ug.Lock()
	defer ug.Unlock()
	return ug.decide(name, accept)
}

func (ug *UnoGame) decide(name string, accept bool) (game.ChallengeResult, error) {
	result, err := ug.Match.ChallengeDecision(name, accept)
	if err != nil {
		return result, err
	}
	ug.Bus.PublishChallenge(result)
	entry := HistoryAccept
	if result.Challenged {
		entry = HistoryChallenge
	}
	ug.record(entry, name, fmt.Sprintf("%s drew %d", result.DrawerName, len(result.Cards)))
	return result, nil
}

// Actor is the seat that has to act next: the challenge victim while a wild draw four
// is pending, the current player otherwise.
func (ug *UnoGame) Actor() string {
	ug.Lock()
	defer ug.Unlock()
	return ug.actor()
}

func (ug *UnoGame) actor() string {
	if pending, ok := ug.Match.PendingChallenge(); ok {
		return pending.VictimName
	}
	return ug.Match.Current().Name()
}

// AutoPlayIfIdle acts for the actor with the automatic strategy when nothing was
// resolved within timeout. It returns the seat it acted for. A failed attempt
// restarts the idle clock, so it is retried once per timeout.
func (ug *UnoGame) AutoPlayIfIdle(timeout time.Duration) (string, bool, error) {
	ug.Lock()
	defer ug.Unlock()
	if ug.finished() || time.Since(ug.lastActive) < timeout {
		return "", false, nil
	}
	actor := ug.actor()
	if err := ug.autoPlay(actor); err != nil {
		ug.lastActive = time.Now()
		return actor, false, err
	}
	return actor, true, nil
}

func (ug *UnoGame) autoPlay(actor string) error {
	state := ug.Match.ExtractState(actor)
	if _, ok := ug.Match.PendingChallenge(); ok {
		_, err := ug.decide(actor, ug.autoPlayer.AcceptDrawFour(state))
		return err
	}
	move := ug.autoPlayer.Move(state)
	if move.Draw {
		_, err := ug.draw(actor)
		return err
	}
	if move.CallUno {
		if err := ug.callUno(actor); err != nil {
			return err
		}
	}
	_, err := ug.play(actor, move.Index, move.Color)
	return err
}

// AutoStrategy is the name of the strategy that plays for idle seats.
func (ug *UnoGame) AutoStrategy() string {
	return ug.autoPlayer.Name()
}

func (ug *UnoGame) Finished() bool {
	ug.Lock()
	defer ug.Unlock()
	return ug.finished()
}

func (ug *UnoGame) finished() bool {
	return ug.Match.Phase() == game.MatchWon
}

// State is the match as seen by name.
func (ug *UnoGame) State(name string) game.State {
	ug.Lock()
	defer ug.Unlock()
	return ug.Match.ExtractState(name)
}

func (ug *UnoGame) History() []HistoryEntry {
	ug.Lock()
	defer ug.Unlock()
	history := make([]HistoryEntry, len(ug.history))
	copy(history, ug.history)
	return history
}

func (ug *UnoGame) HistoryJSON() []byte {
	return json.Marshal(ug.History())
}

// Done is closed when the room holding the game is removed.
func (ug *UnoGame) Done() <-chan struct{} {
	return ug.done
}

func (ug *UnoGame) close() {
	if ug != nil {
		ug.closeOnce.Do(func() {
			close(ug.done)
		})
	}
}

func (ug *UnoGame) record(entryAction, playerName, details string) {
	ug.lastActive = time.Now()
	next := ""
	if !ug.finished() {
		next = ug.actor()
	}
	ug.history = append(ug.history, HistoryEntry{
		Action:     entryAction,
		PlayerName: playerName,
		Details:    details,
		NextPlayer: next,
		Time:       ug.lastActive,
	})
}

func describePlay(result game.PlayResult) string {
	parts := []string{result.Card.Label()}
	for _, a := range result.Actions {
		switch a := a.(type) {
		case action.DrawCardsAction:
			parts = append(parts, fmt.Sprintf("%s drew %d", a.PlayerName, a.Amount()))
		case action.SkipTurnAction:
			parts = append(parts, fmt.Sprintf("%s skipped", a.PlayerName))
		case action.ReverseTurnsAction:
			parts = append(parts, "reversed")
		case action.ChallengeOpenedAction:
			parts = append(parts, fmt.Sprintf("%s may challenge", a.VictimName))
		case action.UnoPenaltyAction:
			parts = append(parts, fmt.Sprintf("%s forgot uno", a.PlayerName))
		}
	}
	if result.Won() {
		parts = append(parts, "won")
	}
	return strings.Join(parts, ", ")
}
