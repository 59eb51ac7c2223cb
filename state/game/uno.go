package game

import (
	"bytes"
	"fmt"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/database"
	"github.com/ratel-online/uno/uno/msg"
)

// Uno is the in-match state: it reads commands from one connected player and
// auto-plays for whoever has been idle longer than PlayTimeout.
type Uno struct {
	PlayTimeout time.Duration
}

func (g *Uno) Next(player *database.Player) (consts.StateID, error) {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return 0, player.WriteError(consts.ErrorsExist)
	}
	ug := room.Game()
	if ug == nil {
		return consts.StateWaiting, nil
	}
	name := ug.NameOf(player.ID)
	if name == "" {
		return consts.StateWaiting, nil
	}

	buf := bytes.Buffer{}
	buf.WriteString(msg.Message.Welcome())
	buf.WriteString(ug.State(name).String() + "\n")
	_ = player.WriteString(buf.String())
	if ug.Actor() == name {
		prompt(ug, name)
	}

	player.StartTransaction()
	defer player.StopTransaction()
	for {
		select {
		case <-ug.Done():
			return 0, consts.ErrorsExist
		default:
		}
		if ug.Finished() {
			finish(room, ug)
			return consts.StateWaiting, nil
		}
		signal, err := player.ReadString(time.Second)
		if err != nil {
			if err != consts.ErrorsTimeout {
				return 0, err
			}
			g.autoPlay(ug)
			continue
		}
		command, err := ParseCommand(signal)
		if err == consts.ErrorsUnknownCommand {
			database.BroadcastChat(player, fmt.Sprintf("%s say: %s\n", player.Name, signal))
			continue
		}
		if err != nil {
			_ = player.WriteError(err)
			continue
		}
		if err = apply(ug, player, name, command); err != nil {
			_ = player.WriteError(err)
		}
	}
}

// Exit gives up the seat: the match goes on and the seat is auto-played after PlayTimeout.
func (g *Uno) Exit(player *database.Player) consts.StateID {
	roomID := player.RoomID
	database.LeaveRoom(roomID, player.ID)
	database.Broadcast(roomID, fmt.Sprintf("%s left the match!\n", player.Name))
	return consts.StateHome
}

func (g *Uno) autoPlay(ug *database.UnoGame) {
	actor, acted, err := ug.AutoPlayIfIdle(g.PlayTimeout)
	if err != nil {
		log.Errorf("[Uno.AutoPlay] match %s player %s err: %v\n", ug.ID, actor, err)
		return
	}
	if acted {
		database.Broadcast(ug.RoomID, msg.Message.PlayerTimedOut(actor))
		announce(ug)
	}
}

func apply(ug *database.UnoGame, player *database.Player, name string, command Command) error {
	switch command.Kind {
	case CommandPlay:
		if _, err := ug.Play(name, command.Index, command.Color); err != nil {
			return err
		}
	case CommandDraw:
		result, err := ug.Draw(name)
		if err != nil {
			return err
		}
		_ = player.WriteString(fmt.Sprintf("You drew %s!\n", result.Card))
	case CommandUno:
		if err := ug.CallUno(name); err != nil {
			return err
		}
		return nil
	case CommandChallenge, CommandAccept:
		if _, err := ug.Decide(name, command.Kind == CommandAccept); err != nil {
			return err
		}
	case CommandHand:
		return player.WriteString(msg.Message.Hand(ug.State(name).CurrentPlayerHand))
	case CommandState:
		return player.WriteString(ug.State(name).String() + "\n")
	case CommandHistory:
		return player.WriteObject(ug.History())
	}
	log.Infof("[Uno.Next] Player %d %s resolved command %d in match %s\n", player.ID, name, command.Kind, ug.ID)
	announce(ug)
	return nil
}

// announce tells the room whose turn it is and shows the actor their view.
func announce(ug *database.UnoGame) {
	if ug.Finished() {
		return
	}
	actor := ug.Actor()
	id, _ := ug.PlayerID(actor)
	database.Broadcast(ug.RoomID, msg.Message.TurnStarted(actor), id)
	prompt(ug, actor)
}

func prompt(ug *database.UnoGame, name string) {
	id, ok := ug.PlayerID(name)
	if !ok {
		return
	}
	if p := database.GetPlayer(id); p != nil && p.Online() {
		_ = p.WriteString(msg.Message.HumanPlayerTurnStarted(name) + ug.State(name).String() + "\n")
	}
}

// finish returns the room to waiting once per match and logs the match history.
func finish(room *database.Room, ug *database.UnoGame) {
	room.Lock()
	defer room.Unlock()
	if room.UnoGame != ug {
		return
	}
	room.UnoGame = nil
	room.State = consts.RoomStateWaiting
	log.Infof("[Uno.Finish] room %d match %s history %s\n", room.ID, ug.ID, ug.HistoryJSON())
}
