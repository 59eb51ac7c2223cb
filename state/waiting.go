package state

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/database"
	unoplayer "github.com/ratel-online/uno/uno/player"
)

type waiting struct{}

func (s *waiting) Next(player *database.Player) (consts.StateID, error) {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return 0, consts.ErrorsExist
	}
	access, err := waitingForStart(player, room)
	if err != nil {
		return 0, err
	}
	if access {
		return consts.StateUnoGame, nil
	}
	return s.Exit(player), nil
}

func (*waiting) Exit(player *database.Player) consts.StateID {
	room := database.GetRoom(player.RoomID)
	if room != nil {
		isOwner := room.Creator == player.ID
		database.LeaveRoom(room.ID, player.ID)
		database.Broadcast(room.ID, fmt.Sprintf("%s exited room! room current has %d players\n", player.Name, room.Players))
		if isOwner {
			if newOwner := database.GetPlayer(room.Creator); newOwner != nil && newOwner.ID != player.ID {
				database.Broadcast(room.ID, fmt.Sprintf("%s become new owner\n", newOwner.Name))
			}
		}
	}
	return consts.StateHome
}

func waitingForStart(player *database.Player, room *database.Room) (bool, error) {
	player.StartTransaction()
	defer player.StopTransaction()
	for {
		signal, err := player.ReadString(time.Second)
		if err != nil && err != consts.ErrorsTimeout {
			return false, err
		}
		if room.State == consts.RoomStateRunning {
			return true, nil
		}
		command := strings.ToLower(signal)
		if command == "ls" || command == "v" {
			viewRoomPlayers(room, player)
		} else if (command == "start" || command == "s") && room.Creator == player.ID {
			if err = startGame(room); err != nil {
				_ = player.WriteError(err)
				continue
			}
			return true, nil
		} else if strings.HasPrefix(command, "set ") && room.Creator == player.ID {
			if key, value, ok := parseRoomProps(signal); ok {
				if err = database.SetRoomProps(room, key, value); err != nil {
					_ = player.WriteError(err)
				}
				continue
			}
			database.BroadcastChat(player, fmt.Sprintf("%s say: %s\n", player.Name, signal))
		} else if len(signal) > 0 {
			database.BroadcastChat(player, fmt.Sprintf("%s say: %s\n", player.Name, signal))
		}
	}
}

// parseRoomProps reads "set <key> <value>". Keys are case-insensitive, and so
// are values other than the password.
func parseRoomProps(signal string) (string, string, bool) {
	tags := strings.Fields(signal)
	if len(tags) != 3 || !strings.EqualFold(tags[0], "set") {
		return "", "", false
	}
	key, value := strings.ToLower(tags[1]), tags[2]
	if key != consts.RoomPropsPassword || strings.EqualFold(value, "off") {
		value = strings.ToLower(value)
	}
	return key, value, true
}

func startGame(room *database.Room) error {
	room.Lock()
	defer room.Unlock()
	if room.State == consts.RoomStateRunning {
		return nil
	}
	if room.Players < consts.MinPlayers {
		return consts.ErrorsGamePlayersInvalid
	}
	unoGame, err := database.StartUnoGame(room, unoplayer.New(settings.AutoStrategy))
	if err != nil {
		log.Errorf("room %d start uno game err: %v\n", room.ID, err)
		return consts.ErrorsGamePlayersInvalid
	}
	room.UnoGame = unoGame
	room.State = consts.RoomStateRunning
	return nil
}

func viewRoomPlayers(room *database.Room, currPlayer *database.Player) {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("Room ID: %d\n", room.ID))
	buf.WriteString(fmt.Sprintf("%-20s%-10s%-10s\n", "Name", "Score", "Title"))
	for _, playerId := range database.RoomPlayers(room.ID) {
		title := "player"
		if playerId == room.Creator {
			title = "owner"
		}
		player := database.GetPlayer(playerId)
		if player == nil {
			continue
		}
		buf.WriteString(fmt.Sprintf("%-20s%-10d%-10s\n", player.Name, player.Score, title))
	}
	buf.WriteString("\nSettings:\n")
	buf.WriteString(fmt.Sprintf("%-5s%-5v\n", "pn:", room.MaxPlayers))
	pwd := room.Password
	if pwd != "" {
		if room.Creator != currPlayer.ID {
			pwd = "********"
		}
	} else {
		pwd = "off"
	}
	buf.WriteString(fmt.Sprintf("%-5s%-20v\n", "pwd:", pwd))
	_ = currPlayer.WriteString(buf.String())
}
