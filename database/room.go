package database

import (
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
)

type Room struct {
	sync.Mutex

	ID         int64     `json:"id"`
	UnoGame    *UnoGame  `json:"unoGame"`
	State      int       `json:"state"`
	Players    int       `json:"players"`
	Creator    int64     `json:"creator"`
	ActiveTime time.Time `json:"activeTime"`
	MaxPlayers int       `json:"maxPlayers"`
	Password   string    `json:"password"`

	seats []int64
}

// Game is the running match, nil while the room is waiting.
func (room *Room) Game() *UnoGame {
	room.Lock()
	defer room.Unlock()
	return room.UnoGame
}

func (room *Room) removePlayer(player *Player) {
	if room == nil || player == nil {
		return
	}
	room.ActiveTime = time.Now()
	playersIds := getRoomPlayers(room.ID)
	if _, ok := playersIds[player.ID]; ok {
		room.Players--
		player.RoomID = 0
		delete(playersIds, player.ID)
		for i, id := range room.seats {
			if id == player.ID {
				room.seats = append(room.seats[:i], room.seats[i+1:]...)
				break
			}
		}
		if len(playersIds) > 0 && room.Creator == player.ID {
			room.Creator = room.seats[0]
		}
	}
	if len(playersIds) == 0 {
		room.delete()
	}
}

// Cancel removes the room once it has been idle for a day or nobody in it is online.
func (room *Room) Cancel() {
	if room.ActiveTime.Add(consts.RoomIdleTimeout).Before(time.Now()) {
		log.Infof("room %d is timeout 24 hours, removed.\n", room.ID)
		room.delete()
		return
	}
	living := false
	playerIds := getRoomPlayers(room.ID)
	for id := range playerIds {
		if player := getPlayer(id); player != nil && player.online {
			living = true
			break
		}
	}
	if !living {
		log.Infof("room %d is not living, removed.\n", room.ID)
		room.delete()
	}
}

func (room *Room) broadcast(msg string, exclude ...int64) {
	room.ActiveTime = time.Now()
	excludeSet := map[int64]bool{}
	for _, exc := range exclude {
		excludeSet[exc] = true
	}
	for _, playerId := range room.seats {
		if player := getPlayer(playerId); player != nil && player.online && !excludeSet[playerId] {
			_ = player.WriteString(">> " + msg)
		}
	}
}

func (room *Room) delete() {
	if room != nil {
		rooms.Del(room.ID)
		roomPlayers.Del(room.ID)
		room.UnoGame.close()
	}
}
