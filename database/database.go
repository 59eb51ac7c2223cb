package database

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/log"
	modelx "github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/core/util/strings"
	"github.com/ratel-online/uno/consts"
)

var roomIds int64 = 0
var players = hashmap.New()
var rooms = hashmap.New()
var roomPlayers = hashmap.New()

func init() {
	async.Async(func() {
		for {
			time.Sleep(1 * time.Minute)
			rooms.Foreach(func(e *hashmap.Entry) {
				room := e.Value().(*Room)
				room.Lock()
				room.Cancel()
				room.Unlock()
			})
		}
	})
}

func Connected(conn *network.Conn, info *modelx.AuthInfo, ip string) *Player {
	player := &Player{
		ID:    info.ID,
		IP:    ip,
		Name:  info.Name,
		Score: info.Score,
	}
	player.Conn(conn)
	players.Set(info.ID, player)
	return player
}

func CreateRoom(creator int64, maxPlayers int) *Room {
	room := &Room{
		ID:         atomic.AddInt64(&roomIds, 1),
		State:      consts.RoomStateWaiting,
		Creator:    creator,
		ActiveTime: time.Now(),
		MaxPlayers: maxPlayers,
	}
	rooms.Set(room.ID, room)
	roomPlayers.Set(room.ID, map[int64]bool{})
	log.Infof("room %d created by player %d\n", room.ID, creator)
	return room
}

func GetRooms() []*Room {
	list := make([]*Room, 0)
	rooms.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Room))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

func GetRoom(roomId int64) *Room {
	return getRoom(roomId)
}

func getRoom(roomId int64) *Room {
	if v, ok := rooms.Get(roomId); ok {
		return v.(*Room)
	}
	return nil
}

func GetPlayer(playerId int64) *Player {
	return getPlayer(playerId)
}

func getPlayer(playerId int64) *Player {
	if v, ok := players.Get(playerId); ok {
		return v.(*Player)
	}
	return nil
}

func getRoomPlayers(roomId int64) map[int64]bool {
	if v, ok := roomPlayers.Get(roomId); ok {
		return v.(map[int64]bool)
	}
	return nil
}

// RoomPlayers returns the ids seated in the room, in join order.
func RoomPlayers(roomId int64) []int64 {
	room := getRoom(roomId)
	if room == nil {
		return nil
	}
	ids := make([]int64, len(room.seats))
	copy(ids, room.seats)
	return ids
}

func JoinRoom(roomId, playerId int64) error {
	player := getPlayer(playerId)
	if player == nil {
		return consts.ErrorsExist
	}
	room := getRoom(roomId)
	if room == nil {
		return consts.ErrorsRoomInvalid
	}
	room.Lock()
	defer room.Unlock()
	if room.State == consts.RoomStateRunning {
		return consts.ErrorsJoinFailForRoomRunning
	}
	if room.Players >= room.MaxPlayers {
		return consts.ErrorsRoomPlayersIsFull
	}
	playersIds := getRoomPlayers(roomId)
	if playersIds != nil && !playersIds[playerId] {
		playersIds[playerId] = true
		room.seats = append(room.seats, playerId)
		room.Players++
		room.ActiveTime = time.Now()
		player.RoomID = roomId
	}
	return nil
}

func LeaveRoom(roomId, playerId int64) {
	room := getRoom(roomId)
	if room != nil {
		room.Lock()
		defer room.Unlock()
		room.removePlayer(getPlayer(playerId))
	}
}

func Broadcast(roomId int64, msg string, exclude ...int64) {
	room := getRoom(roomId)
	if room == nil {
		return
	}
	room.broadcast(msg, exclude...)
}

func BroadcastChat(player *Player, msg string, exclude ...int64) {
	log.Infof("chat msg, player %s[%d] %s say: %s\n", player.Name, player.ID, player.IP, msg)
	Broadcast(player.RoomID, strings.Desensitize(msg), exclude...)
}

func SetRoomProps(room *Room, key, value string) error {
	room.Lock()
	defer room.Unlock()
	switch key {
	case consts.RoomPropsPassword:
		if value == "off" {
			value = ""
		}
		room.Password = value
	case consts.RoomPropsPlayerNum:
		maxPlayers, err := strconv.Atoi(value)
		if err != nil || maxPlayers < consts.MinPlayers || maxPlayers > consts.MaxPlayers || maxPlayers < room.Players {
			return consts.ErrorsGamePlayersInvalid
		}
		room.MaxPlayers = maxPlayers
	default:
		return consts.ErrorsInputInvalid
	}
	room.broadcast(fmt.Sprintf("%s set to %s\n", key, value))
	return nil
}
