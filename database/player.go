package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/uno/consts"
)

// Player is a connected client. Input packets are only queued while a read
// transaction is open, so lines typed between prompts are dropped.
type Player struct {
	ID     int64  `json:"id"`
	IP     string `json:"ip"`
	Name   string `json:"name"`
	Score  int64  `json:"score"`
	RoomID int64  `json:"roomId"`

	conn   *network.Conn
	data   chan *protocol.Packet
	read   bool
	state  consts.StateID
	online bool
}

func (p *Player) Conn(conn *network.Conn) {
	p.conn = conn
	p.data = make(chan *protocol.Packet, 8)
	p.online = true
}

func (p *Player) Online() bool {
	return p.online
}

// Offline closes the connection. A waiting room drops the player; a running
// match keeps the seat for the auto-player.
func (p *Player) Offline() {
	p.online = false
	_ = p.conn.Close()
	close(p.data)
	room := getRoom(p.RoomID)
	if room == nil {
		return
	}
	room.Lock()
	defer room.Unlock()
	room.broadcast(fmt.Sprintf("%s lost connection! \n", p.Name))
	if room.State == consts.RoomStateWaiting {
		room.removePlayer(p)
	}
	room.Cancel()
}

func (p *Player) Listening() error {
	for {
		pack, err := p.conn.Read()
		if err != nil {
			log.Error(err)
			return err
		}
		if p.read {
			p.data <- pack
		}
	}
}

func (p *Player) WriteString(data string) error {
	time.Sleep(30 * time.Millisecond)
	return p.conn.Write(protocol.Packet{
		Body: []byte(data),
	})
}

func (p *Player) WriteObject(data interface{}) error {
	return p.conn.Write(protocol.Packet{
		Body: json.Marshal(data),
	})
}

// WriteError sends err to the client and returns it, except ErrorsExist which
// only ends the current state.
func (p *Player) WriteError(err error) error {
	if err == consts.ErrorsExist {
		return err
	}
	return p.conn.Write(protocol.Packet{
		Body: []byte(err.Error() + "\n"),
	})
}

// AskForString opens a transaction, waits for one line and closes it again.
func (p *Player) AskForString(timeout ...time.Duration) (string, error) {
	p.StartTransaction()
	defer p.StopTransaction()
	return p.ReadString(timeout...)
}

// ReadString waits for one line inside an already open transaction. The line
// is trimmed; "exit" in any case is reported as ErrorsExist.
func (p *Player) ReadString(timeout ...time.Duration) (string, error) {
	var packet *protocol.Packet
	if len(timeout) > 0 {
		select {
		case packet = <-p.data:
		case <-time.After(timeout[0]):
			return "", consts.ErrorsTimeout
		}
	} else {
		packet = <-p.data
	}
	if packet == nil {
		return "", consts.ErrorsChanClosed
	}
	line := strings.TrimSpace(packet.String())
	if strings.EqualFold(line, "exit") {
		return "", consts.ErrorsExist
	}
	return line, nil
}

func (p *Player) StartTransaction() {
	p.read = true
	_ = p.WriteString(consts.IsStart)
}

func (p *Player) StopTransaction() {
	p.read = false
	_ = p.WriteString(consts.IsStop)
}

func (p *Player) State(s consts.StateID) {
	p.state = s
}

func (p *Player) GetState() consts.StateID {
	return p.state
}

func (p Player) String() string {
	return fmt.Sprintf("%s[%d]", p.Name, p.ID)
}
