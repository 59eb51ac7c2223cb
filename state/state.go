package state

import (
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/database"
	"github.com/ratel-online/uno/state/game"
)

var states = map[consts.StateID]State{}

var settings = config.Default()

func init() {
	register(consts.StateWelcome, &welcome{})
	register(consts.StateHome, &home{})
	register(consts.StateJoin, &join{})
	register(consts.StateCreate, &create{})
	register(consts.StateWaiting, &waiting{})
	register(consts.StateUnoGame, &game.Uno{PlayTimeout: settings.PlayTimeout})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

// Configure applies process settings; call it before serving.
func Configure(conf config.Config) {
	settings = conf
	register(consts.StateUnoGame, &game.Uno{PlayTimeout: conf.PlayTimeout})
}

type State interface {
	Next(player *database.Player) (consts.StateID, error)
	Exit(player *database.Player) consts.StateID
}

func Run(player *database.Player) {
	defer func() {
		if err := recover(); err != nil {
			async.PrintStackTrace(err)
		}
		log.Infof("player %s state machine stopped\n", player)
	}()

	player.State(consts.StateWelcome)
	for player.Online() {
		state := states[player.GetState()]
		stateId, err := state.Next(player)
		if err != nil {
			if e, ok := err.(consts.Error); ok {
				if e.Exit {
					stateId = state.Exit(player)
				}
			} else {
				log.Error(err)
				state.Exit(player)
				return
			}
		}
		if stateId > 0 {
			player.State(stateId)
		}
		time.Sleep(10 * time.Millisecond)
	}
}
