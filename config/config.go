package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/player"
)

const (
	EnvTcpAddr      = "UNO_TCP_ADDR"
	EnvWsAddr       = "UNO_WS_ADDR"
	EnvPlayTimeout  = "UNO_PLAY_TIMEOUT"
	EnvMaxPlayers   = "UNO_MAX_PLAYERS"
	EnvAutoStrategy = "UNO_AUTO_STRATEGY"
)

type Config struct {
	TcpAddr      string
	WsAddr       string
	PlayTimeout  time.Duration
	MaxPlayers   int
	// AutoStrategy names the strategy that plays for idle seats.
	AutoStrategy string
}

func Default() Config {
	return Config{
		TcpAddr:      ":9999",
		WsAddr:       ":9998",
		PlayTimeout:  consts.PlayTimeout,
		MaxPlayers:   consts.MaxPlayers,
		AutoStrategy: player.GoodName,
	}
}

// Load reads the given .env files (".env" when none are named) into the environment,
// then overlays UNO_* variables on the defaults. Missing files are not an error.
func Load(files ...string) Config {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !os.IsNotExist(err) {
			log.Errorf("load env file %s err: %v\n", file, err)
		}
	}

	conf := Default()
	if addr := os.Getenv(EnvTcpAddr); addr != "" {
		conf.TcpAddr = addr
	}
	if addr := os.Getenv(EnvWsAddr); addr != "" {
		conf.WsAddr = addr
	}
	if raw := os.Getenv(EnvPlayTimeout); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil || timeout <= 0 {
			log.Errorf("invalid %s %q, using %s\n", EnvPlayTimeout, raw, conf.PlayTimeout)
		} else {
			conf.PlayTimeout = timeout
		}
	}
	if raw := os.Getenv(EnvMaxPlayers); raw != "" {
		maxPlayers, err := strconv.Atoi(raw)
		if err != nil || maxPlayers < consts.MinPlayers || maxPlayers > consts.MaxPlayers {
			log.Errorf("invalid %s %q, using %d\n", EnvMaxPlayers, raw, conf.MaxPlayers)
		} else {
			conf.MaxPlayers = maxPlayers
		}
	}
	if name := os.Getenv(EnvAutoStrategy); name != "" {
		switch name {
		case player.GoodName, player.NaiveName:
			conf.AutoStrategy = name
		default:
			log.Errorf("invalid %s %q, using %s\n", EnvAutoStrategy, name, conf.AutoStrategy)
		}
	}
	return conf
}
