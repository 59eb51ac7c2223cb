package main

import (
	"flag"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/network"
	"github.com/ratel-online/uno/state"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			log.Errorf("main %v\n", err)
			async.PrintStackTrace(err)
		}
	}()
	envFile := flag.String("env", ".env", "optional env file")
	flag.Parse()

	conf := config.Load(*envFile)
	state.Configure(conf)

	async.Async(func() {
		log.Error(network.NewWebsocketServer(conf.WsAddr).Serve())
	})
	log.Error(network.NewTcpServer(conf.TcpAddr).Serve())
}
