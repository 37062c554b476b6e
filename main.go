package main

import (
	"context"
	"flag"

	"github.com/rs/zerolog"

	"cardroom.io/tableview/internal/api"
	"cardroom.io/tableview/internal/config"
	"cardroom.io/tableview/internal/intent"
	"cardroom.io/tableview/internal/rest"
	"cardroom.io/tableview/internal/table"
	"cardroom.io/tableview/internal/transport"
	"cardroom.io/tableview/internal/util"
	"cardroom.io/tableview/logging"
)

var (
	cmdArgs    arg
	mainLogger = logging.GetZeroLogger("main::main", nil)
)

type arg struct {
	configFile string
	port       uint
}

func init() {
	flag.StringVar(&cmdArgs.configFile, "config", "tableview.yaml", "Client config YAML file")
	flag.UintVar(&cmdArgs.port, "port", 0, "Listen port override for the control server")
	flag.Parse()
}

func main() {
	zerolog.SetGlobalLevel(util.Env.GetZeroLogLogLevel())

	conf, err := config.ReadConfig(cmdArgs.configFile)
	if err != nil {
		mainLogger.Fatal().Msgf("Unable to read config: %s", err)
	}
	if cmdArgs.port != 0 {
		conf.ListenPort = cmdArgs.port
	}

	if conf.PlayerID == "" {
		apiClient := api.NewClient(conf.APIServerURL, 10)
		joined, err := apiClient.JoinRoom(conf.RoomCode, conf.PlayerName)
		if err != nil {
			mainLogger.Fatal().Msgf("Unable to join room %s: %s", conf.RoomCode, err)
		}
		conf.PlayerID = joined.PlayerID
		conf.Admin = conf.Admin || joined.Admin
	}

	var trans transport.Transport
	switch conf.Transport {
	case config.TransportWebsocket:
		trans, err = transport.NewWSTransport(context.Background(), conf.WebsocketURL, conf.RoomCode)
	default:
		trans, err = transport.NewNatsTransport(conf.NatsURL, conf.RoomCode)
	}
	if err != nil {
		mainLogger.Fatal().Msgf("Unable to connect to the room transport: %s", err)
	}
	defer trans.Close()

	view := table.NewTableView(table.Config{
		PlayerID: conf.PlayerID,
		RoomCode: conf.RoomCode,
		Admin:    conf.Admin,
		Table:    table.Dimensions{Width: conf.Table.Width, Height: conf.Table.Height},
	}, trans)
	view.OnUpdate(func(p table.Projection) {
		if util.Env.ShouldPrintGameMsg() {
			mainLogger.Info().
				Str(logging.ScreenKey, string(p.Screen)).
				Int("numSeats", len(p.Seats)).
				Msgf("Table updated. Host: %s", p.HostName)
		}
	})
	if err := view.Open(); err != nil {
		mainLogger.Fatal().Msgf("Unable to open the table view: %s", err)
	}
	defer view.Close()

	dispatcher := intent.NewDispatcher(trans, conf.RoomCode)

	mainLogger.Info().
		Str(logging.RoomCodeKey, conf.RoomCode).
		Str(logging.PlayerIDKey, conf.PlayerID).
		Msgf("Starting control server on port %d", conf.ListenPort)
	rest.RunRestServer(conf.ListenPort, view, dispatcher)
}
