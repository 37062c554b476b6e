package config

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"cardroom.io/tableview/internal/util"
)

// Config is the client configuration file content.
type Config struct {
	RoomCode   string `yaml:"room-code"`
	PlayerName string `yaml:"player-name"`
	// PlayerID may be left empty; the client then joins through the room
	// service API to obtain one.
	PlayerID string `yaml:"player-id"`
	Admin    bool   `yaml:"admin"`

	// Transport is either "nats" or "websocket".
	Transport    string `yaml:"transport"`
	NatsURL      string `yaml:"nats-url"`
	WebsocketURL string `yaml:"websocket-url"`
	APIServerURL string `yaml:"api-server-url"`

	// ListenPort is where the diagnostic/control REST server listens.
	ListenPort uint `yaml:"listen-port"`

	Table Table `yaml:"table"`
}

// Table is the initial container measurement used until the hosting shell
// reports a resize.
type Table struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

const (
	TransportNats      = "nats"
	TransportWebsocket = "websocket"
)

// ReadConfig reads the client config yaml file and applies defaults.
func ReadConfig(fileName string) (*Config, error) {
	bytes, err := ioutil.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "Error reading config file [%s]", fileName)
	}
	var conf Config
	err = yaml.Unmarshal(bytes, &conf)
	if err != nil {
		return nil, errors.Wrapf(err, "Error parsing YAML file [%s]", fileName)
	}
	conf.applyDefaults()
	err = conf.validate()
	if err != nil {
		return nil, errors.Wrapf(err, "Invalid config file [%s]", fileName)
	}
	return &conf, nil
}

func (c *Config) applyDefaults() {
	if c.Transport == "" {
		c.Transport = TransportNats
	}
	if c.NatsURL == "" {
		c.NatsURL = util.Env.GetNatsURL()
	}
	if c.WebsocketURL == "" {
		c.WebsocketURL = util.Env.GetWebsocketURL()
	}
	if c.APIServerURL == "" {
		c.APIServerURL = util.Env.GetAPIServerURL()
	}
	if c.ListenPort == 0 {
		c.ListenPort = 8090
	}
	if c.Table.Width == 0 {
		c.Table.Width = 1280
	}
	if c.Table.Height == 0 {
		c.Table.Height = 720
	}
}

func (c *Config) validate() error {
	if c.RoomCode == "" {
		return errors.New("room-code is required")
	}
	if c.Transport != TransportNats && c.Transport != TransportWebsocket {
		return errors.Errorf("unsupported transport [%s]", c.Transport)
	}
	if c.Transport == TransportWebsocket && c.WebsocketURL == "" {
		return errors.New("websocket-url is required for the websocket transport")
	}
	if c.PlayerID == "" && c.PlayerName == "" {
		return errors.New("either player-id or player-name must be set")
	}
	return nil
}
