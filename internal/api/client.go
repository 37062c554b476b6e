package api

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"cardroom.io/tableview/logging"
)

// Client talks to the room service REST API. It is only used before the
// realtime subscription is established (resolving the viewer identity for a
// room); everything in-game flows over the transport.
type Client struct {
	logger     *zerolog.Logger
	url        string
	httpClient *http.Client
}

// JoinRoomResult is the identity the room service hands back for a join.
type JoinRoomResult struct {
	PlayerID string `json:"playerId"`
	RoomCode string `json:"roomCode"`
	Admin    bool   `json:"admin"`
}

func NewClient(url string, timeoutSec uint32) *Client {
	logger := logging.GetZeroLogger("api::client", nil)
	return &Client{
		logger: logger,
		url:    url,
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutSec) * time.Second,
		},
	}
}

// JoinRoom registers the player with the room and returns the assigned
// player id and capability flags.
func (c *Client) JoinRoom(roomCode string, playerName string) (*JoinRoomResult, error) {
	type joinPayload struct {
		Name string `json:"name"`
	}
	reqData, err := jsoniter.Marshal(joinPayload{Name: playerName})
	if err != nil {
		return nil, errors.Wrap(err, "Unable to marshal join payload")
	}

	url := fmt.Sprintf("%s/rooms/%s/join", c.url, roomCode)
	resp, err := c.httpClient.Post(url, "application/json", bytes.NewBuffer(reqData))
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("Error from http post %s", url))
	}
	defer resp.Body.Close()
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("Failed to read response body from %s", url))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("Join room returned HTTP %d. Response: %s", resp.StatusCode, string(data))
	}

	var result JoinRoomResult
	err = jsoniter.Unmarshal(data, &result)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("Unable to parse join response: %s", string(data)))
	}
	if result.PlayerID == "" {
		return nil, errors.Errorf("Join response is missing a player id: %s", string(data))
	}
	c.logger.Info().
		Str(logging.RoomCodeKey, roomCode).
		Str(logging.PlayerIDKey, result.PlayerID).
		Msgf("Joined room as %s", playerName)
	return &result, nil
}
