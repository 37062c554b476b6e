package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"cardroom.io/tableview/internal/gamestate"
	"cardroom.io/tableview/internal/intent"
	"cardroom.io/tableview/internal/table"
	"cardroom.io/tableview/logging"
)

var restLogger = logging.GetZeroLogger("rest::rest", nil)

// RunRestServer registers the diagnostic and control endpoints and runs the
// server. This is the hosting shell for a headless client: reads expose the
// current projection, writes delegate to the intent dispatcher. The round
// control endpoints are registered only for an admin viewer; that gate is
// advisory (the server enforces authority).
func RunRestServer(portNo uint, view *table.TableView, dispatcher *intent.Dispatcher) {
	r := gin.Default()

	r.GET("/state", func(c *gin.Context) {
		c.JSON(http.StatusOK, view.Projection())
	})
	r.GET("/gamestate", func(c *gin.Context) {
		gs := view.Snapshot()
		if gs == nil {
			c.JSON(http.StatusOK, gin.H{"status": view.State()})
			return
		}
		c.JSON(http.StatusOK, gs)
	})
	r.GET("/seats", func(c *gin.Context) {
		p := view.Projection()
		type seatView struct {
			PlayerID string         `json:"playerId"`
			Name     string         `json:"name"`
			Seat     int            `json:"seat"`
			Position table.Position `json:"position"`
		}
		seats := make([]seatView, 0, len(p.Seats))
		for _, s := range p.Seats {
			seats = append(seats, seatView{
				PlayerID: s.Player.ID,
				Name:     s.Player.Name,
				Seat:     s.Seat,
				Position: table.SeatPosition(s.Seat, len(p.Seats), p.Table),
			})
		}
		c.JSON(http.StatusOK, seats)
	})

	r.POST("/sit", dispatchNoPayload(dispatcher.Sit))
	r.POST("/stand", dispatchNoPayload(dispatcher.Stand))
	r.POST("/call", dispatchNoPayload(dispatcher.Call))
	r.POST("/check", dispatchNoPayload(dispatcher.Check))
	r.POST("/fold", dispatchNoPayload(dispatcher.Fold))
	r.POST("/reveal", dispatchNoPayload(dispatcher.Reveal))
	r.POST("/muck", dispatchNoPayload(dispatcher.Muck))
	r.POST("/raise", func(c *gin.Context) {
		var payload struct {
			Amount int `json:"amount"`
		}
		if err := c.BindJSON(&payload); err != nil {
			handleParseError(c, err)
			return
		}
		handleDispatch(c, dispatcher.Raise(payload.Amount))
	})

	r.POST("/settings", func(c *gin.Context) {
		var settings gamestate.GameSettings
		if err := c.BindJSON(&settings); err != nil {
			handleParseError(c, err)
			return
		}
		handleDispatch(c, dispatcher.UpdateGameSettings(settings))
	})
	r.POST("/give-chips", chipTransfer(dispatcher.GiveChips))
	r.POST("/take-chips", chipTransfer(dispatcher.TakeChips))

	if view.Config().Admin {
		r.POST("/start-round", dispatchNoPayload(dispatcher.StartRound))
		r.POST("/end-round", dispatchNoPayload(dispatcher.EndRound))
		r.POST("/add-ai", dispatchNoPayload(dispatcher.AddAI))
	}

	r.Run(fmt.Sprintf(":%d", portNo))
}

func dispatchNoPayload(dispatch func() error) gin.HandlerFunc {
	return func(c *gin.Context) {
		handleDispatch(c, dispatch())
	}
}

func chipTransfer(dispatch func(playerID string, amount int) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload struct {
			PlayerID string `json:"playerId"`
			Amount   int    `json:"amount"`
		}
		if err := c.BindJSON(&payload); err != nil {
			handleParseError(c, err)
			return
		}
		handleDispatch(c, dispatch(payload.PlayerID, payload.Amount))
	}
}

func handleParseError(c *gin.Context, err error) {
	errMsg := fmt.Sprintf("Failed to parse payload. Error: %s", err)
	restLogger.Error().Msg(errMsg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": errMsg})
}

func handleDispatch(c *gin.Context, err error) {
	if err != nil {
		restLogger.Error().Msg(err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Accepted"})
}
