package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type StatusResponse struct {
	Settings           GameSettings      `json:"settings"`
	Config             Config            `json:"config"`
	Board              [][]int           `json:"board"`
	NextPlayer         int               `json:"next_player"`
	Stage              string            `json:"stage"`
	Status             string            `json:"status"`
	Winner             int               `json:"winner"`
	LastMove           *Move             `json:"last_move,omitempty"`
	History            []historyEntryDTO `json:"history"`
	Black              playerDTO         `json:"black"`
	White              playerDTO         `json:"white"`
	FreezeWindowOpen   bool              `json:"freeze_window_open"`
	TargetSelectActive bool              `json:"target_select_active"`
	RematchDialogOpen  bool              `json:"rematch_dialog_open"`
	RematchRequestedBy int               `json:"rematch_requested_by"`
	Messages           []string          `json:"messages"`
}

type playerDTO struct {
	Name          string          `json:"name"`
	Cooldowns     map[SkillID]int `json:"cooldowns"`
	Frozen        bool            `json:"frozen"`
	CounterStance bool            `json:"counter_stance"`
}

type historyEntryDTO struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Player int `json:"player"`
}

type targetsResponse struct {
	Active  bool   `json:"active"`
	Targets []Move `json:"targets"`
}

func main() {
	settings := loadConfigOverlay(DefaultGameSettings())
	controller := NewGameController(settings)
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go hub.Run(ctx.Done())
	go runTickLoop(ctx, controller, hub)

	r := newRouter(controller, hub)
	server := &http.Server{
		Addr:    ":8080",
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	log.Println("backend listening on :8080")
	var runErr error
	select {
	case <-sigCtx.Done():
		log.Printf("[backend] shutdown signal received: %v", sigCtx.Err())
	case err, ok := <-serverErrCh:
		if ok {
			runErr = err
			log.Printf("[backend] server error: %v", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[backend] graceful shutdown failed: %v", err)
		if closeErr := server.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
			log.Printf("[backend] forced close failed: %v", closeErr)
		}
	}
	if runErr != nil {
		log.Printf("[backend] exiting after server error: %v", runErr)
	}
}

// runTickLoop drives one Update step per tick and broadcasts whenever
// the stage machine actually moved.
func runTickLoop(ctx context.Context, controller *GameController, hub *Hub) {
	interval := time.Duration(GetConfig().TickIntervalMs) * time.Millisecond
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if controller.Tick() && hub.HasClients() {
				publishStatus(hub, controllerStatus(controller))
			}
		}
	}
}

func newRouter(controller *GameController, hub *Hub) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Get("/api/targets", func(w http.ResponseWriter, r *http.Request) {
		targets := controller.Targets()
		writeJSON(w, http.StatusOK, targetsResponse{
			Active:  controller.State().TargetSelectActive,
			Targets: targets,
		})
	})

	r.Post("/api/click", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			X int `json:"x"`
			Y int `json:"y"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		controller.RouteEvent(BoardClickEvent(payload.X, payload.Y))
		status := controllerStatus(controller)
		publishStatus(hub, status)
		writeJSON(w, http.StatusOK, status)
	})

	r.Post("/api/skill", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			ID SkillID `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || !payload.ID.Valid() {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid skill id"})
			return
		}
		controller.RouteEvent(SkillPressEvent(payload.ID))
		status := controllerStatus(controller)
		publishStatus(hub, status)
		writeJSON(w, http.StatusOK, status)
	})

	r.Post("/api/key", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Key string `json:"key"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Key == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		controller.RouteEvent(KeyPressEvent(payload.Key))
		status := controllerStatus(controller)
		publishStatus(hub, status)
		writeJSON(w, http.StatusOK, status)
	})

	r.Post("/api/undo", func(w http.ResponseWriter, r *http.Request) {
		controller.RouteEvent(KeyPressEvent("u"))
		status := controllerStatus(controller)
		publishStatus(hub, status)
		writeJSON(w, http.StatusOK, status)
	})

	r.Post("/api/rematch", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Accept bool `json:"accept"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		controller.RouteEvent(RematchResponseEvent(payload.Accept))
		status := controllerStatus(controller)
		publishReset(hub, status)
		writeJSON(w, http.StatusOK, status)
	})

	r.Post("/api/reset", func(w http.ResponseWriter, r *http.Request) {
		controller.Reset(controller.Settings())
		status := controllerStatus(controller)
		publishReset(hub, status)
		writeJSON(w, http.StatusOK, status)
	})

	r.Post("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		// Partial bodies merge over the live values, like the file
		// overlay merges over the defaults.
		current := controller.Settings()
		config := GetConfig()
		var payload struct {
			Settings *GameSettings `json:"settings"`
			Config   *Config       `json:"config"`
			Reset    bool          `json:"reset"`
			Persist  bool          `json:"persist"`
		}
		merged := current.Clone()
		payload.Settings = &merged
		payload.Config = &config
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		if err := merged.Validate(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		configStore.Update(config)
		// A changed board size cannot apply to a live board.
		reset := payload.Reset || merged.BoardSize != current.BoardSize
		controller.UpdateSettings(merged, reset)
		if payload.Persist {
			if err := saveConfigOverlay(controller.Settings()); err != nil {
				log.Printf("[backend] could not persist settings: %v", err)
			}
		}
		status := controllerStatus(controller)
		publishStatus(hub, status)
		writeJSON(w, http.StatusOK, status)
	})

	r.Get("/ws/", func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, controller, w, r)
	})
	return r
}

func serveWS(hub *Hub, controller *GameController, w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &Client{id: uuid.New(), hub: hub, send: make(chan []byte, 16)}
	hub.Register(client)

	status := controllerStatus(controller)
	client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(status)})

	go func() {
		defer conn.Close()
		if err := writeWSWithHeartbeat(conn, client.send); err != nil {
			return
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			hub.Unregister(client)
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "request_status":
			client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(controllerStatus(controller))})
		}
	}
}

func controllerStatus(controller *GameController) StatusResponse {
	state := controller.State()
	settings := controller.Settings()
	config := GetConfig()
	var lastMove *Move
	if state.HasLastMove {
		move := state.LastMove
		lastMove = &move
	}
	return StatusResponse{
		Settings:           settings,
		Config:             config,
		Board:              boardToSlice(state.Board),
		NextPlayer:         playerToInt(state.ToMove),
		Stage:              state.Stage.String(),
		Status:             state.Status.String(),
		Winner:             winnerFromStatus(state.Status),
		LastMove:           lastMove,
		History:            historyToDTO(controller.History()),
		Black:              playerToDTO(controller.PlayerSnapshot(PlayerBlack)),
		White:              playerToDTO(controller.PlayerSnapshot(PlayerWhite)),
		FreezeWindowOpen:   state.FreezeWindowOpen,
		TargetSelectActive: state.TargetSelectActive,
		RematchDialogOpen:  state.RematchDialogOpen,
		RematchRequestedBy: playerToInt(state.RematchRequestedBy),
		Messages:           state.LastMessages(config.MessageLogShown),
	}
}

func publishStatus(hub *Hub, status StatusResponse) {
	select {
	case hub.broadcastStatus <- status:
	default:
	}
}

func publishReset(hub *Hub, status StatusResponse) {
	select {
	case hub.broadcastReset <- status:
	default:
	}
}

func playerToDTO(p PlayerState) playerDTO {
	return playerDTO{
		Name:          p.Name,
		Cooldowns:     p.Cooldowns,
		Frozen:        p.Frozen,
		CounterStance: p.CounterStance,
	}
}

func boardToSlice(board Board) [][]int {
	size := board.Size()
	rows := make([][]int, size)
	for y := 0; y < size; y++ {
		rows[y] = make([]int, size)
		for x := 0; x < size; x++ {
			rows[y][x] = cellToInt(board.At(x, y))
		}
	}
	return rows
}

func cellToInt(cell Cell) int {
	switch cell {
	case CellBlack:
		return 1
	case CellWhite:
		return 2
	default:
		return 0
	}
}

func playerToInt(player PlayerColor) int {
	if player == PlayerBlack {
		return 1
	}
	return 2
}

func winnerFromStatus(status GameStatus) int {
	switch status {
	case StatusBlackWon:
		return 1
	case StatusWhiteWon:
		return 2
	default:
		return 0
	}
}

func historyToDTO(entries []HistoryEntry) []historyEntryDTO {
	result := make([]historyEntryDTO, 0, len(entries))
	for _, entry := range entries {
		result = append(result, historyEntryDTO{
			X:      entry.Move.X,
			Y:      entry.Move.Y,
			Player: playerToInt(entry.Player),
		})
	}
	return result
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
