package handler

import (
	"net/http"
	"slices"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-hub/internal/dashboard"
	"github.com/vfg2006/analytics-hub/internal/usecases/dashboarding"
)

const (
	defaultPingInterval = 30 * time.Second
	defaultWriteTimeout = 10 * time.Second
)

// LiveConfig controla o stream de eventos via WebSocket
type LiveConfig struct {
	PingInterval   time.Duration
	WriteTimeout   time.Duration
	BufferSize     int
	AllowedOrigins []string
	// Done é fechado no desligamento do servidor; conexões abertas recebem close
	Done <-chan struct{}
}

func (c LiveConfig) withDefaults() LiveConfig {
	if c.PingInterval <= 0 {
		c.PingInterval = defaultPingInterval
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = defaultWriteTimeout
	}
	return c
}

func (c LiveConfig) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	return slices.Contains(c.AllowedOrigins, "*") || slices.Contains(c.AllowedOrigins, origin)
}

// LiveStream envia um snapshot inicial e depois cada evento de mudança do painel
func LiveStream(service dashboarding.Dashboarder, cfg LiveConfig) http.Handler {
	cfg = cfg.withDefaults()

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     cfg.checkOrigin,
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// O upgrader já respondeu com o erro HTTP
			logrus.WithError(err).Warn("Erro no upgrade do WebSocket")
			return
		}
		defer conn.Close()

		events, cancel := service.Subscribe(cfg.BufferSize)
		defer cancel()

		pongWait := cfg.PingInterval * 2
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})

		// Leitura necessária para detectar desconexão do cliente
		readDone := make(chan struct{})
		go func() {
			defer close(readDone)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
						logrus.WithError(err).Warn("Erro de leitura no WebSocket")
					}
					return
				}
			}
		}()

		snapshot := dashboard.Event{
			Kind: dashboard.EventSnapshot,
			Data: map[string]any{
				"metrics":  service.GetMetrics(),
				"activity": service.GetActivity(),
				"alerts":   service.GetAlerts(),
			},
			At: time.Now(),
		}
		if err := writeEvent(conn, cfg.WriteTimeout, snapshot); err != nil {
			logrus.WithError(err).Warn("Erro ao enviar snapshot inicial")
			return
		}

		ticker := time.NewTicker(cfg.PingInterval)
		defer ticker.Stop()

		for {
			select {
			case event, ok := <-events:
				if !ok {
					return
				}
				if err := writeEvent(conn, cfg.WriteTimeout, event); err != nil {
					return
				}

			case <-ticker.C:
				conn.SetWriteDeadline(time.Now().Add(cfg.WriteTimeout))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}

			case <-readDone:
				return

			case <-cfg.Done:
				conn.SetWriteDeadline(time.Now().Add(cfg.WriteTimeout))
				conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown"))
				return
			}
		}
	})
}

func writeEvent(conn *websocket.Conn, timeout time.Duration, event dashboard.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	conn.SetWriteDeadline(time.Now().Add(timeout))
	return conn.WriteMessage(websocket.TextMessage, data)
}
