package controllers

import (
	"net/http"
	"time"

	"fittrack/logger"
	"fittrack/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	pingInterval = 25 * time.Second
	pongWait     = 60 * time.Second
)

// AlertController lists stored alerts and streams new ones over websocket.
type AlertController struct {
	Alerts   *services.AlertService
	RT       *services.RealtimeHub
	upgrader websocket.Upgrader
}

// NewAlertController accepts websocket handshakes from allowedOrigins. An
// empty list or "*" accepts any origin.
func NewAlertController(alerts *services.AlertService, rt *services.RealtimeHub, allowedOrigins []string) *AlertController {
	return &AlertController{
		Alerts: alerts,
		RT:     rt,
		upgrader: websocket.Upgrader{
			CheckOrigin: originChecker(allowedOrigins),
		},
	}
}

func originChecker(allowed []string) func(*http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(set) == 0 {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}

// GET /api/alerts
func (ac *AlertController) List(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	alerts, err := ac.Alerts.List(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err, "Alert")
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// GET /api/alerts/ws
func (ac *AlertController) Stream(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}

	conn, err := ac.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Debug("websocket upgrade failed", zap.Error(err))
		return
	}
	cl := &services.WSClient{UserID: uid, Conn: conn}
	ac.RT.Register(cl)

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		t := time.NewTicker(pingInterval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(10*time.Second)); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			ac.RT.Unregister(cl)
			return
		}
	}
}
