package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"heating_advisor/internal/engine"
	"heating_advisor/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait   = 10 * time.Second
	pongWait    = 60 * time.Second
	pingPeriod  = (pongWait * 9) / 10
	maxMsgSize  = 1 << 12 // 4 KB
	inboundSize = 16
)

const (
	envRecommendation = "recommendation"
	envError          = "error"
)

var errUnknownField = errors.New("unknown field")

// wsEnvelope is every server-to-client WebSocket message.
type wsEnvelope struct {
	Type    string      `json:"type"`
	Session string      `json:"session,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// wsUpdate changes one field of the session, e.g. {"field":"area","value":"120"}.
type wsUpdate struct {
	Field string          `json:"field"`
	Value json.RawMessage `json:"value"`
}

type wsInbound struct {
	update wsUpdate
	err    error
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // TODO: restrict origins once the form is served from a fixed host
}

// recommendSession is the per-connection form state. Only the writer loop
// touches it.
type recommendSession struct {
	id  string
	req engine.Request
}

func newRecommendSession() *recommendSession {
	return &recommendSession{id: uuid.NewString(), req: engine.Request{Sort: engine.SortBest}}
}

// apply sets a single field. The session is left untouched on error.
func (s *recommendSession) apply(u wsUpdate) error {
	next := s.req
	in := &next.Inputs
	var err error

	switch u.Field {
	case "building_type":
		in.BuildingType, err = decodeText(u.Value)
	case "area":
		err = in.Area.UnmarshalJSON(u.Value)
	case "insulation":
		in.Insulation, err = decodeText(u.Value)
	case "budget":
		err = in.Budget.UnmarshalJSON(u.Value)
	case "email":
		in.Email, err = decodeText(u.Value)
	case "dhw":
		var v string
		v, err = decodeText(u.Value)
		in.DHW = models.ParseDHWMode(v)
	case "gas_mains":
		err = json.Unmarshal(u.Value, &in.GasMains)
	case "gas_line_nearby":
		err = json.Unmarshal(u.Value, &in.GasLineNearby)
	case "own_power_plant":
		err = json.Unmarshal(u.Value, &in.OwnPowerPlant)
	case "solar_panels":
		err = json.Unmarshal(u.Value, &in.SolarPanels)
	case "show_all":
		err = json.Unmarshal(u.Value, &next.ShowAll)
	case "sort":
		var v string
		if v, err = decodeText(u.Value); err == nil {
			next.Sort, err = engine.ParseSortMode(v)
		}
	case "reset":
		next = engine.Request{Sort: engine.SortBest}
	default:
		return fmt.Errorf("%w: %q", errUnknownField, u.Field)
	}
	if err != nil {
		return fmt.Errorf("field %q: %w", u.Field, err)
	}
	s.req = next
	return nil
}

// decodeText reads a plain text field the same way as area and budget.
func decodeText(raw json.RawMessage) (string, error) {
	var t models.FormText
	err := t.UnmarshalJSON(raw)
	return string(t), err
}

// @Summary      Live recommendation session
// @Description  WebSocket. Each client message sets one field ({"field":"area","value":"120"}); the server answers every change with a "recommendation" envelope.
// @Tags         advisor
// @Router       /ws/recommend [get]
func (h *Handler) wsRecommend(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	session := newRecommendSession()
	parseSessionQuery(c, session)

	inbound := make(chan wsInbound, inboundSize)
	done := make(chan struct{})
	stop := make(chan struct{})
	defer close(stop)
	go h.startReader(conn, inbound, done, stop)

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	if err := h.sendRecommendation(conn, session); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "session", session.id, "err", err)
		}
		return
	}

	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "session", session.id, "err", err)
				}
				return
			}
		case msg := <-inbound:
			if err := h.handleInbound(conn, session, msg, inbound); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "session", session.id, "err", err)
				}
				return
			}
		}
	}
}

// handleInbound applies msg and any updates already queued behind it, then
// answers once. A bad update is reported and does not stop the batch.
func (h *Handler) handleInbound(conn *websocket.Conn, session *recommendSession, msg wsInbound, inbound <-chan wsInbound) error {
	if err := h.applyInbound(conn, session, msg); err != nil {
		return err
	}
	for pending := len(inbound); pending > 0; pending-- {
		if err := h.applyInbound(conn, session, <-inbound); err != nil {
			return err
		}
	}
	if h.log != nil {
		h.log.Debugw("recommend_ws_update", "session", session.id, "sort", session.req.Sort, "show_all", session.req.ShowAll)
	}
	return h.sendRecommendation(conn, session)
}

func (h *Handler) applyInbound(conn *websocket.Conn, session *recommendSession, msg wsInbound) error {
	err := msg.err
	if err == nil {
		err = session.apply(msg.update)
	}
	if err == nil {
		return nil
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(wsEnvelope{Type: envError, Session: session.id, Error: err.Error()})
}

// startReader decodes client messages until the connection closes or the
// writer loop stops listening.
func (h *Handler) startReader(conn *websocket.Conn, inbound chan<- wsInbound, done chan<- struct{}, stop <-chan struct{}) {
	defer close(done)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
		msg := wsInbound{}
		if err := json.Unmarshal(data, &msg.update); err != nil {
			msg = wsInbound{err: fmt.Errorf("malformed message: %w", err)}
		}
		select {
		case inbound <- msg:
		case <-stop:
			return
		}
	}
}

func (h *Handler) sendRecommendation(conn *websocket.Conn, session *recommendSession) error {
	res := h.services.Advisor.Recommend(session.req)
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(wsEnvelope{
		Type:    envRecommendation,
		Session: session.id,
		Data:    newRecommendResponse(res),
	})
}

// parseSessionQuery lets a client open the session with ?sort=price_asc&show_all=true.
// Invalid values keep the defaults.
func parseSessionQuery(c *gin.Context, session *recommendSession) {
	if mode, err := engine.ParseSortMode(c.Query("sort")); err == nil {
		session.req.Sort = mode
	}
	if v, err := strconv.ParseBool(c.Query("show_all")); err == nil {
		session.req.ShowAll = v
	}
}
