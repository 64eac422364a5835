package ws

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"NoteLink/pkg/util"
	"NoteLink/pkg/zlog"

	"github.com/gorilla/websocket"
)

// Hub 维护 接收者 -> 在线连接集合 的映射
// 同一个用户允许多端同时在线，注册/注销与连接建立/断开同步发生
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]struct{}),
	}
}

func (h *Hub) Register(c *Client) {
	if c == nil || c.userID == "" {
		return
	}
	h.mu.Lock()
	set := h.clients[c.userID]
	if set == nil {
		set = make(map[*Client]struct{})
		h.clients[c.userID] = set
	}
	set[c] = struct{}{}
	h.mu.Unlock()
	zlog.Debug(fmt.Sprintf("ws register: user=%s trace=%s", c.userID, c.traceID))
}

// Unregister 移除连接，集合为空时整体删除，避免空集合残留
func (h *Hub) Unregister(c *Client) {
	if c == nil || c.userID == "" {
		return
	}
	h.mu.Lock()
	set := h.clients[c.userID]
	if set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.userID)
		}
	}
	h.mu.Unlock()
	c.Close()
	zlog.Debug(fmt.Sprintf("ws unregister: user=%s trace=%s", c.userID, c.traceID))
}

// IsPresent 纯粹的在线判断，派发前的闸门
// 检查与推送之间用户可能恰好断开，推送本身是尽力而为
func (h *Hub) IsPresent(userID string) bool {
	if userID == "" {
		return false
	}
	h.mu.RLock()
	set := h.clients[userID]
	h.mu.RUnlock()
	return len(set) > 0
}

// Send 把载荷投递给该用户的每一个在线连接
// 返回是否至少有一个连接接收；发送缓冲满视为死连接，直接注销
func (h *Hub) Send(userID string, payload []byte) bool {
	if userID == "" || len(payload) == 0 {
		return false
	}

	h.mu.RLock()
	set := h.clients[userID]
	targets := make([]*Client, 0, len(set))
	for c := range set {
		targets = append(targets, c)
	}
	h.mu.RUnlock()
	if len(targets) == 0 {
		return false
	}

	ok := false
	for _, c := range targets {
		if c == nil {
			continue
		}
		if c.trySend(payload) {
			ok = true
		} else {
			// 缓冲满或连接已关闭都视为死连接
			h.Unregister(c)
		}
	}
	return ok
}

// SendJSON 序列化后投递，返回是否有连接接收
func (h *Hub) SendJSON(userID string, v interface{}) (bool, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return false, err
	}
	return h.Send(userID, b), nil
}

const (
	writeWait  = 10 * time.Second
	pingPeriod = 54 * time.Second

	// PongWait 读超时，必须大于 pingPeriod，读侧在 Pong 到达时续期
	PongWait = 60 * time.Second
)

// Client 一条已认证的在线连接，traceID 仅用于诊断日志
type Client struct {
	userID      string
	traceID     string
	connectedAt time.Time
	conn        *websocket.Conn

	// mu 串行化 send 通道的写入和关闭
	// 快照拿到的连接可能在投递前被注销，不加锁会往已关闭的通道上发送
	mu     sync.Mutex
	closed bool
	send   chan []byte
}

func NewClient(userID string, conn *websocket.Conn) *Client {
	return &Client{
		userID:      userID,
		traceID:     util.GenerateShortUUID(),
		connectedAt: time.Now(),
		conn:        conn,
		send:        make(chan []byte, 64),
	}
}

func (c *Client) UserID() string {
	return c.userID
}

func (c *Client) TraceID() string {
	return c.traceID
}

func (c *Client) ConnectedAt() time.Time {
	return c.connectedAt
}

// trySend 非阻塞投递，连接已关闭或缓冲已满返回 false
func (c *Client) trySend(payload []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

func (c *Client) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	c.mu.Unlock()

	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// WritePump 独占连接的写侧：投递消息并周期性发 Ping 保活
// send 关闭后发出 Close 帧退出
func (c *Client) WritePump() {
	if c.conn == nil {
		return
	}
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				zlog.Error(err.Error())
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
