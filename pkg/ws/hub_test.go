package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_MultiDevicePresence(t *testing.T) {
	hub := NewHub()
	assert.False(t, hub.IsPresent("u-1"))

	// 同一个用户两端在线
	c1 := NewClient("u-1", nil)
	c2 := NewClient("u-1", nil)
	hub.Register(c1)
	hub.Register(c2)
	assert.True(t, hub.IsPresent("u-1"))

	hub.Unregister(c1)
	assert.True(t, hub.IsPresent("u-1"), "还有一端在线")

	hub.Unregister(c2)
	assert.False(t, hub.IsPresent("u-1"), "最后一端断开后应彻底离线")
	assert.Empty(t, hub.clients, "空集合不应残留")
}

func TestHub_UnregisterIsIdempotent(t *testing.T) {
	hub := NewHub()
	c := NewClient("u-1", nil)
	hub.Register(c)

	hub.Unregister(c)
	hub.Unregister(c) // 重复注销不应 panic
	assert.False(t, hub.IsPresent("u-1"))
}

func TestHub_SendOnlyToTargetRecipient(t *testing.T) {
	hub := NewHub()
	target1 := NewClient("u-1", nil)
	target2 := NewClient("u-1", nil)
	other := NewClient("u-2", nil)
	hub.Register(target1)
	hub.Register(target2)
	hub.Register(other)

	ok := hub.Send("u-1", []byte("hello"))
	require.True(t, ok)

	// 目标用户的每一端都收到
	assert.Equal(t, "hello", string(<-target1.send))
	assert.Equal(t, "hello", string(<-target2.send))
	// 其他用户收不到
	assert.Empty(t, other.send)
}

func TestHub_SendToOfflineUser(t *testing.T) {
	hub := NewHub()
	assert.False(t, hub.Send("nobody", []byte("x")))
}

func TestHub_SendDropsSlowClient(t *testing.T) {
	hub := NewHub()
	slow := NewClient("u-1", nil)
	hub.Register(slow)

	// 塞满发送缓冲，模拟一直不消费的死连接
	for i := 0; i < cap(slow.send); i++ {
		slow.send <- []byte("fill")
	}

	ok := hub.Send("u-1", []byte("overflow"))
	assert.False(t, ok)
	assert.False(t, hub.IsPresent("u-1"), "缓冲满的连接应被注销")
}

func TestHub_SendJSON(t *testing.T) {
	hub := NewHub()
	c := NewClient("u-1", nil)
	hub.Register(c)

	delivered, err := hub.SendJSON("u-1", map[string]string{"type": "notification"})
	require.NoError(t, err)
	require.True(t, delivered)

	var got map[string]string
	require.NoError(t, json.Unmarshal(<-c.send, &got))
	assert.Equal(t, "notification", got["type"])
}

func TestHub_SendToJustClosedClient(t *testing.T) {
	hub := NewHub()
	c := NewClient("u-1", nil)
	hub.Register(c)

	// 快照和投递之间连接恰好关闭：按丢失处理，绝不能 panic
	c.Close()
	assert.NotPanics(t, func() {
		assert.False(t, hub.Send("u-1", []byte("x")))
	})
	assert.False(t, hub.IsPresent("u-1"), "死连接被顺手注销")
}

func TestHub_SendRacesDisconnect(t *testing.T) {
	hub := NewHub()
	for i := 0; i < 500; i++ {
		c := NewClient("u-1", nil)
		hub.Register(c)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			hub.Send("u-1", []byte("payload"))
		}()
		go func() {
			defer wg.Done()
			hub.Unregister(c)
		}()
		wg.Wait()
	}
}

func TestWritePump_DeliversThenClosesCleanly(t *testing.T) {
	hub := NewHub()
	upgrader := websocket.Upgrader{}
	clientCh := make(chan *Client, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		c := NewClient("u-1", conn)
		hub.Register(c)
		go c.WritePump()
		clientCh <- c
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()
	client := <-clientCh

	require.True(t, hub.Send("u-1", []byte("hello")))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "hello", string(msg))

	// 注销后连接终止，对端读到 Close 帧或连接关闭错误
	hub.Unregister(client)
	_, _, err = conn.ReadMessage()
	require.Error(t, err)
	assert.False(t, hub.IsPresent("u-1"))
}

func TestHub_RegisterIgnoresInvalidClient(t *testing.T) {
	hub := NewHub()
	hub.Register(nil)
	hub.Register(NewClient("", nil))
	assert.Empty(t, hub.clients)
}
