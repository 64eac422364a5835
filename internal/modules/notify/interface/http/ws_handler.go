package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	userEntity "NoteLink/internal/modules/user/domain/entity"
	userRepository "NoteLink/internal/modules/user/domain/repository"
	"NoteLink/pkg/util/myjwt"
	"NoteLink/pkg/ws"
	"NoteLink/pkg/zlog"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"
)

type WsHandler struct {
	hub      *ws.Hub
	userRepo userRepository.UserInfoRepository
}

func NewWsHandler(hub *ws.Hub, userRepo userRepository.UserInfoRepository) *WsHandler {
	return &WsHandler{
		hub:      hub,
		userRepo: userRepo,
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// 凭证优先从 Authorization 头取，取不到再看 token 查询参数
// 浏览器原生 WebSocket 不一定能带自定义 Header，所以保留 URL 参数这条路
// 先头后参的顺序沿用旧系统的行为，属于兼容细节
func handshakeToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.Query("token")
}

// Connect 建立实时推送连接
// 认证在升级之前同步完成，失败的连接不会进入 Hub，不存在匿名连接
func (h *WsHandler) Connect(c *gin.Context) {
	token := handshakeToken(c)
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"reason": myjwt.ReasonMissingToken})
		return
	}

	claims, err := myjwt.ParseToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"reason": myjwt.Reason(err)})
		return
	}

	brief, err := h.userRepo.GetUserBriefByUUID(c.Request.Context(), claims.Uuid)
	if err != nil {
		// 查库失败不是凭证问题，不能伪装成认证拒绝
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			zlog.Error(err.Error())
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"reason": myjwt.ReasonMalformedToken})
		return
	}
	if brief.Status != userEntity.StatusNormal {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"reason": myjwt.ReasonMalformedToken})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zlog.Error(err.Error())
		return
	}

	client := ws.NewClient(claims.Uuid, conn)
	h.hub.Register(client)
	zlog.Info(fmt.Sprintf("ws connected: user=%s trace=%s", claims.Uuid, client.TraceID()))

	// 断开时同步从 Hub 移除，保证不会再往死连接上推送
	defer func() {
		h.hub.Unregister(client)
		zlog.Info(fmt.Sprintf("ws disconnected: user=%s trace=%s", claims.Uuid, client.TraceID()))
	}()

	conn.SetReadLimit(1 << 20)
	_ = conn.SetReadDeadline(time.Now().Add(ws.PongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(ws.PongWait))
		return nil
	})

	go client.WritePump()

	// 通知连接是纯服务端推送，客户端上行数据直接丢弃
	// 读循环只用来感知断开和喂 Pong
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
