package http

import (
	"NoteLink/internal/config"
	"NoteLink/internal/initial"
	jwtMiddleware "NoteLink/internal/middleware/jwt"
	"NoteLink/internal/middleware/ratelimit"
	noteService "NoteLink/internal/modules/note/application/service"
	notePersistence "NoteLink/internal/modules/note/infrastructure/persistence"
	noteHandler "NoteLink/internal/modules/note/interface/http"
	notifyService "NoteLink/internal/modules/notify/application/service"
	notifyPersistence "NoteLink/internal/modules/notify/infrastructure/persistence"
	notifyHandler "NoteLink/internal/modules/notify/interface/http"
	"NoteLink/internal/modules/user/application/service"
	"NoteLink/internal/modules/user/infrastructure/persistence"
	userHandler "NoteLink/internal/modules/user/interface/http"
	"NoteLink/pkg/ssl"
	"NoteLink/pkg/ws"

	cors "github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var GE *gin.Engine

func init() {
	conf := config.GetConfig()

	GE = gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	GE.Use(cors.New(corsConfig))
	GE.Use(ssl.TlsHandler(conf.MainConfig.Host, conf.MainConfig.Port))
	if conf.RateLimitConfig.Rps > 0 {
		burst := conf.RateLimitConfig.Burst
		if burst <= 0 {
			burst = int(conf.RateLimitConfig.Rps)
		}
		GE.Use(ratelimit.RateLimiter(rate.Limit(conf.RateLimitConfig.Rps), burst))
	}

	// 整个进程只有这一个 Hub，所有在线连接都归它管
	wsHub := ws.NewHub()

	userRepo := persistence.NewUserInfoRepository(initial.GormDB)
	notifyRepo := notifyPersistence.NewNotificationRepository(initial.GormDB)
	noteRepo := notePersistence.NewNoteRepository(initial.GormDB)

	userSvc := service.NewUserInfoService(userRepo)
	dispatchSvc := notifyService.NewDispatchService(wsHub)
	notifySvc := notifyService.NewNotificationService(notifyRepo, userRepo, dispatchSvc)
	noteSvc := noteService.NewNoteService(noteRepo, userRepo, notifySvc)

	userH := userHandler.NewUserInfoHandler(userSvc)
	notifyH := notifyHandler.NewNotificationHandler(notifySvc)
	noteH := noteHandler.NewNoteHandler(noteSvc)
	wsH := notifyHandler.NewWsHandler(wsHub, userRepo)

	GE.POST("/login", userH.Login)
	GE.POST("/register", userH.Register)
	// 握手阶段自行取凭证校验，不走 Auth 中间件
	GE.GET("/wss", wsH.Connect)

	authed := GE.Group("/")
	authed.Use(jwtMiddleware.Auth())
	authed.GET("/auth/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"uuid":     c.GetString("uuid"),
			"username": c.GetString("username"),
			"role":     c.GetString("role"),
		})
	})
	authed.POST("/notification/getNotificationList", notifyH.GetNotificationList)
	authed.POST("/notification/getUnreadCount", notifyH.GetUnreadCount)
	authed.POST("/notification/markRead", notifyH.MarkRead)
	authed.POST("/notification/markAllRead", notifyH.MarkAllRead)
	authed.POST("/notification/deleteNotification", notifyH.DeleteNotification)
	authed.POST("/notification/sendNotification", notifyH.SendNotification)
	authed.POST("/note/createNote", noteH.CreateNote)
	authed.POST("/note/getNote", noteH.GetNote)
	authed.POST("/note/replyNote", noteH.ReplyNote)
	authed.POST("/note/getReplyList", noteH.GetReplyList)
	authed.POST("/note/takedownNote", noteH.TakedownNote)
}
