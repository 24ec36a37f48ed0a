package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	blobport "github.com/gregory413b/voicementor2/internal/infrastructure/blobstore/port"
	queueport "github.com/gregory413b/voicementor2/internal/infrastructure/queue/port"
	"github.com/gregory413b/voicementor2/internal/infrastructure/realtime"
	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	"github.com/gregory413b/voicementor2/internal/pkg/message/presentation/controller"
)

// RegisterRoutes registers message endpoints under the given router group.
// It constructs per-endpoint controllers and binds them directly to routes.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, auth *authz.Authorizer, store blobport.Store, client queueport.Client, hub *realtime.Hub) {
	sendCtl := controller.NewSendMessageController(pool, auth, store, hub)
	listCtl := controller.NewListMessagesController(pool, auth)
	deleteCtl := controller.NewDeleteMessageController(pool, auth, client)
	audioCtl := controller.NewGetAudioController(pool, auth, store)

	// POST /api/v1/conversations/:conversationId/messages -> send voice or text
	g.POST("/conversations/:conversationId/messages", sendCtl.Handle())

	// GET /api/v1/conversations/:conversationId/messages -> fetch messages
	g.GET("/conversations/:conversationId/messages", listCtl.Handle())

	// DELETE /api/v1/messages/:messageId -> sender deletes a message
	g.DELETE("/messages/:messageId", deleteCtl.Handle())

	// GET /api/v1/messages/:messageId/audio -> stream the audio object
	g.GET("/messages/:messageId/audio", audioCtl.Handle())
}
