package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gregory413b/voicementor2/internal/infrastructure/realtime"
	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	"github.com/gregory413b/voicementor2/internal/pkg/conversation/presentation/controller"
)

// RegisterRoutes registers conversation endpoints under the given router group.
// It constructs per-endpoint controllers and binds them directly to routes.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, auth *authz.Authorizer, hub *realtime.Hub) {
	createCtl := controller.NewCreateConversationController(pool, auth, hub)
	getCtl := controller.NewGetConversationController(pool, auth)
	listCtl := controller.NewListConversationsController(pool)
	membersCtl := controller.NewListParticipantsController(pool, auth)
	socketCtl := controller.NewConversationSocketController(hub)

	// POST /api/v1/conversations -> open a client/mentor channel
	g.POST("/conversations", createCtl.Handle())

	// GET /api/v1/conversations -> conversations the requester belongs to
	g.GET("/conversations", listCtl.Handle())

	// GET /api/v1/conversations/:conversationId -> fetch one conversation
	g.GET("/conversations/:conversationId", getCtl.Handle())

	// GET /api/v1/conversations/:conversationId/participants -> membership snapshot
	g.GET("/conversations/:conversationId/participants", membersCtl.Handle())

	// GET /api/v1/ws -> websocket endpoint for realtime notifications
	g.GET("/ws", socketCtl.Handle())
}
