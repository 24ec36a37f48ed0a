package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gregory413b/voicementor2/internal/infrastructure/realtime"
	"github.com/gregory413b/voicementor2/internal/pkg/authz"
	"github.com/gregory413b/voicementor2/internal/pkg/library/presentation/controller"
)

// RegisterRoutes registers bookmark, favorite and folder endpoints under the
// given router group. It constructs per-endpoint controllers and binds them
// directly to routes. Everything here is owner-private.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, auth *authz.Authorizer, hub *realtime.Hub) {
	createBookmarkCtl := controller.NewCreateBookmarkController(pool, auth, hub)
	listBookmarksCtl := controller.NewListBookmarksController(pool, auth)
	deleteBookmarkCtl := controller.NewDeleteBookmarkController(pool, auth)
	setFavoriteCtl := controller.NewSetFavoriteController(pool, auth, hub)
	unsetFavoriteCtl := controller.NewUnsetFavoriteController(pool, auth)
	listFavoritesCtl := controller.NewListFavoritesController(pool, auth)
	createFolderCtl := controller.NewCreateFolderController(pool, auth)
	listFoldersCtl := controller.NewListFoldersController(pool, auth)
	deleteFolderCtl := controller.NewDeleteFolderController(pool, auth)
	addItemCtl := controller.NewAddFolderItemController(pool, auth)
	removeItemCtl := controller.NewRemoveFolderItemController(pool, auth)
	listItemsCtl := controller.NewListFolderItemsController(pool, auth)

	// POST /api/v1/bookmarks -> bookmark a timestamp in a message
	g.POST("/bookmarks", createBookmarkCtl.Handle())

	// GET /api/v1/bookmarks?message_id= -> list own bookmarks
	g.GET("/bookmarks", listBookmarksCtl.Handle())

	// DELETE /api/v1/bookmarks/:bookmarkId -> delete own bookmark
	g.DELETE("/bookmarks/:bookmarkId", deleteBookmarkCtl.Handle())

	// PUT /api/v1/favorites/:messageId -> mark favorite (idempotent)
	g.PUT("/favorites/:messageId", setFavoriteCtl.Handle())

	// DELETE /api/v1/favorites/:messageId -> unmark favorite
	g.DELETE("/favorites/:messageId", unsetFavoriteCtl.Handle())

	// GET /api/v1/favorites -> list own favorites
	g.GET("/favorites", listFavoritesCtl.Handle())

	// POST /api/v1/folders -> create a folder
	g.POST("/folders", createFolderCtl.Handle())

	// GET /api/v1/folders -> list own folders
	g.GET("/folders", listFoldersCtl.Handle())

	// DELETE /api/v1/folders/:folderId -> delete a folder and its items
	g.DELETE("/folders/:folderId", deleteFolderCtl.Handle())

	// POST /api/v1/folders/:folderId/items -> file a message into the folder
	g.POST("/folders/:folderId/items", addItemCtl.Handle())

	// GET /api/v1/folders/:folderId/items -> list folder contents
	g.GET("/folders/:folderId/items", listItemsCtl.Handle())

	// DELETE /api/v1/folders/:folderId/items/:messageId -> remove a filed message
	g.DELETE("/folders/:folderId/items/:messageId", removeItemCtl.Handle())
}
