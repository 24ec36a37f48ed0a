package repository

import (
	"context"

	library "github.com/gregory413b/voicementor2/internal/pkg/library/domain"
)

// LibraryRepository defines persistence for bookmarks, favorites, folders and
// folder items.
type LibraryRepository interface {
	CreateBookmark(ctx context.Context, b library.Bookmark) (*library.Bookmark, error)
	GetBookmark(ctx context.Context, id string) (*library.Bookmark, error)
	ListBookmarks(ctx context.Context, ownerID string, messageID *string) ([]library.Bookmark, error)
	DeleteBookmark(ctx context.Context, id string) error

	// SetFavorite is idempotent: marking an already-favorited message is a no-op.
	SetFavorite(ctx context.Context, f library.Favorite) error
	UnsetFavorite(ctx context.Context, ownerID, messageID string) error
	ListFavorites(ctx context.Context, ownerID string) ([]library.Favorite, error)

	CreateFolder(ctx context.Context, f library.Folder) (*library.Folder, error)
	GetFolder(ctx context.Context, id string) (*library.Folder, error)
	ListFolders(ctx context.Context, ownerID string) ([]library.Folder, error)
	DeleteFolder(ctx context.Context, id string) error

	AddFolderItem(ctx context.Context, item library.FolderItem) error
	RemoveFolderItem(ctx context.Context, folderID, messageID string) error
	ListFolderItems(ctx context.Context, folderID string) ([]library.FolderItem, error)

	// ConversationOf resolves the conversation a message belongs to, for the
	// folder-item membership check.
	ConversationOf(ctx context.Context, messageID string) (string, error)
}
