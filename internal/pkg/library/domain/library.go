package library

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound    = errors.New("library: not found")
	ErrEmptyName   = errors.New("library: folder name is required")
	ErrBadOffset   = errors.New("library: bookmark offset must be >= 0")
	ErrMissingRefs = errors.New("library: message and owner references are required")
)

// Bookmark is a per-user timestamp annotation on a message. Owner-private.
type Bookmark struct {
	ID            string
	MessageID     string
	OwnerID       string
	OffsetSeconds int32
	Label         string
	CreatedAt     time.Time
}

// NewBookmark validates a bookmark before persistence.
func NewBookmark(messageID, ownerID string, offsetSeconds int32, label string) (*Bookmark, error) {
	if messageID == "" || ownerID == "" {
		return nil, ErrMissingRefs
	}
	if offsetSeconds < 0 {
		return nil, ErrBadOffset
	}
	return &Bookmark{
		MessageID:     messageID,
		OwnerID:       ownerID,
		OffsetSeconds: offsetSeconds,
		Label:         strings.TrimSpace(label),
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// Favorite is a per-user marker on a message. Composite key, owner-private.
type Favorite struct {
	OwnerID   string
	MessageID string
	CreatedAt time.Time
}

// Folder is a user-private named collection of message references.
type Folder struct {
	ID        string
	OwnerID   string
	Name      string
	CreatedAt time.Time
}

// NewFolder validates a folder before persistence.
func NewFolder(ownerID, name string) (*Folder, error) {
	if ownerID == "" {
		return nil, ErrMissingRefs
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Folder{OwnerID: ownerID, Name: name, CreatedAt: time.Now().UTC()}, nil
}

// FolderItem links a folder to a message.
// Primary key: (FolderID, MessageID).
type FolderItem struct {
	FolderID  string
	MessageID string
	CreatedAt time.Time
}
