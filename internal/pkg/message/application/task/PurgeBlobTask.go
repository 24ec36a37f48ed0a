package task

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	blobport "github.com/gregory413b/voicementor2/internal/infrastructure/blobstore/port"
	qport "github.com/gregory413b/voicementor2/internal/infrastructure/queue/port"
	"github.com/gregory413b/voicementor2/internal/logger"
)

// PurgeBlobTaskType removes an audio object after its message row is deleted.
// The row delete commits first; the object delete rides the queue so it can
// be retried if the store is briefly unavailable.
const PurgeBlobTaskType = "message:purge_blob"

// PurgeBlobTaskPayload is the JSON payload transported via the queue.
type PurgeBlobTaskPayload struct {
	AudioPath string `json:"audioPath"`
}

// NewPurgeBlobTask builds the queue task for the given object key.
func NewPurgeBlobTask(audioPath string) (qport.Task, error) {
	b, err := json.Marshal(PurgeBlobTaskPayload{AudioPath: audioPath})
	if err != nil {
		return qport.Task{}, err
	}
	return qport.Task{Type: PurgeBlobTaskType, Payload: b}, nil
}

// RegisterPurgeBlobTask binds the purge handler to the worker server.
// The handler is idempotent: deleting an already-absent object succeeds.
func RegisterPurgeBlobTask(srv qport.Server, store blobport.Store, log logger.Logger) {
	srv.Register(PurgeBlobTaskType, func(ctx context.Context, t qport.Task) error {
		var p PurgeBlobTaskPayload
		if err := json.Unmarshal(t.Payload, &p); err != nil {
			// Malformed payload will never succeed; drop it.
			log.Error("purge task: bad payload", zap.Error(err))
			return nil
		}
		if p.AudioPath == "" {
			return nil
		}

		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		if err := store.Delete(ctx, p.AudioPath); err != nil {
			return err
		}
		log.Debug("purged audio blob", zap.String("path", p.AudioPath))
		return nil
	})
}
