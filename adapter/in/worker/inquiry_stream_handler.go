package worker

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"inquiry_server/adapter/out/messaging"
	"inquiry_server/core/port/out"
)

// StreamHandler turns consumed stream entries into pool jobs. It implements
// messaging.JobHandler.
type StreamHandler struct {
	pool *Pool
	log  zerolog.Logger
}

// NewStreamHandler creates a new StreamHandler.
func NewStreamHandler(pool *Pool, log zerolog.Logger) *StreamHandler {
	return &StreamHandler{
		pool: pool,
		log:  log.With().Str("component", "stream_handler").Logger(),
	}
}

// Handle routes one stream entry to the worker pool. Returning an error
// leaves the entry pending for the reclaim loop.
func (h *StreamHandler) Handle(ctx context.Context, stream string, data []byte) error {
	switch stream {
	case messaging.StreamInquiryClassify:
		var job out.ClassifyJob
		if err := json.Unmarshal(data, &job); err != nil {
			h.log.Error().Err(err).Str("stream", stream).Msg("dropping malformed job")
			return nil
		}
		msg := NewMessage(JobInquiryClassify, map[string]any{
			"inquiry_id": job.InquiryID,
		})
		if !h.pool.Submit(msg) {
			return fmt.Errorf("pool rejected job for inquiry %s", job.InquiryID)
		}
		return nil
	default:
		h.log.Warn().Str("stream", stream).Msg("no handler for stream")
		return nil
	}
}

var _ messaging.JobHandler = (*StreamHandler)(nil)
