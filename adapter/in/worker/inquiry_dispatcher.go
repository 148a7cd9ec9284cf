package worker

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

type Handler struct {
	classifyProcessor *ClassifyProcessor
	log               zerolog.Logger
}

func NewHandler(classifyProcessor *ClassifyProcessor, log zerolog.Logger) *Handler {
	return &Handler{
		classifyProcessor: classifyProcessor,
		log:               log.With().Str("component", "dispatcher").Logger(),
	}
}

func (h *Handler) Process(ctx context.Context, msg *Message) error {
	h.log.Debug().Str("type", msg.Type).Str("job_id", msg.ID).Msg("processing message")

	switch msg.Type {
	case JobInquiryClassify:
		return h.classifyProcessor.ProcessClassify(ctx, msg)
	default:
		h.log.Warn().Str("type", msg.Type).Msg("unknown job type")
		return nil
	}
}

func ParsePayload[T any](msg *Message) (*T, error) {
	var payload T
	data, err := json.Marshal(msg.Payload)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
