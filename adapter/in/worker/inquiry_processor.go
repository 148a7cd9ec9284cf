package worker

import (
	"context"

	"inquiry_server/core/port/in"
	"inquiry_server/pkg/apperr"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ClassifyProcessor runs the tagging pipeline for queued inquiries.
type ClassifyProcessor struct {
	inquiries in.InquiryService
	log       zerolog.Logger
}

// NewClassifyProcessor creates a new ClassifyProcessor.
func NewClassifyProcessor(inquiries in.InquiryService, log zerolog.Logger) *ClassifyProcessor {
	return &ClassifyProcessor{
		inquiries: inquiries,
		log:       log.With().Str("component", "classify_processor").Logger(),
	}
}

// ProcessClassify tags one inquiry with categories and countries.
func (p *ClassifyProcessor) ProcessClassify(ctx context.Context, msg *Message) error {
	payload, err := ParsePayload[ClassifyPayload](msg)
	if err != nil {
		p.log.Error().Err(err).Str("job_id", msg.ID).Msg("invalid classify payload")
		return nil // malformed jobs are not retriable
	}

	inquiryID, err := uuid.Parse(payload.InquiryID)
	if err != nil {
		p.log.Error().Err(err).Str("inquiry_id", payload.InquiryID).Msg("invalid inquiry id")
		return nil
	}

	result, err := p.inquiries.Categorize(ctx, inquiryID)
	if err != nil {
		if appErr := apperr.AsAppError(err); appErr != nil && appErr.Code == apperr.CodeNotFound {
			// Inquiry deleted between enqueue and processing
			p.log.Warn().Str("inquiry_id", payload.InquiryID).Msg("inquiry gone, skipping classification")
			return nil
		}
		return err
	}

	p.log.Info().
		Str("inquiry_id", payload.InquiryID).
		Strs("categories", result.Categories).
		Strs("countries", result.Countries).
		Msg("inquiry classified")
	return nil
}
