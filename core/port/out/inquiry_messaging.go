package out

import "context"

// MessageProducer defines the outbound port for the classification queue.
type MessageProducer interface {
	PublishClassify(ctx context.Context, job *ClassifyJob) error
}

// ClassifyJob asks the worker to classify one stored inquiry.
type ClassifyJob struct {
	InquiryID string `json:"inquiry_id"`
}
