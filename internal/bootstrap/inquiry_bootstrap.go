package bootstrap

import (
	"context"
	"os"
	"sync"
	"time"

	"inquiry_server/adapter/in/worker"
	"inquiry_server/adapter/out/messaging"
	"inquiry_server/config"

	"github.com/rs/zerolog"
)

// Worker runs the classification pool and the Redis Stream consumer.
type Worker struct {
	pool     *worker.Pool
	consumer *messaging.Consumer
	deps     *Dependencies
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	zlog     zerolog.Logger
}

func NewWorker(cfg *config.Config) (*Worker, func(), error) {
	deps, cleanup, err := NewDependencies(cfg)
	if err != nil {
		return nil, nil, err
	}

	zlog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
		With().Timestamp().Str("component", "worker").Logger()

	classifyProcessor := worker.NewClassifyProcessor(deps.InquiryService, zlog)
	handler := worker.NewHandler(classifyProcessor, zlog)

	poolConfig := worker.DefaultPoolConfig()
	if cfg.WorkerMax > 0 {
		poolConfig.MaxWorkers = cfg.WorkerMax
	}
	if cfg.WorkerQueueSize > 0 {
		poolConfig.QueueSize = cfg.WorkerQueueSize
	}
	if cfg.WorkerRatePerSec > 0 {
		poolConfig.RatePerSecond = cfg.WorkerRatePerSec
	}
	pool := worker.NewPool(handler, poolConfig, zlog)

	ctx, cancel := context.WithCancel(context.Background())

	w := &Worker{
		pool:   pool,
		deps:   deps,
		ctx:    ctx,
		cancel: cancel,
		zlog:   zlog,
	}

	streamHandler := worker.NewStreamHandler(pool, zlog)
	w.consumer = messaging.NewConsumer(deps.Redis, &messaging.ConsumerConfig{
		Group:    "inquiry-workers",
		Consumer: cfg.WorkerID,
		Streams:  []string{messaging.StreamInquiryClassify},
		Handler:  streamHandler,
		Logger:   zlog,

		PendingCheckInterval: time.Duration(cfg.ConsumerPendingCheckSec) * time.Second,
		PendingIdleTime:      time.Duration(cfg.ConsumerPendingIdleSec) * time.Second,
		MaxRetries:           cfg.ConsumerMaxRetries,
	})

	return w, cleanup, nil
}

// Start runs the pool and consumer and blocks until Stop is called.
func (w *Worker) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.pool.Start()
	}()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.zlog.Info().Msg("starting Redis Stream consumer")
		if err := w.consumer.Run(w.ctx); err != nil && err != context.Canceled {
			w.zlog.Error().Err(err).Msg("Redis Stream consumer error")
		}
	}()

	<-w.ctx.Done()
}

func (w *Worker) Stop() {
	w.cancel()
	w.pool.Stop()
	w.wg.Wait()
}

func (w *Worker) Submit(msg *worker.Message) bool {
	return w.pool.Submit(msg)
}

func (w *Worker) GetMetrics() worker.PoolMetrics {
	return w.pool.GetMetrics()
}

func (w *Worker) Dependencies() *Dependencies {
	return w.deps
}
