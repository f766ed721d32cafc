package dispatch

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"multi_accessor/internal/config"
	"multi_accessor/internal/metrics"
	"multi_accessor/internal/model"
	"multi_accessor/internal/queue"
	"multi_accessor/internal/service/accessor"
	"multi_accessor/internal/trigger"
)

const publishTimeout = 5 * time.Second

type Dispatcher[T any] struct {
	table   trigger.Table
	svc     *accessor.Service[T]
	out     *Printer
	pub     queue.Publisher
	metrics *metrics.Metrics
	log     *zap.Logger
	prefix  string
}

func NewDispatcher[T any](
	cfg *config.Config,
	table trigger.Table,
	svc *accessor.Service[T],
	out *Printer,
	publisher queue.Publisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Dispatcher[T] {
	prefix := cfg.RabbitRoutingPrefix
	if prefix == "" {
		prefix = "instance"
	}
	return &Dispatcher[T]{
		table:   table,
		svc:     svc,
		out:     out,
		pub:     publisher,
		metrics: m,
		log:     logger,
		prefix:  prefix,
	}
}

// Run handles signals one at a time in delivery order. It returns nil after
// a terminal trigger or when signals is closed.
func (d *Dispatcher[T]) Run(ctx context.Context, signals <-chan os.Signal) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case sig, ok := <-signals:
			if !ok {
				return nil
			}
			if d.Handle(ctx, sig) {
				return nil
			}
		}
	}
}

// Handle reports the lookup for sig and returns true for the terminal trigger.
// Unmapped signals produce no output.
func (d *Dispatcher[T]) Handle(ctx context.Context, sig os.Signal) bool {
	tr, ok := d.table.Lookup(sig)
	if !ok {
		d.metrics.ObserveIgnored()
		d.log.Debug("signal ignored", zap.Stringer("signal", sig))
		return false
	}

	ctx, span := otel.Tracer("dispatch").Start(ctx, "dispatch.handle_signal")
	defer span.End()
	span.SetAttributes(
		attribute.String("signal.name", tr.Name),
		attribute.Int("instance.id", tr.ID),
		attribute.Bool("trigger.exit", tr.Exit),
	)
	d.metrics.ObserveTrigger(tr.Name)

	instance, found := d.svc.Lookup(ctx, tr.ID)
	span.SetAttributes(attribute.Bool("instance.found", found))
	if found {
		d.out.Found(tr.ID, instance.Data)
	} else {
		d.out.NotFound(tr.ID)
	}
	d.log.Info("signal handled",
		zap.String("signal", tr.Name),
		zap.Int("id", tr.ID),
		zap.Bool("found", found),
	)

	event := model.AccessEvent{
		Signal:    tr.Name,
		ID:        tr.ID,
		Found:     found,
		Exit:      tr.Exit,
		HandledAt: time.Now().UTC(),
	}
	if found {
		event.Data = instance.Data
	}
	if err := d.publish(ctx, event); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "publish access event failed")
		d.log.Warn("publish access event failed", zap.String("signal", tr.Name), zap.Error(err))
	}

	if tr.Exit {
		d.out.Exiting(tr.Name)
	}
	return tr.Exit
}

func (d *Dispatcher[T]) publish(ctx context.Context, event model.AccessEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	routingKey := d.prefix + "." + metrics.ResultNotFound
	if event.Found {
		routingKey = d.prefix + "." + metrics.ResultFound
	}
	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	return d.pub.Publish(pubCtx, payload, routingKey)
}
