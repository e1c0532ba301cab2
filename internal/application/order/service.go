package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"bannerstore/internal/domain/catalog"
	domain "bannerstore/internal/domain/order"
	"bannerstore/internal/domain/repository"
	"bannerstore/internal/infrastructure/metrics"
	"bannerstore/pkg/logger"
)

// Quoter prices a selection; satisfied by pricing.Service.
type Quoter interface {
	Quote(ctx context.Context, productID string, sel catalog.Selection) (catalog.PriceBreakdown, error)
}

type EventEncoder interface {
	Encode(evt domain.Event) ([]byte, error)
}

type Publisher interface {
	PublishEvent(ctx context.Context, key string, payload []byte) error
}

type Service struct {
	repo      repository.OrderRepository
	history   repository.StatusHistoryRepository
	quoter    Quoter
	encoder   EventEncoder
	publisher Publisher
	metrics   *metrics.Registry
	log       logger.Logger
}

type PlaceOrderCommand struct {
	CustomerID string            `json:"customer_id"`
	ProductID  string            `json:"product_id"`
	Selection  catalog.Selection `json:"selection"`
}

type Deps struct {
	Orders    repository.OrderRepository
	History   repository.StatusHistoryRepository
	Quoter    Quoter
	Encoder   EventEncoder
	Publisher Publisher
	Metrics   *metrics.Registry
	Logger    logger.Logger
}

func NewService(d Deps) *Service {
	return &Service{
		repo:      d.Orders,
		history:   d.History,
		quoter:    d.Quoter,
		encoder:   d.Encoder,
		publisher: d.Publisher,
		metrics:   d.Metrics,
		log:       d.Logger,
	}
}

// PlaceOrder prices the selection server-side and stores a pending order.
func (s *Service) PlaceOrder(ctx context.Context, cmd PlaceOrderCommand) (*domain.Order, error) {
	breakdown, err := s.quoter.Quote(ctx, cmd.ProductID, cmd.Selection)
	if err != nil {
		return nil, fmt.Errorf("quote order: %w", err)
	}

	o, err := domain.NewOrder(uuid.NewString(), cmd.CustomerID, cmd.ProductID, cmd.Selection, breakdown)
	if err != nil {
		return nil, err
	}
	// persist the clamped quantity the customer is actually charged for
	o.Selection.Quantity = breakdown.Quantity

	if err := s.repo.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}
	s.metrics.OrdersPlaced.Inc()

	s.publish(ctx, domain.PlacedEvent(uuid.NewString(), o))
	return o, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find order %s: %w", id, err)
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func (s *Service) Advance(ctx context.Context, id string) (*domain.Order, error) {
	return s.transition(ctx, id, (*domain.Order).Advance)
}

func (s *Service) Revert(ctx context.Context, id string) (*domain.Order, error) {
	return s.transition(ctx, id, (*domain.Order).Revert)
}

func (s *Service) Cancel(ctx context.Context, id string) (*domain.Order, error) {
	return s.transition(ctx, id, (*domain.Order).Cancel)
}

// Assign is the back-office override, e.g. marking an order refunded.
func (s *Service) Assign(ctx context.Context, id string, status domain.StatusID) (*domain.Order, error) {
	return s.transition(ctx, id, func(o *domain.Order) (domain.Transition, error) {
		return o.Assign(status)
	})
}

func (s *Service) History(ctx context.Context, id string) ([]domain.HistoryEntry, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	entries, err := s.history.ListByOrder(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list history %s: %w", id, err)
	}
	return entries, nil
}

// HandleEvent projects a consumed event onto the status history.
func (s *Service) HandleEvent(ctx context.Context, evt domain.Event) error {
	if evt.ID == "" || evt.OrderID == "" {
		return fmt.Errorf("event is missing id or order id")
	}
	if err := s.history.Append(ctx, evt.HistoryEntry()); err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	s.metrics.EventsProjected.Inc()
	return nil
}

func (s *Service) transition(ctx context.Context, id string, apply func(*domain.Order) (domain.Transition, error)) (*domain.Order, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	t, err := apply(o)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, o, t.From); err != nil {
		if errors.Is(err, domain.ErrConcurrentUpdate) {
			s.log.WithContext(ctx).Warn("order status update lost race",
				logger.String("order_id", o.ID),
				logger.String("from", t.From.String()),
				logger.String("to", t.To.String()),
			)
		}
		return nil, fmt.Errorf("update order %s: %w", o.ID, err)
	}
	s.metrics.StatusChanges.WithLabelValues(t.To.String()).Inc()
	s.log.WithContext(ctx).Info("order status changed",
		logger.String("order_id", o.ID),
		logger.String("from", t.From.String()),
		logger.String("to", t.To.String()),
	)

	s.publish(ctx, domain.StatusChangedEvent(uuid.NewString(), o, t))
	return o, nil
}

// publish is best effort: the order row is the source of truth and a lost
// event only leaves a gap in the history projection.
func (s *Service) publish(ctx context.Context, evt domain.Event) {
	log := s.log.WithContext(ctx).WithFields(
		logger.String("order_id", evt.OrderID),
		logger.String("event_type", string(evt.Type)),
	)

	payload, err := s.encoder.Encode(evt)
	if err != nil {
		s.metrics.EventsFailed.Inc()
		log.Error("encode order event", logger.Error(err))
		return
	}
	if err := s.publisher.PublishEvent(ctx, evt.OrderID, payload); err != nil {
		s.metrics.EventsFailed.Inc()
		log.Error("publish order event", logger.Error(err))
		return
	}
	s.metrics.EventsPublished.Inc()
}
