package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/zync/orderline/internal/adapter/handler/pb"
	"github.com/zync/orderline/internal/core/domain"
	"github.com/zync/orderline/internal/core/service"
	"github.com/zync/orderline/internal/port"
)

// GRPCHandler serves the dashboard API: placing orders, moving them
// through the status chain, and streaming realtime order events.
type GRPCHandler struct {
	pb.UnimplementedOrderPipelineServer
	orders *service.OrderService
	db     port.DatabaseRepository
	bus    port.EventBus
}

func NewGRPCHandler(orders *service.OrderService, db port.DatabaseRepository, bus port.EventBus) *GRPCHandler {
	return &GRPCHandler{orders: orders, db: db, bus: bus}
}

func (h *GRPCHandler) PlaceOrder(ctx context.Context, req *pb.PlaceOrderRequest) (*pb.Order, error) {
	if req.GetShopId() == "" || req.GetCustomerName() == "" || req.GetPhone() == "" {
		return nil, status.Error(codes.InvalidArgument, "shop_id, customer_name and phone required")
	}
	if len(req.GetItems()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "no items")
	}
	phone, ok := service.NormalizePhone(req.GetPhone())
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "invalid phone format")
	}
	if req.GetDeliveryFee() < 0 {
		return nil, status.Error(codes.InvalidArgument, "delivery_fee must not be negative")
	}

	available, err := h.db.ListAvailableItems(ctx, req.GetShopId())
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to load menu")
	}
	byID := make(map[string]domain.MenuItem, len(available))
	for _, it := range available {
		byID[it.ID] = it
	}

	lines := make([]service.Line, 0, len(req.GetItems()))
	for _, it := range req.GetItems() {
		item, ok := byID[it.GetItemId()]
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "unknown item: %s", it.GetItemId())
		}
		lines = append(lines, service.Line{Item: item, Qty: int(it.GetQty())})
	}

	order, err := h.orders.PlaceOrder(ctx, service.OrderDraft{
		ShopID:       req.GetShopId(),
		CustomerName: req.GetCustomerName(),
		Phone:        phone,
		Lines:        lines,
		DeliveryFee:  req.GetDeliveryFee(),
	})
	if err != nil {
		return nil, orderStatusError(err)
	}
	return orderToProto(order), nil
}

func (h *GRPCHandler) UpdateStatus(ctx context.Context, req *pb.UpdateStatusRequest) (*pb.Order, error) {
	if req.GetOrderId() == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id required")
	}
	target := domain.OrderStatus(req.GetStatus())
	if !domain.ValidStatus(target) {
		return nil, status.Errorf(codes.InvalidArgument, "unknown status: %s", req.GetStatus())
	}
	order, err := h.orders.Transition(ctx, req.GetOrderId(), target)
	if err != nil {
		return nil, orderStatusError(err)
	}
	return orderToProto(order), nil
}

func (h *GRPCHandler) GetOrder(ctx context.Context, req *pb.GetOrderRequest) (*pb.Order, error) {
	if req.GetRef() == "" {
		return nil, status.Error(codes.InvalidArgument, "ref required")
	}
	order, err := h.orders.LookupOrder(ctx, req.GetRef())
	if err != nil {
		return nil, orderStatusError(err)
	}
	return orderToProto(order), nil
}

// Watch streams the order's realtime events until the client goes away.
// The subscription is scoped to the stream context, so a dropped client
// tears down the underlying pub/sub channel.
func (h *GRPCHandler) Watch(req *pb.WatchRequest, stream pb.OrderPipeline_WatchServer) error {
	if req.GetOrderId() == "" {
		return status.Error(codes.InvalidArgument, "order_id required")
	}
	ctx := stream.Context()
	if _, err := h.orders.LookupOrder(ctx, req.GetOrderId()); err != nil {
		return orderStatusError(err)
	}

	events := make(chan domain.OrderEvent, 16)
	unsubscribe, err := h.bus.Subscribe(ctx, service.OrderTopic(req.GetOrderId()), func(ev domain.OrderEvent) {
		select {
		case events <- ev:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return status.Error(codes.Internal, "failed to subscribe")
	}
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			msg := &pb.OrderEvent{
				OrderId:     ev.OrderID,
				OrderNumber: ev.OrderNumber,
				Status:      string(ev.Status),
				AtUnixMs:    ev.At.UnixMilli(),
			}
			if err := stream.Send(msg); err != nil {
				return err
			}
		}
	}
}

func orderToProto(order *domain.Order) *pb.Order {
	items := make([]*pb.LineItem, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, &pb.LineItem{
			Name:      it.Name,
			Qty:       int32(it.Quantity),
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal,
		})
	}
	return &pb.Order{
		Id:           order.ID,
		OrderNumber:  order.OrderNumber,
		NumberSource: string(order.NumberSource),
		ShopId:       order.ShopID,
		CustomerName: order.CustomerName,
		Phone:        order.Phone,
		Items:        items,
		ItemsTotal:   order.ItemsTotal,
		DeliveryFee:  order.DeliveryFee,
		GrandTotal:   order.GrandTotal,
		Status:       string(order.Status),
	}
}

func orderStatusError(err error) error {
	var ite *service.InvalidTransitionError
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return status.Error(codes.NotFound, "order not found")
	case errors.Is(err, service.ErrShopNotFound):
		return status.Error(codes.NotFound, "shop not found")
	case errors.Is(err, service.ErrNoItems):
		return status.Error(codes.InvalidArgument, "no items")
	case errors.Is(err, service.ErrPincodeMismatch):
		return status.Error(codes.InvalidArgument, "shop does not deliver to this pincode")
	case errors.As(err, &ite):
		return status.Error(codes.FailedPrecondition, ite.Error())
	case errors.Is(err, service.ErrStaleStatus):
		return status.Error(codes.Aborted, "order status changed concurrently")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
