package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"servisku/internal/data/entity"
	"servisku/internal/data/repository"
	"servisku/internal/dto/request"
	"servisku/internal/dto/response"
	"servisku/internal/events"
	"servisku/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventPublisher diimplement events.Producer; interface kecil supaya
// service bisa dites tanpa broker
type EventPublisher interface {
	Publish(key, value []byte)
}

type OrderService interface {
	Checkout(ctx context.Context, userID string, req *request.CheckoutRequest) (*response.OrderResponse, error)
	GetUserOrders(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)
	GetOrderByID(ctx context.Context, actorID string, actorRole string, orderID string) (*response.OrderResponse, error)
	UpdateStatus(ctx context.Context, actorID, actorRole, orderID string, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error)

	// Admin
	ListOrders(ctx context.Context, req *request.PaginatedRequest, status, kind *string) (*response.PaginatedResponse[response.OrderResponse], error)
	AssignTechnician(ctx context.Context, orderID string, req *request.AssignTechnicianRequest) (*response.OrderResponse, error)

	// Technician
	ListAssignedOrders(ctx context.Context, technicianUserID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)
}

type orderService struct {
	repo      *repository.Repository
	publisher EventPublisher
	appName   string
	log       *zap.Logger
}

func NewOrderService(repo *repository.Repository, publisher EventPublisher, appName string, log *zap.Logger) OrderService {
	return &orderService{
		repo:      repo,
		publisher: publisher,
		appName:   appName,
		log:       log.With(zap.String("service", "order")),
	}
}

// checkoutLine adalah hasil resolve satu item request ke harga final
type checkoutLine struct {
	item    *entity.OrderItem
	kind    entity.OrderKind
	deposit int64
}

func (s *orderService) resolveLine(ctx context.Context, reqItem *request.CheckoutItemRequest, now time.Time) (*checkoutLine, error) {
	refs := 0
	if reqItem.ProductID != nil {
		refs++
	}
	if reqItem.ServiceID != nil {
		refs++
	}
	if reqItem.RentalItemID != nil {
		refs++
	}
	if refs != 1 {
		return nil, fmt.Errorf("validation failed: order item must reference exactly one of product, service, or rental item")
	}

	item := &entity.OrderItem{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		Quantity: 1,
	}

	switch {
	case reqItem.ProductID != nil:
		productID, err := uuid.Parse(*reqItem.ProductID)
		if err != nil {
			return nil, fmt.Errorf("invalid product ID format %s: %w", *reqItem.ProductID, err)
		}

		product, err := s.repo.Product.FindByID(ctx, productID)
		if err != nil || product == nil {
			return nil, fmt.Errorf("product %s not found", *reqItem.ProductID)
		}
		if !product.IsActive {
			return nil, fmt.Errorf("product %s is not active", product.Name)
		}

		qty := reqItem.Quantity
		if qty < 1 {
			qty = 1
		}

		// Kurangi stok atomik; gagal berarti stok tidak cukup
		ok, err := s.repo.Product.DecrementStock(ctx, productID, qty)
		if err != nil {
			return nil, fmt.Errorf("reserve product stock: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("cannot order %d of %s, insufficient stock", qty, product.Name)
		}

		item.ProductID = &productID
		item.Quantity = qty
		item.UnitPrice = product.Price
		item.Subtotal = product.Price * int64(qty)
		return &checkoutLine{item: item, kind: entity.OrderKindSparepart}, nil

	case reqItem.ServiceID != nil:
		serviceID, err := uuid.Parse(*reqItem.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("invalid service ID format %s: %w", *reqItem.ServiceID, err)
		}

		service, err := s.repo.Service.FindByID(ctx, serviceID)
		if err != nil || service == nil {
			return nil, fmt.Errorf("service %s not found", *reqItem.ServiceID)
		}
		if !service.IsActive {
			return nil, fmt.Errorf("service %s is not active", service.Name)
		}

		// Jasa dipesan di harga minimum; harga final dinego setelah diagnosa
		item.ServiceID = &serviceID
		item.UnitPrice = service.MinPrice
		item.Subtotal = service.MinPrice
		return &checkoutLine{item: item, kind: entity.OrderKindService}, nil

	default:
		rentalItemID, err := uuid.Parse(*reqItem.RentalItemID)
		if err != nil {
			return nil, fmt.Errorf("invalid rental item ID format %s: %w", *reqItem.RentalItemID, err)
		}

		rentalItem, err := s.repo.RentalItem.FindByID(ctx, rentalItemID)
		if err != nil || rentalItem == nil {
			return nil, fmt.Errorf("rental item %s not found", *reqItem.RentalItemID)
		}
		if !rentalItem.IsActive {
			return nil, fmt.Errorf("rental item %s is not active", rentalItem.Name)
		}

		if !ValidDurationType(reqItem.DurationType) {
			return nil, fmt.Errorf("validation failed: duration_type must be daily, weekly, monthly, or custom")
		}
		if DurationType(reqItem.DurationType) == DurationCustom &&
			(reqItem.Duration < minCustomDays || reqItem.Duration > maxCustomDays) {
			return nil, fmt.Errorf("validation failed: rental duration must be between %d and %d days", minCustomDays, maxCustomDays)
		}

		// Satu unit per booking, dikurangi atomik dengan floor check
		ok, err := s.repo.RentalItem.DecrementStock(ctx, rentalItemID)
		if err != nil {
			return nil, fmt.Errorf("reserve rental stock: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("rental item %s is out of stock", rentalItem.Name)
		}

		quote := CalculateRentalQuote(rentalItem.PricePerDay, DurationType(reqItem.DurationType), reqItem.Duration)

		item.RentalItemID = &rentalItemID
		item.RentalDays = quote.ActualDays
		item.UnitPrice = rentalItem.PricePerDay
		item.Subtotal = quote.Subtotal
		return &checkoutLine{item: item, kind: entity.OrderKindRental, deposit: quote.Deposit}, nil
	}
}

// releaseLines mengembalikan stok yang sudah dipotong kalau checkout gagal di tengah
func (s *orderService) releaseLines(ctx context.Context, lines []*checkoutLine) {
	for _, line := range lines {
		if line.item.ProductID != nil {
			_ = s.repo.Product.IncrementStock(ctx, *line.item.ProductID, line.item.Quantity)
		}
		if line.item.RentalItemID != nil {
			_ = s.repo.RentalItem.IncrementStock(ctx, *line.item.RentalItemID)
		}
	}
}

func (s *orderService) Checkout(ctx context.Context, userID string, req *request.CheckoutRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Checkout validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	now := time.Now()
	orderID := uuid.New()

	var lines []*checkoutLine
	var total, deposit int64
	kind := entity.OrderKind("")

	for i := range req.Items {
		line, err := s.resolveLine(ctx, &req.Items[i], now)
		if err != nil {
			s.releaseLines(ctx, lines)
			return nil, err
		}

		line.item.OrderID = orderID
		lines = append(lines, line)
		total += line.item.Subtotal + line.deposit
		deposit += line.deposit

		switch {
		case kind == "":
			kind = line.kind
		case kind != line.kind:
			kind = entity.OrderKindMixed
		}
	}

	order := &entity.Order{
		Base: entity.Base{
			ID:        orderID,
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderNumber: utils.GenerateOrderNumber(),
		UserID:      userUUID,
		Kind:        kind,
		Total:       total,
		Deposit:     deposit,
		Status:      entity.OrderStatusPendingPayment,
	}

	if err := s.repo.Order.Create(ctx, order); err != nil {
		s.releaseLines(ctx, lines)
		s.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("create order: %w", err)
	}

	items := make([]*entity.OrderItem, len(lines))
	for i, line := range lines {
		items[i] = line.item
	}

	if err := s.repo.OrderItem.CreateBatch(ctx, items); err != nil {
		s.releaseLines(ctx, lines)
		return nil, fmt.Errorf("create order items: %w", err)
	}

	s.publishEvent(events.EventOrderCreated, order.ID.String(), events.OrderCreatedPayload{
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		UserID:      userID,
		Kind:        string(order.Kind),
		Total:       order.Total,
	})

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber),
		zap.String("user_id", userID),
		zap.String("kind", string(order.Kind)),
		zap.Int64("total", order.Total),
	)

	resp := response.OrderToResponse(order, items)
	return &resp, nil
}

func (s *orderService) GetUserOrders(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	filter := repository.OrderFilter{UserID: &userUUID}
	return s.listOrders(ctx, filter, req)
}

func (s *orderService) ListOrders(ctx context.Context, req *request.PaginatedRequest, status, kind *string) (*response.PaginatedResponse[response.OrderResponse], error) {
	filter := repository.OrderFilter{Status: status, Kind: kind}
	return s.listOrders(ctx, filter, req)
}

func (s *orderService) ListAssignedOrders(ctx context.Context, technicianUserID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	technician, err := s.findTechnicianByUser(ctx, technicianUserID)
	if err != nil {
		return nil, err
	}

	filter := repository.OrderFilter{TechnicianID: &technician.ID}
	return s.listOrders(ctx, filter, req)
}

func (s *orderService) listOrders(ctx context.Context, filter repository.OrderFilter, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	orders, err := s.repo.Order.FindAll(ctx, filter, limit, offset)
	if err != nil {
		s.log.Error("Failed to list orders", zap.Error(err))
		return nil, fmt.Errorf("list orders: %w", err)
	}

	total, err := s.repo.Order.CountAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count orders", zap.Error(err))
		return nil, fmt.Errorf("count orders: %w", err)
	}

	orderResponses := make([]response.OrderResponse, len(orders))
	for i, order := range orders {
		items, err := s.repo.OrderItem.FindByOrderID(ctx, order.ID)
		if err != nil {
			s.log.Warn("Failed to load order items",
				zap.Error(err),
				zap.String("order_id", order.ID.String()),
			)
		}
		orderResponses[i] = response.OrderToResponse(order, items)
	}

	return response.NewPaginatedResponse(orderResponses, req.Page, req.PerPage, total), nil
}

func (s *orderService) GetOrderByID(ctx context.Context, actorID string, actorRole string, orderID string) (*response.OrderResponse, error) {
	// Terima UUID maupun order number (ORD-...) yang tampil ke customer
	var order *entity.Order
	if id, err := uuid.Parse(orderID); err == nil {
		order, err = s.repo.Order.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("find order %s: %w", orderID, err)
		}
	} else if strings.HasPrefix(orderID, "ORD-") {
		var ferr error
		order, ferr = s.repo.Order.FindByOrderNumber(ctx, orderID)
		if ferr != nil {
			return nil, fmt.Errorf("find order %s: %w", orderID, ferr)
		}
	} else {
		return nil, fmt.Errorf("invalid order ID format %s", orderID)
	}
	if order == nil {
		return nil, fmt.Errorf("order %s not found", orderID)
	}

	// Customer hanya boleh lihat order miliknya
	if entity.UserRole(actorRole) == entity.RoleCustomer && order.UserID.String() != actorID {
		return nil, fmt.Errorf("unauthorized to view this order")
	}

	items, err := s.repo.OrderItem.FindByOrderID(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("load items for order %s: %w", orderID, err)
	}

	resp := response.OrderToResponse(order, items)
	return &resp, nil
}

func (s *orderService) findTechnicianByUser(ctx context.Context, technicianUserID string) (*entity.Technician, error) {
	userUUID, err := uuid.Parse(technicianUserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", technicianUserID, err)
	}

	technician, err := s.repo.Technician.FindByUserID(ctx, userUUID)
	if err != nil || technician == nil {
		return nil, fmt.Errorf("technician profile not found")
	}

	return technician, nil
}

// UpdateStatus adalah satu-satunya jalur mutasi status order.
// Transisi dicek lewat tabel role-gated, lalu di-apply compare-and-set.
func (s *orderService) UpdateStatus(ctx context.Context, actorID, actorRole, orderID string, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, fmt.Errorf("invalid order ID format %s: %w", orderID, err)
	}

	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil || order == nil {
		return nil, fmt.Errorf("order %s not found", orderID)
	}

	role := entity.UserRole(actorRole)
	newStatus := entity.OrderStatus(req.Status)

	if err := entity.AuthorizeTransition(role, order.Kind, order.Status, newStatus); err != nil {
		s.log.Warn("Order status transition rejected",
			zap.String("order_id", orderID),
			zap.String("role", actorRole),
			zap.String("from", string(order.Status)),
			zap.String("to", string(newStatus)),
		)
		return nil, err
	}

	// Teknisi hanya boleh mengubah order yang di-assign ke dia
	if role == entity.RoleTechnician {
		technician, err := s.findTechnicianByUser(ctx, actorID)
		if err != nil {
			return nil, err
		}
		if order.TechnicianID == nil || *order.TechnicianID != technician.ID {
			return nil, fmt.Errorf("unauthorized to update this order")
		}
	}

	applied, err := s.repo.Order.UpdateStatus(ctx, order.ID, order.Status, newStatus)
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	if !applied {
		// Status sudah keburu berubah oleh request lain
		return nil, fmt.Errorf("cannot update order %s, status already changed", order.OrderNumber)
	}

	// Pembatalan mengembalikan stok sparepart dan unit rental
	if newStatus == entity.OrderStatusCancelled {
		items, err := s.repo.OrderItem.FindByOrderID(ctx, order.ID)
		if err == nil {
			for _, item := range items {
				if item.ProductID != nil {
					_ = s.repo.Product.IncrementStock(ctx, *item.ProductID, item.Quantity)
				}
				if item.RentalItemID != nil {
					_ = s.repo.RentalItem.IncrementStock(ctx, *item.RentalItemID)
				}
			}
		}
	}

	s.publishEvent(events.EventOrderStatusChanged, order.ID.String(), events.OrderStatusChangedPayload{
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		FromStatus:  string(order.Status),
		ToStatus:    string(newStatus),
		ActorID:     actorID,
		ActorRole:   actorRole,
	})

	s.log.Info("Order status updated",
		zap.String("order_id", orderID),
		zap.String("order_number", order.OrderNumber),
		zap.String("from", string(order.Status)),
		zap.String("to", string(newStatus)),
		zap.String("actor_role", actorRole),
	)

	order.Status = newStatus
	items, _ := s.repo.OrderItem.FindByOrderID(ctx, order.ID)

	resp := response.OrderToResponse(order, items)
	return &resp, nil
}

func (s *orderService) AssignTechnician(ctx context.Context, orderID string, req *request.AssignTechnicianRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, fmt.Errorf("invalid order ID format %s: %w", orderID, err)
	}

	technicianID, err := uuid.Parse(req.TechnicianID)
	if err != nil {
		return nil, fmt.Errorf("invalid technician ID format %s: %w", req.TechnicianID, err)
	}

	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil || order == nil {
		return nil, fmt.Errorf("order %s not found", orderID)
	}

	if order.Status.IsTerminal() {
		return nil, fmt.Errorf("cannot assign technician to %s order", order.Status)
	}

	technician, err := s.repo.Technician.FindByID(ctx, technicianID)
	if err != nil || technician == nil {
		return nil, fmt.Errorf("technician %s not found", req.TechnicianID)
	}

	if technician.Approval != entity.ApprovalApproved {
		return nil, fmt.Errorf("technician is not approved yet")
	}

	if err := s.repo.Order.AssignTechnician(ctx, order.ID, technician.ID); err != nil {
		return nil, fmt.Errorf("assign technician: %w", err)
	}

	s.log.Info("Technician assigned",
		zap.String("order_id", orderID),
		zap.String("technician_id", req.TechnicianID),
	)

	order.TechnicianID = &technician.ID
	items, _ := s.repo.OrderItem.FindByOrderID(ctx, order.ID)

	resp := response.OrderToResponse(order, items)
	return &resp, nil
}

func (s *orderService) publishEvent(eventType, orderID string, payload any) {
	if s.publisher == nil {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		s.log.Error("Failed to marshal event payload", zap.Error(err))
		return
	}

	envelope := events.Envelope{
		EventID:      uuid.New().String(),
		EventType:    eventType,
		EventVersion: 1,
		OccurredAt:   time.Now(),
		Producer:     s.appName,
		Payload:      body,
	}

	value, err := json.Marshal(envelope)
	if err != nil {
		s.log.Error("Failed to marshal event envelope", zap.Error(err))
		return
	}

	s.publisher.Publish(events.PartitionKey(orderID), value)
}
