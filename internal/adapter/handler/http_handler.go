package handler

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/zync/orderline/internal/core/domain"
	"github.com/zync/orderline/internal/core/menu"
	"github.com/zync/orderline/internal/core/service"
	"github.com/zync/orderline/internal/port"
)

type HTTPHandler struct {
	orders *service.OrderService
	chat   *service.ChatService
	db     port.DatabaseRepository
}

func NewHTTPHandler(orders *service.OrderService, chat *service.ChatService, db port.DatabaseRepository) *HTTPHandler {
	return &HTTPHandler{orders: orders, chat: chat, db: db}
}

// Register mounts all routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.HealthCheck)
	mux.HandleFunc("POST /api/orders", h.CreateOrder)
	mux.HandleFunc("GET /api/orders/{id}", h.GetOrder)
	mux.HandleFunc("PATCH /api/orders/{id}/status", h.UpdateStatus)
	mux.HandleFunc("GET /api/shops/{shopID}/orders", h.ListShopOrders)
	mux.HandleFunc("GET /api/shops/{shopID}/menu", h.ListMenu)
	mux.HandleFunc("POST /webhook/whatsapp", h.WhatsAppWebhook)
}

type orderItemRequest struct {
	ItemID string `json:"itemId"`
	Qty    int    `json:"qty"`
}

type addressRequest struct {
	Label   string `json:"label"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Pincode string `json:"pincode"`
}

type createOrderRequest struct {
	Shop         string             `json:"shop"`
	CustomerID   string             `json:"customerId"`
	CustomerName string             `json:"customerName"`
	Phone        string             `json:"phone"`
	Items        []orderItemRequest `json:"items"`
	Address      *addressRequest    `json:"address"`
	DeliveryFee  int64              `json:"deliveryFee"`
}

type lineItemResponse struct {
	Name      string `json:"name"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
	LineTotal int64  `json:"lineTotal"`
}

type orderResponse struct {
	ID           string             `json:"id"`
	OrderNumber  int64              `json:"orderNumber"`
	NumberSource string             `json:"numberSource"`
	Shop         string             `json:"shop"`
	CustomerID   string             `json:"customerId,omitempty"`
	CustomerName string             `json:"customerName"`
	Phone        string             `json:"phone"`
	Address      addressRequest     `json:"address"`
	Items        []lineItemResponse `json:"items"`
	ItemsTotal   int64              `json:"itemsTotal"`
	DeliveryFee  int64              `json:"deliveryFee"`
	GrandTotal   int64              `json:"grandTotal"`
	Status       string             `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toOrderResponse(o domain.Order) orderResponse {
	items := make([]lineItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, lineItemResponse{
			Name: it.Name, Qty: it.Quantity, UnitPrice: it.UnitPrice, LineTotal: it.LineTotal,
		})
	}
	return orderResponse{
		ID:           o.ID,
		OrderNumber:  o.OrderNumber,
		NumberSource: string(o.NumberSource),
		Shop:         o.ShopID,
		CustomerID:   o.CustomerID,
		CustomerName: o.CustomerName,
		Phone:        o.Phone,
		Address: addressRequest{
			Label: o.Address.Label, Address: o.Address.Address,
			Phone: o.Address.Phone, Pincode: o.Address.Pincode,
		},
		Items:       items,
		ItemsTotal:  o.ItemsTotal,
		DeliveryFee: o.DeliveryFee,
		GrandTotal:  o.GrandTotal,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Shop == "" || req.CustomerName == "" || req.Phone == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "shop, customerName and phone required"})
		return
	}
	if len(req.Items) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "no items"})
		return
	}
	phone, ok := service.NormalizePhone(req.Phone)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid phone format"})
		return
	}
	if req.DeliveryFee < 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "deliveryFee must not be negative"})
		return
	}

	// Prices come from the catalog, never from the client; the order
	// freezes whatever the catalog says right now.
	available, err := h.db.ListAvailableItems(r.Context(), req.Shop)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load menu"})
		return
	}
	byID := make(map[string]domain.MenuItem, len(available))
	for _, it := range available {
		byID[it.ID] = it
	}

	var lines []service.Line
	var missing []string
	for _, it := range req.Items {
		item, ok := byID[it.ItemID]
		if !ok {
			missing = append(missing, it.ItemID)
			continue
		}
		lines = append(lines, service.Line{Item: item, Qty: it.Qty})
	}
	if len(missing) > 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "item(s) not available: " + strings.Join(missing, ", "),
		})
		return
	}

	draft := service.OrderDraft{
		ShopID:       req.Shop,
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		Phone:        phone,
		Lines:        lines,
		DeliveryFee:  req.DeliveryFee,
	}
	if req.Address != nil {
		draft.Address = domain.Address{
			Label: req.Address.Label, Address: req.Address.Address,
			Phone: req.Address.Phone, Pincode: req.Address.Pincode,
		}
	}

	order, err := h.orders.PlaceOrder(r.Context(), draft)
	if err != nil {
		writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toOrderResponse(*order))
}

func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.LookupOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(*order))
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *HTTPHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "status required"})
		return
	}

	order, err := h.orders.Transition(r.Context(), r.PathValue("id"), domain.OrderStatus(req.Status))
	if err != nil {
		writeOrderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(*order))
}

func (h *HTTPHandler) ListShopOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.db.ListShopOrders(r.Context(), r.PathValue("shopID"), 200)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to list orders"})
		return
	}
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	writeJSON(w, http.StatusOK, out)
}

type menuItemResponse struct {
	ID         string `json:"id"`
	Letter     string `json:"letter"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	ExternalID string `json:"externalId"`
}

func (h *HTTPHandler) ListMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.db.ListAvailableItems(r.Context(), r.PathValue("shopID"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load menu"})
		return
	}
	out := make([]menuItemResponse, 0, len(items))
	for i, it := range items {
		out = append(out, menuItemResponse{
			ID: it.ID, Letter: menu.Letter(i), Name: it.Name, Price: it.Price, ExternalID: it.ExternalID,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// twimlResponse is the transport reply document wrapping one message.
type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// WhatsAppWebhook handles inbound chat messages. The reply always goes
// out as TwiML with status 200; command errors become reply text, not
// HTTP errors.
func (h *HTTPHandler) WhatsAppWebhook(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	from := firstFormValue(r, "From", "from")
	body := firstFormValue(r, "Body", "body")

	reply := h.chat.HandleMessage(r.Context(), from, body)

	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(xml.Header))
	xml.NewEncoder(w).Encode(twimlResponse{Message: reply})
}

func firstFormValue(r *http.Request, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(r.PostFormValue(k)); v != "" {
			return v
		}
	}
	return ""
}

func writeOrderError(w http.ResponseWriter, err error) {
	var ite *service.InvalidTransitionError
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "order not found"})
	case errors.Is(err, service.ErrShopNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "shop not found"})
	case errors.Is(err, service.ErrNoItems):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "no items"})
	case errors.Is(err, service.ErrPincodeMismatch):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "shop does not deliver to this pincode"})
	case errors.As(err, &ite):
		writeJSON(w, http.StatusConflict, errorResponse{Error: ite.Error()})
	case errors.Is(err, service.ErrStaleStatus):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "order status changed concurrently"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
