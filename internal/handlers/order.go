package handlers

import (
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartcleaners/SMART-CLEANERS/internal/middleware"
	"github.com/smartcleaners/SMART-CLEANERS/internal/models"
	"github.com/smartcleaners/SMART-CLEANERS/internal/pricing"
	"github.com/smartcleaners/SMART-CLEANERS/internal/services"
	"github.com/smartcleaners/SMART-CLEANERS/internal/utils"
)

// OrderHandler manages checkout and order endpoints.
type OrderHandler struct {
	db       *gorm.DB
	telegram *services.TelegramService
	upi      *services.UPIService
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(db *gorm.DB, telegram *services.TelegramService, upi *services.UPIService) *OrderHandler {
	return &OrderHandler{db: db, telegram: telegram, upi: upi}
}

// geocodeResult is the optional verified lookup attached to a checkout form.
type geocodeResult struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
}

type checkoutRequest struct {
	Name          string         `json:"name"`
	Phone         string         `json:"phone"`
	Address       string         `json:"address"`
	City          string         `json:"city"`
	State         string         `json:"state"`
	Pincode       string         `json:"pincode"`
	PaymentMethod string         `json:"payment_method"`
	Geocode       *geocodeResult `json:"geocode"`
}

var (
	phonePattern   = regexp.MustCompile(`^\d{10}$`)
	pincodePattern = regexp.MustCompile(`^\d{6}$`)
)

// validateCheckout returns field-keyed error messages; an empty map means the
// form is valid. City is only required when the address was entered manually:
// a geocode result that already supplies a city satisfies the requirement.
func validateCheckout(req checkoutRequest) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(req.Name) == "" {
		errs["name"] = "Name is required"
	}

	phone := strings.ReplaceAll(req.Phone, " ", "")
	if strings.TrimSpace(req.Phone) == "" {
		errs["phone"] = "Phone number is required"
	} else if !phonePattern.MatchString(phone) {
		errs["phone"] = "Please enter a valid 10-digit phone number"
	}

	if strings.TrimSpace(req.Address) == "" {
		errs["address"] = "Address is required"
	}

	geocodedCity := req.Geocode != nil && strings.TrimSpace(req.Geocode.City) != ""
	if strings.TrimSpace(req.City) == "" && !geocodedCity {
		errs["city"] = "City is required"
	}

	if strings.TrimSpace(req.State) == "" {
		errs["state"] = "State is required"
	}

	if strings.TrimSpace(req.Pincode) == "" {
		errs["pincode"] = "Pincode is required"
	} else if !pincodePattern.MatchString(strings.TrimSpace(req.Pincode)) {
		errs["pincode"] = "Please enter a valid 6-digit pincode"
	}

	switch req.PaymentMethod {
	case models.PaymentMethodCash, models.PaymentMethodOnline:
	default:
		errs["payment_method"] = "Choose cash_on_delivery or online_payment"
	}

	return errs
}

// composeOrder freezes the priced cart into an immutable order record.
func composeOrder(userID uuid.UUID, req checkoutRequest, breakdown pricing.Breakdown, isNewCustomer bool, placedAt time.Time) models.Order {
	city := strings.TrimSpace(req.City)
	if city == "" && req.Geocode != nil {
		city = strings.TrimSpace(req.Geocode.City)
	}

	street := strings.TrimSpace(req.Address)
	state := strings.TrimSpace(req.State)
	pincode := strings.TrimSpace(req.Pincode)

	order := models.Order{
		UserID:        userID,
		OrderNumber:   fmt.Sprintf("ORD_%d", placedAt.UnixMilli()),
		Status:        models.OrderStatusPending,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: models.PaymentStatusPending,
		PlacedAt:      placedAt,

		CustomerName:  strings.TrimSpace(req.Name),
		CustomerPhone: strings.ReplaceAll(strings.TrimSpace(req.Phone), " ", ""),

		AddressStreet:  street,
		AddressCity:    city,
		AddressState:   state,
		AddressPincode: pincode,
		FullAddress:    fmt.Sprintf("%s, %s, %s - %s", street, city, state, pincode),

		Subtotal:          breakdown.Subtotal,
		BulkDiscountTotal: breakdown.BulkDiscountTotal,
		ShippingCost:      breakdown.ShippingCost,
		FinalTotal:        breakdown.FinalTotal,
		ItemCount:         breakdown.ItemCount,

		IsNewCustomer:        isNewCustomer,
		RequiresVerification: breakdown.FinalTotal > 10000,
		Priority:             models.PriorityFor(breakdown.FinalTotal),
	}

	if req.PaymentMethod == models.PaymentMethodOnline {
		order.PaymentStatus = models.PaymentStatusAwaitingPayment
	}

	if req.Geocode != nil {
		lat, lng := req.Geocode.Latitude, req.Geocode.Longitude
		order.Latitude = &lat
		order.Longitude = &lng
		order.MapLink = fmt.Sprintf("https://www.google.com/maps?q=%f,%f", lat, lng)
	}

	for _, line := range breakdown.Lines {
		product := line.Product
		productID := product.ID
		order.Items = append(order.Items, models.OrderItem{
			ProductID:     &productID,
			ProductName:   product.Name,
			SKU:           product.SKU,
			CategoryID:    product.CategoryID,
			OriginalPrice: product.Price,
			SalePrice:     product.SalePrice,
			Weight:        product.Weight,
			Dimensions:    product.Dimensions,
			Description:   product.Description,
			Ingredients:   product.Ingredients,
			Instructions:  product.Instructions,
			Images:        product.Images,

			Quantity:            line.Quantity,
			UnitPrice:           line.UnitPrice,
			BulkDiscountPerUnit: line.BulkDiscountPerUnit,
			FinalUnitPrice:      line.FinalUnitPrice,
			LineTotal:           line.LineTotal,
			BulkTierApplied:     line.TierApplied,
		})
	}

	return order
}

// PlaceOrder validates the checkout form, freezes the cart into an order and
// clears the cart in the same transaction. On any failure the cart is left
// intact so the user can retry.
func (h *OrderHandler) PlaceOrder(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := validateCheckout(req); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  errs,
		})
	}

	var items []models.CartItem
	if err := h.db.WithContext(c.UserContext()).
		Preload("Product").
		Where("user_id = ?", userID).
		Find(&items).Error; err != nil {
		return err
	}

	breakdown := pricing.PriceCart(items)
	if len(breakdown.Lines) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "cart is empty")
	}

	var priorOrders int64
	if err := h.db.Model(&models.Order{}).
		Where("user_id = ?", userID).
		Count(&priorOrders).Error; err != nil {
		return err
	}

	order := composeOrder(userID, req, breakdown, priorOrders == 0, time.Now())

	err := h.db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		log.Printf("[Order] placing order failed for user %s: %v", userID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to place order, please try again")
	}

	go h.notifyNewOrder(order)

	data := fiber.Map{
		"id":             order.ID,
		"order_number":   order.OrderNumber,
		"status":         order.Status,
		"payment_status": order.PaymentStatus,
		"placed_at":      order.PlacedAt,
		"final_total":    order.FinalTotal,
	}

	if order.PaymentMethod == models.PaymentMethodOnline {
		if !h.upi.Configured() {
			log.Printf("[Order] UPI payee not configured, order %s has no payment link", order.OrderNumber)
		}
		data["upi_link"] = h.upi.PayLink(order.FinalTotal, order.OrderNumber)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": data})
}

func (h *OrderHandler) notifyNewOrder(order models.Order) {
	if h.telegram == nil {
		return
	}

	items := make([]services.OrderItemNotification, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, services.OrderItemNotification{
			Name:     item.ProductName,
			Quantity: item.Quantity,
			Price:    item.FinalUnitPrice,
		})
	}

	err := h.telegram.NotifyNewOrder(services.OrderNotification{
		OrderNumber:   order.OrderNumber,
		Items:         items,
		Subtotal:      order.Subtotal,
		BulkSavings:   order.BulkDiscountTotal,
		FinalTotal:    order.FinalTotal,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		FullAddress:   order.FullAddress,
		PaymentMethod: order.PaymentMethod,
		Priority:      order.Priority,
	})
	if err != nil {
		log.Printf("[Order] Telegram notification failed for %s: %v", order.OrderNumber, err)
	}
}

// ConfirmPayment records a customer's self-reported UPI payment. There is no
// server-side verification; the order moves to awaiting_verification for the
// manual follow-up.
func (h *OrderHandler) ConfirmPayment(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var order models.Order
	if err := h.db.First(&order, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	if order.PaymentMethod != models.PaymentMethodOnline {
		return fiber.NewError(fiber.StatusBadRequest, "order is not an online payment")
	}
	if order.PaymentStatus != models.PaymentStatusAwaitingPayment {
		return fiber.NewError(fiber.StatusConflict, "payment already reported")
	}

	if err := h.db.Model(&order).
		Update("payment_status", models.PaymentStatusAwaitingVerification).Error; err != nil {
		return err
	}

	if h.telegram != nil {
		go func() {
			if err := h.telegram.NotifyPaymentReported(order.OrderNumber, order.FinalTotal); err != nil {
				log.Printf("[Order] payment report notification failed: %v", err)
			}
		}()
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"order_number":   order.OrderNumber,
			"payment_status": models.PaymentStatusAwaitingVerification,
		},
	})
}

// ListOrders returns orders for the authenticated user.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	pg := utils.ParsePagination(c)
	query := h.db.Where("user_id = ?", userID).Model(&models.Order{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var orders []models.Order
	if err := query.Preload("Items").
		Order("placed_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&orders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    orders,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetOrder returns a single order for the authenticated user.
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var order models.Order
	if err := h.db.Preload("Items").
		First(&order, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus advances an order through its lifecycle. Invalid transitions
// are rejected.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	var order models.Order
	if err := h.db.First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	if !models.CanTransition(order.Status, req.Status) {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("cannot move order from %s to %s", order.Status, req.Status))
	}

	if err := h.db.Model(&order).Update("status", req.Status).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"id":     order.ID,
		"status": req.Status,
	}})
}
