package handlers

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/smartcleaners/SMART-CLEANERS/internal/models"
	"github.com/smartcleaners/SMART-CLEANERS/internal/pricing"
)

func validForm() checkoutRequest {
	return checkoutRequest{
		Name:          "Ravi Kumar",
		Phone:         "9876543210",
		Address:       "12 Market Road",
		City:          "Vijayawada",
		State:         "Andhra Pradesh",
		Pincode:       "520001",
		PaymentMethod: models.PaymentMethodCash,
	}
}

func TestValidateCheckoutAcceptsValidForm(t *testing.T) {
	if errs := validateCheckout(validForm()); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateCheckoutNineDigitPhone(t *testing.T) {
	form := validForm()
	form.Phone = "987654321"

	errs := validateCheckout(form)
	if errs["phone"] == "" {
		t.Fatal("expected a phone-specific error")
	}
	if len(errs) != 1 {
		t.Fatalf("expected only the phone error, got %v", errs)
	}
}

func TestValidateCheckoutPhoneWhitespaceStripped(t *testing.T) {
	form := validForm()
	form.Phone = "98765 43210"

	if errs := validateCheckout(form); len(errs) != 0 {
		t.Fatalf("expected spaced phone to validate, got %v", errs)
	}
}

func TestValidateCheckoutRequiredFields(t *testing.T) {
	errs := validateCheckout(checkoutRequest{PaymentMethod: models.PaymentMethodCash})
	for _, field := range []string{"name", "phone", "address", "city", "state", "pincode"} {
		if errs[field] == "" {
			t.Errorf("expected error for %s", field)
		}
	}
}

func TestValidateCheckoutPincode(t *testing.T) {
	form := validForm()
	form.Pincode = "52001"

	errs := validateCheckout(form)
	if errs["pincode"] == "" {
		t.Fatal("expected a pincode error")
	}
}

func TestValidateCheckoutGeocodedCitySatisfiesRequirement(t *testing.T) {
	form := validForm()
	form.City = ""
	form.Geocode = &geocodeResult{Latitude: 16.5, Longitude: 80.6, City: "Vijayawada"}

	if errs := validateCheckout(form); len(errs) != 0 {
		t.Fatalf("expected geocoded city to satisfy requirement, got %v", errs)
	}

	form.Geocode.City = ""
	errs := validateCheckout(form)
	if errs["city"] == "" {
		t.Fatal("expected city error when geocode carries no city")
	}
}

func TestValidateCheckoutPaymentMethod(t *testing.T) {
	form := validForm()
	form.PaymentMethod = "card"

	errs := validateCheckout(form)
	if errs["payment_method"] == "" {
		t.Fatal("expected a payment method error")
	}
}

func TestComposeOrderFreezesCartAndFlags(t *testing.T) {
	sale := 80.0
	product := models.Product{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Phenyl Concentrate",
		SKU:       "PH-5L",
		Price:     100,
		SalePrice: &sale,
		Weight:    "5kg",
		IsActive:  true,
	}
	items := []models.CartItem{{Product: &product, Quantity: 50}}
	breakdown := pricing.PriceCart(items)

	placedAt := time.Date(2026, 4, 2, 10, 30, 0, 0, time.UTC)
	order := composeOrder(uuid.New(), validForm(), breakdown, true, placedAt)

	if order.Status != models.OrderStatusPending {
		t.Errorf("status = %s", order.Status)
	}
	if order.PaymentStatus != models.PaymentStatusPending {
		t.Errorf("payment status = %s", order.PaymentStatus)
	}
	if len(order.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(order.Items))
	}

	line := order.Items[0]
	if line.ProductName != "Phenyl Concentrate" || line.SKU != "PH-5L" {
		t.Errorf("product details not frozen: %+v", line)
	}
	if line.BulkTierApplied != "25%" {
		t.Errorf("tier = %q, want 25%%", line.BulkTierApplied)
	}
	if math.Abs(line.LineTotal-line.FinalUnitPrice*float64(line.Quantity)) > 1e-9 {
		t.Error("lineTotal != finalUnitPrice * quantity")
	}

	// 80 * 50 * 0.75 = 3000: below both verification thresholds
	if order.RequiresVerification {
		t.Error("order below 10000 should not require verification")
	}
	if order.Priority != models.OrderPriorityNormal {
		t.Errorf("priority = %s, want normal", order.Priority)
	}
	if !order.IsNewCustomer {
		t.Error("expected new-customer flag")
	}
	if order.FullAddress != "12 Market Road, Vijayawada, Andhra Pradesh - 520001" {
		t.Errorf("full address = %q", order.FullAddress)
	}
}

func TestComposeOrderOnlinePaymentAwaitsPayment(t *testing.T) {
	product := models.Product{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Soap", Price: 600}
	items := []models.CartItem{{Product: &product, Quantity: 50}}
	breakdown := pricing.PriceCart(items)

	form := validForm()
	form.PaymentMethod = models.PaymentMethodOnline

	order := composeOrder(uuid.New(), form, breakdown, false, time.Now())

	if order.PaymentStatus != models.PaymentStatusAwaitingPayment {
		t.Errorf("payment status = %s, want awaiting_payment", order.PaymentStatus)
	}
	// 600 * 50 * 0.75 = 22500
	if !order.RequiresVerification {
		t.Error("order above 10000 should require verification")
	}
	if order.Priority != models.OrderPriorityMedium {
		t.Errorf("priority = %s, want medium", order.Priority)
	}
}

func TestComposeOrderGeocodeMapLink(t *testing.T) {
	product := models.Product{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Soap", Price: 40}
	breakdown := pricing.PriceCart([]models.CartItem{{Product: &product, Quantity: 2}})

	form := validForm()
	form.City = ""
	form.Geocode = &geocodeResult{Latitude: 16.5062, Longitude: 80.648, City: "Vijayawada"}

	order := composeOrder(uuid.New(), form, breakdown, false, time.Now())

	if order.AddressCity != "Vijayawada" {
		t.Errorf("city = %q, want geocoded city", order.AddressCity)
	}
	if order.Latitude == nil || order.Longitude == nil {
		t.Fatal("expected coordinates on order")
	}
	if order.MapLink == "" {
		t.Fatal("expected a map link")
	}
}
