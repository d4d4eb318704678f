package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
)

// TelegramService handles sending notifications to Telegram.
type TelegramService struct {
	botToken    string
	adminChatID string
}

// NewTelegramService creates a new TelegramService.
func NewTelegramService(botToken, adminChatID string) *TelegramService {
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends a message to specified chat.
func (s *TelegramService) SendMessage(chatID, text string) error {
	if s.botToken == "" {
		log.Println("[Telegram] Bot token not configured")
		return nil
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)

	msg := telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("[Telegram] Failed to send message: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Telegram] Unexpected status: %d", resp.StatusCode)
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	return nil
}

// SendToAdmin sends a message to the admin chat.
func (s *TelegramService) SendToAdmin(text string) error {
	if s.adminChatID == "" {
		log.Println("[Telegram] Admin chat ID not configured")
		return nil
	}
	return s.SendMessage(s.adminChatID, text)
}

// OrderNotification contains order data for Telegram notification.
type OrderNotification struct {
	OrderNumber   string
	Items         []OrderItemNotification
	Subtotal      float64
	BulkSavings   float64
	FinalTotal    float64
	CustomerName  string
	CustomerPhone string
	FullAddress   string
	PaymentMethod string
	Priority      string
}

// OrderItemNotification contains order item data.
type OrderItemNotification struct {
	Name     string
	Quantity int
	Price    float64
}

// FormatINR formats an amount in rupees with thousand separators.
func FormatINR(amount float64) string {
	intAmount := int64(amount)
	str := fmt.Sprintf("%d", intAmount)

	var result strings.Builder
	length := len(str)
	for i, digit := range str {
		if i > 0 && (length-i)%3 == 0 {
			result.WriteString(",")
		}
		result.WriteRune(digit)
	}

	return "₹" + result.String()
}

// NotifyNewOrder sends notification about new order to admin chat.
func (s *TelegramService) NotifyNewOrder(order OrderNotification) error {
	if s.adminChatID == "" {
		return nil
	}

	var itemsList strings.Builder
	for i, item := range order.Items {
		itemTotal := item.Price * float64(item.Quantity)
		itemsList.WriteString(fmt.Sprintf("%d. <b>%s</b>\n   %d x %s = %s\n",
			i+1,
			item.Name,
			item.Quantity,
			FormatINR(item.Price),
			FormatINR(itemTotal),
		))
	}

	paymentMethodText := "Cash on Delivery"
	if order.PaymentMethod == "online_payment" {
		paymentMethodText = "UPI"
	}

	message := fmt.Sprintf(`<b>🛒 NEW ORDER</b>
<b>📋 Order:</b> %s
<b>👤 Customer:</b> %s
<b>📞 Phone:</b> %s
<b>📍 Address:</b> %s
<b>📦 Items:</b>
%s
<b>💰 Subtotal:</b> %s
<b>🏷 Bulk savings:</b> %s
<b>💵 Total:</b> %s
<b>💳 Payment:</b> %s
<b>⚡ Priority:</b> %s
━━━━━━━━━━━━━━━━━━`,
		order.OrderNumber,
		order.CustomerName,
		order.CustomerPhone,
		order.FullAddress,
		itemsList.String(),
		FormatINR(order.Subtotal),
		FormatINR(order.BulkSavings),
		FormatINR(order.FinalTotal),
		paymentMethodText,
		order.Priority,
	)

	return s.SendToAdmin(strings.TrimSpace(message))
}

// NotifyPaymentReported sends notification that a customer reported a UPI payment.
func (s *TelegramService) NotifyPaymentReported(orderNumber string, amount float64) error {
	if s.adminChatID == "" {
		return nil
	}

	message := fmt.Sprintf(`<b>💳 UPI PAYMENT REPORTED</b>
<b>📋 Order:</b> %s
<b>💰 Amount:</b> %s
Verify the payment before confirming the order.
━━━━━━━━━━━━━━━━━━`,
		orderNumber,
		FormatINR(amount),
	)

	return s.SendToAdmin(strings.TrimSpace(message))
}
