package services

import (
	"fmt"
	"net/url"
)

// UPIService builds payment deep links for the configured payee. The link is
// opened by the customer's own payment app; there is no callback, so payment
// confirmation stays a manual, out-of-band step.
type UPIService struct {
	payeeVPA  string
	payeeName string
}

// NewUPIService creates a UPIService for a payee virtual address and display name.
func NewUPIService(payeeVPA, payeeName string) *UPIService {
	return &UPIService{payeeVPA: payeeVPA, payeeName: payeeName}
}

// Configured reports whether a payee address is set. Online payment is
// unavailable without one.
func (s *UPIService) Configured() bool {
	return s.payeeVPA != ""
}

// PayLink returns a upi://pay URI for the given amount and transaction note.
func (s *UPIService) PayLink(amount float64, note string) string {
	params := url.Values{}
	params.Set("pa", s.payeeVPA)
	params.Set("pn", s.payeeName)
	params.Set("mc", "0000")
	params.Set("mode", "02")
	params.Set("purpose", "00")
	params.Set("am", fmt.Sprintf("%.2f", amount))
	if note != "" {
		params.Set("tn", note)
	}
	return "upi://pay?" + params.Encode()
}
