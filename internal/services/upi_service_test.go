package services

import (
	"net/url"
	"strings"
	"testing"
)

func TestPayLinkEncodesPayeeAndAmount(t *testing.T) {
	svc := NewUPIService("merchant@ybl", "Smart Cleaners")
	link := svc.PayLink(3750, "ORD_1700000000000")

	if !strings.HasPrefix(link, "upi://pay?") {
		t.Fatalf("unexpected scheme: %s", link)
	}

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	q := parsed.Query()

	if q.Get("pa") != "merchant@ybl" {
		t.Errorf("pa = %q", q.Get("pa"))
	}
	if q.Get("pn") != "Smart Cleaners" {
		t.Errorf("pn = %q", q.Get("pn"))
	}
	if q.Get("am") != "3750.00" {
		t.Errorf("am = %q, want 3750.00", q.Get("am"))
	}
	if q.Get("tn") != "ORD_1700000000000" {
		t.Errorf("tn = %q", q.Get("tn"))
	}
}

func TestPayLinkOmitsEmptyNote(t *testing.T) {
	svc := NewUPIService("merchant@ybl", "Smart Cleaners")
	link := svc.PayLink(99.5, "")

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	if parsed.Query().Has("tn") {
		t.Fatalf("expected no tn param: %s", link)
	}
	if parsed.Query().Get("am") != "99.50" {
		t.Fatalf("am = %q, want 99.50", parsed.Query().Get("am"))
	}
}

func TestConfigured(t *testing.T) {
	if NewUPIService("", "x").Configured() {
		t.Fatal("empty VPA should not be configured")
	}
	if !NewUPIService("merchant@ybl", "x").Configured() {
		t.Fatal("expected configured service")
	}
}
