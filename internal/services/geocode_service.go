package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// GeocodeService looks up addresses against a Nominatim-compatible API.
// Lookups are best effort: callers fall back to manual address entry on error.
type GeocodeService struct {
	baseURL string
	client  *http.Client
}

// NewGeocodeService creates a GeocodeService against the given base URL.
func NewGeocodeService(baseURL string) *GeocodeService {
	return &GeocodeService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Address is a normalized geocoding result.
type Address struct {
	DisplayName string  `json:"display_name"`
	Street      string  `json:"street"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Pincode     string  `json:"pincode"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Address     struct {
		Road     string `json:"road"`
		Suburb   string `json:"suburb"`
		City     string `json:"city"`
		Town     string `json:"town"`
		Village  string `json:"village"`
		State    string `json:"state"`
		Postcode string `json:"postcode"`
	} `json:"address"`
}

// Reverse resolves coordinates into a normalized address.
func (s *GeocodeService) Reverse(ctx context.Context, lat, lng float64) (*Address, error) {
	params := url.Values{}
	params.Set("format", "jsonv2")
	params.Set("lat", strconv.FormatFloat(lat, 'f', 6, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', 6, 64))

	var result nominatimResult
	if err := s.get(ctx, "/reverse", params, &result); err != nil {
		return nil, err
	}
	addr := result.toAddress()
	return &addr, nil
}

// Search returns ranked place suggestions for a free-text query.
func (s *GeocodeService) Search(ctx context.Context, query string, limit int) ([]Address, error) {
	if limit <= 0 {
		limit = 5
	}
	params := url.Values{}
	params.Set("format", "jsonv2")
	params.Set("addressdetails", "1")
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))

	var results []nominatimResult
	if err := s.get(ctx, "/search", params, &results); err != nil {
		return nil, err
	}

	addresses := make([]Address, 0, len(results))
	for _, r := range results {
		addresses = append(addresses, r.toAddress())
	}
	return addresses, nil
}

func (s *GeocodeService) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "smartcleaners-storefront/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocode lookup returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (r nominatimResult) toAddress() Address {
	city := r.Address.City
	if city == "" {
		city = r.Address.Town
	}
	if city == "" {
		city = r.Address.Village
	}

	street := r.Address.Road
	if street == "" {
		street = r.Address.Suburb
	}

	lat, _ := strconv.ParseFloat(r.Lat, 64)
	lon, _ := strconv.ParseFloat(r.Lon, 64)

	return Address{
		DisplayName: r.DisplayName,
		Street:      street,
		City:        city,
		State:       r.Address.State,
		Pincode:     r.Address.Postcode,
		Latitude:    lat,
		Longitude:   lon,
	}
}
