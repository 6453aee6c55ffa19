package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"fridge-manager/core/utils"
)

var (
	// ErrLookup indicates the upstream call failed.
	ErrLookup = errors.New("product lookup failed")
	// ErrProductNotFound indicates the upstream has no record for the code.
	ErrProductNotFound = errors.New("product not found")
)

const userAgent = "fridge-manager/1.0 (+https://github.com/fridge-manager)"

// Product is the subset of an Open Food Facts record this service uses.
type Product struct {
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Brands       string  `json:"brands"`
	Categories   string  `json:"categories"`
	ImageURL     string  `json:"image_url"`
	NovaGroup    int     `json:"nova_group"`
	SugarPer100g float64 `json:"sugar_100g"`
}

// Binding derives the inventory binding for the product.
func (p *Product) Binding() Binding {
	name := p.Name
	if name == "" {
		name = p.Code
	}
	return Binding{
		Identity: utils.Slugify(name),
		Name:     name,
		Category: Classify(p.Categories),
	}
}

// OpenFoodFacts looks up barcode payloads against the Open Food Facts API.
type OpenFoodFacts struct {
	cfg    Config
	client *http.Client
	group  singleflight.Group
}

// NewOpenFoodFacts creates a lookup client with a bounded request timeout.
func NewOpenFoodFacts(cfg Config) *OpenFoodFacts {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	return &OpenFoodFacts{
		cfg:    cfg,
		client: &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

// Lookup fetches the product for a barcode payload. Concurrent lookups of
// the same code share one upstream request.
func (o *OpenFoodFacts) Lookup(ctx context.Context, code string) (*Product, error) {
	result, err, _ := o.group.Do(code, func() (interface{}, error) {
		return o.fetch(ctx, code)
	})
	if err != nil {
		return nil, err
	}
	return result.(*Product), nil
}

// productResponse is the wire shape of /api/v2/product/{code}.json.
type productResponse struct {
	Product *struct {
		ProductName   string `json:"product_name"`
		ProductNameEN string `json:"product_name_en"`
		Brands        string `json:"brands"`
		Categories    string `json:"categories"`
		ImageURL      string `json:"image_url"`
		NovaGroup     int    `json:"nova_group"`
		Nutriments    struct {
			Sugars100g float64 `json:"sugars_100g"`
		} `json:"nutriments"`
	} `json:"product"`
}

func (o *OpenFoodFacts) fetch(ctx context.Context, code string) (*Product, error) {
	endpoint := fmt.Sprintf("%s/api/v2/product/%s.json",
		strings.TrimSuffix(o.cfg.LookupEndpoint, "/"), url.PathEscape(code))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLookup, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLookup, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: code %s", ErrProductNotFound, code)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: upstream status %d", ErrLookup, resp.StatusCode)
	}

	var payload productResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLookup, err)
	}
	if payload.Product == nil {
		return nil, fmt.Errorf("%w: code %s", ErrProductNotFound, code)
	}

	name := payload.Product.ProductName
	if name == "" {
		name = payload.Product.ProductNameEN
	}

	return &Product{
		Code:         code,
		Name:         name,
		Brands:       payload.Product.Brands,
		Categories:   payload.Product.Categories,
		ImageURL:     payload.Product.ImageURL,
		NovaGroup:    payload.Product.NovaGroup,
		SugarPer100g: payload.Product.Nutriments.Sugars100g,
	}, nil
}
