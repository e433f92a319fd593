package crawler

import (
	"bazaryar/productworker/internal/normalize"
)

// Product represents a single product found for a search query
type Product struct {
	Id       string                     `json:"id,omitempty"`
	Name     string                     `json:"name"`
	Link     string                     `json:"link"`
	RawPrice string                     `json:"raw_price,omitempty"`
	Price    *normalize.NormalizedPrice `json:"price,omitempty"`
	Store    string                     `json:"store"`
}

// Crawler interface defines the contract for all store crawler implementations
type Crawler interface {
	// Search retrieves products matching the normalized query
	Search(query normalize.NormalizedQuery) ([]Product, error)

	// GetName returns the crawler's name for logging and identification
	GetName() string

	// GetStore returns the store name the crawler covers
	GetStore() string
}

// IDExtractorFunc defines the function signature for extracting a product
// ID from a URL
type IDExtractorFunc func(string) (string, error)

// Selectors contains CSS selectors for product cards. Name, Price and Link
// are ordered fallback lists; the first selector that yields content wins.
// Iranian store markups shift often, so every config carries several
// fallbacks the way the selectors accumulated in production.
type Selectors struct {
	ProductList string
	Name        []string
	Price       []string
	Link        []string
}

// CrawlerConfig contains configuration for a store crawler
type CrawlerConfig struct {
	// SearchURL is a printf-style template; %s receives the URL-encoded query
	SearchURL   string
	CacheKey    string
	BlockTime   int
	BaseURL     string
	Store       string
	MaxResults  int
	Selectors   Selectors
	IDExtractor IDExtractorFunc
}
