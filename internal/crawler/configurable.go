package crawler

import (
	"errors"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"bazaryar/productworker/internal/normalize"
	"bazaryar/productworker/logger"
	crawlererr "bazaryar/productworker/pkg/errors"
	"bazaryar/productworker/services/cache"
)

// ConfigurableCrawler is a store crawler driven entirely by per-store
// selector configuration
type ConfigurableCrawler struct {
	BaseCrawler
	Selectors Selectors
}

// NewConfigurableCrawler creates a new configurable crawler
func NewConfigurableCrawler(config CrawlerConfig, cacheSvc cache.CacheService) *ConfigurableCrawler {
	return &ConfigurableCrawler{
		BaseCrawler: BaseCrawler{
			SearchURL:   config.SearchURL,
			CacheKey:    config.CacheKey,
			CacheSvc:    cacheSvc,
			BlockTime:   time.Duration(config.BlockTime) * time.Second,
			BaseURL:     config.BaseURL,
			Store:       config.Store,
			MaxResults:  config.MaxResults,
			IDExtractor: config.IDExtractor,
		},
		Selectors: config.Selectors,
	}
}

// GetName returns the crawler name
func (c *ConfigurableCrawler) GetName() string {
	return c.Store + "Crawler"
}

// Search fetches the store's result page for the query and extracts products
func (c *ConfigurableCrawler) Search(query normalize.NormalizedQuery) ([]Product, error) {
	searchURL := c.buildSearchURL(query.EncodedForURL)

	utf8Body, err := c.fetchWithCache(searchURL)
	if err != nil {
		return nil, crawlererr.NewNetwork(c.Store, "failed to fetch search page", err)
	}

	doc, err := c.createDocument(utf8Body)
	if err != nil {
		return nil, crawlererr.NewParsing(c.Store, "failed to parse search page", err)
	}

	cardSelections := doc.Find(c.Selectors.ProductList)
	if c.MaxResults > 0 && cardSelections.Length() > c.MaxResults {
		cardSelections = cardSelections.Slice(0, c.MaxResults)
	}

	return c.processCards(cardSelections, c.processProduct), nil
}

// firstText returns the trimmed text of the first fallback selector that
// matches; a selection carrying a title attribute wins over its text.
func (c *ConfigurableCrawler) firstText(s *goquery.Selection, selectors []string) string {
	for _, selector := range selectors {
		sel := s.Find(selector)
		if sel.Length() == 0 {
			continue
		}
		if title, exists := sel.First().Attr("title"); exists && strings.TrimSpace(title) != "" {
			return strings.TrimSpace(title)
		}
		if text := strings.TrimSpace(sel.First().Text()); text != "" {
			return text
		}
	}
	return ""
}

// firstHref returns the resolved href of the first fallback selector that
// carries one.
func (c *ConfigurableCrawler) firstHref(s *goquery.Selection, selectors []string) string {
	for _, selector := range selectors {
		sel := s.Find(selector)
		if sel.Length() == 0 {
			continue
		}
		if href, exists := sel.First().Attr("href"); exists && strings.TrimSpace(href) != "" {
			return c.ResolveURL(strings.TrimSpace(href))
		}
	}
	return ""
}

// processProduct processes a single product card
func (c *ConfigurableCrawler) processProduct(s *goquery.Selection) *Product {
	name := c.firstText(s, c.Selectors.Name)
	if name == "" {
		return nil
	}

	link := c.firstHref(s, c.Selectors.Link)
	if link == "" {
		return nil
	}

	var id string
	if c.IDExtractor != nil {
		extracted, err := c.IDExtractor(link)
		if err != nil {
			logger.ForCrawler(c.GetName()).Debug().
				Str("link", link).
				Err(err).
				Msg("Could not extract product id")
		} else {
			id = extracted
		}
	}

	product := &Product{
		Id:    id,
		Name:  name,
		Link:  link,
		Store: c.Store,
	}

	// Price stays nil when the card carries no digits; the display layer
	// renders that as unavailable, never as zero.
	rawPrice := c.firstText(s, c.Selectors.Price)
	if rawPrice != "" {
		product.RawPrice = rawPrice
		price, err := normalize.NormalizePrice(rawPrice)
		if err == nil {
			product.Price = &price
		} else if errors.Is(err, normalize.ErrNoDigits) {
			logger.ForCrawler(c.GetName()).Debug().
				Str("raw_price", rawPrice).
				Msg("Price text carries no digits")
		}
	}

	return product
}
