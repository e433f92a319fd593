package crawler

import (
	"strings"

	"bazaryar/productworker/config"
	"bazaryar/productworker/helpers"
	"bazaryar/productworker/logger"
	"bazaryar/productworker/services/cache"
)

// CreateCrawlers creates all the store crawlers based on the configuration
func CreateCrawlers(cfg *config.Config, cacheSvc cache.CacheService) []Crawler {
	configurations := []CrawlerConfig{
		{
			// Torob price-comparison platform
			SearchURL:  cfg.TorobSearchURL,
			CacheKey:   "torob_rate_limited",
			BlockTime:  cfg.BlockSeconds,
			BaseURL:    "https://torob.com",
			Store:      "Torob",
			MaxResults: cfg.MaxResultsPerStore,
			Selectors: Selectors{
				ProductList: "div.product-card, div.product-item, div.search-result-item",
				Name: []string{
					"h3 a", "h2 a",
					".product-title", ".title", ".name", ".product-name",
				},
				Price: []string{
					".price", ".product-price", ".cost", ".amount",
				},
				Link: []string{
					"h3 a", "h2 a", ".product-title a", "a[href]",
				},
			},
			IDExtractor: func(link string) (string, error) {
				// https://torob.com/p/<id>/<slug>/
				baseLink := strings.Split(link, "?")[0]
				return helpers.GetSplitPart(baseLink, "/", 4)
			},
		},
		{
			// Emalls shopping marketplace
			SearchURL:  cfg.EmallsSearchURL,
			CacheKey:   "emalls_rate_limited",
			BlockTime:  cfg.BlockSeconds,
			BaseURL:    "https://emalls.ir",
			Store:      "Emalls",
			MaxResults: cfg.MaxResultsPerStore,
			Selectors: Selectors{
				ProductList: "div.product-item, div.search-item, div.item-box",
				Name: []string{
					"h3", "h2",
					".product-name", ".title", ".name", ".product-title",
				},
				Price: []string{
					".price", ".product-price", ".cost", ".amount",
				},
				Link: []string{
					"h3 a", "h2 a", ".product-title a", "a[href]",
				},
			},
			IDExtractor: func(link string) (string, error) {
				// https://emalls.ir/.../show/<id>/
				baseLink := strings.Split(link, "?")[0]
				return helpers.GetSplitPart(strings.TrimSuffix(baseLink, "/"), "/", 5)
			},
		},
		{
			// Digikala retailer
			SearchURL:  cfg.DigikalaSearchURL,
			CacheKey:   "digikala_rate_limited",
			BlockTime:  cfg.BlockSeconds,
			BaseURL:    "https://www.digikala.com",
			Store:      "Digikala",
			MaxResults: cfg.MaxResultsPerStore,
			Selectors: Selectors{
				ProductList: "div.product-item, div.product-card, div.c-product-box",
				Name: []string{
					"h3 a", "h2 a",
					".c-product-box__title", ".product-title", ".title", ".name",
				},
				Price: []string{
					".c-price__value", ".price", ".product-price", ".amount",
				},
				Link: []string{
					"h3 a", "h2 a", ".c-product-box__title a", "a[href]",
				},
			},
			IDExtractor: func(link string) (string, error) {
				// https://www.digikala.com/product/dkp-<id>/<slug>/
				baseLink := strings.Split(link, "?")[0]
				part, err := helpers.GetSplitPart(baseLink, "/", 4)
				if err != nil {
					return "", err
				}
				return strings.TrimPrefix(part, "dkp-"), nil
			},
		},
	}

	crawlers := make([]Crawler, 0, len(configurations))
	for _, configuration := range configurations {
		c := NewConfigurableCrawler(configuration, cacheSvc)
		crawlers = append(crawlers, c)
		logger.ForCrawler(c.GetName()).Debug().
			Str("search_url", configuration.SearchURL).
			Msg("Created crawler")
	}

	return crawlers
}
