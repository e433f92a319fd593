package crawler

import (
	"fmt"
	"io"
	"net/url"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"bazaryar/productworker/helpers"
	"bazaryar/productworker/services/cache"
)

// BaseCrawler provides common functionality for all store crawlers
type BaseCrawler struct {
	SearchURL   string
	CacheKey    string
	CacheSvc    cache.CacheService
	BlockTime   time.Duration
	BaseURL     string
	Store       string
	MaxResults  int
	IDExtractor IDExtractorFunc
}

// buildSearchURL fills the search template with the encoded query
func (c *BaseCrawler) buildSearchURL(encodedQuery string) string {
	return fmt.Sprintf(c.SearchURL, encodedQuery)
}

// fetchWithCache fetches a URL with rate-limit blocking. A store that
// answered 429 recently is skipped until its block entry expires.
func (c *BaseCrawler) fetchWithCache(fetchURL string) (io.Reader, error) {
	if c.CacheSvc != nil && c.CacheKey != "" {
		_, err := c.CacheSvc.Get(c.CacheKey)
		if err == nil {
			return nil, fmt.Errorf("%s: blocked for %d more seconds at most", c.CacheKey, c.BlockTime/time.Second)
		}
	}

	utf8Body, err := helpers.FetchWithRandomHeaders(fetchURL)
	if err != nil {
		if c.CacheSvc != nil && c.CacheKey != "" && strings.HasPrefix(err.Error(), "rate limited") {
			c.CacheSvc.Set(c.CacheKey, []byte(fmt.Sprintf("%d", c.BlockTime/time.Second)), c.BlockTime)
		}
		return nil, err
	}

	return utf8Body, nil
}

// createDocument creates a goquery document from a reader
func (c *BaseCrawler) createDocument(reader io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, fmt.Errorf("HTML parse error: %v", err)
	}
	return doc, nil
}

// ResolveURL resolves a possibly-relative link against the store base URL
func (c *BaseCrawler) ResolveURL(link string) string {
	if link == "" || strings.HasPrefix(link, "http") {
		return link
	}
	if strings.HasPrefix(link, "//") {
		return "https:" + link
	}

	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return link
	}
	ref, err := url.Parse(link)
	if err != nil {
		return link
	}
	return base.ResolveReference(ref).String()
}

// processCards processes product cards in parallel using goroutines
func (c *BaseCrawler) processCards(selections *goquery.Selection, processor func(*goquery.Selection) *Product) []Product {
	productChan := make(chan *Product, selections.Length())
	var wg sync.WaitGroup

	selections.Each(func(i int, s *goquery.Selection) {
		wg.Add(1)
		go func(s *goquery.Selection) {
			defer wg.Done()

			product := processor(s)
			if product != nil {
				productChan <- product
			}
		}(s)
	})

	wg.Wait()
	close(productChan)

	var products []Product
	for product := range productChan {
		products = append(products, *product)
	}

	return products
}

// GetName returns the crawler's type name for logging
func (c *BaseCrawler) GetName() string {
	return reflect.TypeOf(c).Elem().Name()
}

// GetStore returns the store name
func (c *BaseCrawler) GetStore() string {
	return c.Store
}
