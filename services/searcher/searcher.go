package searcher

import (
	"context"
	"encoding/json"
	"sync"

	"bazaryar/productworker/helpers"
	"bazaryar/productworker/internal/crawler"
	"bazaryar/productworker/internal/normalize"
	"bazaryar/productworker/internal/sample"
	"bazaryar/productworker/services/publisher"
)

// Searcher runs the store crawlers for a query and aggregates the results
type Searcher struct {
	ctx       context.Context
	crawlers  []crawler.Crawler
	fallback  sample.Source
	publisher publisher.Publisher
	logger    helpers.LoggerInterface
}

// NewSearcher creates a new searcher
func NewSearcher(
	ctx context.Context,
	crawlers []crawler.Crawler,
	fallback sample.Source,
	pub publisher.Publisher,
	logger helpers.LoggerInterface,
) *Searcher {
	return &Searcher{
		ctx:       ctx,
		crawlers:  crawlers,
		fallback:  fallback,
		publisher: pub,
		logger:    logger,
	}
}

// Search normalizes the raw query, fans out to all store crawlers in
// parallel, and falls back to the sample catalog when no live store
// produced anything. Each store's batch is published to the stream.
func (s *Searcher) Search(rawQuery string) ([]crawler.Product, error) {
	query, err := normalize.NormalizeQuery(rawQuery)
	if err != nil {
		return nil, err
	}

	results := s.runCrawlers(query)

	if len(results) == 0 && s.fallback != nil {
		s.logger.LogInfo("no live results for %q, using sample catalog", query.CanonicalText)
		results = s.fallback.Find(query.CanonicalText)
		s.publish("Sample", results)
	}

	if s.publisher != nil {
		if err := s.publisher.TrimStreams(); err != nil {
			s.logger.LogError("StreamTrimming", err)
		}
	}

	return results, nil
}

// runCrawlers runs all the crawlers in parallel and collects their results
func (s *Searcher) runCrawlers(query normalize.NormalizedQuery) []crawler.Product {
	resultChan := make(chan []crawler.Product, len(s.crawlers))
	var wg sync.WaitGroup

	for _, c := range s.crawlers {
		wg.Add(1)
		go func(c crawler.Crawler) {
			defer wg.Done()

			select {
			case <-s.ctx.Done():
				return
			default:
			}

			products, err := c.Search(query)
			if err != nil {
				s.logger.LogError(c.GetName(), err)
				return
			}

			s.logger.LogInfo("%s returned %d products", c.GetName(), len(products))
			s.publish(c.GetStore(), products)
			resultChan <- products
		}(c)
	}

	wg.Wait()
	close(resultChan)

	var all []crawler.Product
	for products := range resultChan {
		all = append(all, products...)
	}
	return all
}

// publish sends one store's batch to the stream under the store key
func (s *Searcher) publish(store string, products []crawler.Product) {
	if s.publisher == nil || len(products) == 0 {
		return
	}

	data, err := json.Marshal(products)
	if err != nil {
		s.logger.LogError(store, err)
		return
	}

	if err := s.publisher.Publish(store, data); err != nil {
		s.logger.LogError(store, err)
	}
}
