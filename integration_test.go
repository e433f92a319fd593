package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bazaryar/productworker/internal/crawler"
	"bazaryar/productworker/internal/normalize"
	"bazaryar/productworker/internal/sample"
	"bazaryar/productworker/services/searcher"
)

// testHTML mimics a store search-results page
const testHTML = `
<!DOCTYPE html>
<html>
<head>
    <title>نتایج جستجو</title>
</head>
<body>
    <div class="list">
        <div class="product-item">
            <h3 class="title"><a href="/p/1001/laptop-asus">لپ تاپ ایسوس VivoBook</a></h3>
            <div class="price">۴۵٬۰۰۰٬۰۰۰ تومان</div>
        </div>
        <div class="product-item">
            <h3 class="title"><a href="/p/1002/laptop-lenovo">لپ تاپ لنوو IdeaPad</a></h3>
            <div class="price">۳۸,۵۰۰,۰۰۰ تومان</div>
        </div>
        <div class="product-item">
            <h3 class="title"><a href="/p/1003/laptop-nolisting">لپ تاپ بدون قیمت</a></h3>
            <div class="price">تماس بگیرید</div>
        </div>
    </div>
</body>
</html>
`

type memoryCache struct {
	data map[string][]byte
}

func (m *memoryCache) Get(key string) ([]byte, error) {
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return nil, assert.AnError
}

func (m *memoryCache) Set(key string, value []byte, ttl time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *memoryCache) Delete(key string) error {
	delete(m.data, key)
	return nil
}

type testLogger struct{}

func (testLogger) LogError(crawlerName string, err error) {}

func (testLogger) LogInfo(format string, args ...interface{}) {}

func TestSearchEndToEnd(t *testing.T) {
	var receivedQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(testHTML))
	}))
	defer server.Close()

	c := crawler.NewConfigurableCrawler(crawler.CrawlerConfig{
		SearchURL:  server.URL + "/search?q=%s",
		CacheKey:   "test_rate_limited",
		BlockTime:  300,
		BaseURL:    server.URL,
		Store:      "Torob",
		MaxResults: 2,
		Selectors: crawler.Selectors{
			ProductList: "div.product-item",
			Name:        []string{"h3.title"},
			Price:       []string{".price"},
			Link:        []string{"h3.title a"},
		},
	}, &memoryCache{data: make(map[string][]byte)})

	s := searcher.NewSearcher(
		context.Background(),
		[]crawler.Crawler{c},
		sample.NewStaticSource(),
		nil,
		testLogger{},
	)

	// The query reaches the store URL-encoded and character-folded
	products, err := s.Search("لپ  تاپ")
	assert.NoError(t, err)
	assert.Equal(t, "لپ تاپ", receivedQuery)

	// MaxResults caps the cards processed per store
	assert.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, "Torob", p.Store)
		assert.Contains(t, p.Name, "لپ تاپ")
		assert.Contains(t, p.Link, server.URL)
	}
}

func TestSearchFallsBackWhenStoreFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	c := crawler.NewConfigurableCrawler(crawler.CrawlerConfig{
		SearchURL:  server.URL + "/search?q=%s",
		CacheKey:   "test_rate_limited",
		BlockTime:  300,
		BaseURL:    server.URL,
		Store:      "Torob",
		MaxResults: 20,
		Selectors: crawler.Selectors{
			ProductList: "div.product-item",
			Name:        []string{"h3.title"},
			Price:       []string{".price"},
			Link:        []string{"h3.title a"},
		},
	}, &memoryCache{data: make(map[string][]byte)})

	s := searcher.NewSearcher(
		context.Background(),
		[]crawler.Crawler{c},
		sample.NewStaticSource(),
		nil,
		testLogger{},
	)

	products, err := s.Search("هدفون")
	assert.NoError(t, err)
	assert.NotEmpty(t, products, "sample catalog should answer when the store blocks")
	for _, p := range products {
		assert.NotNil(t, p.Price)
		assert.Equal(t, normalize.Toman, p.Price.Currency)
	}
}
