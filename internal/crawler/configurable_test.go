package crawler

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"

	"bazaryar/productworker/helpers"
	"bazaryar/productworker/internal/normalize"
)

func newTestCrawler(t *testing.T) *ConfigurableCrawler {
	t.Helper()
	return NewConfigurableCrawler(CrawlerConfig{
		SearchURL:  "https://example.com/search?q=%s",
		CacheKey:   "test_rate_limited",
		BlockTime:  300,
		BaseURL:    "https://example.com",
		Store:      "Test",
		MaxResults: 20,
		Selectors: Selectors{
			ProductList: "div.product",
			Name:        []string{"h3.title", ".name"},
			Price:       []string{".price", ".amount"},
			Link:        []string{"h3.title a", "a[href]"},
		},
		IDExtractor: func(link string) (string, error) {
			baseLink := strings.Split(link, "?")[0]
			return helpers.GetSplitPart(baseLink, "/", 4)
		},
	}, NewMockCacheService())
}

func TestConfigurableCrawlerProcessProduct(t *testing.T) {
	crawler := newTestCrawler(t)

	html := `
		<div class="product">
			<h3 class="title"><a href="/p/abc123/laptop">لپ تاپ ایسوس</a></h3>
			<span class="price">۴۵٬۰۰۰٬۰۰۰ تومان</span>
		</div>
	`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	assert.NoError(t, err)

	product := crawler.processProduct(doc.Find("div.product"))
	assert.NotNil(t, product)
	assert.Equal(t, "abc123", product.Id)
	assert.Equal(t, "لپ تاپ ایسوس", product.Name)
	assert.Equal(t, "https://example.com/p/abc123/laptop", product.Link)
	assert.Equal(t, "Test", product.Store)
	assert.Equal(t, "۴۵٬۰۰۰٬۰۰۰ تومان", product.RawPrice)
	assert.NotNil(t, product.Price)
	assert.Equal(t, float64(45000000), product.Price.Amount)
	assert.Equal(t, normalize.Toman, product.Price.Currency)
}

// A card with no digits in its price text keeps a nil price, never zero
func TestConfigurableCrawlerPriceUnavailable(t *testing.T) {
	crawler := newTestCrawler(t)

	html := `
		<div class="product">
			<h3 class="title"><a href="/p/xyz789/phone">گوشی</a></h3>
			<span class="price">تماس بگیرید</span>
		</div>
	`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	assert.NoError(t, err)

	product := crawler.processProduct(doc.Find("div.product"))
	assert.NotNil(t, product)
	assert.Nil(t, product.Price)
	assert.Equal(t, "تماس بگیرید", product.RawPrice)
}

// Fallback selectors are tried in order; later ones catch markup variants
func TestConfigurableCrawlerSelectorFallback(t *testing.T) {
	crawler := newTestCrawler(t)

	html := `
		<div class="product">
			<div class="name">هدفون سونی</div>
			<span class="amount">2,500,000</span>
			<a href="/p/h1/headphone">view</a>
		</div>
	`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	assert.NoError(t, err)

	product := crawler.processProduct(doc.Find("div.product"))
	assert.NotNil(t, product)
	assert.Equal(t, "هدفون سونی", product.Name)
	assert.NotNil(t, product.Price)
	assert.Equal(t, float64(2500000), product.Price.Amount)
	assert.Equal(t, normalize.Unknown, product.Price.Currency)
}

// Cards without a name or link are skipped
func TestConfigurableCrawlerSkipsIncompleteCards(t *testing.T) {
	crawler := newTestCrawler(t)

	noName := `<div class="product"><a href="/p/1/x">x</a></div>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(noName))
	assert.NoError(t, err)
	assert.Nil(t, crawler.processProduct(doc.Find("div.product")))

	noLink := `<div class="product"><div class="name">بدون لینک</div></div>`
	doc, err = goquery.NewDocumentFromReader(strings.NewReader(noLink))
	assert.NoError(t, err)
	assert.Nil(t, crawler.processProduct(doc.Find("div.product")))
}

// A title attribute wins over element text, matching how store listings
// truncate visible names
func TestConfigurableCrawlerTitleAttribute(t *testing.T) {
	crawler := newTestCrawler(t)

	html := `
		<div class="product">
			<h3 class="title" title="گوشی موبایل سامسونگ Galaxy S24"><a href="/p/s24/phone">گوشی موبایل سامـ…</a></h3>
			<span class="price">۵۲٬۰۰۰٬۰۰۰ تومان</span>
		</div>
	`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	assert.NoError(t, err)

	product := crawler.processProduct(doc.Find("div.product"))
	assert.NotNil(t, product)
	assert.Equal(t, "گوشی موبایل سامسونگ Galaxy S24", product.Name)
}

func TestConfigurableCrawlerGetName(t *testing.T) {
	crawler := newTestCrawler(t)
	assert.Equal(t, "TestCrawler", crawler.GetName())
	assert.Equal(t, "Test", crawler.GetStore())
}
