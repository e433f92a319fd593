// Package sample provides the fallback product catalog used when the live
// stores block the crawl or return nothing. The catalog is a read-only
// data source injected into the searcher, keyed by keywords matched
// against substrings of the canonical query.
package sample

import (
	"strings"

	"bazaryar/productworker/internal/crawler"
	"bazaryar/productworker/internal/normalize"
)

// Source provides read-only fallback products for a canonical query
type Source interface {
	// Find returns the sample products whose keywords appear in the
	// canonical query text
	Find(canonicalQuery string) []crawler.Product
}

// Entry groups sample products under the keywords that surface them
type Entry struct {
	Keywords []string
	Products []crawler.Product
}

// StaticSource is an in-memory Source seeded at construction
type StaticSource struct {
	entries []Entry
}

// NewStaticSource builds the demo catalog. Raw price strings go through
// the same normalization pipeline as scraped ones.
func NewStaticSource() *StaticSource {
	return &StaticSource{entries: buildEntries()}
}

// Find matches entry keywords against the canonical query. Keywords are
// stored in canonical form, so matching is a plain substring test.
func (s *StaticSource) Find(canonicalQuery string) []crawler.Product {
	query := strings.ToLower(canonicalQuery)

	var products []crawler.Product
	for _, entry := range s.entries {
		for _, keyword := range entry.Keywords {
			if strings.Contains(query, keyword) {
				products = append(products, entry.Products...)
				break
			}
		}
	}
	return products
}

func buildEntries() []Entry {
	return []Entry{
		{
			Keywords: []string{"لپ تاپ", "laptop", "لپتاپ"},
			Products: []crawler.Product{
				sampleProduct("لپ تاپ ایسوس VivoBook 15", "۴۵٬۰۰۰٬۰۰۰ تومان", "Torob", "https://torob.com/p/sample-laptop-1/"),
				sampleProduct("لپ تاپ لنوو IdeaPad 3", "۳۸٬۵۰۰٬۰۰۰ تومان", "Emalls", "https://emalls.ir/show/sample-laptop-2/"),
				sampleProduct("لپ تاپ اپل MacBook Air M2", "۸۹٬۰۰۰٬۰۰۰ تومان", "Digikala", "https://www.digikala.com/product/dkp-sample-laptop-3/"),
			},
		},
		{
			Keywords: []string{"گوشی", "موبایل", "phone"},
			Products: []crawler.Product{
				sampleProduct("گوشی موبایل سامسونگ Galaxy A55", "۲۲٬۰۰۰٬۰۰۰ تومان", "Torob", "https://torob.com/p/sample-phone-1/"),
				sampleProduct("گوشی موبایل شیائومی Redmi Note 13", "۱۴٬۸۰۰٬۰۰۰ تومان", "Emalls", "https://emalls.ir/show/sample-phone-2/"),
				sampleProduct("گوشی موبایل اپل iPhone 14", "۶۵٬۰۰۰٬۰۰۰ تومان", "Digikala", "https://www.digikala.com/product/dkp-sample-phone-3/"),
			},
		},
		{
			Keywords: []string{"هدفون", "headphone", "هندزفری"},
			Products: []crawler.Product{
				sampleProduct("هدفون سونی WH-1000XM5", "۱۸٬۵۰۰٬۰۰۰ تومان", "Torob", "https://torob.com/p/sample-headphone-1/"),
				sampleProduct("هدفون بی سیم انکر Soundcore Q30", "۳٬۲۰۰٬۰۰۰ تومان", "Emalls", "https://emalls.ir/show/sample-headphone-2/"),
			},
		},
		{
			Keywords: []string{"تبلت", "tablet", "آیپد", "ipad"},
			Products: []crawler.Product{
				sampleProduct("تبلت اپل iPad 10", "۲۸٬۰۰۰٬۰۰۰ تومان", "Torob", "https://torob.com/p/sample-tablet-1/"),
				sampleProduct("تبلت سامسونگ Galaxy Tab A9", "۹٬۵۰۰٬۰۰۰ تومان", "Digikala", "https://www.digikala.com/product/dkp-sample-tablet-2/"),
			},
		},
	}
}

func sampleProduct(name, rawPrice, store, link string) crawler.Product {
	product := crawler.Product{
		Name:     name,
		RawPrice: rawPrice,
		Store:    store,
		Link:     link,
	}
	if price, err := normalize.NormalizePrice(rawPrice); err == nil {
		product.Price = &price
	}
	return product
}
