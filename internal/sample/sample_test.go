package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bazaryar/productworker/internal/normalize"
)

func TestStaticSourceFind(t *testing.T) {
	source := NewStaticSource()

	products := source.Find("لپ تاپ ایسوس")
	assert.NotEmpty(t, products)
	for _, p := range products {
		assert.Contains(t, p.Name, "لپ تاپ")
		assert.NotNil(t, p.Price)
		assert.Equal(t, normalize.Toman, p.Price.Currency)
		assert.Greater(t, p.Price.Amount, float64(0))
	}
}

func TestStaticSourceFindEnglishKeyword(t *testing.T) {
	source := NewStaticSource()

	// Keyword matching is case-insensitive on the query side
	products := source.Find("apple iPad")
	assert.NotEmpty(t, products)
	assert.Equal(t, "تبلت اپل iPad 10", products[0].Name)
}

func TestStaticSourceFindNoMatch(t *testing.T) {
	source := NewStaticSource()
	assert.Empty(t, source.Find("یخچال"))
}

// An entry contributes its products once even when several of its
// keywords match
func TestStaticSourceNoDuplicates(t *testing.T) {
	source := NewStaticSource()

	products := source.Find("گوشی موبایل")
	names := make(map[string]int)
	for _, p := range products {
		names[p.Name]++
	}
	for name, count := range names {
		assert.Equal(t, 1, count, "product %q duplicated", name)
	}
}
