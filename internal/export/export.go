// Package export renders search results as a console table and as a CSV
// file. The CSV starts with a UTF-8 byte order mark so Excel opens the
// Persian columns correctly.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"text/tabwriter"

	"bazaryar/productworker/helpers"
	"bazaryar/productworker/internal/crawler"
	"bazaryar/productworker/internal/normalize"
)

var csvHeader = []string{"Product Name", "Price (Toman)", "Store", "Product URL"}

// FormatPrice renders a normalized price for display. Unknown prices show
// as "N/A", never as zero. Toman and Rial prices are shown in Tomans;
// other currencies keep their own label.
func FormatPrice(price *normalize.NormalizedPrice) string {
	if price == nil {
		return "N/A"
	}

	if toman, ok := price.InToman(); ok {
		return helpers.FormatGrouped(toman)
	}

	formatted := helpers.FormatGrouped(price.Amount)
	if price.Currency == normalize.Unknown {
		return formatted
	}
	return fmt.Sprintf("%s %s", formatted, price.Currency)
}

// WriteCSV writes the products to w as UTF-8 CSV with a leading BOM
func WriteCSV(w io.Writer, products []crawler.Product) error {
	if _, err := w.Write([]byte("\uFEFF")); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, product := range products {
		record := []string{
			product.Name,
			FormatPrice(product.Price),
			product.Store,
			product.Link,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// RenderTable writes an aligned text table of the products to w
func RenderTable(w io.Writer, products []crawler.Product) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "PRODUCT\tPRICE (TOMAN)\tSTORE\tURL")
	for _, product := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			product.Name,
			FormatPrice(product.Price),
			product.Store,
			product.Link,
		)
	}

	return tw.Flush()
}
