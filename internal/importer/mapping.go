package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/inovaantary/inventory-api/internal/items"
)

// headerFields maps normalized column labels to item fields. Several aliases
// are accepted so that minor label variations between documents still import.
var headerFields = map[string]string{
	"unique id (sku)":   "UNIQID",
	"uniqid":            "UNIQID",
	"product name":      "productName",
	"description":       "description",
	"category":          "category",
	"quantity in stock": "quantity",
	"quantity":          "quantity",
	"price (usd)":       "price",
	"price":             "price",
	"vendor contact":    "phoneNumber",
	"phone number":      "phoneNumber",
}

func normalizeLabel(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// mapHeader resolves each header cell to a field name. Unknown labels map to
// the empty string and their columns are ignored. The second return value is
// the count of recognized labels.
func mapHeader(cells []string) ([]string, int) {
	fields := make([]string, len(cells))
	known := 0
	for i, c := range cells {
		if f, ok := headerFields[normalizeLabel(c)]; ok {
			fields[i] = f
			known++
		}
	}
	return fields, known
}

// rowCandidate builds a creation candidate from the mapped cells of a data
// row. Empty cells leave their field unset. Numeric cells that fail to parse
// are reported as problems rather than aborting the row silently.
func rowCandidate(fields []string, cells []string) (items.CreateItemInput, []string) {
	var input items.CreateItemInput
	var problems []string

	for i, cell := range cells {
		if i >= len(fields) || fields[i] == "" {
			continue
		}
		value := strings.TrimSpace(cell)
		if value == "" {
			continue
		}

		switch fields[i] {
		case "UNIQID":
			v := value
			input.UniqueID = &v
		case "productName":
			input.ProductName = value
		case "description":
			v := value
			input.Description = &v
		case "category":
			input.Category = value
		case "phoneNumber":
			v := value
			input.PhoneNumber = &v
		case "quantity":
			qty, err := strconv.Atoi(value)
			if err != nil {
				problems = append(problems, fmt.Sprintf("quantity %q is not a whole number", value))
				continue
			}
			input.Quantity = qty
		case "price":
			price, err := strconv.ParseFloat(cleanPrice(value), 64)
			if err != nil {
				problems = append(problems, fmt.Sprintf("price %q is not a number", value))
				continue
			}
			input.Price = price
		}
	}
	return input, problems
}

// cleanPrice strips currency decoration so values like "$1,299.99" parse.
func cleanPrice(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	return strings.ReplaceAll(s, ",", "")
}
