package catalog

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/kbeaute/backend/internal/domain"
)

// maxLineSize bounds a single catalog line; full INCI lists can be long
const maxLineSize = 4 * 1024 * 1024

// Load reads the JSON Lines catalog file at path
func Load(path string) (*domain.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses one product per line. Blank lines are skipped; any other line
// that is not a JSON object with a product_name is an error naming the line.
func Decode(r io.Reader) (*domain.Catalog, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	var products []domain.Product
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var record productRecord
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", domain.ErrCatalogMalformed, lineNo, err)
		}

		product := MapToProduct(&record)
		if product.ProductName == "" {
			return nil, fmt.Errorf("%w: line %d: missing product_name", domain.ErrCatalogMalformed, lineNo)
		}

		products = append(products, product)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: after line %d: %v", domain.ErrCatalogUnavailable, lineNo, err)
	}

	return domain.NewCatalog(products), nil
}
