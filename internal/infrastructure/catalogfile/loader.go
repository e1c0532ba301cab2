// Package catalogfile reads product definitions from a YAML seed file.
//
//	products:
//	  - id: vinyl-banner
//	    name: Vinyl Banner
//	    base_price: 39.99
//	    sizes:
//	      - {id: 3x6, label: "3' x 6'", price: 49.99}
//	    tier_pricing:
//	      - {min_qty: 10, max_qty: ~, discount_percent: 15}
package catalogfile

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"bannerstore/internal/domain/catalog"
)

type document struct {
	Products []catalog.Product `yaml:"products"`
}

// Source loads products from a file path.
type Source struct {
	path string
}

func NewSource(path string) *Source {
	return &Source{path: path}
}

func (s *Source) FetchProducts(_ context.Context) ([]catalog.Product, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a catalog document. Products default to active unless
// is_active is set explicitly.
func Decode(r io.Reader) ([]catalog.Product, error) {
	var raw struct {
		Products []yaml.Node `yaml:"products"`
	}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode catalog yaml: %w", err)
	}

	out := make([]catalog.Product, 0, len(raw.Products))
	for i := range raw.Products {
		p := catalog.Product{Active: true}
		if err := raw.Products[i].Decode(&p); err != nil {
			return nil, fmt.Errorf("decode product #%d: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// WriteFile snapshots products to path in the format Source reads back.
func WriteFile(path string, products []catalog.Product) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create catalog file: %w", err)
	}
	if err := Encode(f, products); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Encode writes products in the format Decode reads.
func Encode(w io.Writer, products []catalog.Product) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Products: products}); err != nil {
		return fmt.Errorf("encode catalog yaml: %w", err)
	}
	return enc.Close()
}
