package catalogfile

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bannerstore/internal/domain/catalog"
)

const sample = `
products:
  - id: vinyl-banner
    name: Vinyl Banner
    base_price: 39.99
    sizes:
      - {id: 3x6, label: "3' x 6'", price: 49.99}
      - {id: custom, label: Custom}
    materials:
      - {id: vinyl13, label: 13oz Vinyl, price: 0}
    lead_times:
      - {id: rush, label: Next Day, price: 25, days: 1}
    tier_pricing:
      - {min_qty: 10, max_qty: ~, discount_percent: 15}
  - id: retired-flag
    name: Retired Flag
    is_active: false
`

func TestDecode(t *testing.T) {
	products, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, products, 2)

	banner := products[0]
	assert.Equal(t, "vinyl-banner", banner.ID)
	assert.True(t, banner.Active)
	assert.Equal(t, catalog.P(39.99), banner.BasePrice)
	assert.False(t, banner.Sizes[1].Price.IsSet())
	assert.Equal(t, 1, banner.LeadTimes[0].Days)
	require.Len(t, banner.TierPricing, 1)
	assert.Nil(t, banner.TierPricing[0].MaxQty)
	assert.Equal(t, float64(15), banner.TierPricing[0].DiscountPercent)

	assert.False(t, products[1].Active)

	got, ok := catalog.CalculatePrice(banner, catalog.Selection{SizeID: "3x6", MaterialID: "vinyl13", Quantity: 12})
	require.True(t, ok)
	assert.InDelta(t, 509.898, got.Total, 1e-9)
}

func TestDecode_Empty(t *testing.T) {
	products, err := Decode(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, products)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode(strings.NewReader("products: [ {id: x"))
	assert.Error(t, err)
}

func TestEncodeDecode(t *testing.T) {
	maxQty := 9
	in := []catalog.Product{{
		ID:          "mesh",
		Name:        "Mesh Banner",
		BasePrice:   catalog.P(20),
		Sizes:       []catalog.Option{{ID: "2x4", Label: "2x4", Price: catalog.P(10)}},
		TierPricing: []catalog.Tier{{MinQty: 1, MaxQty: &maxQty, DiscountPercent: 0}},
		Active:      true,
	}}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, in))

	out, err := Decode(&buf)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, in[0].Sizes, out[0].Sizes)
	assert.Equal(t, in[0].TierPricing, out[0].TierPricing)
}

func TestSource_FetchProducts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	products, err := NewSource(path).FetchProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 2)

	_, err = NewSource(filepath.Join(t.TempDir(), "missing.yaml")).FetchProducts(context.Background())
	assert.Error(t, err)
}

func TestWriteFile_ReadBackBySource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	in := []catalog.Product{
		{
			ID:        "vinyl-banner",
			Name:      "Vinyl Banner",
			BasePrice: catalog.P(39.99),
			Sizes:     []catalog.Option{{ID: "custom", Label: "Custom"}},
			Active:    true,
		},
		{ID: "retired", Name: "Retired", Active: false},
	}

	require.NoError(t, WriteFile(path, in))

	out, err := NewSource(path).FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.False(t, out[0].Sizes[0].Price.IsSet())
	assert.Equal(t, 39.99, out[0].BasePrice.Value())
	assert.True(t, out[0].Active)
	assert.False(t, out[1].Active)
}

func TestWriteFile_BadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "snapshot.yaml"), nil)
	assert.Error(t, err)
}
