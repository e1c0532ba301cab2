package catalog

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Price is an option price as stored in the catalog. Rows come from a
// loosely typed store, so a price may be absent, null or not a number;
// all of those decode to an unset Price that contributes nothing.
type Price struct {
	value float64
	set   bool
}

// P builds a set Price. Negative values are reported by Product.Validate.
func P(value float64) Price {
	return Price{value: value, set: true}
}

func (p Price) Value() float64 {
	return p.value
}

func (p Price) IsSet() bool {
	return p.set
}

func (p Price) MarshalJSON() ([]byte, error) {
	if !p.set {
		return []byte("null"), nil
	}
	return json.Marshal(p.value)
}

func (p *Price) UnmarshalJSON(data []byte) error {
	*p = Price{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*p = Price{value: num, set: true}
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		p.parse(str)
	}
	return nil
}

func (p Price) MarshalYAML() (interface{}, error) {
	if !p.set {
		return nil, nil
	}
	return p.value, nil
}

func (p *Price) UnmarshalYAML(node *yaml.Node) error {
	*p = Price{}
	if node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		return nil
	}
	p.parse(node.Value)
	return nil
}

func (p *Price) parse(raw string) {
	num, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
		return
	}
	*p = Price{value: num, set: true}
}
