package grouporder

import (
	"errors"
	"math"

	"github.com/tidwall/gjson"

	"github.com/fairyhunter13/vendor-supply-hub/internal/model"
)

// ErrMalformedBody is returned when an update body is not a JSON object.
var ErrMalformedBody = errors.New("body must be a JSON object")

// maxExactInt is the largest integer a JSON number carries without loss.
const maxExactInt = 1 << 53

// ParsePatch decodes an update body. Each recognised field is kept only when its
// JSON type matches; unknown or mistyped fields are dropped without error.
// Repeated keys resolve to the last occurrence.
func ParsePatch(body []byte) (model.GroupOrderPatch, error) {
	var p model.GroupOrderPatch
	if !gjson.ValidBytes(body) {
		return p, ErrMalformedBody
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return p, ErrMalformedBody
	}
	root.ForEach(func(key, value gjson.Result) bool {
		switch key.Str {
		case "vendorCount":
			if n, ok := integral(value); ok {
				p.VendorCount = &n
			}
		case "orderTotal":
			if value.Type == gjson.Number && !math.IsInf(value.Num, 0) && !math.IsNaN(value.Num) {
				f := value.Num
				p.OrderTotal = &f
			}
		case "timeRemaining":
			if value.Type == gjson.String {
				s := value.Str
				p.TimeRemaining = &s
			}
		case "vendors":
			if v, ok := stringArray(value); ok {
				p.Vendors = &v
			}
		}
		return true
	})
	return p, nil
}

func integral(v gjson.Result) (int, bool) {
	if v.Type != gjson.Number {
		return 0, false
	}
	f := v.Num
	if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) || math.Abs(f) > maxExactInt {
		return 0, false
	}
	return int(f), true
}

func stringArray(v gjson.Result) ([]string, bool) {
	if !v.IsArray() {
		return nil, false
	}
	items := v.Array()
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it.Type != gjson.String {
			return nil, false
		}
		out = append(out, it.Str)
	}
	return out, true
}
