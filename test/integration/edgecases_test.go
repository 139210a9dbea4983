package integration

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestIntegration_UpdateEdgeCases(t *testing.T) {
	waitReady(t)
	reset(t)
	defer reset(t)

	cases := []struct {
		name, body string
		want       int
		success    bool
	}{
		{"mistyped_vendor_count", `{"vendorCount":"nine"}`, http.StatusOK, true},
		{"mixed_vendor_array", `{"vendors":["A",1]}`, http.StatusOK, true},
		{"unknown_field", `{"foo":"bar"}`, http.StatusOK, true},
		{"malformed_json", `{"vendorCount":`, http.StatusBadRequest, false},
		{"array_body", `[7]`, http.StatusBadRequest, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := post(t, "/group-order/status", tc.body)
			defer resp.Body.Close()
			if resp.StatusCode != tc.want {
				t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, resp.StatusCode)
			}
			if !tc.success {
				return
			}
			var up update
			if err := json.NewDecoder(resp.Body).Decode(&up); err != nil {
				t.Fatal(err)
			}
			if !up.Success || up.VendorCount != 7 || len(up.Vendors) != 7 {
				t.Fatalf("%s: state changed: %+v", tc.name, up)
			}
		})
	}
}
