package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/fairyhunter13/vendor-supply-hub/internal/alerts"
	"github.com/fairyhunter13/vendor-supply-hub/internal/config"
	"github.com/fairyhunter13/vendor-supply-hub/internal/grouporder"
	httpapi "github.com/fairyhunter13/vendor-supply-hub/internal/http"
	"github.com/fairyhunter13/vendor-supply-hub/internal/model"
	"github.com/fairyhunter13/vendor-supply-hub/internal/obs"
	"github.com/fairyhunter13/vendor-supply-hub/internal/store"
)

func TestIntegration_PollingMeter(t *testing.T) {
	obs.InitLogger("error")
	svc := grouporder.NewService(store.New(store.DefaultSeed()))
	app := httpapi.NewApp(config.Config{}, svc, alerts.NewStaticFeed(), nil)
	srv := httptest.NewServer(httpapi.NewRouter(app))
	defer srv.Close()

	getStatus := func() model.GroupOrderStatus {
		t.Helper()
		resp, err := http.Get(srv.URL + "/group-order/status")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		var st model.GroupOrderStatus
		if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return st
	}

	// vendors join one at a time while the client polls
	wantDrop := map[int]int{3: 0, 4: 0, 5: 10, 9: 10, 10: 20, 11: 20}
	for n := 3; n <= 11; n++ {
		body := bytes.NewBufferString(`{"vendorCount":` + strconv.Itoa(n) + `}`)
		resp, err := http.Post(srv.URL+"/group-order/status", "application/json", body)
		if err != nil {
			t.Fatal(err)
		}
		_ = resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		st := getStatus()
		if st.VendorCount != n {
			t.Fatalf("expected vendorCount %d, got %d", n, st.VendorCount)
		}
		if d, ok := wantDrop[n]; ok && st.PriceDrop != d {
			t.Fatalf("n=%d: expected priceDrop %d, got %d", n, d, st.PriceDrop)
		}
		if (st.NextMilestone == nil) != (n >= 10) {
			t.Fatalf("n=%d: unexpected milestone %+v", n, st.NextMilestone)
		}
	}
	if svc.Revision() != 9 {
		t.Fatalf("expected 9 revisions, got %d", svc.Revision())
	}
}
