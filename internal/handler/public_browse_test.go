package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

// The layout and fleet endpoints need no database; a handler with nil repos
// would panic in the constructor, so tests build the struct directly.
func publicForPure() *PublicHandler { return &PublicHandler{} }

func TestPublicLayout(t *testing.T) {
	t.Parallel()

	cases := []struct {
		vehicleType string
		wantSeats   float64
	}{
		{"bus-48", 49},
		{"bus-50", 49},
		{"minibus-28", 28},
		{"van-14", 14},
		{"hovercraft", 14}, // unknown types render the van shape
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.vehicleType, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("type")
			c.SetParamValues(tc.vehicleType)

			if err := publicForPure().Layout(c); err != nil {
				t.Fatalf("Layout: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			var body map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := body["seat_count"].(float64); got != tc.wantSeats {
				t.Fatalf("seat_count = %v, want %v", got, tc.wantSeats)
			}
		})
	}
}

func TestPublicFleet(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		query     string
		wantSeats float64
		wantUnits int
		wantFlat  int
	}{
		{"zero", "seats=0", 0, 0, 1},       // empty fleet still renders one default coach
		{"negative", "seats=-5", 0, 0, 1},  // negative totals read as zero
		{"garbage", "seats=lots", 0, 0, 1}, // malformed totals read as zero
		{"exact coach", "seats=48", 48, 1, 1},
		{"coach plus van", "seats=50", 50, 2, 2},
		{"two coaches", "seats=96", 96, 1, 2}, // one packed entry, two flattened units
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/?"+tc.query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := publicForPure().Fleet(c); err != nil {
				t.Fatalf("Fleet: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			var body struct {
				Seats float64          `json:"seats"`
				Units []map[string]any `json:"units"`
				Flat  []map[string]any `json:"flat"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if body.Seats != tc.wantSeats {
				t.Fatalf("seats = %v, want %v", body.Seats, tc.wantSeats)
			}
			if len(body.Units) != tc.wantUnits {
				t.Fatalf("units = %d, want %d", len(body.Units), tc.wantUnits)
			}
			if len(body.Flat) != tc.wantFlat {
				t.Fatalf("flat = %d, want %d", len(body.Flat), tc.wantFlat)
			}
		})
	}
}

func TestUnitParamDefaults(t *testing.T) {
	t.Parallel()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if n, ok := unitParam(c); !ok || n != 0 {
		t.Fatalf("unitParam() = (%d, %v), want (0, true)", n, ok)
	}

	req = httptest.NewRequest(http.MethodGet, "/?unit=2", nil)
	c = e.NewContext(req, httptest.NewRecorder())
	if n, ok := unitParam(c); !ok || n != 2 {
		t.Fatalf("unitParam(?unit=2) = (%d, %v), want (2, true)", n, ok)
	}

	req = httptest.NewRequest(http.MethodGet, "/?unit=-1", nil)
	c = e.NewContext(req, httptest.NewRecorder())
	if _, ok := unitParam(c); ok {
		t.Fatal("unitParam(?unit=-1) accepted a negative index")
	}
}
