package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/parquet-go/parquet-go"

	"github.com/taxiscope/taxi-backend-go/internal/config"
	"github.com/taxiscope/taxi-backend-go/internal/dataset"
	"github.com/taxiscope/taxi-backend-go/internal/handler"
	"github.com/taxiscope/taxi-backend-go/internal/metrics"
	"github.com/taxiscope/taxi-backend-go/internal/models"
	"github.com/taxiscope/taxi-backend-go/internal/service"
)

// envelope mirrors the standard response wrapper
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func rawTrip(pickup time.Time, durMin int, fare, dist float64, pu, payment int64) models.RawTrip {
	return models.RawTrip{
		PickupTime:   pickup,
		DropoffTime:  pickup.Add(time.Duration(durMin) * time.Minute),
		FareAmount:   fare,
		TotalAmount:  fare + 2,
		TripDistance: dist,
		PULocationID: pu,
		PaymentType:  payment,
	}
}

// writeFixtures lays down six raw trips, one dropped by cleaning, plus a
// two-row zone lookup.
func writeFixtures(t *testing.T) (tripPath, zonePath string) {
	t.Helper()
	dir := t.TempDir()

	rows := []models.RawTrip{
		rawTrip(time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC), 12, 10, 1, 161, models.PaymentCreditCard),
		rawTrip(time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC), 12, 20, 2, 161, models.PaymentCash),
		rawTrip(time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC), 15, 30, 3, 132, models.PaymentCreditCard),
		rawTrip(time.Date(2024, 1, 17, 11, 0, 0, 0, time.UTC), 20, 40, 4, 132, models.PaymentCash),
		rawTrip(time.Date(2024, 1, 18, 12, 0, 0, 0, time.UTC), 25, 50, 5, 161, models.PaymentCreditCard),
		rawTrip(time.Date(2024, 1, 18, 13, 0, 0, 0, time.UTC), 10, -5, 1, 161, models.PaymentCash),
	}
	tripPath = filepath.Join(dir, "trips.parquet")
	if err := parquet.WriteFile(tripPath, rows); err != nil {
		t.Fatalf("write trip fixture: %v", err)
	}

	zonePath = filepath.Join(dir, "zones.csv")
	csv := "LocationID,Borough,Zone\n" +
		"132,Queens,JFK Airport\n" +
		"161,Manhattan,Midtown Center\n"
	if err := os.WriteFile(zonePath, []byte(csv), 0o644); err != nil {
		t.Fatalf("write zone fixture: %v", err)
	}
	return tripPath, zonePath
}

func routerFor(t *testing.T, tripPath, zonePath string) *gin.Engine {
	t.Helper()
	collector := metrics.NewCollector()
	store := dataset.NewStore(tripPath, zonePath, 4, collector)
	t.Cleanup(func() { store.Close() })

	svc := service.NewAnalyticsService(store)
	cfg := &config.Config{GinMode: gin.TestMode}
	return SetupRouter(cfg,
		handler.NewDatasetHandler(svc),
		handler.NewTripHandler(svc),
		handler.NewChartsHandler(svc),
		collector)
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	tripPath, zonePath := writeFixtures(t)
	return routerFor(t, tripPath, zonePath)
}

func doGet(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope from %q: %v", w.Body.String(), err)
	}
	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			t.Fatalf("decode data: %v", err)
		}
	}
	return env
}

func TestHealthEndpoint(t *testing.T) {
	r := setupRouter(t)

	w := doGet(t, r, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ok") {
		t.Errorf("body = %q, want it to report ok", w.Body.String())
	}
}

func TestDatasetSummaryEndpoint(t *testing.T) {
	r := setupRouter(t)

	w := doGet(t, r, "/api/v1/dataset/summary")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var summary models.DatasetSummary
	env := decodeData(t, w, &summary)
	if env.Code != 0 {
		t.Errorf("code = %d, want 0", env.Code)
	}
	if summary.RawRows != 6 || summary.CleanRows != 5 || summary.DroppedRows != 1 {
		t.Errorf("rows = %d/%d/%d, want 6/5/1", summary.RawRows, summary.CleanRows, summary.DroppedRows)
	}
	if summary.MinDate != "2024-01-15" || summary.MaxDate != "2024-01-18" {
		t.Errorf("date range = %s ~ %s, want 2024-01-15 ~ 2024-01-18", summary.MinDate, summary.MaxDate)
	}
}

func TestFilterDomainEndpoint(t *testing.T) {
	r := setupRouter(t)

	w := doGet(t, r, "/api/v1/dataset/filters")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var domain models.FilterDomain
	decodeData(t, w, &domain)
	if len(domain.Payments) != 2 || domain.Payments[0] != "Cash" {
		t.Errorf("Payments = %v, want [Cash Credit Card]", domain.Payments)
	}
}

func TestTripsEndpointPagination(t *testing.T) {
	r := setupRouter(t)

	w := doGet(t, r, "/api/v1/trips?page=3&pageSize=2")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var page models.TripsResponse
	decodeData(t, w, &page)
	if page.Total != 5 || page.TotalPages != 3 {
		t.Errorf("total = %d pages = %d, want 5 and 3", page.Total, page.TotalPages)
	}
	if len(page.Data) != 1 {
		t.Fatalf("page 3 len = %d, want 1", len(page.Data))
	}
	if page.Data[0].Row != 4 {
		t.Errorf("row = %d, want 4", page.Data[0].Row)
	}
}

func TestTripMetricsEndpoint(t *testing.T) {
	r := setupRouter(t)

	w := doGet(t, r, "/api/v1/trips/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var m models.SummaryMetrics
	decodeData(t, w, &m)
	if m.TotalTrips != 5 {
		t.Errorf("TotalTrips = %d, want 5", m.TotalTrips)
	}
	if m.AvgFare != 30 {
		t.Errorf("AvgFare = %v, want 30", m.AvgFare)
	}
	if m.TotalRevenue != 160 {
		t.Errorf("TotalRevenue = %v, want 160", m.TotalRevenue)
	}
}

func TestTripMetricsFilteredByPayment(t *testing.T) {
	r := setupRouter(t)

	w := doGet(t, r, "/api/v1/trips/metrics?payments=Cash")
	var m models.SummaryMetrics
	decodeData(t, w, &m)
	if m.TotalTrips != 2 {
		t.Errorf("TotalTrips = %d, want the 2 cash trips", m.TotalTrips)
	}
}

func TestTripMetricsEmptyPaymentSelection(t *testing.T) {
	r := setupRouter(t)

	// payments present but empty selects nothing
	w := doGet(t, r, "/api/v1/trips/metrics?payments=")
	var m models.SummaryMetrics
	decodeData(t, w, &m)
	if m.TotalTrips != 0 {
		t.Errorf("TotalTrips = %d, want 0 for an empty payment selection", m.TotalTrips)
	}

	// absent payments defaults to every payment type
	w = doGet(t, r, "/api/v1/trips/metrics")
	decodeData(t, w, &m)
	if m.TotalTrips != 5 {
		t.Errorf("TotalTrips = %d, want 5 when payments is absent", m.TotalTrips)
	}
}

func TestMalformedDateRejected(t *testing.T) {
	r := setupRouter(t)

	w := doGet(t, r, "/api/v1/trips?startDate=bogus")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	env := decodeData(t, w, nil)
	if !strings.Contains(env.Message, "Invalid query parameters") {
		t.Errorf("message = %q, want it to name the invalid parameters", env.Message)
	}
}

func TestMalformedHourRejected(t *testing.T) {
	r := setupRouter(t)

	w := doGet(t, r, "/api/v1/charts/fare-by-hour?startHour=99")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestTopZonesEndpoint(t *testing.T) {
	r := setupRouter(t)

	w := doGet(t, r, "/api/v1/charts/top-zones?limit=1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Data  []models.ZoneCount `json:"data"`
		Count int                `json:"count"`
	}
	decodeData(t, w, &body)
	if body.Count != 1 || len(body.Data) != 1 {
		t.Fatalf("count = %d len = %d, want 1", body.Count, len(body.Data))
	}
	if body.Data[0].LocationID != 161 || body.Data[0].Trips != 3 {
		t.Errorf("top zone = %+v, want 161 with 3 trips", body.Data[0])
	}
}

func TestTopZonesBadLimit(t *testing.T) {
	r := setupRouter(t)

	if w := doGet(t, r, "/api/v1/charts/top-zones?limit=0"); w.Code != http.StatusBadRequest {
		t.Errorf("limit=0 status = %d, want 400", w.Code)
	}
	if w := doGet(t, r, "/api/v1/charts/top-zones?limit=abc"); w.Code != http.StatusBadRequest {
		t.Errorf("limit=abc status = %d, want 400", w.Code)
	}
}

func TestDistanceDistributionEndpoint(t *testing.T) {
	r := setupRouter(t)

	w := doGet(t, r, "/api/v1/charts/distance-distribution?bins=4")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Data  []models.DistanceBin `json:"data"`
		Count int                  `json:"count"`
	}
	decodeData(t, w, &body)
	if body.Count != 4 {
		t.Errorf("count = %d, want 4 bins", body.Count)
	}

	total := 0
	for _, bin := range body.Data {
		total += bin.Count
	}
	if total != 5 {
		t.Errorf("binned trips = %d, want 5", total)
	}
}

func TestDistanceDistributionBinsCapped(t *testing.T) {
	r := setupRouter(t)

	if w := doGet(t, r, "/api/v1/charts/distance-distribution?bins=500"); w.Code != http.StatusBadRequest {
		t.Errorf("bins=500 status = %d, want 400", w.Code)
	}
}

func TestPaymentBreakdownEndpoint(t *testing.T) {
	r := setupRouter(t)

	w := doGet(t, r, "/api/v1/charts/payment-breakdown")
	var body struct {
		Data  []models.PaymentCount `json:"data"`
		Count int                   `json:"count"`
	}
	decodeData(t, w, &body)
	if body.Count != 2 {
		t.Fatalf("count = %d, want 2 payment types", body.Count)
	}
	if body.Data[0].Payment != "Credit Card" || body.Data[0].Trips != 3 {
		t.Errorf("top payment = %+v, want Credit Card with 3 trips", body.Data[0])
	}
}

func TestDayHourMatrixEndpoint(t *testing.T) {
	r := setupRouter(t)

	w := doGet(t, r, "/api/v1/charts/day-hour-matrix")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var matrix models.DayHourMatrix
	decodeData(t, w, &matrix)
	if matrix.Days[0] != "Monday" {
		t.Errorf("Days[0] = %q, want Monday", matrix.Days[0])
	}
	// 2024-01-15 08:00 is a Monday morning
	if matrix.Counts[8][0] != 1 {
		t.Errorf("Counts[8][0] = %d, want 1", matrix.Counts[8][0])
	}
}

func TestMissingDatasetReturns503(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone.parquet")
	_, zonePath := writeFixtures(t)
	r := routerFor(t, missing, zonePath)

	w := doGet(t, r, "/api/v1/dataset/summary")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}

	env := decodeData(t, w, nil)
	if !strings.Contains(env.Message, missing) {
		t.Errorf("message = %q, want it to name the missing file %q", env.Message, missing)
	}
}

func TestUnknownRouteReturns404(t *testing.T) {
	r := setupRouter(t)

	w := doGet(t, r, "/api/v1/nope")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	env := decodeData(t, w, nil)
	if env.Code != 404 {
		t.Errorf("code = %d, want 404", env.Code)
	}
	if !strings.Contains(env.Message, "Route not found") {
		t.Errorf("message = %q, want it to report the unknown route", env.Message)
	}
}

func TestPrometheusEndpoint(t *testing.T) {
	r := setupRouter(t)

	// Trigger one snapshot build first
	doGet(t, r, "/api/v1/dataset/summary")

	w := doGet(t, r, "/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "taxi_snapshot_builds_total") {
		t.Error("exposition should include the snapshot build counter")
	}
}

func TestCORSPreflight(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/trips", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}
