// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

package charts

import (
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/salesboard/internal/aggregate"
	"github.com/tomtom215/salesboard/internal/metrics"
	"github.com/tomtom215/salesboard/internal/models"
)

func TestKinds(t *testing.T) {
	t.Parallel()

	want := map[Kind]Family{
		KindMonthlyTrends:       FamilyLine,
		KindTopProducts:         FamilyBar,
		KindRegionDistribution:  FamilyDoughnut,
		KindPriceCorrelation:    FamilyScatter,
		KindStateAnalysis:       FamilyHorizontalBar,
		KindSalesMethod:         FamilyPie,
		KindRetailerPerformance: FamilyRadar,
	}
	kinds := AllKinds()
	if len(kinds) != len(want) {
		t.Fatalf("AllKinds() has %d kinds", len(kinds))
	}
	for _, k := range kinds {
		if k.Family() != want[k] {
			t.Errorf("%s.Family() = %s, want %s", k, k.Family(), want[k])
		}
		parsed, err := ParseKind(strings.ToUpper(string(k)))
		if err != nil || parsed != k {
			t.Errorf("ParseKind(%s) = %v, %v", k, parsed, err)
		}
	}
	if _, err := ParseKind("heatmap"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestConfigClone_IsDeep(t *testing.T) {
	t.Parallel()

	orig := BuildTopProducts(aggregate.TopProducts([]models.SalesRecord{{Product: "A", TotalSales: 5}}))
	orig.Options.Zoom = &ZoomOptions{Mode: "xy"}

	c, err := orig.Clone()
	if err != nil {
		t.Fatal(err)
	}
	c.Labels[0] = "changed"
	c.Datasets[0].Data[0] = 99
	c.Options.Zoom.Mode = "x"

	if orig.Labels[0] != "A" || orig.Datasets[0].Data[0] != 5 || orig.Options.Zoom.Mode != "xy" {
		t.Errorf("Clone shares state with original: %+v", orig)
	}
}

func TestBuilders_VisualMapping(t *testing.T) {
	t.Parallel()

	records := []models.SalesRecord{
		{InvoiceDate: models.NewDate(2020, 1, 5), Product: "A", Region: "West", State: "Ohio", Retailer: "R1", SalesMethod: "Online", TotalSales: 10, UnitsSold: 1, PricePerUnit: 10},
		{InvoiceDate: models.NewDate(2021, 2, 5), Product: "B", Region: "East", State: "Iowa", Retailer: "R2", SalesMethod: "Outlet", TotalSales: 20, UnitsSold: 2, PricePerUnit: 10},
	}
	b := aggregate.AggregateAll(records)

	line := BuildMonthlyTrends(b.MonthlyTrends)
	if len(line.Labels) != 12 || len(line.Datasets) != 2 {
		t.Fatalf("line chart = %+v", line)
	}
	if line.Datasets[0].Label != "Year 2020" || line.Datasets[0].BorderColor[0] != "#3B82F6" || line.Datasets[0].Tension != 0.4 {
		t.Errorf("first line dataset = %+v", line.Datasets[0])
	}
	if line.Datasets[1].BackgroundColor[0] != "#10B98120" {
		t.Errorf("second line background = %v", line.Datasets[1].BackgroundColor)
	}

	bar := BuildTopProducts(b.TopProducts)
	if bar.Datasets[0].Label != "Total Sales" || bar.Datasets[0].BackgroundColor[0] != "rgba(59, 130, 246, 0.8)" {
		t.Errorf("bar dataset = %+v", bar.Datasets[0])
	}
	if bar.Labels[0] != "B" {
		t.Errorf("bar labels = %v", bar.Labels)
	}

	states := BuildStateAnalysis(b.States)
	if states.Options.IndexAxis != "y" || states.Datasets[0].BackgroundColor[0] != "rgba(16, 185, 129, 0.8)" {
		t.Errorf("horizontal bar = %+v", states)
	}

	pie := BuildSalesMethod(b.SalesMethods)
	if len(pie.Datasets[0].BackgroundColor) != 5 {
		t.Errorf("pie palette = %v", pie.Datasets[0].BackgroundColor)
	}

	scatter := BuildPriceCorrelation(b.PriceCorrelation)
	if scatter.Options.XAxisTitle != "Price per Unit ($)" || len(scatter.Datasets[0].Points) != 2 {
		t.Errorf("scatter = %+v", scatter)
	}

	radar := BuildRetailerPerformance(b.Retailers)
	if radar.Datasets[0].Label != "Sales Performance" || radar.Datasets[0].BorderColor[0] != "rgba(245, 158, 11, 1)" {
		t.Errorf("radar = %+v", radar.Datasets[0])
	}
}

func TestBuild_PlaceholdersForEmptyBundle(t *testing.T) {
	t.Parallel()

	b := aggregate.AggregateAll(nil)
	for _, k := range AllKinds() {
		cfg, err := Build(k, &b)
		if err != nil {
			t.Fatalf("Build(%s): %v", k, err)
		}
		if !cfg.Placeholder || cfg.Title != PlaceholderTitle {
			t.Errorf("%s: expected placeholder, got %+v", k, cfg)
		}
		if cfg.Family != k.Family() {
			t.Errorf("%s: family = %s", k, cfg.Family)
		}
		if cfg.Datasets[0].BackgroundColor[0] == "" {
			t.Errorf("%s: missing placeholder colour", k)
		}
	}
	if _, err := Build(Kind("nope"), &b); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestRegistry_RenderTwiceLeavesOneHandle(t *testing.T) {
	r := NewMemoryRenderer()
	reg := NewRegistry(r)
	cfg := BuildTopProducts(aggregate.TopProducts(nil))

	first, err := reg.Render(KindTopProducts, cfg)
	if err != nil {
		t.Fatal(err)
	}
	second, err := reg.Render(KindTopProducts, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if reg.Len() != 1 || r.Live() != 1 {
		t.Errorf("Len = %d Live = %d, want 1/1", reg.Len(), r.Live())
	}
	if first == second {
		t.Error("second render returned the old handle")
	}
	if err := first.Release(); !errors.Is(err, ErrReleased) {
		t.Errorf("first handle should already be released, got %v", err)
	}
	if got, _ := reg.Get(KindTopProducts); got != second {
		t.Error("registry not bound to the newest handle")
	}
	if v := testutil.ToFloat64(metrics.ChartsLive.WithLabelValues(string(KindTopProducts))); v != 1 {
		t.Errorf("charts_live = %v, want 1", v)
	}
}

type failingRenderer struct{ err error }

func (f failingRenderer) Create(string, Config) (Handle, error) { return nil, f.err }

func TestRegistry_FailedRenderLeavesSlotEmpty(t *testing.T) {
	t.Parallel()

	mem := NewMemoryRenderer()
	reg := NewRegistry(mem)
	if _, err := reg.Render(KindSalesMethod, Config{Kind: KindSalesMethod}); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("factory failed")
	if _, err := reg.Replace(KindSalesMethod, func() (Config, error) { return Config{}, boom }); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	if _, ok := reg.Get(KindSalesMethod); ok || mem.Live() != 0 {
		t.Error("slot should be empty after a failed factory")
	}

	broken := NewRegistry(failingRenderer{err: errors.New("no surface")})
	if _, err := broken.Render(KindPriceCorrelation, Config{}); err == nil {
		t.Error("expected renderer error")
	}
	if broken.Len() != 0 {
		t.Error("failed render bound a handle")
	}
}

type stubHandle struct {
	err      error
	released bool
}

func (s *stubHandle) Config() Config { return Config{} }
func (s *stubHandle) Release() error {
	s.released = true
	return s.err
}

type stubRenderer struct{ handles []*stubHandle }

func (s *stubRenderer) Create(string, Config) (Handle, error) {
	h := s.handles[0]
	s.handles = s.handles[1:]
	return h, nil
}

func TestRegistry_ReleaseAllJoinsErrors(t *testing.T) {
	t.Parallel()

	bad := &stubHandle{err: errors.New("stuck")}
	good := &stubHandle{}
	reg := NewRegistry(&stubRenderer{handles: []*stubHandle{bad, good}})
	_, _ = reg.Render(KindTopProducts, Config{})
	_, _ = reg.Render(KindStateAnalysis, Config{})

	err := reg.ReleaseAll()
	if err == nil || !strings.Contains(err.Error(), "stuck") {
		t.Fatalf("err = %v", err)
	}
	if !bad.released || !good.released || reg.Len() != 0 {
		t.Error("ReleaseAll stopped at the first error")
	}
}

func TestRegistry_KindsInGridOrder(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(NewMemoryRenderer())
	_, _ = reg.Render(KindRetailerPerformance, Config{})
	_, _ = reg.Render(KindMonthlyTrends, Config{})
	kinds := reg.Kinds()
	if len(kinds) != 2 || kinds[0] != KindMonthlyTrends || kinds[1] != KindRetailerPerformance {
		t.Errorf("Kinds() = %v", kinds)
	}
}

func TestMemoryHandle_ExportAndReset(t *testing.T) {
	t.Parallel()

	r := NewMemoryRenderer()
	h, err := r.Create("top-products-chart", BuildTopProducts(aggregate.TopProducts(nil)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := h.(Exporter).Export()
	if err != nil {
		t.Fatal(err)
	}
	if ext := h.(Exporter).Ext(); ext != ".json" {
		t.Errorf("Ext = %q, want .json", ext)
	}
	var decoded Config
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("export is not JSON: %v", err)
	}
	if decoded.Kind != KindTopProducts || !decoded.Placeholder {
		t.Errorf("decoded = %+v", decoded)
	}

	h.(Resetter).ResetZoom()
	if h.(*MemoryHandle).Resets() != 1 {
		t.Error("ResetZoom not recorded")
	}
	if _, err := r.Create("", Config{}); err == nil {
		t.Error("empty surface should fail")
	}
}
