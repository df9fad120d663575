package generate_chart

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"rdc-blueprint/internal/storage"
)

type BlueprintProvider interface {
	State() storage.BlueprintState
}

type GenerateChartService struct {
	provider BlueprintProvider
}

func NewGenerateService(provider BlueprintProvider) *GenerateChartService {
	return &GenerateChartService{provider: provider}
}

// GenerateChart renders an HTML page with the zone areas and the staff split
// of the current blueprint.
func (g *GenerateChartService) GenerateChart(ctx context.Context) ([]byte, error) {
	const op = "service.generate_chart.GenerateChart"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	state := g.provider.State()

	page := components.NewPage()
	page.PageTitle = "Warehouse Blueprint"
	page.AddCharts(zoneChart(state), workforceChart(state.Workforce))

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), nil
}

func zoneChart(state storage.BlueprintState) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "450px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Zone area (sq ft)",
			Subtitle: fmt.Sprintf("%s, %dx%d ft", state.Warehouse.Name, state.Warehouse.Width, state.Warehouse.Height),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	labels := make([]string, 0, len(state.Zones))
	areas := make([]opts.BarData, 0, len(state.Zones))
	staff := make([]opts.BarData, 0, len(state.Zones))
	for _, z := range state.Zones {
		labels = append(labels, z.Label)
		areas = append(areas, opts.BarData{Name: z.ID, Value: z.Area()})
		staff = append(staff, opts.BarData{Name: z.ID, Value: z.StaffRequired})
	}

	bar.SetXAxis(labels).
		AddSeries("Area", areas).
		AddSeries("Staff required", staff)

	return bar
}

func workforceChart(w storage.Workforce) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "450px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Workforce by role",
			Subtitle: fmt.Sprintf("%d staff, %d/hour", w.Total, w.HourlyCost),
		}),
	)

	pie.AddSeries("Roles", []opts.PieData{
		{Name: "Pickers", Value: w.Pickers},
		{Name: "Packers", Value: w.Packers},
		{Name: "Quality control", Value: w.QualityControl},
		{Name: "Supervisors", Value: w.Supervisors},
		{Name: "Forklift operators", Value: w.ForkliftOperators},
		{Name: "Shift managers", Value: w.ShiftManagers},
	}, charts.WithLabelOpts(opts.Label{
		Show:      opts.Bool(true),
		Formatter: "{b}: {c}",
	}))

	return pie
}
