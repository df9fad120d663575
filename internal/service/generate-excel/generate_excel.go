package generate_excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"rdc-blueprint/internal/storage"
)

type BlueprintProvider interface {
	State() storage.BlueprintState
}

type GenerateExcelService struct {
	provider BlueprintProvider
}

func NewGenerateService(provider BlueprintProvider) *GenerateExcelService {
	return &GenerateExcelService{provider: provider}
}

// GenerateExcel renders the current blueprint as a workbook with one sheet
// per part: warehouse, zones, workforce and infrastructure.
func (g *GenerateExcelService) GenerateExcel(ctx context.Context) ([]byte, error) {
	const op = "service.generate_excel.GenerateExcel"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	state := g.provider.State()

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sheets := []struct {
		name    string
		headers []string
		rows    [][]interface{}
	}{
		{"Warehouse", []string{"Field", "Value"}, warehouseRows(state)},
		{"Zones", []string{"ID", "Type", "Label", "X", "Y", "Width", "Height", "Area", "Capacity", "Efficiency", "Staff"}, zoneRows(state.Zones)},
		{"Workforce", []string{"Role", "Staff"}, workforceRows(state.Workforce)},
		{"Infrastructure", []string{"Category", "Item", "Quantity", "Unit cost", "Total cost"}, infrastructureRows(state.Infrastructure)},
	}

	for i, sh := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sh.name); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		} else if _, err := f.NewSheet(sh.name); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		for col, name := range sh.headers {
			f.SetCellValue(sh.name, cellName(col+1, 1), name)
		}
		f.SetCellStyle(sh.name, "A1", cellName(len(sh.headers), 1), headerStyle)

		for r, row := range sh.rows {
			for col, v := range row {
				f.SetCellValue(sh.name, cellName(col+1, r+2), v)
			}
		}

		f.SetPanes(sh.name, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
		})
		f.SetColWidth(sh.name, "A", "C", 22)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), nil
}

func warehouseRows(s storage.BlueprintState) [][]interface{} {
	w := s.Warehouse
	return [][]interface{}{
		{"Name", w.Name},
		{"Location", w.Location},
		{"Width (ft)", w.Width},
		{"Height (ft)", w.Height},
		{"Total area (sq ft)", w.TotalArea},
		{"Demand capacity", w.DemandCapacity},
		{"Future scale", w.FutureScaleMultiplier},
		{"Demand tier", string(s.DemandTier)},
		{"Total demand", s.TotalDemand},
		{"Peak demand", s.PeakDemand},
	}
}

func zoneRows(zones []storage.Zone) [][]interface{} {
	rows := make([][]interface{}, 0, len(zones))
	for _, z := range zones {
		rows = append(rows, []interface{}{
			z.ID, string(z.Type), z.Label, z.X, z.Y, z.Width, z.Height, z.Area(), z.Capacity, z.Efficiency, z.StaffRequired,
		})
	}
	return rows
}

func workforceRows(w storage.Workforce) [][]interface{} {
	return [][]interface{}{
		{"Pickers", w.Pickers},
		{"Packers", w.Packers},
		{"Quality control", w.QualityControl},
		{"Supervisors", w.Supervisors},
		{"Forklift operators", w.ForkliftOperators},
		{"Shift managers", w.ShiftManagers},
		{"Total", w.Total},
		{"Hourly cost", w.HourlyCost},
		{"Morning " + w.Shifts.Morning.Hours, w.Shifts.Morning.Staff},
		{"Evening " + w.Shifts.Evening.Hours, w.Shifts.Evening.Staff},
		{"Night " + w.Shifts.Night.Hours, w.Shifts.Night.Staff},
	}
}

func infrastructureRows(infra storage.Infrastructure) [][]interface{} {
	rows := make([][]interface{}, 0, len(infra.Equipment)+len(infra.Technology)+1)
	for _, e := range infra.Equipment {
		rows = append(rows, []interface{}{e.Category, e.Item, e.Quantity, e.UnitCost, e.TotalCost})
	}
	for _, t := range infra.Technology {
		rows = append(rows, []interface{}{"Technology", t.Name + " (ROI " + t.ROI + ")", 1, t.Cost, t.Cost})
	}
	rows = append(rows, []interface{}{"Investment required", "", "", "", infra.InvestmentRequired})
	return rows
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
