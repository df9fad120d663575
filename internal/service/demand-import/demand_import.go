package demand_import

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"rdc-blueprint/internal/storage"
)

const (
	// DefaultVolume is used for rows without a readable volume column.
	DefaultVolume = 10000.0
)

var ErrEmptyWorkbook = errors.New("excel file is empty")

type columnRole int

const (
	roleOther columnRole = iota
	roleCity
	roleVolume
)

// roleOf matches a header by substring, city names first.
func roleOf(header string) columnRole {
	h := strings.ToLower(strings.TrimSpace(header))
	switch {
	case strings.Contains(h, "city"), strings.Contains(h, "location"), strings.Contains(h, "place"):
		return roleCity
	case strings.Contains(h, "demand"), strings.Contains(h, "volume"), strings.Contains(h, "quantity"):
		return roleVolume
	default:
		return roleOther
	}
}

type order struct {
	city   string
	volume float64
}

// Read parses an order workbook (first sheet, header in row 1) and groups
// the order volumes per city, largest demand first.
func Read(r io.Reader) (*storage.UploadedData, error) {
	const op = "service.demand_import.Read"

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyWorkbook)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	orders := parseRows(rows)
	if len(orders) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyWorkbook)
	}

	return summarize(orders), nil
}

func parseRows(rows [][]string) []order {
	if len(rows) < 2 {
		return nil
	}

	roles := make([]columnRole, len(rows[0]))
	for i, h := range rows[0] {
		roles[i] = roleOf(h)
	}

	var orders []order
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}

		o := order{}
		hasVolume := false
		for col, raw := range row {
			if col >= len(roles) {
				break
			}
			v := strings.TrimSpace(raw)
			if v == "" {
				continue
			}

			switch roles[col] {
			case roleCity:
				o.city = v
			case roleVolume:
				hasVolume = true
				n, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
				if err != nil {
					n = 0
				}
				o.volume = n
			}
		}

		if o.city == "" {
			o.city = fmt.Sprintf("City_%d", i+1)
		}
		if !hasVolume {
			o.volume = DefaultVolume
		}
		orders = append(orders, o)
	}

	return orders
}

func summarize(orders []order) *storage.UploadedData {
	type acc struct {
		demand float64
		orders int
	}

	var names []string
	byCity := map[string]*acc{}
	for _, o := range orders {
		a, ok := byCity[o.city]
		if !ok {
			a = &acc{}
			byCity[o.city] = a
			names = append(names, o.city)
		}
		a.demand += o.volume
		a.orders++
	}

	cities := make([]storage.CityDemand, 0, len(names))
	for _, name := range names {
		cities = append(cities, storage.CityDemand{
			City:        name,
			Demand:      int(math.Round(byCity[name].demand)),
			TotalOrders: byCity[name].orders,
		})
	}

	sort.SliceStable(cities, func(i, j int) bool {
		return cities[i].Demand > cities[j].Demand
	})

	return &storage.UploadedData{
		CitySummary: cities,
		TotalOrders: len(orders),
		TotalCities: len(cities),
	}
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// FileSource serves the demand of a workbook on disk. A missing file means
// nothing has been uploaded.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) UploadedData(_ context.Context) (*storage.UploadedData, error) {
	const op = "service.demand_import.FileSource.UploadedData"

	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer f.Close()

	data, err := Read(f)
	if errors.Is(err, ErrEmptyWorkbook) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return data, nil
}
