// Package export renders the pipeline artifacts as a spreadsheet and PNG charts.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/costs"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/domain"
)

const (
	HistorySheet = "History"
	CostsSheet   = "Costs"
	maxSheetName = 31
)

var sheetReplacer = strings.NewReplacer(":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", "(", "]", ")")

// SheetName makes a scenario name usable as a worksheet name.
func SheetName(name string) string {
	s := strings.TrimSpace(sheetReplacer.Replace(name))
	if len(s) > maxSheetName {
		s = s[:maxSheetName]
	}
	return s
}

// Workbook writes the history, one sheet per scenario and, when doc is non-nil, the
// STEPS Global total costs.
func Workbook(path string, ts domain.Timeseries, proj domain.Projections, doc *domain.SystemCostDocument) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", HistorySheet); err != nil {
		return fmt.Errorf("failed to name history sheet: %w", err)
	}
	header := []any{"Year", "Total useful (EJ)", "Fossil (EJ)", "Clean (EJ)", "Fossil share (%)", "Clean share (%)"}
	if err := f.SetSheetRow(HistorySheet, "A1", &header); err != nil {
		return err
	}
	for i, r := range ts.Data {
		row := []any{r.Year, r.TotalUsefulEJ, r.FossilUsefulEJ, r.CleanUsefulEJ, r.FossilSharePercent, r.CleanSharePercent}
		if err := setRow(f, HistorySheet, i+2, row); err != nil {
			return err
		}
	}

	sources := append(append([]string{}, domain.FossilSources...), domain.CleanSources...)
	for _, s := range proj.Scenarios {
		name := SheetName(s.Name)
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", name, err)
		}
		head := append([]any{}, header...)
		for _, src := range sources {
			head = append(head, src+" (EJ)")
		}
		if err := f.SetSheetRow(name, "A1", &head); err != nil {
			return err
		}
		for i, p := range s.Data {
			row := []any{p.Year, p.TotalUsefulEJ, p.FossilUsefulEJ, p.CleanUsefulEJ, p.FossilSharePercent, p.CleanSharePercent}
			for _, src := range sources {
				row = append(row, p.SourcesUsefulEJ[src])
			}
			if err := setRow(f, name, i+2, row); err != nil {
				return err
			}
		}
	}

	if doc != nil {
		if err := costSheet(f, *doc); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func costSheet(f *excelize.File, doc domain.SystemCostDocument) error {
	region, ok := doc.Scenarios[costs.STEPS].Regions[costs.GlobalRegion]
	if !ok {
		return nil
	}
	if _, err := f.NewSheet(CostsSheet); err != nil {
		return fmt.Errorf("failed to add sheet %s: %w", CostsSheet, err)
	}
	head := []any{"Year", "VRE penetration"}
	for _, src := range costs.Sources {
		head = append(head, src+" ($/MWh)")
	}
	if err := f.SetSheetRow(CostsSheet, "A1", &head); err != nil {
		return err
	}
	for i, y := range region.Timeseries {
		row := []any{y.Year, y.VREPenetration}
		for _, src := range costs.Sources {
			row = append(row, y.Sources[src].TotalLCOESMWh)
		}
		if err := setRow(f, CostsSheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}
