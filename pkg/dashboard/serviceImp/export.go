package serviceImp

import (
	"context"
	"io"

	"github.com/xuri/excelize/v2"

	"agro/pkg/apperr"
)

const (
	sheetStats   = "Stats"
	sheetStates  = "States"
	sheetCrops   = "Crops"
	sheetLandUse = "Land Use"
)

func (s *dashboardSvc) Export(ctx context.Context, w io.Writer) error {
	ov, err := s.Overview(ctx)
	if err != nil {
		return err
	}

	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName(x.GetSheetName(0), sheetStats); err != nil {
		return apperr.Storage(err, "build workbook")
	}
	for _, name := range []string{sheetStates, sheetCrops, sheetLandUse} {
		if _, err := x.NewSheet(name); err != nil {
			return apperr.Storage(err, "build workbook")
		}
	}

	rows := map[string][][]interface{}{
		sheetStats: {
			{"Metric", "Value"},
			{"Total farms", ov.Stats.TotalFarms},
			{"Total hectares", ov.Stats.TotalHectares},
		},
		sheetStates:  {{"State", "Count", "Percentage"}},
		sheetCrops:   {{"Crop", "Count", "Percentage"}},
		sheetLandUse: {{"Type", "Area", "Percentage"}},
	}
	for _, r := range ov.States {
		rows[sheetStates] = append(rows[sheetStates], []interface{}{r.State, r.Count, r.Percentage})
	}
	for _, r := range ov.Crops {
		rows[sheetCrops] = append(rows[sheetCrops], []interface{}{r.Crop, r.Count, r.Percentage})
	}
	for _, r := range ov.LandUse {
		rows[sheetLandUse] = append(rows[sheetLandUse], []interface{}{r.Type, r.Area, r.Percentage})
	}

	for sheet, list := range rows {
		for i, row := range list {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				return apperr.Storage(err, "build workbook")
			}
			if err := x.SetSheetRow(sheet, cell, &row); err != nil {
				return apperr.Storage(err, "build workbook")
			}
		}
	}

	if err := x.Write(w); err != nil {
		return apperr.Storage(err, "write workbook")
	}
	return nil
}
