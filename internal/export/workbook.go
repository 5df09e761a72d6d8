// Package export renders elastic reports as spreadsheets.
package export

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/dptools/elastic/internal/property"
)

const (
	SheetElasticTensor = "ElasticTensor"
	SheetModuli        = "Moduli"

	defaultSheet = "Sheet1"
)

var voigtLabels = []string{"xx", "yy", "zz", "yz", "xz", "xy"}

type modulusRow struct {
	name  string
	label string
	unit  string
	value func(r *property.Report) float64
}

var modulusRows = []modulusRow{
	{"BV", "Bulk Modulus", "GPa", func(r *property.Report) float64 { return r.BV }},
	{"GV", "Shear Modulus", "GPa", func(r *property.Report) float64 { return r.GV }},
	{"EV", "Youngs Modulus", "GPa", func(r *property.Report) float64 { return r.EV }},
	{"uV", "Poisson Ratio", "", func(r *property.Report) float64 { return r.UV }},
}

// WriteWorkbook stores report as an xlsx file with one sheet for the
// tensor and one for the derived moduli.
func WriteWorkbook(report *property.Report, path string) error {
	tensor, err := report.Tensor()
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, SheetElasticTensor); err != nil {
		return err
	}
	header := append([]interface{}{"GPa"}, toInterfaces(voigtLabels)...)
	if err := f.SetSheetRow(SheetElasticTensor, "A1", &header); err != nil {
		return err
	}
	for i, row := range tensor {
		values := []interface{}{voigtLabels[i]}
		for _, v := range row {
			values = append(values, v)
		}
		if err := f.SetSheetRow(SheetElasticTensor, fmt.Sprintf("A%d", i+2), &values); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(SheetModuli); err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetModuli, "A1", &[]interface{}{"Name", "Property", "Value", "Unit"}); err != nil {
		return err
	}
	for i, m := range modulusRows {
		row := []interface{}{m.name, m.label, m.value(report), m.unit}
		if err := f.SetSheetRow(SheetModuli, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("error saving workbook: %v", err)
	}
	zap.S().Named("export").Infof("wrote workbook %s", path)
	return nil
}

// ReadWorkbook loads a report written by WriteWorkbook.
func ReadWorkbook(path string) (*property.Report, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening Excel file: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	tensorRows := readSheet(f, sheets, SheetElasticTensor)
	if len(tensorRows) != 7 {
		return nil, fmt.Errorf("sheet %s has %d rows, want 7", SheetElasticTensor, len(tensorRows))
	}

	report := &property.Report{ElasticTensor: make([]float64, 0, 36)}
	for i, row := range tensorRows[1:] {
		if len(row) != 7 {
			return nil, fmt.Errorf("sheet %s row %d has %d cells, want 7", SheetElasticTensor, i+2, len(row))
		}
		for _, cell := range row[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("sheet %s row %d: %w", SheetElasticTensor, i+2, err)
			}
			report.ElasticTensor = append(report.ElasticTensor, v)
		}
	}

	values := map[string]float64{}
	for _, row := range readSheet(f, sheets, SheetModuli) {
		if len(row) < 3 {
			continue
		}
		v, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			continue // header
		}
		values[row[0]] = v
	}
	report.BV = values["BV"]
	report.GV = values["GV"]
	report.EV = values["EV"]
	report.UV = values["uV"]
	return report, nil
}

func readSheet(f *excelize.File, sheets []string, sheetName string) [][]string {
	if !slices.Contains(sheets, sheetName) {
		return [][]string{}
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		zap.S().Named("export").Warnf("Could not read %s sheet: %v", sheetName, err)
		return [][]string{}
	}
	return rows
}

func toInterfaces(s []string) []interface{} {
	out := make([]interface{}, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}
