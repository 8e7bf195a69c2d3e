package report

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"asset-system/internal/entities"
)

const (
	assetSheet       = "Thiết bị"
	maintenanceSheet = "Bảo trì"
)

var assetHeaders = []interface{}{
	"STT", "Mã thiết bị", "Tên thiết bị", "Nhà máy", "Bộ phận", "Model",
	"Số serial", "Nhà sản xuất", "Trạng thái", "Ngày lắp đặt",
}

var maintenanceHeaders = []interface{}{
	"STT", "Mã thiết bị", "Tên thiết bị", "Loại", "Trạng thái", "Mô tả",
	"Ngày dự kiến", "Ngày hoàn thành", "Người yêu cầu", "Người duyệt", "Kết quả",
}

// ExportAssets сохраняет справочник оборудования в xlsx.
func ExportAssets(path string, assets []entities.Asset, plants []entities.Plant) error {
	plantNames := make(map[uint64]string, len(plants))
	for _, p := range plants {
		plantNames[p.ID] = p.Name
	}

	rows := make([][]interface{}, 0, len(assets))
	for i, a := range assets {
		plant, ok := plantNames[a.PlantID]
		if !ok {
			plant = strconv.FormatUint(a.PlantID, 10)
		}
		installed := ""
		if a.InstalledAt != nil {
			installed = a.InstalledAt.Format(dateFmt)
		}
		rows = append(rows, []interface{}{
			i + 1, a.Code, a.Name, plant, a.Department, a.Model,
			a.SerialNumber, a.Manufacturer, assetStatusLabel(a.Status), installed,
		})
	}

	return writeSheet(path, assetSheet, assetHeaders, rows, map[string]float64{"B": 16, "C": 32, "D": 28, "E": 24})
}

// ExportMaintenance сохраняет журнал обслуживания. Оборудование нужно
// только для подстановки кода и названия.
func ExportMaintenance(path string, records []entities.MaintenanceRecord, assets []entities.Asset) error {
	byID := make(map[uint64]entities.Asset, len(assets))
	for _, a := range assets {
		byID[a.ID] = a
	}

	rows := make([][]interface{}, 0, len(records))
	for i, r := range records {
		asset := byID[r.AssetID]
		code := asset.Code
		if code == "" {
			code = strconv.FormatUint(r.AssetID, 10)
		}
		scheduled, completed, approvedBy := "", "", ""
		if r.ScheduledAt != nil {
			scheduled = r.ScheduledAt.Format(dateFmt)
		}
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format(dateFmt)
		}
		if r.ApprovedBy != nil {
			approvedBy = strconv.FormatUint(*r.ApprovedBy, 10)
		}
		rows = append(rows, []interface{}{
			i + 1, code, asset.Name, maintenanceTypeLabels[r.Type], maintenanceStatusLabels[r.Status],
			r.Description, scheduled, completed, r.RequestedBy, approvedBy, r.Result,
		})
	}

	return writeSheet(path, maintenanceSheet, maintenanceHeaders, rows, map[string]float64{"C": 32, "F": 48, "K": 40})
}

func writeSheet(path, sheet string, headers []interface{}, rows [][]interface{}, widths map[string]float64) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("ошибка переименования листа: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("ошибка записи шапки: %w", err)
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return err
	}

	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("ошибка записи строки %d: %w", i+2, err)
		}
	}
	for col, width := range widths {
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("ошибка сохранения файла %s: %w", path, err)
	}
	return nil
}
