package report

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/pkg/validation"
)

// AssetCreator - то, через что идет создание. В CLI это AssetStore,
// поэтому ошибки сервера попадают в состояние стора.
type AssetCreator interface {
	Create(ctx context.Context, payload any) (*entities.Asset, error)
}

type RowError struct {
	Row     int    `json:"row"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ImportResult struct {
	Created int        `json:"created"`
	Failed  int        `json:"failed"`
	Skipped int        `json:"skipped"`
	Errors  []RowError `json:"errors,omitempty"`
}

var ErrHeaderNotFound = errors.New("không tìm thấy dòng tiêu đề (cần các cột Mã, Tên, Xưởng/Nhà máy)")

type columns struct {
	code, name, plant, department, model, serial, manufacturer, status, installed int
}

type AssetImporter struct {
	creator   AssetCreator
	validator *validation.CustomValidator
	logger    *zap.Logger
}

func NewAssetImporter(creator AssetCreator, logger *zap.Logger) *AssetImporter {
	return &AssetImporter{
		creator:   creator,
		validator: validation.New(),
		logger:    logger.Named("import"),
	}
}

// ImportAssets - короткая форма для разового импорта.
func ImportAssets(ctx context.Context, path string, creator AssetCreator, plants []entities.Plant) (*ImportResult, error) {
	return NewAssetImporter(creator, zap.NewNop()).Import(ctx, path, plants)
}

// Import читает первый лист с найденной шапкой и создает оборудование построчно.
// Ошибка строки не прерывает импорт; отмена контекста прерывает.
func (i *AssetImporter) Import(ctx context.Context, path string, plants []entities.Plant) (*ImportResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer f.Close()

	rows, headerRow, cols, err := findHeader(f)
	if err != nil {
		return nil, err
	}
	i.logger.Info("шапка найдена", zap.String("file", path), zap.Int("row", headerRow+1))

	result := &ImportResult{}
	for r := headerRow + 1; r < len(rows); r++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		row := rows[r]
		line := r + 1

		if isBlank(row) {
			continue
		}
		code := cell(row, cols.code)
		if code == "" || isTotal(row, cols.code) {
			result.Skipped++
			continue
		}

		payload, msg := i.buildPayload(row, cols, plants)
		if msg == "" {
			if err := i.validator.Validate(payload); err != nil {
				msg = validationMessage(err)
			}
		}
		if msg != "" {
			result.fail(line, code, msg)
			i.logger.Warn("строка отклонена", zap.Int("row", line), zap.String("code", code), zap.String("reason", msg))
			continue
		}

		if _, err := i.creator.Create(ctx, payload); err != nil {
			result.fail(line, code, err.Error())
			i.logger.Warn("сервер отклонил строку", zap.Int("row", line), zap.String("code", code), zap.Error(err))
			continue
		}
		result.Created++
	}

	i.logger.Info("импорт завершен",
		zap.Int("created", result.Created),
		zap.Int("failed", result.Failed),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

func (r *ImportResult) fail(line int, code, message string) {
	r.Failed++
	r.Errors = append(r.Errors, RowError{Row: line, Code: code, Message: message})
}

func (i *AssetImporter) buildPayload(row []string, cols columns, plants []entities.Plant) (dto.CreateAssetDTO, string) {
	plantRaw := cell(row, cols.plant)
	plantID := resolvePlant(plantRaw, plants)
	if plantID == 0 {
		return dto.CreateAssetDTO{}, fmt.Sprintf("Không tìm thấy nhà máy '%s'", plantRaw)
	}

	status, ok := parseAssetStatus(cell(row, cols.status))
	if !ok {
		return dto.CreateAssetDTO{}, fmt.Sprintf("Trạng thái không hợp lệ: '%s'", cell(row, cols.status))
	}

	payload := dto.CreateAssetDTO{
		Code:         cell(row, cols.code),
		Name:         cell(row, cols.name),
		PlantID:      plantID,
		Department:   cell(row, cols.department),
		Model:        cell(row, cols.model),
		SerialNumber: cell(row, cols.serial),
		Manufacturer: cell(row, cols.manufacturer),
		Status:       status,
	}
	if raw := cell(row, cols.installed); raw != "" {
		t, err := time.Parse(dateFmt, raw)
		if err != nil {
			return dto.CreateAssetDTO{}, fmt.Sprintf("Ngày lắp đặt không hợp lệ: '%s'", raw)
		}
		payload.InstalledAt = &t
	}
	return payload, ""
}

// findHeader ищет по всем листам строку, где есть код, название и завод.
func findHeader(f *excelize.File) ([][]string, int, columns, error) {
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, 0, columns{}, fmt.Errorf("ошибка чтения листа %s: %w", sheet, err)
		}
		for idx, row := range rows {
			cols := matchColumns(row)
			if cols.code != -1 && cols.name != -1 && cols.plant != -1 {
				return rows, idx, cols, nil
			}
		}
	}
	return nil, 0, columns{}, ErrHeaderNotFound
}

func matchColumns(row []string) columns {
	cols := columns{-1, -1, -1, -1, -1, -1, -1, -1, -1}
	set := func(dst *int, idx int) {
		if *dst == -1 {
			*dst = idx
		}
	}
	for idx, raw := range row {
		c := strings.ToLower(strings.TrimSpace(raw))
		switch {
		case c == "":
		case strings.HasPrefix(c, "mã"):
			set(&cols.code, idx)
		case strings.HasPrefix(c, "tên"):
			set(&cols.name, idx)
		case strings.Contains(c, "xưởng") || strings.Contains(c, "nhà máy"):
			set(&cols.plant, idx)
		case strings.Contains(c, "bộ phận"):
			set(&cols.department, idx)
		case strings.Contains(c, "model"):
			set(&cols.model, idx)
		case strings.Contains(c, "serial"):
			set(&cols.serial, idx)
		case strings.Contains(c, "hãng") || strings.Contains(c, "nhà sản xuất"):
			set(&cols.manufacturer, idx)
		case strings.Contains(c, "trạng thái"):
			set(&cols.status, idx)
		case strings.Contains(c, "lắp đặt"):
			set(&cols.installed, idx)
		}
	}
	return cols
}

// resolvePlant: сначала код, потом точное имя, потом числовой id.
func resolvePlant(raw string, plants []entities.Plant) uint64 {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0
	}
	for _, p := range plants {
		if strings.EqualFold(p.Code, v) {
			return p.ID
		}
	}
	for _, p := range plants {
		if strings.EqualFold(strings.TrimSpace(p.Name), v) {
			return p.ID
		}
	}
	if id, err := strconv.ParseUint(v, 10, 64); err == nil {
		for _, p := range plants {
			if p.ID == id {
				return id
			}
		}
	}
	return 0
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

var totalPhrases = map[string]bool{
	"tổng":      true,
	"tổng cộng": true,
	"tổng số":   true,
	"cộng":      true,
	"total":     true,
}

// isTotal - итоговая строка в конце таблицы. Смотрим только первую непустую
// ячейку и ячейку кода, и только целые фразы: "Tổng kho" - обычный отдел.
func isTotal(row []string, codeIdx int) bool {
	if isTotalPhrase(cell(row, codeIdx)) {
		return true
	}
	for _, c := range row {
		if v := strings.TrimSpace(c); v != "" {
			return isTotalPhrase(v)
		}
	}
	return false
}

func isTotalPhrase(v string) bool {
	v = strings.TrimRight(strings.ToLower(strings.TrimSpace(v)), ": ")
	return totalPhrases[v]
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return "Dữ liệu không hợp lệ: " + strings.Join(fields, ", ")
	}
	return err.Error()
}
