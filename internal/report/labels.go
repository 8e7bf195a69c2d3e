package report

import (
	"strings"

	"asset-system/pkg/constants"
)

const dateFmt = "02/01/2006"

var assetStatusLabels = map[constants.AssetStatus]string{
	constants.AssetStatusActive:      "Đang hoạt động",
	constants.AssetStatusMaintenance: "Đang bảo trì",
	constants.AssetStatusBroken:      "Hỏng",
	constants.AssetStatusRetired:     "Thanh lý",
}

var maintenanceStatusLabels = map[constants.MaintenanceStatus]string{
	constants.MaintenanceStatusPending:    "Chờ duyệt",
	constants.MaintenanceStatusApproved:   "Đã duyệt",
	constants.MaintenanceStatusInProgress: "Đang thực hiện",
	constants.MaintenanceStatusCompleted:  "Hoàn thành",
	constants.MaintenanceStatusRejected:   "Từ chối",
}

var maintenanceTypeLabels = map[constants.MaintenanceType]string{
	constants.MaintenanceTypePreventive: "Định kỳ",
	constants.MaintenanceTypeCorrective: "Sửa chữa",
}

func assetStatusLabel(s constants.AssetStatus) string {
	if label, ok := assetStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// parseAssetStatus принимает и подпись из отчета, и код статуса.
// Пустая строка - статус по умолчанию на сервере.
func parseAssetStatus(raw string) (constants.AssetStatus, bool) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return "", true
	}
	for status, label := range assetStatusLabels {
		if v == string(status) || v == strings.ToLower(label) {
			return status, true
		}
	}
	return "", false
}
