package resources

import "asset-system/internal/store"

var assetMessages = store.Messages{
	FetchAll:  "Không thể lấy danh sách thiết bị",
	FetchByID: "Không thể lấy thông tin thiết bị",
	Create:    "Không thể tạo thiết bị",
	Update:    "Không thể cập nhật thiết bị",
	Delete:    "Không thể xóa thiết bị",
}

const (
	msgAssetsByPlant  = "Không thể lấy danh sách thiết bị theo nhà máy"
	msgAssetsByStatus = "Không thể lấy danh sách thiết bị theo trạng thái"
)

var maintenanceMessages = store.Messages{
	FetchAll:  "Không thể lấy danh sách bảo trì",
	FetchByID: "Không thể lấy thông tin bảo trì",
	Create:    "Không thể tạo yêu cầu bảo trì",
	Update:    "Không thể cập nhật bảo trì",
	Delete:    "Không thể xóa bảo trì",
}

const (
	msgMaintenanceByStatus = "Không thể lấy danh sách bảo trì theo trạng thái"
	msgMaintenanceByAsset  = "Không thể lấy lịch sử bảo trì của thiết bị"
	msgMaintenanceApprove  = "Không thể phê duyệt yêu cầu bảo trì"
)

var calibrationMessages = store.Messages{
	FetchAll:  "Không thể lấy danh sách hiệu chuẩn",
	FetchByID: "Không thể lấy thông tin hiệu chuẩn",
	Create:    "Không thể tạo bản ghi hiệu chuẩn",
	Update:    "Không thể cập nhật hiệu chuẩn",
	Delete:    "Không thể xóa hiệu chuẩn",
}

const msgCalibrationByAsset = "Không thể lấy lịch sử hiệu chuẩn của thiết bị"

var plantMessages = store.Messages{
	FetchAll:  "Không thể lấy danh sách nhà máy",
	FetchByID: "Không thể lấy thông tin nhà máy",
	Create:    "Không thể tạo nhà máy",
	Update:    "Không thể cập nhật nhà máy",
	Delete:    "Không thể xóa nhà máy",
}
