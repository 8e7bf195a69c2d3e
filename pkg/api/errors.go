package api

import (
	"net/http"

	apperrors "asset-system/pkg/errors"
)

// KnownError - статус и сообщение для клиента по известной ошибке.
type KnownError struct {
	Code    int
	Message string
}

var ErrorList = map[error]KnownError{
	apperrors.ErrEmptyAuthHeader:      {http.StatusUnauthorized, "Chưa đăng nhập"},
	apperrors.ErrInvalidAuthHeader:    {http.StatusUnauthorized, "Tiêu đề xác thực không hợp lệ"},
	apperrors.ErrInvalidToken:         {http.StatusUnauthorized, "Phiên đăng nhập không hợp lệ"},
	apperrors.ErrInvalidSigningMethod: {http.StatusUnauthorized, "Phiên đăng nhập không hợp lệ"},
	apperrors.ErrTokenExpired:         {http.StatusUnauthorized, "Phiên đăng nhập đã hết hạn"},
	apperrors.ErrTokenNotYetValid:     {http.StatusUnauthorized, "Phiên đăng nhập chưa có hiệu lực"},
	apperrors.ErrTokenIsNotAccess:     {http.StatusUnauthorized, "Phiên đăng nhập không hợp lệ"},
	apperrors.ErrInvalidCredentials:   {http.StatusUnauthorized, "Sai mã nhân viên hoặc mật khẩu"},
	apperrors.ErrUnauthorized:         {http.StatusUnauthorized, "Chưa đăng nhập"},
	apperrors.ErrForbidden:            {http.StatusForbidden, "Bạn không có quyền thực hiện thao tác này"},
	apperrors.ErrNotFound:             {http.StatusNotFound, "Không tìm thấy dữ liệu"},
	apperrors.ErrBadRequest:           {http.StatusBadRequest, "Yêu cầu không hợp lệ"},
	apperrors.ErrConflict:             {http.StatusConflict, "Trạng thái hiện tại không cho phép thao tác này"},
}
