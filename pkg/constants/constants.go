// pkg/constants/constants.go
package constants

import "fmt"

//============== UPLOAD CONTEXTS ==============

// UploadContext определяет тип для контекстов загрузки файлов.
type UploadContext string

const (
	// UploadContextClearanceBatch - пакетная загрузка заявок на переоформление собственности (xlsx).
	UploadContextClearanceBatch UploadContext = "clearance_batch"
)

func (uc UploadContext) String() string {
	return string(uc)
}

// Допустимые MIME-типы для пакетной загрузки.
var ClearanceUploadMimeTypes = []string{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/octet-stream",
	"application/zip",
}

//============== CACHE KEYS ==============

const (
	// Формат: dashboard:view:<role>:<fingerprint> -> JSON представления
	CacheKeyDashboardView = "dashboard:view:%s:%016x"
	// Маска всех представлений для инвалидации.
	CacheKeyDashboardPattern = "dashboard:view:*"
)

func DashboardCacheKey(role string, fingerprint uint64) string {
	return fmt.Sprintf(CacheKeyDashboardView, role, fingerprint)
}

//============== EVENTS ==============

const (
	EventProjectChanged           = "project.changed"
	EventTechnicalRequestChanged  = "technical_request.changed"
	EventClearanceRequestChanged  = "clearance_request.changed"
	EventClearanceRequestImported = "clearance_request.imported"
)

// Тип сообщения в websocket для обновления дашборда.
const WSMessageDashboardRefresh = "dashboard.refresh"

//============== DASHBOARD ==============

const (
	// Метка для технических заявок без типа услуги.
	ServiceTypeOther = "أخرى"
	// Метка для записей переоформления собственности в ленте активности.
	ClearanceActivityLabel = "سجل إفراغ"
	// Подпись проекта без имени.
	UnspecifiedLabel = "غير محدد"

	DefaultActivityLimit   = 6
	DefaultTopProjects     = 5
	DistributionMaxBuckets = 4
)

// Палитра кольцевой диаграммы, позиционно по рангу.
var DistributionPalette = [DistributionMaxBuckets]string{"#2563eb", "#16a34a", "#f59e0b", "#dc2626"}

// Цвет пустой диаграммы.
const DistributionNeutralColor = "#e5e7eb"

//============== IMPORT ==============

// Статус импортированной заявки на переоформление собственности, если колонка пуста.
const DefaultClearanceStatus = "قيد المراجعة"
