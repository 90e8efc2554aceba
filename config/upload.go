package config

import "project-dashboard/pkg/constants"

// UploadRules - ограничения на файл для одного контекста загрузки.
type UploadRules struct {
	AllowedMimeTypes []string
	Extensions       []string
	MaxSizeMB        int64
}

// MaxBytes - лимит в байтах; 0 - без лимита.
func (r UploadRules) MaxBytes() int64 {
	if r.MaxSizeMB <= 0 {
		return 0
	}
	return r.MaxSizeMB << 20
}

var UploadContexts = map[constants.UploadContext]UploadRules{
	// xlsx определяется по сигнатуре как zip, иногда как octet-stream
	constants.UploadContextClearanceBatch: {
		AllowedMimeTypes: constants.ClearanceUploadMimeTypes,
		Extensions:       []string{".xlsx"},
		MaxSizeMB:        10,
	},
}

// RulesFor возвращает правила контекста; maxSizeMB > 0 перекрывает лимит по умолчанию.
func RulesFor(uc constants.UploadContext, maxSizeMB int64) (UploadRules, bool) {
	rules, ok := UploadContexts[uc]
	if !ok {
		return UploadRules{}, false
	}
	if maxSizeMB > 0 {
		rules.MaxSizeMB = maxSizeMB
	}
	return rules, true
}
