package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"project-dashboard/pkg/constants"
)

func TestRulesFor(t *testing.T) {
	rules, ok := RulesFor(constants.UploadContextClearanceBatch, 0)
	assert.True(t, ok)
	assert.Equal(t, int64(10<<20), rules.MaxBytes())
	assert.Contains(t, rules.Extensions, ".xlsx")

	rules, _ = RulesFor(constants.UploadContextClearanceBatch, 2)
	assert.Equal(t, int64(2<<20), rules.MaxBytes())
	// переопределение не портит общий реестр
	assert.Equal(t, int64(10), UploadContexts[constants.UploadContextClearanceBatch].MaxSizeMB)

	_, ok = RulesFor(constants.UploadContext("avatar"), 0)
	assert.False(t, ok)
}
