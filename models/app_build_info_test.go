package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo(" 1.2.0 ", "", "abc123")

	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "1.2.0 (abc123, N/A)", info.String())
	assert.Equal(t, []BuildField{
		{Label: "version", Value: "1.2.0"},
		{Label: "date", Value: "N/A"},
		{Label: "commit", Value: "abc123"},
	}, info.Fields())
}
