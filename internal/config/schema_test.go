package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Valid(t *testing.T) {
	issues, err := Validate([]byte("template_path: /a\ndefault_template: B\n"))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestValidate_ReportsPathOfBadField(t *testing.T) {
	issues, err := Validate([]byte("template_path: 7\ndefault_template: B\n"))
	require.NoError(t, err)
	require.NotEmpty(t, issues)
	assert.Equal(t, "/template_path", issues[0].Path)
	assert.NotEmpty(t, issues[0].Message)
}

func TestValidate_MissingRequired(t *testing.T) {
	issues, err := Validate([]byte("default_template: B\n"))
	require.NoError(t, err)
	require.NotEmpty(t, issues)
	assert.Contains(t, issues[0].String(), "template_path")
}

func TestValidate_SyntaxError(t *testing.T) {
	_, err := Validate([]byte("a: [b\n"))
	assert.Error(t, err)
}

func TestIssue_String(t *testing.T) {
	assert.Equal(t, "boom", Issue{Message: "boom"}.String())
	assert.Equal(t, "/x: boom", Issue{Path: "/x", Message: "boom"}.String())
}
