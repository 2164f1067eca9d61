package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertiesFormat_Decode(t *testing.T) {
	fields, err := PropertiesFormat{}.Decode([]byte("# comment\nbaseUrl=https://a.test/\npath=${HOME}/x\nempty=\n"))
	require.NoError(t, err)

	assert.Equal(t, "https://a.test/", fields["baseUrl"])
	assert.Equal(t, "${HOME}/x", fields["path"])
	assert.Equal(t, "", fields["empty"])
	assert.Equal(t, "properties", PropertiesFormat{}.Ext())
}

func TestYAMLFormat_Decode(t *testing.T) {
	fields, err := YAMLFormat{}.Decode([]byte("baseUrl: https://a.test/\nport: 8080\nheadless: true\nempty:\n"))
	require.NoError(t, err)

	assert.Equal(t, "https://a.test/", fields["baseUrl"])
	assert.Equal(t, "8080", fields["port"])
	assert.Equal(t, "true", fields["headless"])
	assert.Equal(t, "", fields["empty"])
	assert.Equal(t, "yaml", YAMLFormat{}.Ext())
}

func TestYAMLFormat_RejectsNesting(t *testing.T) {
	_, err := YAMLFormat{}.Decode([]byte("auth:\n  username: x\n"))
	assert.Error(t, err)
}

func TestYAMLFormat_KeepsLiteralScalars(t *testing.T) {
	fields, err := YAMLFormat{}.Decode([]byte("username: 007\npassword: 1.50\nbaseUrl: 0x1F\nsince: 2024-01-01\nquoted: \"0012\"\nnothing: ~\n"))
	require.NoError(t, err)

	assert.Equal(t, "007", fields["username"])
	assert.Equal(t, "1.50", fields["password"])
	assert.Equal(t, "0x1F", fields["baseUrl"])
	assert.Equal(t, "2024-01-01", fields["since"])
	assert.Equal(t, "0012", fields["quoted"])
	assert.Equal(t, "", fields["nothing"])
}

func TestYAMLFormat_RejectsSequences(t *testing.T) {
	_, err := YAMLFormat{}.Decode([]byte("hosts:\n  - a\n  - b\n"))
	assert.Error(t, err)
}
