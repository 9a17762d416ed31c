package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
		errMsg  string
	}{
		{name: "default config", modify: func(c *Config) {}},
		{name: "with queries", modify: func(c *Config) { c.Wiki.Queries = []string{"Ancient Rome"} }},
		{name: "missing server listen", modify: func(c *Config) { c.Server.Listen = "" },
			wantErr: true, errMsg: "server.listen is required"},
		{name: "missing api url", modify: func(c *Config) { c.Wiki.APIURL = "" },
			wantErr: true, errMsg: "wiki.api_url is required"},
		{name: "count below minimum", modify: func(c *Config) { c.Wiki.DefaultCount = 0 },
			wantErr: true, errMsg: "wiki.default_count should be >= 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := VerifyAgainstEmbeddedSchema(cfg)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestVerify_UnknownField(t *testing.T) {
	// schema without the wiki section reports it as unknown
	schema := `{"$ref":"#/$defs/Config","$defs":{"Config":{"type":"object","properties":{
		"server":{"type":"object"},"database":{"type":"object"}}}}}`
	err := verify(Default(), []byte(schema))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wiki is not defined in schema")
}

func TestVerify_TypeMismatch(t *testing.T) {
	schema := `{"$ref":"#/$defs/Config","$defs":{"Config":{"type":"object","properties":{
		"server":{"type":"string"},"database":{"type":"object"},"wiki":{"type":"object"}}}}}`
	err := verify(Default(), []byte(schema))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server should be string")
}

func TestVerify_BadSchema(t *testing.T) {
	err := verify(Default(), []byte("{broken"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse embedded schema")
}

func TestGenerateSchema(t *testing.T) {
	schema := GenerateSchema()
	require.NotNil(t, schema)

	data, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"WikiConfig"`)
	assert.Contains(t, string(data), `"default_count"`)
	assert.Contains(t, string(data), `"base_url"`)
}
