/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"dirpx.dev/convention/code"
	"dirpx.dev/convention/mapper"
	"dirpx.dev/convention/reason"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, "text", cfg.Output)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "convctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level: debug
output: yaml
mapper:
  http_overrides:
    EEXEC_TO: 408
  grpc_overrides:
    EHAL_ERROR: unavailable
  http_prefixes:
    - code: ECOMM_CONDENIED
      prefix: errno.econnrefused
      status: 503
`), 0o644))
	t.Setenv("CONVCTL_OUTPUT", "json")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "json", cfg.Output, "environment must beat the file")

	opts, err := cfg.MapperOptions()
	require.NoError(t, err)
	require.Len(t, opts, 3)

	m, err := mapper.New(opts...)
	require.NoError(t, err)
	require.Equal(t, 408, m.HTTPStatus(code.ExecTimeout, reason.Empty))
	require.Equal(t, codes.Unavailable, m.GRPCStatus(code.HALError, reason.Empty))
	require.Equal(t, 503, m.HTTPStatus(code.CommConDenied, reason.MustParse("errno.econnrefused")))
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("CONVCTL_OUTPUT", "xml")
	_, err := Load(viper.New(), "")
	require.Error(t, err)

	_, err = Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestMapperOptions_Invalid(t *testing.T) {
	cfg := &Config{Mapper: MapperConfig{HTTPOverrides: map[string]int{"ENOPE": 500}}}
	_, err := cfg.MapperOptions()
	require.ErrorIs(t, err, code.ErrCodeInvalid)

	cfg = &Config{Mapper: MapperConfig{GRPCOverrides: map[string]string{"EHAL_ERROR": "SIDEWAYS"}}}
	_, err = cfg.MapperOptions()
	require.Error(t, err)
}

func TestMapperOptions_StatusOutOfRange(t *testing.T) {
	cfg := &Config{Mapper: MapperConfig{HTTPOverrides: map[string]int{"ESTD_ACCES": 0}}}
	opts, err := cfg.MapperOptions()
	require.NoError(t, err)

	_, err = mapper.New(opts...)
	require.ErrorIs(t, err, mapper.ErrInvalidStatus)
}

func TestParseGRPCCode(t *testing.T) {
	for in, want := range map[string]codes.Code{
		"UNAVAILABLE":       codes.Unavailable,
		"deadline_exceeded": codes.DeadlineExceeded,
		"14":                codes.Unavailable,
	} {
		got, err := parseGRPCCode(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
}
