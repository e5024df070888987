package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wepin/wepin-common-go/internal/logger"
	"github.com/wepin/wepin-common-go/internal/output"
	"github.com/wepin/wepin-common-go/pkg/jsbridge"
	"github.com/wepin/wepin-common-go/pkg/werrors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// clearEnv unsets the WEPIN_* variables for the duration of the test; an
// empty but present variable would still override the config file.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"WEPIN_APP_KEY", "WEPIN_APP_ID", "WEPIN_DOMAIN", "WEPIN_SDK_TYPE",
		"WEPIN_SDK_VERSION", "WEPIN_PLATFORM", "WEPIN_OUTPUT_FORMAT", "WEPIN_ENVIRONMENT",
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	clearEnv(t)

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp("", "wepin_cli_*.yaml")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })
	_, err = tmpfile.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	return tmpfile.Name()
}

func TestURLsCommand(t *testing.T) {
	out, err := run(t, "urls", "ak_prod_123", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"wepinWebview": "https://v1-widget.wepin.io/",
		"sdkBackend": "https://sdk.wepin.io/v1/",
		"wallet": "https://app.wepin.io/"
	}`, out)
}

func TestURLsCommand_Errors(t *testing.T) {
	_, err := run(t, "urls", "not_a_key")
	require.Error(t, err)
	assert.ErrorIs(t, err, werrors.CodeInvalidAppKey)

	_, err = run(t, "urls")
	require.Error(t, err)
	assert.Equal(t, werrors.CodeInvalidParameter, werrors.CodeOf(err))
}

func TestURLsCommand_FromConfig(t *testing.T) {
	path := writeConfig(t, "app_key: ak_dev_cfg\n"+
		"output_format: yaml\n"+
		"url_overrides:\n"+
		"  dev:\n"+
		"    wallet: http://localhost:3000/\n")

	clearEnv(t)
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"urls", "-c", path})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "wallet: http://localhost:3000/")
	assert.Contains(t, out.String(), "sdkBackend: https://dev-sdk.wepin.io/v1/")
}

func TestKeyTypeCommand(t *testing.T) {
	out, err := run(t, "keytype", "ak_stage_1")
	require.NoError(t, err)
	assert.Contains(t, out, "APP KEY")
	assert.Contains(t, out, "keyType:  stage")
}

func TestBalanceCommand(t *testing.T) {
	out, err := run(t, "balance", "1500", "-d", "3", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, `balance: "1.5"`)

	out, err = run(t, "balance", "abc", "-o", "json")
	require.NoError(t, err)
	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "0", got["balance"])
	assert.Equal(t, "18", got["decimals"])
}

func TestBalanceCommand_Places(t *testing.T) {
	out, err := run(t, "balance", "1500", "-d", "3", "--places", "4", "-o", "json")
	require.NoError(t, err)
	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "1.5", got["balance"])
	assert.Equal(t, "1.5000", got["fixed"])

	out, err = run(t, "balance", "abc", "--places", "2", "-o", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "0.00", got["fixed"])

	_, err = run(t, "balance", "1", "--places", "5000")
	require.Error(t, err)
	assert.ErrorIs(t, err, werrors.CodeInvalidParameter)
}

func TestBalanceCommand_ToBase(t *testing.T) {
	out, err := run(t, "balance", "1.25", "--to-base", "-o", "json")
	require.NoError(t, err)
	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "1250000000000000000", got["baseUnits"])

	_, err = run(t, "balance", "1.255", "--to-base", "-d", "2")
	require.Error(t, err)
	assert.ErrorIs(t, err, werrors.CodeInvalidParameter)
}

func TestErrorsCommand(t *testing.T) {
	out, err := run(t, "errors", "-o", "json")
	require.NoError(t, err)
	var rows []codeRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, len(werrors.Codes()))
	assert.Equal(t, codeRow{Code: 1001, Name: "invalidAppKey", Message: "Invalid App Key."}, rows[0])

	out, err = run(t, "errors", "1004")
	require.NoError(t, err)
	assert.Contains(t, out, "networkError")

	out, err = run(t, "errors", "5555", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"code": 1099`)

	_, err = run(t, "errors", "abc")
	assert.Error(t, err)
}

func TestReadyCommand(t *testing.T) {
	path := writeConfig(t, "app_key: ak_prod_ready\n"+
		"app_id: app-9\n"+
		"domain: com.example\n"+
		"platform: 1\n"+
		"login_providers: [email]\n")

	clearEnv(t)
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"ready", "-c", path, "-o", "json", "--id", "77"})
	require.NoError(t, cmd.Execute())

	resp, err := jsbridge.ParseResponse(out.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "77", resp.Header.ID)
	assert.Equal(t, "native", resp.Header.ResponseFrom)
	assert.Equal(t, "wepin_widget", resp.Header.ResponseTo)
	assert.Equal(t, "ready_to_widget", resp.Body.Command)

	data, ok := resp.Body.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ak_prod_ready", data["appKey"])
	assert.Equal(t, "app-9", data["appId"])
}

func TestReadyCommand_ConsoleShowsBackendHeaders(t *testing.T) {
	path := writeConfig(t, "app_key: ak_prod_ready\n"+
		"domain: com.example\n"+
		"sdk_version: 1.2.3\n")

	clearEnv(t)
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"ready", "-c", path, "-o", "console"})
	require.NoError(t, cmd.Execute())

	assert.Regexp(t, `sdkBackend:\s+https://sdk\.wepin\.io/v1/`, out.String())
	assert.Regexp(t, `X-API-KEY:\s+ak_prod_ready`, out.String())
	assert.Regexp(t, `X-API-DOMAIN:\s+com\.example`, out.String())
	assert.Regexp(t, `X-SDK-TYPE:\s+go`, out.String())
	assert.Regexp(t, `X-SDK-VERSION:\s+1\.2\.3`, out.String())
}

func TestReadyCommand_RequiresAppKey(t *testing.T) {
	_, err := run(t, "ready")
	require.Error(t, err)
	assert.ErrorIs(t, err, werrors.CodeInvalidParameter)
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := run(t, "keytype", "ak_dev_1", "-o", "html")
	require.Error(t, err)
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
}

func TestInvalidConfig(t *testing.T) {
	path := writeConfig(t, "environment: qa\n")
	clearEnv(t)
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"keytype", "ak_dev_1", "-c", path})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
}

// eventSink records writes and syncs in the order the logger issues them.
type eventSink struct {
	events []string
}

func (s *eventSink) Write(p []byte) (int, error) {
	s.events = append(s.events, "write")
	return len(p), nil
}

func (s *eventSink) Sync() error {
	s.events = append(s.events, "sync")
	return nil
}

func executeWithSink(t *testing.T, args ...string) (int, string, *eventSink) {
	t.Helper()
	clearEnv(t)

	sink := &eventSink{}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), sink, zapcore.ErrorLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs(args)
	var stderr bytes.Buffer
	code := execute(ctx, cmd, &stderr)
	return code, stderr.String(), sink
}

func TestExecute_LogsFailureBeforeSync(t *testing.T) {
	code, stderr, sink := executeWithSink(t, "urls", "not_a_key")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Invalid App Key.")
	assert.Equal(t, []string{"write", "sync"}, sink.events)
}

func TestExecute_Success(t *testing.T) {
	code, stderr, sink := executeWithSink(t, "keytype", "ak_dev_1")
	assert.Equal(t, 0, code)
	assert.Empty(t, stderr)
	assert.Equal(t, []string{"sync"}, sink.events)
}
