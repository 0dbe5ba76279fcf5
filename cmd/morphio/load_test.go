package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/nrngo/morphio/morphology"
)

func writeSWC(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cell.swc")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func newTestLogger(buf *bytes.Buffer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(buf)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	return log
}

func TestRunLoad_TableFormat(t *testing.T) {
	path := writeSWC(t, "1 1 0 0 0 1 -1\n")

	var out, logs bytes.Buffer
	err := runLoad(path, &loadOptions{format: formatTable}, &out, newTestLogger(&logs))
	require.NoError(t, err)
	require.Contains(t, out.String(), "soma: single_point")
	require.Contains(t, out.String(), "total")
	require.Contains(t, logs.String(), "read morphology file")
}

func TestRunLoad_JSONFormat(t *testing.T) {
	path := writeSWC(t, "1 1 0 0 0 1 -1\n"+
		"2 2 1 0 0 1 1\n")

	var out, logs bytes.Buffer
	err := runLoad(path, &loadOptions{format: formatJSON}, &out, newTestLogger(&logs))
	require.NoError(t, err)

	var props morphology.Properties
	require.NoError(t, json.Unmarshal(out.Bytes(), &props))
	require.Len(t, props.Sections, 1)
}

func TestRunLoad_LogsWarnings(t *testing.T) {
	path := writeSWC(t, "1 1 0 0 0 0.00001 -1\n")

	var out, logs bytes.Buffer
	err := runLoad(path, &loadOptions{format: formatTable}, &out, newTestLogger(&logs))
	require.NoError(t, err)
	require.Contains(t, logs.String(), "ZERO_DIAMETER")
}

func TestRunLoad_FatalErrorLogged(t *testing.T) {
	path := writeSWC(t, "1 1 0 0 0 1 -1\n"+
		"2 2 0 0 1 1 99\n")

	var out, logs bytes.Buffer
	err := runLoad(path, &loadOptions{format: formatTable}, &out, newTestLogger(&logs))
	require.Error(t, err)
	require.Contains(t, logs.String(), "ERROR_MISSING_PARENT")
}

func TestRunLoad_RecenterOption(t *testing.T) {
	path := writeSWC(t, "1 1 5 0 0 1 -1\n")

	var out, logs bytes.Buffer
	err := runLoad(path, &loadOptions{format: formatJSON, recenter: true}, &out, newTestLogger(&logs))
	require.NoError(t, err)

	var props morphology.Properties
	require.NoError(t, json.Unmarshal(out.Bytes(), &props))
	require.Equal(t, 0.0, props.Soma.Points[0].X)
}

func TestLoadCmd_BindsFormatFromEnv(t *testing.T) {
	t.Setenv("MORPHIO_FORMAT", formatJSON)

	cmd := loadCmd()

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{writeSWC(t, "1 1 0 0 0 1 -1\n")})

	require.NoError(t, cmd.Execute())
	require.True(t, json.Valid(buf.Bytes()))
}
