package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger() (*logrus.Logger, *bytes.Buffer) {
	logger := SetupLogging()
	buf := &bytes.Buffer{}
	logger.Out = buf
	return logger, buf
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &out))
	return out
}

func TestLogData_FieldsAndTimings(t *testing.T) {
	logger, _ := newBufferedLogger()
	logData := NewLogData(logger)

	logData.AddData("memberCount", 3)
	stop := logData.AddTiming("readMs")
	stop()

	entry := logData.Log()
	assert.Equal(t, 3, entry.Data["memberCount"])
	assert.Contains(t, entry.Data, "readMs")
	assert.NotEmpty(t, entry.Data["requestID"])
}

func TestLogData_AddToExistingTiming(t *testing.T) {
	logger, _ := newBufferedLogger()
	logData := NewLogData(logger)

	logData.AddToExistingTiming("storeMs")()
	logData.AddToExistingTiming("storeMs")()

	assert.Contains(t, logData.Log().Data, "storeMs")
}

func TestGetLogData_Context(t *testing.T) {
	logger, _ := newBufferedLogger()
	logData := NewLogData(logger)

	assert.Nil(t, GetLogData(context.Background()))
	assert.Same(t, logData, GetLogData(WithLogData(context.Background(), logData)))
}

func TestApplyLevel(t *testing.T) {
	logger, _ := newBufferedLogger()

	assert.NoError(t, ApplyLevel(logger, "debug"))
	assert.Equal(t, logrus.DebugLevel, logger.Level)

	assert.Error(t, ApplyLevel(logger, "chatty"))
	assert.Equal(t, logrus.DebugLevel, logger.Level)
}

func TestLoggingWrapper_Complete(t *testing.T) {
	logger, buf := newBufferedLogger()

	handler := LoggingWrapper("Probe", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		assert.Same(t, logData, GetLogData(req.Context()))
		w.WriteHeader(http.StatusOK)
		return nil
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	line := lastLine(t, buf)
	assert.Equal(t, "Handler.Probe.Complete", line["msg"])
	assert.Equal(t, "info", line["loglevel"])
	assert.Contains(t, line, "duration")
}

func TestLoggingWrapper_Error(t *testing.T) {
	logger, buf := newBufferedLogger()

	handler := LoggingWrapper("Probe", logger, func(w http.ResponseWriter, _ *http.Request, _ *LogData) error {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("probe failed")
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/probe", nil))

	line := lastLine(t, buf)
	assert.Equal(t, "Handler.Probe.Error", line["msg"])
	assert.Equal(t, "probe failed", line["error"])
}

type pingOutput struct {
	Body struct {
		Logged bool `json:"logged"`
	}
}

func TestHumaMiddleware(t *testing.T) {
	logger, buf := newBufferedLogger()
	_, api := humatest.New(t)
	api.UseMiddleware(HumaMiddleware(logger))

	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
	}, func(ctx context.Context, _ *struct{}) (*pingOutput, error) {
		out := &pingOutput{}
		logData := GetLogData(ctx)
		if logData != nil {
			logData.AddData("pinged", true)
			out.Body.Logged = true
		}
		return out, nil
	})

	resp := api.Get("/ping")
	assert.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Logged bool `json:"logged"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Logged)

	line := lastLine(t, buf)
	assert.Equal(t, "Handler.ping.Complete", line["msg"])
	assert.Equal(t, true, line["pinged"])
}
