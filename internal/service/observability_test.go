package service

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/alexanderramin/atajados/internal/domain"
	"github.com/alexanderramin/atajados/internal/testutil"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogUseCaseObserver_WritesStructuredEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	env := newTestEnv(t, NewLogUseCaseObserver(logger))

	require.NoError(t, env.items.Create(context.Background(), testutil.NewTestItem("Excavación")))

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "service_use_case", event["message"])
	assert.Equal(t, "item-create", event["use_case"])
	assert.Equal(t, true, event["success"])
	assert.Equal(t, "Excavación", event["name"])
	assert.NotEmpty(t, event["event_id"])
}

func TestLogUseCaseObserver_LogsErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.ErrorLevel)
	env := newTestEnv(t, NewLogUseCaseObserver(logger))

	err := env.items.SetProgress(context.Background(), 1, 500)
	require.ErrorIs(t, err, domain.ErrValidation)

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "error", event["level"])
	assert.Equal(t, false, event["success"])
	assert.Contains(t, event["error"], "percent")
}

func TestMetricsObserver_CountsByResult(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := NewMetricsObserver(reg)
	require.NoError(t, err)
	env := newTestEnv(t, metrics)
	ctx := context.Background()

	require.NoError(t, env.items.Create(ctx, testutil.NewTestItem("a")))
	require.NoError(t, env.items.Create(ctx, testutil.NewTestItem("b")))
	require.Error(t, env.items.Create(ctx, testutil.NewTestItem("")))

	assert.Equal(t, 2.0, promtest.ToFloat64(metrics.calls.WithLabelValues("item-create", "success")))
	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.calls.WithLabelValues("item-create", "error")))

	_, err = NewMetricsObserver(reg)
	assert.Error(t, err, "registering twice on the same registry fails")
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop([]UseCaseObserver{nil}))

	single := NoopUseCaseObserver{}
	assert.Equal(t, single, useCaseObserverOrNoop([]UseCaseObserver{nil, single}))
	assert.IsType(t, MultiUseCaseObserver{}, useCaseObserverOrNoop([]UseCaseObserver{single, single}))
}
