package deltastep_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deltastep/deltastep"
)

func TestBasicObserver_CountsRunsAndErrors(t *testing.T) {
	var obs deltastep.BasicObserver
	g := scenarioA(t)

	res, err := deltastep.Run(g, 0, 1, deltastep.WithObserver(&obs))
	require.NoError(t, err)
	_, err = deltastep.ParallelDeltaStepping(g, 0, 1, 2, deltastep.WithObserver(&obs))
	require.NoError(t, err)
	_, err = deltastep.DeltaStepping(g, 0, -1, deltastep.WithObserver(&obs))
	require.ErrorIs(t, err, deltastep.ErrInvalidDelta)

	require.Equal(t, int64(3), obs.Runs.Load())
	require.Equal(t, int64(1), obs.Errors.Load())
	// Both successful runs scan the same edges on this graph.
	require.Equal(t, 2*res.Stats.LightRelaxations, obs.LightRelaxations.Load())
	require.Equal(t, 2*res.Stats.HeavyRelaxations, obs.HeavyRelaxations.Load())
	require.Equal(t, 2*res.Stats.Buckets, obs.Buckets.Load())
}

// recordingObserver keeps every RunInfo it receives.
type recordingObserver struct{ infos []deltastep.RunInfo }

func (r *recordingObserver) RecordRun(info deltastep.RunInfo) { r.infos = append(r.infos, info) }

func TestObserver_ReceivesRunInfo(t *testing.T) {
	rec := &recordingObserver{}
	_, err := deltastep.ParallelDeltaStepping(scenarioA(t), 0, 0.5, 3, deltastep.WithObserver(rec))
	require.NoError(t, err)
	_, err = deltastep.ParallelDeltaStepping(nil, 0, 0.5, 3, deltastep.WithObserver(rec))
	require.Error(t, err)

	require.Len(t, rec.infos, 2)
	ok := rec.infos[0]
	require.Equal(t, deltastep.ModeParallel, ok.Mode)
	require.Equal(t, 3, ok.Workers)
	require.Equal(t, 4, ok.Nodes)
	require.Equal(t, 4, ok.Edges)
	require.Equal(t, float32(0.5), ok.Delta)
	require.Equal(t, 4, ok.Stats.Reached)
	require.NoError(t, ok.Err)

	failed := rec.infos[1]
	require.Zero(t, failed.Nodes)
	require.Error(t, failed.Err)
}

func TestWithLogger_EmitsDebugSummary(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := deltastep.DeltaStepping(scenarioA(t), 0, 1, deltastep.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "delta-stepping run started")
	require.Contains(t, out, "delta-stepping run finished")
	require.Contains(t, out, "mode=sequential")
	require.Contains(t, out, "reached=4")
}

func TestModeAndPhaseStrings(t *testing.T) {
	require.Equal(t, "sequential", deltastep.ModeSequential.String())
	require.Equal(t, "parallel", deltastep.ModeParallel.String())
	require.Equal(t, "mode(7)", deltastep.Mode(7).String())
	require.Equal(t, "find-bucket", deltastep.PhaseFindBucket.String())
	require.Equal(t, "light", deltastep.PhaseLight.String())
	require.Equal(t, "heavy", deltastep.PhaseHeavy.String())
	require.Equal(t, "done", deltastep.PhaseDone.String())
}
