package diar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speech-engine/internal/engine/model"
	enginepipeline "speech-engine/internal/engine/pipeline"
	"speech-engine/pkg/errors"
)

type fakeDecoder struct {
	duration float64
	err      error
}

func (d fakeDecoder) Decode(path string, sampleRate int) ([]float32, int, error) {
	return nil, 0, fmt.Errorf("not used")
}

func (d fakeDecoder) DurationSeconds(path string) (float64, error) {
	return d.duration, d.err
}

type fakePyannote struct {
	segs    []Segment
	err     error
	gotOpts []PyannoteOptions
}

func (f *fakePyannote) Diarize(path string, opts PyannoteOptions) ([]Segment, error) {
	f.gotOpts = append(f.gotOpts, opts)
	return f.segs, f.err
}

type fakeSortformer struct {
	raw       []any
	err       error
	gotBatch  int
	streaming *StreamingParams
}

func (f *fakeSortformer) Diarize(path string, batchSize int) ([]any, error) {
	f.gotBatch = batchSize
	return f.raw, f.err
}

func (f *fakeSortformer) SetupStreamingParams(p StreamingParams) {
	f.streaming = &p
}

func managerFor(t *testing.T, kind string, handle any) *model.Manager {
	t.Helper()
	m := model.NewManager(func(spec model.Spec, token string) (*model.Loaded, error) {
		return &model.Loaded{Kind: kind, Handle: handle}, nil
	})
	_, err := m.Load(model.Spec{ModelID: kind, ModelName: kind + "-default"}, "")
	require.NoError(t, err)
	return m
}

func runJob(t *testing.T, p *Pipeline, kv map[string]string, token *enginepipeline.CancelToken) (enginepipeline.Outputs, string, error) {
	t.Helper()
	if token == nil {
		token = enginepipeline.NewCancelToken()
	}
	outDir := t.TempDir()
	outputs, err := p.Run(context.Background(),
		enginepipeline.Job[JobParams]{
			ID:        "d1",
			InputPath: "/in/meeting.wav",
			OutputDir: outDir,
			Params:    ParseParams(kv),
		},
		token,
		func(float64, string) {},
	)
	return outputs, outDir, err
}

func TestPyannoteHappyPath(t *testing.T) {
	py := &fakePyannote{segs: []Segment{
		{Start: 2.0, End: 3.0, Speaker: "speaker_1"},
		{Start: 0.0, End: 1.5, Speaker: "speaker_0"},
	}}
	p := NewPipeline(managerFor(t, "pyannote", py), fakeDecoder{duration: 4.0}, nil)

	outputs, _, err := runJob(t, p, map[string]string{"min_speakers": "1", "max_speakers": "3"}, nil)
	require.NoError(t, err)
	require.Contains(t, outputs, "diarization")
	require.Contains(t, outputs, "rttm")
	require.Contains(t, outputs, "result")

	// 调节项透传
	require.Len(t, py.gotOpts, 1)
	opts := py.gotOpts[0]
	require.NotNil(t, opts.MinSpeakers)
	assert.Equal(t, 1, *opts.MinSpeakers)
	require.NotNil(t, opts.MaxSpeakers)
	assert.Equal(t, 3, *opts.MaxSpeakers)
	require.NotNil(t, opts.SegmentationOnset)
	assert.InDelta(t, 0.5, *opts.SegmentationOnset, 1e-9)
	assert.True(t, opts.Exclusive)
	assert.Equal(t, "auto", opts.Device)

	// 段按 start 排序写入
	var payload diarizationPayload
	buf, err := os.ReadFile(outputs["diarization"])
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(buf, &payload))
	require.Len(t, payload.Segments, 2)
	assert.Equal(t, "speaker_0", payload.Segments[0].Speaker)
	assert.Equal(t, 2, payload.SpeakerCount)
	assert.InDelta(t, 4.0, payload.TotalDuration, 1e-9)
}

func TestJSONOutputFormatSkipsRTTM(t *testing.T) {
	py := &fakePyannote{segs: []Segment{{Start: 0, End: 1, Speaker: "s"}}}
	p := NewPipeline(managerFor(t, "pyannote", py), fakeDecoder{duration: 1}, nil)

	outputs, outDir, err := runJob(t, p, map[string]string{"output_format": "json"}, nil)
	require.NoError(t, err)
	assert.NotContains(t, outputs, "rttm")
	assert.NoFileExists(t, filepath.Join(outDir, "diarization.rttm"))

	var manifest resultManifest
	buf, err := os.ReadFile(outputs["result"])
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(buf, &manifest))
	assert.Empty(t, manifest.Outputs.RTTM)
	assert.Equal(t, "json", manifest.Params.OutputFormat)
}

func TestSortformerStreaming(t *testing.T) {
	sf := &fakeSortformer{raw: []any{"0.0 1.0 speaker_0", "1.5 2.0 speaker_1"}}
	p := NewPipeline(managerFor(t, "sortformer", sf), fakeDecoder{duration: 2}, nil)

	outputs, _, err := runJob(t, p, map[string]string{
		"streaming_mode": "true",
		"batch_size":     "4",
		"chunk_len":      "188",
		"fifo_len":       "188",
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, sf.streaming)
	assert.Equal(t, 188, sf.streaming.ChunkLen)
	assert.Equal(t, 188, sf.streaming.FifoLen)
	assert.Equal(t, 40, sf.streaming.ChunkRightContext)
	assert.Equal(t, 300, sf.streaming.SpkCacheUpdatePeriod)
	assert.Equal(t, 4, sf.gotBatch)

	var payload diarizationPayload
	buf, err := os.ReadFile(outputs["diarization"])
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(buf, &payload))
	assert.Len(t, payload.Segments, 2)
}

func TestSortformerNonStreamingSkipsSetup(t *testing.T) {
	sf := &fakeSortformer{raw: []any{"0 1 x"}}
	p := NewPipeline(managerFor(t, "sortformer", sf), fakeDecoder{duration: 1}, nil)
	_, _, err := runJob(t, p, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, sf.streaming)
	assert.Equal(t, 1, sf.gotBatch)
}

func TestUnknownModelKind(t *testing.T) {
	p := NewPipeline(managerFor(t, "whisperx", struct{}{}), fakeDecoder{}, nil)
	_, _, err := runJob(t, p, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnsupportedModel))
}

func TestNoModelLoaded(t *testing.T) {
	m := model.NewManager(func(model.Spec, string) (*model.Loaded, error) {
		return nil, fmt.Errorf("unused")
	})
	p := NewPipeline(m, fakeDecoder{}, nil)
	_, _, err := runJob(t, p, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNoModelLoaded))
}

func TestCancelledAfterInference(t *testing.T) {
	py := &fakePyannote{segs: []Segment{{Start: 0, End: 1, Speaker: "s"}}}
	p := NewPipeline(managerFor(t, "pyannote", py), fakeDecoder{duration: 1}, nil)

	token := enginepipeline.NewCancelToken()
	token.Cancel()
	_, outDir, err := runJob(t, p, nil, token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCancelled))
	// 取消后不落盘
	assert.NoFileExists(t, filepath.Join(outDir, "diarization.json"))
	assert.NoFileExists(t, filepath.Join(outDir, "result.json"))
}

func TestInferenceErrorFailsJob(t *testing.T) {
	py := &fakePyannote{err: fmt.Errorf("cuda out of memory")}
	p := NewPipeline(managerFor(t, "pyannote", py), fakeDecoder{duration: 1}, nil)
	_, _, err := runJob(t, p, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cuda out of memory")
}

func TestDurationReadFailureTolerated(t *testing.T) {
	py := &fakePyannote{segs: []Segment{{Start: 0, End: 1, Speaker: "s"}}}
	p := NewPipeline(managerFor(t, "pyannote", py), fakeDecoder{err: fmt.Errorf("no header")}, nil)

	outputs, _, err := runJob(t, p, nil, nil)
	require.NoError(t, err)

	var payload diarizationPayload
	buf, err := os.ReadFile(outputs["diarization"])
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(buf, &payload))
	assert.Zero(t, payload.TotalDuration)
}

func TestPyannoteTokenChangeReloads(t *testing.T) {
	loads := 0
	m := model.NewManager(func(spec model.Spec, token string) (*model.Loaded, error) {
		loads++
		return &model.Loaded{Kind: "pyannote", Handle: &fakePyannote{}}, nil
	})
	_, err := m.Load(model.Spec{ModelID: "pyannote", ModelName: "pyannote/sd-3.1"}, "tok1")
	require.NoError(t, err)
	p := NewPipeline(m, fakeDecoder{duration: 1}, nil)

	_, _, err = runJob(t, p, map[string]string{"hf_token": "tok2"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, loads)

	_, _, err = runJob(t, p, map[string]string{"hf_token": "tok2"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, loads)
}
