// Copyright 2026 fanjia1024
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package diar

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"speech-engine/internal/audio"
	"speech-engine/internal/engine/model"
	enginepipeline "speech-engine/internal/engine/pipeline"
	"speech-engine/pkg/errors"
	"speech-engine/pkg/log"
	"speech-engine/pkg/utils"
)

// Pipeline 说话人分离管线，实现 runner 契约
type Pipeline struct {
	models  *model.Manager
	decoder audio.Decoder
	logger  *log.Logger
}

func NewPipeline(models *model.Manager, decoder audio.Decoder, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.Nop()
	}
	return &Pipeline{models: models, decoder: decoder, logger: logger}
}

type resultManifest struct {
	ModelID       string          `json:"model_id"`
	ModelName     string          `json:"model_name"`
	AudioPath     string          `json:"audio_path"`
	OutputDir     string          `json:"output_dir"`
	SegmentCount  int             `json:"segment_count"`
	AudioSeconds  float64         `json:"audio_seconds"`
	CreatedUnixMs int64           `json:"created_unix_ms"`
	Params        manifestParams  `json:"params"`
	Outputs       manifestOutputs `json:"outputs"`
}

type manifestParams struct {
	OutputFormat         string   `json:"output_format"`
	MinSpeakers          *int     `json:"min_speakers"`
	MaxSpeakers          *int     `json:"max_speakers"`
	SegmentationOnset    *float64 `json:"segmentation_onset"`
	SegmentationOffset   *float64 `json:"segmentation_offset"`
	BatchSize            int      `json:"batch_size"`
	StreamingMode        bool     `json:"streaming_mode"`
	ChunkLengthS         float64  `json:"chunk_length_s"`
	ChunkLen             int      `json:"chunk_len"`
	ChunkRightContext    int      `json:"chunk_right_context"`
	FifoLen              int      `json:"fifo_len"`
	SpkCacheUpdatePeriod int      `json:"spkcache_update_period"`
}

type manifestOutputs struct {
	Diarization string `json:"diarization"`
	RTTM        string `json:"rttm"`
}

// Run 执行一次分离 Job；返回产物路径映射
func (p *Pipeline) Run(ctx context.Context, job enginepipeline.Job[JobParams], token *enginepipeline.CancelToken, progress enginepipeline.ProgressFunc) (enginepipeline.Outputs, error) {
	params := job.Params
	if err := utils.EnsureDir(job.OutputDir); err != nil {
		return nil, err
	}

	loaded := p.models.GetLoaded()
	if loaded == nil {
		return nil, errors.ErrNoModelLoaded
	}
	progress(0, "diarizing")

	// model 参数覆盖已加载模型名时重建 spec 并确保加载
	spec := loaded.Spec
	if params.Model != "" && params.Model != spec.ModelName {
		spec.ModelName = params.Model
	}
	loaded, err := p.models.EnsureLoaded(spec, params.HFToken)
	if err != nil {
		return nil, err
	}

	// 时长来自文件头；失败容忍为 0
	audioSeconds, err := p.decoder.DurationSeconds(job.InputPath)
	if err != nil {
		audioSeconds = 0
	}

	segments, err := p.runInference(loaded, job.InputPath, params)
	if err != nil {
		return nil, err
	}
	if token.Cancelled() {
		return nil, errors.ErrCancelled
	}

	return p.writeOutputs(job, loaded, params, segments, audioSeconds, progress)
}

// runInference 按模型类别分派
func (p *Pipeline) runInference(loaded *model.Loaded, inputPath string, params JobParams) ([]Segment, error) {
	switch loaded.Kind {
	case "pyannote":
		m, ok := loaded.Handle.(PyannoteModel)
		if !ok {
			return nil, errors.Wrapf(errors.ErrUnsupportedModel, "model %s: handle is not a pyannote pipeline", loaded.Spec.ModelID)
		}
		segs, err := m.Diarize(inputPath, PyannoteOptions{
			Device:                  resolveDevice(params.Device),
			TorchThreads:            params.TorchThreads,
			TorchInteropThreads:     params.TorchInteropThreads,
			SegmentationOnset:       params.SegmentationOnset,
			SegmentationOffset:      params.SegmentationOffset,
			MinSpeakers:             params.MinSpeakers,
			MaxSpeakers:             params.MaxSpeakers,
			SegmentationBatchSize:   params.SegmentationBatchSize,
			EmbeddingBatchSize:      params.EmbeddingBatchSize,
			EmbeddingExcludeOverlap: params.EmbeddingExcludeOverlap,
			Exclusive:               params.Exclusive,
		})
		if err != nil {
			return nil, err
		}
		return sortSegments(segs), nil
	case "sortformer":
		m, ok := loaded.Handle.(SortformerModel)
		if !ok {
			return nil, errors.Wrapf(errors.ErrUnsupportedModel, "model %s: handle is not a sortformer model", loaded.Spec.ModelID)
		}
		if params.StreamingMode {
			if streamer, ok := m.(SortformerStreamer); ok {
				streamer.SetupStreamingParams(StreamingParams{
					ChunkLen:             params.ChunkLen,
					ChunkRightContext:    params.ChunkRightContext,
					FifoLen:              params.FifoLen,
					SpkCacheUpdatePeriod: params.SpkCacheUpdatePeriod,
				})
			}
		}
		raw, err := m.Diarize(inputPath, params.BatchSize)
		if err != nil {
			return nil, err
		}
		return normalizeSegments(raw), nil
	}
	return nil, errors.Wrapf(errors.ErrUnsupportedModel, "unknown diarization model kind: %s", loaded.Kind)
}

func (p *Pipeline) writeOutputs(job enginepipeline.Job[JobParams], loaded *model.Loaded, params JobParams, segments []Segment, audioSeconds float64, progress enginepipeline.ProgressFunc) (enginepipeline.Outputs, error) {
	diarizationPath := filepath.Join(job.OutputDir, "diarization.json")
	rttmPath := filepath.Join(job.OutputDir, "diarization.rttm")
	resultPath := filepath.Join(job.OutputDir, "result.json")

	payload := buildPayload(job.InputPath, loaded.Spec.ModelID, loaded.Spec.ModelName, segments, audioSeconds)
	buf, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(diarizationPath, buf, 0o644); err != nil {
		return nil, err
	}

	outputs := enginepipeline.Outputs{
		"diarization": diarizationPath,
		"result":      resultPath,
	}
	rttmWritten := ""
	if strings.EqualFold(params.OutputFormat, "rttm") {
		if err := WriteRTTM(rttmPath, job.InputPath, segments); err != nil {
			return nil, err
		}
		rttmWritten = rttmPath
		outputs["rttm"] = rttmPath
	}

	manifest := resultManifest{
		ModelID:       loaded.Spec.ModelID,
		ModelName:     loaded.Spec.ModelName,
		AudioPath:     job.InputPath,
		OutputDir:     job.OutputDir,
		SegmentCount:  len(segments),
		AudioSeconds:  audioSeconds,
		CreatedUnixMs: utils.NowMs(),
		Params: manifestParams{
			OutputFormat:         params.OutputFormat,
			MinSpeakers:          params.MinSpeakers,
			MaxSpeakers:          params.MaxSpeakers,
			SegmentationOnset:    params.SegmentationOnset,
			SegmentationOffset:   params.SegmentationOffset,
			BatchSize:            params.BatchSize,
			StreamingMode:        params.StreamingMode,
			ChunkLengthS:         params.ChunkLengthS,
			ChunkLen:             params.ChunkLen,
			ChunkRightContext:    params.ChunkRightContext,
			FifoLen:              params.FifoLen,
			SpkCacheUpdatePeriod: params.SpkCacheUpdatePeriod,
		},
		Outputs: manifestOutputs{
			Diarization: diarizationPath,
			RTTM:        rttmWritten,
		},
	}
	buf, err = json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(resultPath, buf, 0o644); err != nil {
		return nil, err
	}

	progress(1, "diarization complete")
	p.logger.Info("diarization written",
		"job_id", job.ID, "segments", len(segments), "speakers", payload.SpeakerCount)
	return outputs, nil
}

// resolveDevice 归一化 device 取值；空串视为 auto
func resolveDevice(device string) string {
	if device == "" {
		return "auto"
	}
	return strings.ToLower(device)
}

// sortSegments 按 start 升序并补全 duration/confidence 缺省值
func sortSegments(segs []Segment) []Segment {
	for i := range segs {
		if segs[i].Duration == 0 {
			segs[i].Duration = segs[i].End - segs[i].Start
		}
		if segs[i].Confidence == 0 {
			segs[i].Confidence = 1.0
		}
	}
	sort.Slice(segs, func(i, j int) bool { return segs[i].Start < segs[j].Start })
	return segs
}
