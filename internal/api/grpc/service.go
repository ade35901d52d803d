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

// Package grpc 把 AsrEngine 服务方法翻译为引擎运行时调用；
// ASR 与分离引擎共用本实现，仅注入的管线与参数解析不同。
package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"speech-engine/internal/api/grpc/pb"
	"speech-engine/internal/engine/model"
	"speech-engine/internal/engine/pipeline"
	"speech-engine/internal/engine/runner"
	"speech-engine/internal/engine/status"
	"speech-engine/pkg/log"
	"speech-engine/pkg/metrics"
	"speech-engine/pkg/tracing"
	"speech-engine/pkg/utils"
)

// ParamsParser 把 StartJob 的 string map 解析成引擎自己的参数类型
type ParamsParser[P any] func(map[string]string) P

// Service AsrEngine 服务实现；P 为引擎参数类型
type Service[P any] struct {
	pb.UnimplementedAsrEngineServer

	models *model.Manager
	runner *runner.Runner[P]
	store  *status.Store
	parse  ParamsParser[P]
	logger *log.Logger
}

func NewService[P any](models *model.Manager, r *runner.Runner[P], store *status.Store, parse ParamsParser[P], logger *log.Logger) *Service[P] {
	if logger == nil {
		logger = log.Nop()
	}
	return &Service[P]{
		models: models,
		runner: r,
		store:  store,
		parse:  parse,
		logger: logger,
	}
}

// LoadModel 校验并替换模型槽位；加载时长可达分钟级，阻塞本 RPC
func (s *Service[P]) LoadModel(ctx context.Context, req *pb.LoadModelRequest) (*pb.LoadModelResponse, error) {
	spec := req.GetSpec()
	if spec.GetModelId() == "" {
		return nil, grpcstatus.Error(codes.InvalidArgument, "model_id is required")
	}
	if spec.GetModelName() == "" {
		return nil, grpcstatus.Error(codes.InvalidArgument, "model_name is required")
	}

	_, span := tracing.StartLoadSpan(ctx, spec.GetModelId(), spec.GetModelName())
	defer span.End()

	loaded, err := s.models.Load(model.Spec{
		ModelID:        spec.GetModelId(),
		ModelName:      spec.GetModelName(),
		ModelPath:      spec.GetModelPath(),
		Providers:      spec.GetProviders(),
		IntraOpThreads: utils.DefaultInt(int(spec.GetIntraOpThreads()), 8),
		VADBackend:     utils.CoalesceString(spec.GetVadBackend(), "silero"),
	}, "")
	if err != nil {
		s.logger.Error("model load failed", "model_id", spec.GetModelId(), "error", err)
		return nil, grpcstatus.Error(codes.Internal, err.Error())
	}

	s.logger.Info("model loaded", "model_id", loaded.Spec.ModelID, "model_name", loaded.Spec.ModelName)
	return &pb.LoadModelResponse{ModelId: loaded.Spec.ModelID, Ok: true, Message: "loaded"}, nil
}

// UnloadModel 卸载失败不算 RPC 错误，以 ok=false 表达
func (s *Service[P]) UnloadModel(ctx context.Context, req *pb.UnloadModelRequest) (*pb.UnloadModelResponse, error) {
	if !s.models.Unload(req.GetModelId()) {
		return &pb.UnloadModelResponse{Ok: false, Message: "not_loaded"}, nil
	}
	return &pb.UnloadModelResponse{Ok: true, Message: "unloaded"}, nil
}

// StartJob 单槽位调度：无模型 FAILED_PRECONDITION，占用中 RESOURCE_EXHAUSTED
func (s *Service[P]) StartJob(ctx context.Context, req *pb.StartJobRequest) (*pb.StartJobResponse, error) {
	loaded := s.models.GetLoaded()
	if loaded == nil {
		return nil, grpcstatus.Error(codes.FailedPrecondition, "no model loaded")
	}
	if req.GetModelId() != "" && req.GetModelId() != loaded.Spec.ModelID {
		return nil, grpcstatus.Error(codes.InvalidArgument, "model_id mismatch")
	}

	job := pipeline.Job[P]{
		ID:        req.GetJobId(),
		InputPath: req.GetInputPath(),
		OutputDir: req.GetOutputDir(),
		ModelID:   loaded.Spec.ModelID,
		Params:    s.parse(req.GetParams()),
		RawParams: req.GetParams(),
	}
	if !s.runner.StartJob(job) {
		return nil, grpcstatus.Error(codes.ResourceExhausted, "engine busy")
	}

	s.logger.Info("job accepted", "job_id", req.GetJobId(), "input", req.GetInputPath())
	return &pb.StartJobResponse{JobId: req.GetJobId(), Accepted: true, Message: "started"}, nil
}

// StopJob 非活跃 Job 返回 ok=false
func (s *Service[P]) StopJob(ctx context.Context, req *pb.StopJobRequest) (*pb.StopJobResponse, error) {
	if !s.runner.StopJob(req.GetJobId()) {
		return &pb.StopJobResponse{Ok: false, Message: "not_running"}, nil
	}
	return &pb.StopJobResponse{Ok: true, Message: "stopping"}, nil
}

func (s *Service[P]) GetJobStatus(ctx context.Context, req *pb.GetJobStatusRequest) (*pb.JobStatus, error) {
	st, ok := s.store.Get(req.GetJobId())
	if !ok {
		return nil, grpcstatus.Error(codes.NotFound, "job not found")
	}
	return statusToPB(st), nil
}

// StreamJobStatus 先回放当前状态再推送更新；终态、客户端取消或
// RPC 上下文失效时结束流，所有退出路径都退订。
func (s *Service[P]) StreamJobStatus(req *pb.StreamJobStatusRequest, stream pb.AsrEngine_StreamJobStatusServer) error {
	sink := s.store.Subscribe(req.GetJobId())
	defer s.store.Unsubscribe(req.GetJobId(), sink)

	ctx := stream.Context()
	for {
		select {
		case st := <-sink.C:
			if err := stream.Send(statusToPB(st)); err != nil {
				return err
			}
			if st.State.Terminal() {
				return nil
			}
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *Service[P]) ListLoadedModels(ctx context.Context, req *pb.ListLoadedModelsRequest) (*pb.ListLoadedModelsResponse, error) {
	loaded := s.models.GetLoaded()
	if loaded == nil {
		return &pb.ListLoadedModelsResponse{Models: []*pb.ModelSpec{}}, nil
	}
	spec := loaded.Spec
	return &pb.ListLoadedModelsResponse{
		Models: []*pb.ModelSpec{{
			ModelId:        spec.ModelID,
			ModelName:      spec.ModelName,
			ModelPath:      spec.ModelPath,
			Providers:      spec.Providers,
			IntraOpThreads: int32(spec.IntraOpThreads),
			VadBackend:     spec.VADBackend,
		}},
	}, nil
}

func (s *Service[P]) GetEngineInfo(ctx context.Context, req *pb.GetEngineInfoRequest) (*pb.GetEngineInfoResponse, error) {
	activeJobID := s.runner.ActiveJobID()
	loadedModelID := ""
	if loaded := s.models.GetLoaded(); loaded != nil {
		loadedModelID = loaded.Spec.ModelID
	}
	return &pb.GetEngineInfoResponse{
		Busy:          activeJobID != "",
		ActiveJobId:   activeJobID,
		LoadedModelId: loadedModelID,
		RssBytes:      metrics.RSSBytes(),
	}, nil
}

var stateToPB = map[status.State]pb.JobState{
	status.StateQueued:    pb.JobState_JOB_STATE_QUEUED,
	status.StateRunning:   pb.JobState_JOB_STATE_RUNNING,
	status.StateCompleted: pb.JobState_JOB_STATE_COMPLETED,
	status.StateFailed:    pb.JobState_JOB_STATE_FAILED,
	status.StateCancelled: pb.JobState_JOB_STATE_CANCELLED,
}

func statusToPB(st status.JobStatus) *pb.JobStatus {
	state, ok := stateToPB[st.State]
	if !ok {
		state = pb.JobState_JOB_STATE_UNSPECIFIED
	}
	return &pb.JobStatus{
		JobId:          st.JobID,
		State:          state,
		Message:        st.Message,
		Progress:       st.Progress,
		Outputs:        st.Outputs,
		StartedUnixMs:  st.StartedUnixMs,
		FinishedUnixMs: st.FinishedUnixMs,
	}
}
