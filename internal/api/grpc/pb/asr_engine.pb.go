// Generated manually from api/proto/asr_engine.proto to avoid requiring
// protoc at build time. Field numbers must stay in sync with the proto file;
// the protobuf runtime derives the wire format from the struct tags.

package pb

import (
	"fmt"
)

// JobState Job 状态机的线上枚举值
type JobState int32

const (
	JobState_JOB_STATE_UNSPECIFIED JobState = 0
	JobState_JOB_STATE_QUEUED      JobState = 1
	JobState_JOB_STATE_RUNNING     JobState = 2
	JobState_JOB_STATE_COMPLETED   JobState = 3
	JobState_JOB_STATE_FAILED      JobState = 4
	JobState_JOB_STATE_CANCELLED   JobState = 5
)

var JobState_name = map[int32]string{
	0: "JOB_STATE_UNSPECIFIED",
	1: "JOB_STATE_QUEUED",
	2: "JOB_STATE_RUNNING",
	3: "JOB_STATE_COMPLETED",
	4: "JOB_STATE_FAILED",
	5: "JOB_STATE_CANCELLED",
}

var JobState_value = map[string]int32{
	"JOB_STATE_UNSPECIFIED": 0,
	"JOB_STATE_QUEUED":      1,
	"JOB_STATE_RUNNING":     2,
	"JOB_STATE_COMPLETED":   3,
	"JOB_STATE_FAILED":      4,
	"JOB_STATE_CANCELLED":   5,
}

func (x JobState) String() string {
	if name, ok := JobState_name[int32(x)]; ok {
		return name
	}
	return fmt.Sprintf("JobState(%d)", int32(x))
}

type ModelSpec struct {
	ModelId        string   `protobuf:"bytes,1,opt,name=model_id,json=modelId,proto3" json:"model_id,omitempty"`
	ModelName      string   `protobuf:"bytes,2,opt,name=model_name,json=modelName,proto3" json:"model_name,omitempty"`
	ModelPath      string   `protobuf:"bytes,3,opt,name=model_path,json=modelPath,proto3" json:"model_path,omitempty"`
	Providers      []string `protobuf:"bytes,4,rep,name=providers,proto3" json:"providers,omitempty"`
	IntraOpThreads int32    `protobuf:"varint,5,opt,name=intra_op_threads,json=intraOpThreads,proto3" json:"intra_op_threads,omitempty"`
	VadBackend     string   `protobuf:"bytes,6,opt,name=vad_backend,json=vadBackend,proto3" json:"vad_backend,omitempty"`
}

func (m *ModelSpec) Reset()         { *m = ModelSpec{} }
func (m *ModelSpec) String() string { return fmt.Sprintf("%+v", *m) }
func (*ModelSpec) ProtoMessage()    {}

func (m *ModelSpec) GetModelId() string {
	if m != nil {
		return m.ModelId
	}
	return ""
}

func (m *ModelSpec) GetModelName() string {
	if m != nil {
		return m.ModelName
	}
	return ""
}

func (m *ModelSpec) GetModelPath() string {
	if m != nil {
		return m.ModelPath
	}
	return ""
}

func (m *ModelSpec) GetProviders() []string {
	if m != nil {
		return m.Providers
	}
	return nil
}

func (m *ModelSpec) GetIntraOpThreads() int32 {
	if m != nil {
		return m.IntraOpThreads
	}
	return 0
}

func (m *ModelSpec) GetVadBackend() string {
	if m != nil {
		return m.VadBackend
	}
	return ""
}

type LoadModelRequest struct {
	Spec *ModelSpec `protobuf:"bytes,1,opt,name=spec,proto3" json:"spec,omitempty"`
}

func (m *LoadModelRequest) Reset()         { *m = LoadModelRequest{} }
func (m *LoadModelRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*LoadModelRequest) ProtoMessage()    {}

func (m *LoadModelRequest) GetSpec() *ModelSpec {
	if m != nil {
		return m.Spec
	}
	return nil
}

type LoadModelResponse struct {
	ModelId string `protobuf:"bytes,1,opt,name=model_id,json=modelId,proto3" json:"model_id,omitempty"`
	Ok      bool   `protobuf:"varint,2,opt,name=ok,proto3" json:"ok,omitempty"`
	Message string `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *LoadModelResponse) Reset()         { *m = LoadModelResponse{} }
func (m *LoadModelResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*LoadModelResponse) ProtoMessage()    {}

func (m *LoadModelResponse) GetModelId() string {
	if m != nil {
		return m.ModelId
	}
	return ""
}

func (m *LoadModelResponse) GetOk() bool {
	if m != nil {
		return m.Ok
	}
	return false
}

func (m *LoadModelResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

type UnloadModelRequest struct {
	ModelId string `protobuf:"bytes,1,opt,name=model_id,json=modelId,proto3" json:"model_id,omitempty"`
}

func (m *UnloadModelRequest) Reset()         { *m = UnloadModelRequest{} }
func (m *UnloadModelRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*UnloadModelRequest) ProtoMessage()    {}

func (m *UnloadModelRequest) GetModelId() string {
	if m != nil {
		return m.ModelId
	}
	return ""
}

type UnloadModelResponse struct {
	Ok      bool   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *UnloadModelResponse) Reset()         { *m = UnloadModelResponse{} }
func (m *UnloadModelResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*UnloadModelResponse) ProtoMessage()    {}

func (m *UnloadModelResponse) GetOk() bool {
	if m != nil {
		return m.Ok
	}
	return false
}

func (m *UnloadModelResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

type StartJobRequest struct {
	JobId     string            `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	InputPath string            `protobuf:"bytes,2,opt,name=input_path,json=inputPath,proto3" json:"input_path,omitempty"`
	OutputDir string            `protobuf:"bytes,3,opt,name=output_dir,json=outputDir,proto3" json:"output_dir,omitempty"`
	ModelId   string            `protobuf:"bytes,4,opt,name=model_id,json=modelId,proto3" json:"model_id,omitempty"`
	Params    map[string]string `protobuf:"bytes,5,rep,name=params,proto3" json:"params,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
}

func (m *StartJobRequest) Reset()         { *m = StartJobRequest{} }
func (m *StartJobRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*StartJobRequest) ProtoMessage()    {}

func (m *StartJobRequest) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}

func (m *StartJobRequest) GetInputPath() string {
	if m != nil {
		return m.InputPath
	}
	return ""
}

func (m *StartJobRequest) GetOutputDir() string {
	if m != nil {
		return m.OutputDir
	}
	return ""
}

func (m *StartJobRequest) GetModelId() string {
	if m != nil {
		return m.ModelId
	}
	return ""
}

func (m *StartJobRequest) GetParams() map[string]string {
	if m != nil {
		return m.Params
	}
	return nil
}

type StartJobResponse struct {
	JobId    string `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Accepted bool   `protobuf:"varint,2,opt,name=accepted,proto3" json:"accepted,omitempty"`
	Message  string `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *StartJobResponse) Reset()         { *m = StartJobResponse{} }
func (m *StartJobResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*StartJobResponse) ProtoMessage()    {}

func (m *StartJobResponse) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}

func (m *StartJobResponse) GetAccepted() bool {
	if m != nil {
		return m.Accepted
	}
	return false
}

func (m *StartJobResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

type StopJobRequest struct {
	JobId string `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
}

func (m *StopJobRequest) Reset()         { *m = StopJobRequest{} }
func (m *StopJobRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*StopJobRequest) ProtoMessage()    {}

func (m *StopJobRequest) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}

type StopJobResponse struct {
	Ok      bool   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *StopJobResponse) Reset()         { *m = StopJobResponse{} }
func (m *StopJobResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*StopJobResponse) ProtoMessage()    {}

func (m *StopJobResponse) GetOk() bool {
	if m != nil {
		return m.Ok
	}
	return false
}

func (m *StopJobResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

type GetJobStatusRequest struct {
	JobId string `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
}

func (m *GetJobStatusRequest) Reset()         { *m = GetJobStatusRequest{} }
func (m *GetJobStatusRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetJobStatusRequest) ProtoMessage()    {}

func (m *GetJobStatusRequest) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}

type StreamJobStatusRequest struct {
	JobId string `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
}

func (m *StreamJobStatusRequest) Reset()         { *m = StreamJobStatusRequest{} }
func (m *StreamJobStatusRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*StreamJobStatusRequest) ProtoMessage()    {}

func (m *StreamJobStatusRequest) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}

type JobStatus struct {
	JobId          string            `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	State          JobState          `protobuf:"varint,2,opt,name=state,proto3,enum=asrengine.JobState" json:"state,omitempty"`
	Message        string            `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	Progress       float64           `protobuf:"fixed64,4,opt,name=progress,proto3" json:"progress,omitempty"`
	Outputs        map[string]string `protobuf:"bytes,5,rep,name=outputs,proto3" json:"outputs,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
	StartedUnixMs  int64             `protobuf:"varint,6,opt,name=started_unix_ms,json=startedUnixMs,proto3" json:"started_unix_ms,omitempty"`
	FinishedUnixMs int64             `protobuf:"varint,7,opt,name=finished_unix_ms,json=finishedUnixMs,proto3" json:"finished_unix_ms,omitempty"`
}

func (m *JobStatus) Reset()         { *m = JobStatus{} }
func (m *JobStatus) String() string { return fmt.Sprintf("%+v", *m) }
func (*JobStatus) ProtoMessage()    {}

func (m *JobStatus) GetJobId() string {
	if m != nil {
		return m.JobId
	}
	return ""
}

func (m *JobStatus) GetState() JobState {
	if m != nil {
		return m.State
	}
	return JobState_JOB_STATE_UNSPECIFIED
}

func (m *JobStatus) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

func (m *JobStatus) GetProgress() float64 {
	if m != nil {
		return m.Progress
	}
	return 0
}

func (m *JobStatus) GetOutputs() map[string]string {
	if m != nil {
		return m.Outputs
	}
	return nil
}

func (m *JobStatus) GetStartedUnixMs() int64 {
	if m != nil {
		return m.StartedUnixMs
	}
	return 0
}

func (m *JobStatus) GetFinishedUnixMs() int64 {
	if m != nil {
		return m.FinishedUnixMs
	}
	return 0
}

type ListLoadedModelsRequest struct {
}

func (m *ListLoadedModelsRequest) Reset()         { *m = ListLoadedModelsRequest{} }
func (m *ListLoadedModelsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ListLoadedModelsRequest) ProtoMessage()    {}

type ListLoadedModelsResponse struct {
	Models []*ModelSpec `protobuf:"bytes,1,rep,name=models,proto3" json:"models,omitempty"`
}

func (m *ListLoadedModelsResponse) Reset()         { *m = ListLoadedModelsResponse{} }
func (m *ListLoadedModelsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*ListLoadedModelsResponse) ProtoMessage()    {}

func (m *ListLoadedModelsResponse) GetModels() []*ModelSpec {
	if m != nil {
		return m.Models
	}
	return nil
}

type GetEngineInfoRequest struct {
}

func (m *GetEngineInfoRequest) Reset()         { *m = GetEngineInfoRequest{} }
func (m *GetEngineInfoRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetEngineInfoRequest) ProtoMessage()    {}

type GetEngineInfoResponse struct {
	Busy          bool   `protobuf:"varint,1,opt,name=busy,proto3" json:"busy,omitempty"`
	ActiveJobId   string `protobuf:"bytes,2,opt,name=active_job_id,json=activeJobId,proto3" json:"active_job_id,omitempty"`
	LoadedModelId string `protobuf:"bytes,3,opt,name=loaded_model_id,json=loadedModelId,proto3" json:"loaded_model_id,omitempty"`
	RssBytes      int64  `protobuf:"varint,4,opt,name=rss_bytes,json=rssBytes,proto3" json:"rss_bytes,omitempty"`
}

func (m *GetEngineInfoResponse) Reset()         { *m = GetEngineInfoResponse{} }
func (m *GetEngineInfoResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetEngineInfoResponse) ProtoMessage()    {}

func (m *GetEngineInfoResponse) GetBusy() bool {
	if m != nil {
		return m.Busy
	}
	return false
}

func (m *GetEngineInfoResponse) GetActiveJobId() string {
	if m != nil {
		return m.ActiveJobId
	}
	return ""
}

func (m *GetEngineInfoResponse) GetLoadedModelId() string {
	if m != nil {
		return m.LoadedModelId
	}
	return ""
}

func (m *GetEngineInfoResponse) GetRssBytes() int64 {
	if m != nil {
		return m.RssBytes
	}
	return 0
}
