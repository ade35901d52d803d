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

// enginectl 引擎运维客户端：对 asr-engine / diar-engine 的
// gRPC 控制面做加载、任务与状态操作。
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"speech-engine/internal/api/grpc/pb"
)

var target string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := &cobra.Command{
		Use:           "enginectl",
		Short:         "speech-engine 控制面客户端",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&target, "target", "127.0.0.1:50051",
		"引擎地址；unix socket 写作 unix:/path/to/engine.sock")

	root.AddCommand(
		newLoadCmd(),
		newUnloadCmd(),
		newStartCmd(),
		newStopCmd(),
		newStatusCmd(),
		newWatchCmd(),
		newModelsCmd(),
		newInfoCmd(),
	)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLoadCmd() *cobra.Command {
	spec := &pb.ModelSpec{}
	cmd := &cobra.Command{
		Use:   "load",
		Short: "加载模型（替换当前槽位）",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.Context(), func(ctx context.Context, c pb.AsrEngineClient) error {
				resp, err := c.LoadModel(ctx, &pb.LoadModelRequest{Spec: spec})
				if err != nil {
					return err
				}
				fmt.Printf("ok=%v model_id=%s message=%s\n", resp.Ok, resp.ModelId, resp.Message)
				return nil
			})
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&spec.ModelId, "model-id", "", "模型 id（必填）")
	fs.StringVar(&spec.ModelName, "model-name", "", "模型名（必填）")
	fs.StringVar(&spec.ModelPath, "model-path", "", "模型文件/目录路径")
	fs.StringSliceVar(&spec.Providers, "providers", nil, "推理 provider 列表")
	fs.Int32Var(&spec.IntraOpThreads, "intra-op-threads", 0, "算子内线程数")
	fs.StringVar(&spec.VadBackend, "vad-backend", "", "VAD 后端")
	return cmd
}

func newUnloadCmd() *cobra.Command {
	var modelID string
	cmd := &cobra.Command{
		Use:   "unload",
		Short: "卸载模型",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.Context(), func(ctx context.Context, c pb.AsrEngineClient) error {
				resp, err := c.UnloadModel(ctx, &pb.UnloadModelRequest{ModelId: modelID})
				if err != nil {
					return err
				}
				fmt.Printf("ok=%v message=%s\n", resp.Ok, resp.Message)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&modelID, "model-id", "", "模型 id（必填）")
	return cmd
}

func newStartCmd() *cobra.Command {
	var (
		jobID     string
		modelID   string
		inputPath string
		outputDir string
		kvParams  []string
	)
	cmd := &cobra.Command{
		Use:   "start",
		Short: "提交推理 Job",
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobID == "" {
				jobID = uuid.NewString()
			}
			params, err := parseKV(kvParams)
			if err != nil {
				return err
			}
			return withClient(cmd.Context(), func(ctx context.Context, c pb.AsrEngineClient) error {
				resp, err := c.StartJob(ctx, &pb.StartJobRequest{
					JobId:     jobID,
					ModelId:   modelID,
					InputPath: inputPath,
					OutputDir: outputDir,
					Params:    params,
				})
				if err != nil {
					return err
				}
				fmt.Printf("accepted=%v job_id=%s message=%s\n", resp.Accepted, resp.JobId, resp.Message)
				return nil
			})
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&jobID, "job-id", "", "Job id，缺省自动生成")
	fs.StringVar(&modelID, "model-id", "", "要求的模型 id，缺省用当前已加载模型")
	fs.StringVar(&inputPath, "input", "", "输入音频路径（必填）")
	fs.StringVar(&outputDir, "output-dir", "", "产物输出目录（必填）")
	fs.StringArrayVar(&kvParams, "param", nil, "任务参数 key=value，可重复")
	return cmd
}

func newStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop <job_id>",
		Short: "请求取消活跃 Job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.Context(), func(ctx context.Context, c pb.AsrEngineClient) error {
				resp, err := c.StopJob(ctx, &pb.StopJobRequest{JobId: args[0]})
				if err != nil {
					return err
				}
				fmt.Printf("ok=%v message=%s\n", resp.Ok, resp.Message)
				return nil
			})
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <job_id>",
		Short: "查询 Job 状态",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.Context(), func(ctx context.Context, c pb.AsrEngineClient) error {
				st, err := c.GetJobStatus(ctx, &pb.GetJobStatusRequest{JobId: args[0]})
				if err != nil {
					return err
				}
				printStatus(st)
				return nil
			})
		},
	}
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <job_id>",
		Short: "跟随 Job 状态流直至终态",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.Context(), func(ctx context.Context, c pb.AsrEngineClient) error {
				stream, err := c.StreamJobStatus(ctx, &pb.StreamJobStatusRequest{JobId: args[0]})
				if err != nil {
					return err
				}
				return watchStream(stream)
			})
		},
	}
}

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "列出已加载模型",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.Context(), func(ctx context.Context, c pb.AsrEngineClient) error {
				resp, err := c.ListLoadedModels(ctx, &pb.ListLoadedModelsRequest{})
				if err != nil {
					return err
				}
				if len(resp.Models) == 0 {
					fmt.Println("(no model loaded)")
					return nil
				}
				for _, m := range resp.Models {
					fmt.Printf("model_id=%s model_name=%s path=%s providers=%s vad=%s\n",
						m.ModelId, m.ModelName, m.ModelPath,
						strings.Join(m.Providers, ","), m.VadBackend)
				}
				return nil
			})
		},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "查询引擎状态",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.Context(), func(ctx context.Context, c pb.AsrEngineClient) error {
				info, err := c.GetEngineInfo(ctx, &pb.GetEngineInfoRequest{})
				if err != nil {
					return err
				}
				fmt.Printf("busy=%v active_job_id=%s loaded_model_id=%s rss_bytes=%d\n",
					info.Busy, info.ActiveJobId, info.LoadedModelId, info.RssBytes)
				return nil
			})
		},
	}
}
