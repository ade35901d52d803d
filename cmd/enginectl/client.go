package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"speech-engine/internal/api/grpc/pb"
)

// withClient 建连、执行、关连；unix socket 目标形如 unix:/path.sock
func withClient(ctx context.Context, fn func(ctx context.Context, c pb.AsrEngineClient) error) error {
	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("dial %s: %w", target, err)
	}
	defer conn.Close()
	return fn(ctx, pb.NewAsrEngineClient(conn))
}

func parseKV(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --param %q, want key=value", p)
		}
		out[k] = v
	}
	return out, nil
}

func printStatus(st *pb.JobStatus) {
	fmt.Printf("%s job_id=%s state=%s progress=%.2f message=%s\n",
		time.Now().Format("15:04:05"), st.JobId, st.State, st.Progress, st.Message)
	for name, path := range st.Outputs {
		fmt.Printf("  output %s=%s\n", name, path)
	}
}

func watchStream(stream pb.AsrEngine_StreamJobStatusClient) error {
	for {
		st, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		printStatus(st)
	}
}
