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

package grpc

import (
	"context"
	"fmt"
	"net"
	"os"

	"google.golang.org/grpc"

	"speech-engine/internal/api/grpc/pb"
	"speech-engine/pkg/log"
)

// Register 把服务注册到 grpc.Server
func (s *Service[P]) Register(server *grpc.Server) {
	pb.RegisterAsrEngineServer(server, s)
}

// NewServer 创建带有界流处理池的 grpc.Server
func NewServer(streamWorkers int) *grpc.Server {
	if streamWorkers <= 0 {
		streamWorkers = 8
	}
	return grpc.NewServer(grpc.NumStreamWorkers(uint32(streamWorkers)))
}

// Listen 优先 unix socket：存在残留 socket 文件时先删除；
// socket 为空时回落到 TCP host:port。
func Listen(socket, host string, port int) (net.Listener, string, error) {
	if socket != "" {
		if _, err := os.Stat(socket); err == nil {
			if err := os.Remove(socket); err != nil {
				return nil, "", fmt.Errorf("remove stale socket %s: %w", socket, err)
			}
		}
		lis, err := net.Listen("unix", socket)
		if err != nil {
			return nil, "", err
		}
		return lis, "unix:" + socket, nil
	}
	addr := fmt.Sprintf("%s:%d", host, port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, "", err
	}
	return lis, addr, nil
}

// Serve 阻塞服务直至 ctx 取消，然后优雅停机
func Serve(ctx context.Context, server *grpc.Server, lis net.Listener, logger *log.Logger) error {
	if logger == nil {
		logger = log.Nop()
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down grpc server")
		server.GracefulStop()
		<-errCh
		return nil
	case err := <-errCh:
		return err
	}
}
