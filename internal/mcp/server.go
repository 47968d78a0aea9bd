package mcp

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/Siddhant-K-code/mcp-devcontainer/internal/tools"
)

// Server speaks MCP over a newline-delimited JSON-RPC stream, normally the
// process's stdio.
type Server struct {
	registry *tools.Registry
	handler  *Handler
}

func NewServer(registry *tools.Registry) *Server {
	return &Server{
		registry: registry,
		handler:  NewHandler(registry),
	}
}

func (s *Server) Registry() *tools.Registry {
	return s.registry
}

// Serve processes requests from the stream until it closes or the context
// is cancelled.
func (s *Server) Serve(ctx context.Context, rwc io.ReadWriteCloser) error {
	stream := jsonrpc2.NewBufferedStream(rwc, jsonrpc2.PlainObjectCodec{})
	conn := jsonrpc2.NewConn(ctx, stream, jsonrpc2.AsyncHandler(s))

	select {
	case <-conn.DisconnectNotify():
		return nil
	case <-ctx.Done():
		conn.Close()
		return ctx.Err()
	}
}

// ServeStdio runs the server over stdin/stdout.
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.Serve(ctx, &stdioReadWriteCloser{reader: os.Stdin, writer: os.Stdout})
}

// Handle implements jsonrpc2.Handler by bridging into the MCP handler.
func (s *Server) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	var params map[string]interface{}
	if req.Params != nil {
		if err := json.Unmarshal(*req.Params, &params); err != nil {
			if !req.Notif {
				conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{
					Code:    jsonrpc2.CodeParseError,
					Message: "Parse error",
				})
			}
			return
		}
	}

	resp := s.handler.Handle(&Request{
		JSONRPC: "2.0",
		Method:  req.Method,
		Params:  params,
	})

	if req.Notif {
		return
	}

	if resp.Error != nil {
		if err := conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{
			Code:    int64(resp.Error.Code),
			Message: resp.Error.Message,
		}); err != nil {
			log.Error("failed to send error reply", "method", req.Method, "error", err)
		}
		return
	}

	if err := conn.Reply(ctx, req.ID, resp.Result); err != nil {
		log.Error("failed to send reply", "method", req.Method, "error", err)
	}
}

type stdioReadWriteCloser struct {
	reader io.ReadCloser
	writer io.WriteCloser
}

func (s *stdioReadWriteCloser) Read(p []byte) (int, error) {
	return s.reader.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (int, error) {
	return s.writer.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	rerr := s.reader.Close()
	werr := s.writer.Close()
	if rerr != nil {
		return rerr
	}
	return werr
}
