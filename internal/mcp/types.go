package mcp

import "github.com/Siddhant-K-code/mcp-devcontainer/pkg/protocol"

type Request = protocol.JSONRPCRequest
type Response = protocol.JSONRPCResponse
