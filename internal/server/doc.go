// Package server exposes a dataset index over the MCP (Model Context Protocol).
//
// The server speaks JSON-RPC 2.0 over a reader/writer pair, normally
// stdin/stdout:
//   - Input: one JSON-RPC request per line
//   - Output: one JSON-RPC response per line
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - dataset_info: root, variant, directories, size and label files
//   - dataset_list: page through indexed images with their unit counts
//   - dataset_get: label payload, image metadata and mean color for one index
//   - dataset_preview: downscaled base64 PNG of one image
//
// Images are decoded on every call; the server holds no image cache.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
package server
