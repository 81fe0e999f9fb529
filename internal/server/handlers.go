package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/whales-dataset/internal/dataset"
	"github.com/ironsheep/whales-dataset/internal/imaging"
)

const (
	defaultListLimit   = 50
	maxListLimit       = 1000
	defaultPreviewSize = 256
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "dataset_get").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "dataset_info":
		return s.handleDatasetInfo()
	case "dataset_list":
		return s.handleDatasetList(args)
	case "dataset_get":
		return s.handleDatasetGet(args)
	case "dataset_preview":
		return s.handleDatasetPreview(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{Code: code, Message: message}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   e,
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// unmarshalArgs tolerates an absent arguments object.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	return json.Unmarshal(args, v)
}

// DatasetInfo is the result of dataset_info.
type DatasetInfo struct {
	Root       string   `json:"root"`
	Variant    string   `json:"variant"`
	ImageDir   string   `json:"image_dir"`
	LabelDir   string   `json:"label_dir"`
	Size       int      `json:"size"`
	LabelCount int      `json:"label_count"`
	LabelFiles []string `json:"label_files"`
}

func (s *Server) handleDatasetInfo() (interface{}, error) {
	return &DatasetInfo{
		Root:       s.index.Root(),
		Variant:    s.index.Variant().Name,
		ImageDir:   s.index.ImageDir(),
		LabelDir:   s.index.LabelDir(),
		Size:       s.index.Len(),
		LabelCount: s.index.LabelCount(),
		LabelFiles: s.index.LabelFiles(),
	}, nil
}

type datasetListArgs struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ListEntry is one row of dataset_list.
type ListEntry struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	Path      string `json:"path"`
	UnitCount int    `json:"unit_count"`
}

// ListResult is the result of dataset_list.
type ListResult struct {
	Total   int         `json:"total"`
	Offset  int         `json:"offset"`
	Entries []ListEntry `json:"entries"`
}

func (s *Server) handleDatasetList(args json.RawMessage) (interface{}, error) {
	var a datasetListArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Offset < 0 {
		return nil, fmt.Errorf("offset must be >= 0, got %d", a.Offset)
	}
	if a.Limit == 0 {
		a.Limit = defaultListLimit
	}
	if a.Limit < 0 || a.Limit > maxListLimit {
		return nil, fmt.Errorf("limit must be between 1 and %d, got %d", maxListLimit, a.Limit)
	}

	total := s.index.Len()
	end := a.Offset + a.Limit
	if end > total {
		end = total
	}

	entries := make([]ListEntry, 0, a.Limit)
	for i := a.Offset; i < end; i++ {
		e, err := s.index.Entry(i)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ListEntry{
			Index:     e.Index,
			Name:      e.Name,
			Path:      e.Path,
			UnitCount: e.Label.UnitCount(),
		})
	}

	return &ListResult{Total: total, Offset: a.Offset, Entries: entries}, nil
}

type datasetIndexArgs struct {
	Index *int `json:"index"`
}

func (a datasetIndexArgs) index() (int, error) {
	if a.Index == nil {
		return 0, fmt.Errorf("missing required argument: index")
	}
	return *a.Index, nil
}

// SampleResult is the result of dataset_get.
type SampleResult struct {
	Index     int                 `json:"index"`
	Name      string              `json:"name"`
	Path      string              `json:"path"`
	Label     dataset.Label       `json:"label"`
	Image     *imaging.ImageInfo  `json:"image"`
	MeanColor imaging.ColorResult `json:"mean_color"`
}

func (s *Server) handleDatasetGet(args json.RawMessage) (interface{}, error) {
	var a datasetIndexArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	i, err := a.index()
	if err != nil {
		return nil, err
	}

	img, label, err := s.index.Get(i)
	if err != nil {
		return nil, err
	}
	entry, err := s.index.Entry(i)
	if err != nil {
		return nil, err
	}
	info, err := imaging.Describe(img, entry.Path)
	if err != nil {
		return nil, err
	}

	return &SampleResult{
		Index:     i,
		Name:      entry.Name,
		Path:      entry.Path,
		Label:     label,
		Image:     info,
		MeanColor: imaging.MeanColor(img),
	}, nil
}

type datasetPreviewArgs struct {
	datasetIndexArgs
	MaxSize   int  `json:"max_size"`
	Grayscale bool `json:"grayscale"`
}

// PreviewResult is the result of dataset_preview.
type PreviewResult struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	*imaging.PreviewResult
}

func (s *Server) handleDatasetPreview(args json.RawMessage) (interface{}, error) {
	var a datasetPreviewArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	i, err := a.index()
	if err != nil {
		return nil, err
	}
	if a.MaxSize == 0 {
		a.MaxSize = defaultPreviewSize
	}

	img, _, err := s.index.Get(i)
	if err != nil {
		return nil, err
	}
	entry, err := s.index.Entry(i)
	if err != nil {
		return nil, err
	}

	preview, err := imaging.Preview(img, a.MaxSize, a.Grayscale)
	if err != nil {
		return nil, err
	}
	return &PreviewResult{Index: i, Name: entry.Name, PreviewResult: preview}, nil
}
