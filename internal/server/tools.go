package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func indexProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": "Position in the dataset (0-based, images sorted by file name)",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "dataset_info",
			Description: "Describe the loaded dataset: root, variant, image and label directories, number of images and the label files in merge order.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "dataset_list",
			Description: "List indexed images with their file name, path and number of labelled units.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"offset": map[string]interface{}{
						"type":        "integer",
						"description": "First index to return. Default 0",
						"default":     0,
					},
					"limit": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of entries (1-1000). Default 50",
						"default":     defaultListLimit,
					},
				},
			},
		},
		{
			Name:        "dataset_get",
			Description: "Return the label payload of one image together with its dimensions, format and mean color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"index": indexProperty(),
				},
				"required": []string{"index"},
			},
		},
		{
			Name:        "dataset_preview",
			Description: "Return a downscaled copy of one image as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"index": indexProperty(),
					"max_size": map[string]interface{}{
						"type":        "integer",
						"description": "Longest side of the preview in pixels. Default 256",
						"default":     defaultPreviewSize,
					},
					"grayscale": map[string]interface{}{
						"type":        "boolean",
						"description": "Convert the preview to grayscale. Default false",
						"default":     false,
					},
				},
				"required": []string{"index"},
			},
		},
	}
}
