package mcp

import "fmt"

// parseStringArg extracts an optional string argument from an MCP arguments
// map. A missing argument yields "".
func parseStringArg(argsMap map[string]interface{}, key string) (string, error) {
	val, ok := argsMap[key]
	if !ok {
		return "", nil
	}

	str, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}

	return str, nil
}
