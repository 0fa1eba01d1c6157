package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	mcpServerName    = "Hospital MCP Server"
	mcpServerVersion = "2025-06-18"
)

// McpTool describes one invocable operation in the manifest
type McpTool struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Method      string `json:"method"`
	Path        string `json:"path"`
}

// mcpTools lists the appointment operations exposed to tool-calling clients.
// Each path is a real endpoint registered in main.go.
var mcpTools = []McpTool{
	{"create_appointment", "Create an appointment for a patient in a department", http.MethodPost, "/api/appointments"},
	{"list_appointments", "List all non-deleted appointments", http.MethodGet, "/api/appointments"},
	{"get_appointment", "Fetch one appointment with its related orders", http.MethodGet, "/api/appointments/:id"},
	{"update_appointment", "Partially update an appointment", http.MethodPut, "/api/appointments/:id"},
	{"delete_appointment", "Soft-delete an appointment", http.MethodDelete, "/api/appointments/:id"},
}

// McpManifestHandler describes the server and its tool surface
func McpManifestHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"name":        mcpServerName,
		"version":     mcpServerVersion,
		"description": "Exposes hospital appointment CRUD as MCP tools and serves model schemas from the registry directory.",
		"capabilities": echo.Map{
			"registry":     true,
			"schema":       true,
			"autocomplete": true,
		},
		"endpoints": echo.Map{
			"registry": "/mcp/registry",
		},
		"tools": mcpTools,
	})
}

// McpRegistryHandler lists the JSON schema files in the registry directory,
// served verbatim
func McpRegistryHandler(c echo.Context) error {
	cfg := getConfig(c)
	if cfg == nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Server error")
	}

	entries, err := os.ReadDir(cfg.RegistryDir)
	if err != nil {
		return serviceError(err, "", "reading MCP registry directory")
	}

	type registryFile struct {
		Name    string          `json:"name"`
		Content json.RawMessage `json:"content"`
	}

	files := []registryFile{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		content, err := os.ReadFile(filepath.Join(cfg.RegistryDir, entry.Name()))
		if err != nil {
			return serviceError(err, "", "reading MCP registry file")
		}
		if !json.Valid(content) {
			log.Printf("Error parsing MCP registry file %s: invalid JSON", entry.Name())
			return echo.NewHTTPError(http.StatusInternalServerError, "Server error")
		}
		files = append(files, registryFile{
			Name:    strings.TrimSuffix(entry.Name(), ".json"),
			Content: json.RawMessage(content),
		})
	}

	return respond(c, http.StatusOK, "OK", echo.Map{
		"count": len(files),
		"files": files,
	})
}
