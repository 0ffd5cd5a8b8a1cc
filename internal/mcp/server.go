// Package mcp exposes the budget calculator as MCP tools, so an assistant
// can run estimates and altitude lookups for training-center staff.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
	"github.com/strikerdlm/BudgetNormobaricHypox/internal/budget"
)

// New creates an MCP server with all tools registered. The defaults fill in
// parameters a tool call omits.
func New(defaults budget.TrainingParameters, policy budget.MixingPolicy, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("HypoxBudget", version,
		server.WithToolCapabilities(false),
		server.WithInstructions("Normobaric hypoxia training budget calculator. Estimate gas consumption and program costs, or look up the physiological profile at a simulated altitude. Calls are stateless; omitted parameters fall back to the configured program defaults."),
	)

	h := &handlers{defaults: defaults, policy: policy, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolEstimateBudget, Handler: h.estimateBudget},
		server.ServerTool{Tool: toolGetPhysiology, Handler: h.getPhysiology},
	)

	return s
}

// handlers holds dependencies for MCP tool handlers.
type handlers struct {
	defaults budget.TrainingParameters
	policy   budget.MixingPolicy
	log      *slog.Logger
}
