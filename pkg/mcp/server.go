package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/YasinAHA/calculator-mcp/pkg/calculator"
	"github.com/YasinAHA/calculator-mcp/pkg/logger"
	"github.com/YasinAHA/calculator-mcp/pkg/types"
)

// DefaultName is the server name used when none is configured
const DefaultName = "Calculator MCP"

// CalculatorServer encapsulates the MCP server with calculator tools
type CalculatorServer struct {
	server  *server.MCPServer
	calc    calculator.Calculator
	name    string
	version string

	total  atomic.Int64
	failed atomic.Int64
}

// NewCalculatorServer creates a new MCP server exposing calc as tools
func NewCalculatorServer(name, version string, calc calculator.Calculator) *CalculatorServer {
	if name == "" {
		name = DefaultName
	}

	s := &CalculatorServer{
		server:  server.NewMCPServer(name, version),
		calc:    calc,
		name:    name,
		version: version,
	}

	// Register all tools
	s.registerTools()

	return s
}

// Server returns the underlying MCP server
func (s *CalculatorServer) Server() *server.MCPServer {
	return s.server
}

// Calculator returns the calculator backing the tools
func (s *CalculatorServer) Calculator() calculator.Calculator {
	return s.calc
}

// ServeStdio serves the MCP protocol on stdin and stdout until the client disconnects
func (s *CalculatorServer) ServeStdio() error {
	logger.Info("Starting MCP server", "name", s.name, "version", s.version, "overflow", s.overflow())
	return server.ServeStdio(s.server)
}

// registerTools registers all calculator tools
func (s *CalculatorServer) registerTools() {
	s.addPingTool()
	s.addStatusTool()

	s.addOperationTool(calculator.OpAdd, "Add two integers. Overflow wraps around unless the server runs with overflow=error", s.Add)
	s.addOperationTool(calculator.OpSubtract, "Subtract b from a", s.Subtract)
	s.addOperationTool(calculator.OpMultiply, "Multiply two integers", s.Multiply)
	s.addOperationTool(calculator.OpDivide, "Divide a by b, truncating toward zero. Fails when b is 0", s.Divide)
}

// addPingTool adds a simple ping tool for health checks
func (s *CalculatorServer) addPingTool() {
	pingTool := mcp.NewTool("ping",
		mcp.WithDescription("Simple ping tool to test connection"),
	)

	s.server.AddTool(pingTool, s.Ping)
}

// addStatusTool adds the status tool
func (s *CalculatorServer) addStatusTool() {
	statusTool := mcp.NewTool("status",
		mcp.WithDescription("Report server version, overflow policy and calculation counters"),
	)

	s.server.AddTool(statusTool, s.Status)
}

// addOperationTool adds a two-operand arithmetic tool
func (s *CalculatorServer) addOperationTool(op calculator.Op, description string, handler server.ToolHandlerFunc) {
	tool := mcp.NewTool(string(op),
		mcp.WithDescription(description),
		mcp.WithNumber("a",
			mcp.Required(),
			mcp.Description("Left operand (integer)"),
		),
		mcp.WithNumber("b",
			mcp.Required(),
			mcp.Description("Right operand (integer)"),
		),
	)

	s.server.AddTool(tool, handler)
}

// newErrorResult creates a tool result that represents an error
func newErrorResult(format string, args ...interface{}) *mcp.CallToolResult {
	result := mcp.NewToolResultText(fmt.Sprintf("Error: "+format, args...))
	result.IsError = true
	return result
}

// Ping handles the ping command
func (s *CalculatorServer) Ping(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received ping request")
	// Return a simple number result (1) to indicate success
	return mcp.FormatNumberResult(1.0), nil
}

// Status handles the status command
func (s *CalculatorServer) Status(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received status request")

	ops := make([]string, len(calculator.Ops))
	for i, op := range calculator.Ops {
		ops[i] = string(op)
	}

	response := types.StatusResponse{
		Server: types.ServerInfo{
			Name:    s.name,
			Version: s.version,
		},
		Calculator: types.CalculatorInfo{
			Overflow:   string(s.overflow()),
			Operations: ops,
		},
		Counters: types.Counters{
			Total:  s.total.Load(),
			Failed: s.failed.Load(),
		},
		Timestamp: time.Now(),
	}

	return newToolResultJSON(response)
}

// Add handles the add command
func (s *CalculatorServer) Add(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.calculate(ctx, calculator.OpAdd, request)
}

// Subtract handles the subtract command
func (s *CalculatorServer) Subtract(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.calculate(ctx, calculator.OpSubtract, request)
}

// Multiply handles the multiply command
func (s *CalculatorServer) Multiply(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.calculate(ctx, calculator.OpMultiply, request)
}

// Divide handles the divide command
func (s *CalculatorServer) Divide(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.calculate(ctx, calculator.OpDivide, request)
}

// calculate decodes the operands, applies op and reports the outcome.
// Calculation failures are tool errors, never Go errors.
func (s *CalculatorServer) calculate(ctx context.Context, op calculator.Op, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := uuid.NewString()
	logger.Debug("Received calculation request", "id", id, "operation", op)

	a, err := intArgument(request, "a")
	if err != nil {
		logger.Warn("Invalid argument", "id", id, "operation", op, "error", err)
		return newErrorResult("%v", err), nil
	}
	b, err := intArgument(request, "b")
	if err != nil {
		logger.Warn("Invalid argument", "id", id, "operation", op, "error", err)
		return newErrorResult("%v", err), nil
	}

	s.total.Add(1)

	result, err := s.calc.Apply(op, a, b)
	if err != nil {
		s.failed.Add(1)
		logger.Error("Calculation failed", "id", id, "operation", op, "a", a, "b", b, "error", err)

		response := types.NewFailedCalculationResponse(string(op), op.Symbol(), a, b, err)
		response.ID = id

		res, jerr := newToolResultJSON(response)
		if res != nil {
			res.IsError = true
		}
		return res, jerr
	}

	logger.Debug("Calculation completed", "id", id, "operation", op, "result", result)

	response := types.NewCalculationResponse(string(op), op.Symbol(), a, b, result)
	response.ID = id

	return newToolResultJSON(response)
}

func (s *CalculatorServer) overflow() calculator.OverflowPolicy {
	if s.calc.Overflow == "" {
		return calculator.OverflowWrap
	}
	return s.calc.Overflow
}

// intArgument reads an integer tool argument. JSON numbers arrive as float64
// and must be integral and inside the int64 range; decimal strings are
// accepted for values beyond float64 precision.
func intArgument(request mcp.CallToolRequest, name string) (int64, error) {
	raw, ok := request.Params.Arguments[name]
	if !ok || raw == nil {
		return 0, fmt.Errorf("missing required argument %q", name)
	}

	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
			return 0, fmt.Errorf("argument %q must be an integer, got %v", name, v)
		}
		// float64(math.MaxInt64) rounds up to 2^63, which is out of range.
		if v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, fmt.Errorf("argument %q is out of int64 range: %v", name, v)
		}
		return int64(v), nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("argument %q must be an integer: %v", name, err)
		}
		return n, nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("argument %q must be an integer: %v", name, err)
		}
		return n, nil
	}
	return 0, fmt.Errorf("argument %q must be a number, got %T", name, raw)
}

func newToolResultJSON(data interface{}) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return newErrorResult("failed to serialize data: %v", err), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
