package types

import (
	"fmt"
	"time"
)

// CalculationResponse is the result of a single calculator operation
type CalculationResponse struct {
	ID        string    `json:"id,omitempty"`     // Request correlation ID
	Operation string    `json:"operation"`        // Operation name (add, divide, ...)
	A         int64     `json:"a"`                // Left operand
	B         int64     `json:"b"`                // Right operand
	Result    *int64    `json:"result,omitempty"` // Result, absent on failure
	Error     string    `json:"error,omitempty"`  // Error message if the operation failed
	Summary   string    `json:"summary"`          // Human-readable description
	Timestamp time.Time `json:"timestamp"`        // Operation timestamp
}

// Failed reports whether the calculation produced an error
func (r CalculationResponse) Failed() bool {
	return r.Error != ""
}

// NewCalculationResponse builds a response for a successful calculation
func NewCalculationResponse(op, symbol string, a, b, result int64) CalculationResponse {
	return CalculationResponse{
		Operation: op,
		A:         a,
		B:         b,
		Result:    &result,
		Summary:   fmt.Sprintf("%d %s %d = %d", a, symbol, b, result),
		Timestamp: time.Now(),
	}
}

// NewFailedCalculationResponse builds a response for a calculation that returned err
func NewFailedCalculationResponse(op, symbol string, a, b int64, err error) CalculationResponse {
	return CalculationResponse{
		Operation: op,
		A:         a,
		B:         b,
		Error:     err.Error(),
		Summary:   fmt.Sprintf("%d %s %d failed: %v", a, symbol, b, err),
		Timestamp: time.Now(),
	}
}

// ServerInfo describes the running server
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// CalculatorInfo describes how the calculator is configured
type CalculatorInfo struct {
	Overflow   string   `json:"overflow"`   // Overflow policy (wrap or error)
	Operations []string `json:"operations"` // Supported operations
}

// Counters tracks calculations handled by the server
type Counters struct {
	Total  int64 `json:"total"`
	Failed int64 `json:"failed"`
}

// StatusResponse is returned by the status tool
type StatusResponse struct {
	Server     ServerInfo     `json:"server"`
	Calculator CalculatorInfo `json:"calculator"`
	Counters   Counters       `json:"counters"`
	Timestamp  time.Time      `json:"timestamp"`
}
