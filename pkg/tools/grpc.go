package tools

import (
	"context"
	"encoding/json"
	"fmt"

	toolsv1 "github.com/triggerflow/triggerflow/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// GRPCRegistry implements Registry by calling the external tool registry
// service via gRPC.
type GRPCRegistry struct {
	conn   *grpc.ClientConn
	client toolsv1.ToolRegistryServiceClient
}

// NewGRPCRegistry creates a new gRPC registry client.
// grpc.NewClient dials lazily; the actual connection happens on first RPC.
func NewGRPCRegistry(addr string) (*GRPCRegistry, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to tool registry at %s: %w", addr, err)
	}
	return &GRPCRegistry{
		conn:   conn,
		client: toolsv1.NewToolRegistryServiceClient(conn),
	}, nil
}

// GetByName returns tool metadata by name.
func (r *GRPCRegistry) GetByName(ctx context.Context, name string) (*Tool, error) {
	resp, err := r.client.GetTool(ctx, &toolsv1.GetToolRequest{Name: name})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
		}
		return nil, fmt.Errorf("gRPC GetTool call failed: %w", err)
	}
	if resp.Tool == nil {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	return fromProtoTool(resp.Tool), nil
}

// ListTools returns all tools, optionally filtered by service.
func (r *GRPCRegistry) ListTools(ctx context.Context, service string) ([]*Tool, error) {
	resp, err := r.client.ListTools(ctx, &toolsv1.ListToolsRequest{Service: service})
	if err != nil {
		return nil, fmt.Errorf("gRPC ListTools call failed: %w", err)
	}
	out := make([]*Tool, len(resp.Tools))
	for i, t := range resp.Tools {
		out[i] = fromProtoTool(t)
	}
	return out, nil
}

// Execute invokes the tool with JSON-encoded parameters and decodes the
// JSON result into a dynamic value. A non-JSON result passes through as a
// plain string.
func (r *GRPCRegistry) Execute(ctx context.Context, name string, params map[string]any, ownerID string, opts ExecuteOptions) (any, error) {
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tool parameters: %w", err)
	}

	resp, err := r.client.ExecuteTool(ctx, &toolsv1.ExecuteToolRequest{
		Name:           name,
		ParametersJson: string(paramsJSON),
		OwnerId:        ownerID,
		RequestId:      opts.RequestID,
		IsAutomation:   opts.IsAutomation,
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
		}
		return nil, fmt.Errorf("tool %s execution failed: %w", name, err)
	}

	var result any
	if err := json.Unmarshal([]byte(resp.ResultJson), &result); err != nil {
		return resp.ResultJson, nil
	}
	return result, nil
}

// Close releases the gRPC connection.
func (r *GRPCRegistry) Close() error {
	return r.conn.Close()
}

func fromProtoTool(t *toolsv1.ToolDefinition) *Tool {
	return &Tool{
		Name:             t.Name,
		Description:      t.Description,
		ParametersSchema: t.ParametersSchema,
		ReturnsSchema:    t.ReturnsSchema,
		Service:          t.Service,
		Tags:             t.Tags,
	}
}
