package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2beens/gymmanager/internal/gym"
	"github.com/2beens/gymmanager/internal/managers"
	"github.com/2beens/gymmanager/internal/members"
)

// Handler parses tool input, calls the service and formats the MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
		IsError: true,
	}
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error()), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}, nil, nil
}

// GetSchemaTool returns the MCP tool handler for get_gym_schema.
func (h *Handler) GetSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

// ListMembersInput is the input for list_members.
type ListMembersInput struct {
	Status         string `json:"status,omitempty" jsonschema:"Filter by membership status (active, inactive, suspended, cancelled)"`
	TrainerID      int64  `json:"trainer_id,omitempty" jsonschema:"Filter by assigned trainer id"`
	NutritionistID int64  `json:"nutritionist_id,omitempty" jsonschema:"Filter by assigned nutritionist id"`
}

// ListMembersTool returns the MCP tool handler for list_members.
func (h *Handler) ListMembersTool() func(context.Context, *mcp.CallToolRequest, ListMembersInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ListMembersInput) (*mcp.CallToolResult, any, error) {
		var params members.ListParams
		if in.Status != "" {
			if err := gym.ValidateStatus("status", in.Status, gym.MemberStatuses); err != nil {
				return errorResult(err.Error()), nil, nil
			}
			params.Status = &in.Status
		}
		if in.TrainerID > 0 {
			params.TrainerID = &in.TrainerID
		}
		if in.NutritionistID > 0 {
			params.NutritionistID = &in.NutritionistID
		}

		list, err := h.service.ListMembers(ctx, params)
		if err != nil {
			return errorResult("Error listing members: " + err.Error()), nil, nil
		}
		return jsonResult(list)
	}
}

// DateRangeInput is the input for the revenue tools.
type DateRangeInput struct {
	StartDate string `json:"start_date" jsonschema:"Start date (YYYY-MM-DD), included"`
	EndDate   string `json:"end_date" jsonschema:"End date (YYYY-MM-DD), excluded"`
}

func (in DateRangeInput) parse() (gym.DateRange, *mcp.CallToolResult) {
	start, err := gym.ParseDate(in.StartDate)
	if err != nil {
		return gym.DateRange{}, errorResult("Invalid start_date: use YYYY-MM-DD")
	}
	end, err := gym.ParseDate(in.EndDate)
	if err != nil {
		return gym.DateRange{}, errorResult("Invalid end_date: use YYYY-MM-DD")
	}
	if !start.Before(end.Time) {
		return gym.DateRange{}, errorResult("start_date must be before end_date")
	}
	return gym.DateRange{Start: start, End: end}, nil
}

// RevenueSummaryTool returns the MCP tool handler for get_revenue_summary.
func (h *Handler) RevenueSummaryTool() func(context.Context, *mcp.CallToolRequest, DateRangeInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in DateRangeInput) (*mcp.CallToolResult, any, error) {
		dr, errRes := in.parse()
		if errRes != nil {
			return errRes, nil, nil
		}
		summary, err := h.service.RevenueSummary(ctx, dr)
		if err != nil {
			return errorResult("Error fetching revenue summary: " + err.Error()), nil, nil
		}
		return jsonResult(summary)
	}
}

// RevenueByTrainerTool returns the MCP tool handler for get_revenue_by_trainer.
func (h *Handler) RevenueByTrainerTool() func(context.Context, *mcp.CallToolRequest, DateRangeInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in DateRangeInput) (*mcp.CallToolResult, any, error) {
		dr, errRes := in.parse()
		if errRes != nil {
			return errRes, nil, nil
		}
		report, err := h.service.RevenueByTrainer(ctx, dr)
		if err != nil {
			return errorResult("Error fetching revenue by trainer: " + err.Error()), nil, nil
		}
		return jsonResult(report)
	}
}

// ClassAttendanceInput is the input for get_class_attendance.
type ClassAttendanceInput struct {
	TrainerID int64  `json:"trainer_id,omitempty" jsonschema:"Filter by trainer id"`
	FromDate  string `json:"from_date,omitempty" jsonschema:"First day (YYYY-MM-DD), included"`
	ToDate    string `json:"to_date,omitempty" jsonschema:"Last day (YYYY-MM-DD), included"`
}

// ClassAttendanceTool returns the MCP tool handler for get_class_attendance.
func (h *Handler) ClassAttendanceTool() func(context.Context, *mcp.CallToolRequest, ClassAttendanceInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ClassAttendanceInput) (*mcp.CallToolResult, any, error) {
		var params managers.AttendanceParams
		if in.TrainerID > 0 {
			params.TrainerID = &in.TrainerID
		}
		if in.FromDate != "" || in.ToDate != "" {
			from, err := gym.ParseDate(in.FromDate)
			if err != nil {
				return errorResult("Invalid from_date: use YYYY-MM-DD"), nil, nil
			}
			to, err := gym.ParseDate(in.ToDate)
			if err != nil {
				return errorResult("Invalid to_date: use YYYY-MM-DD"), nil, nil
			}
			if to.Before(from.Time) {
				return errorResult("from_date must not be after to_date"), nil, nil
			}
			params.Range = &gym.DateRange{Start: from, End: to.AddDays(1)}
		}

		records, err := h.service.ClassAttendance(ctx, params)
		if err != nil {
			return errorResult("Error fetching class attendance: " + err.Error()), nil, nil
		}
		return jsonResult(records)
	}
}
