package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with read-only gym tools.
// Mounted by the API server at /mcp and run over stdio by cmd/gym_mcp.
func NewServer(schemaRepo SchemaRepo, membersRepo MembersRepo, reports ReportService) *mcp.Server {
	h := NewHandler(NewContextService(schemaRepo, membersRepo, reports))
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "gym-manager",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_gym_schema",
		Description: "Returns the DB schema of the gym tables (members, trainers, nutritionists, plans, logs, invoices, class sessions, attendance): columns, types, nullable, default.",
	}, h.GetSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_members",
		Description: "Returns gym members. Optional filters: status, trainer_id, nutritionist_id.",
	}, h.ListMembersTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_revenue_summary",
		Description: "Returns total billed, paid, pending and overdue revenue for invoices dated in [start_date, end_date). Voided invoices are excluded.",
	}, h.RevenueSummaryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_revenue_by_trainer",
		Description: "Returns billed and paid revenue per trainer for invoices dated in [start_date, end_date), highest paid revenue first.",
	}, h.RevenueByTrainerTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_class_attendance",
		Description: "Returns class attendance rows with class name and time. Optional filters: trainer_id, from_date and to_date (both included, given together).",
	}, h.ClassAttendanceTool())

	return s
}
