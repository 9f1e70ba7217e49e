package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/gymmanager/internal/gym"
	"github.com/2beens/gymmanager/internal/managers"
	"github.com/2beens/gymmanager/internal/members"
)

// MembersRepo lists members, implemented by *members.Repo.
type MembersRepo interface {
	List(ctx context.Context, params members.ListParams) ([]gym.Member, error)
}

// ReportService is implemented by *managers.Service.
type ReportService interface {
	RevenueSummary(ctx context.Context, dr gym.DateRange) (*gym.RevenueSummary, error)
	RevenueByTrainer(ctx context.Context, dr gym.DateRange) (*gym.RevenueByTrainer, error)
	ClassAttendance(ctx context.Context, params managers.AttendanceParams) ([]gym.ClassAttendanceRecord, error)
}

// contextService is what the tool handlers call.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	ListMembers(ctx context.Context, params members.ListParams) ([]gym.Member, error)
	RevenueSummary(ctx context.Context, dr gym.DateRange) (*gym.RevenueSummary, error)
	RevenueByTrainer(ctx context.Context, dr gym.DateRange) (*gym.RevenueByTrainer, error)
	ClassAttendance(ctx context.Context, params managers.AttendanceParams) ([]gym.ClassAttendanceRecord, error)
}

// ContextService exposes read-only gym data to MCP clients.
type ContextService struct {
	schema  SchemaRepo
	members MembersRepo
	reports ReportService
}

func NewContextService(schemaRepo SchemaRepo, membersRepo MembersRepo, reports ReportService) *ContextService {
	return &ContextService{
		schema:  schemaRepo,
		members: membersRepo,
		reports: reports,
	}
}

// GetSchema returns the gym tables as markdown, one table per section.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GymColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Gym DB Schema\n\nNo gym tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Gym DB Schema\n\n")
	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def)
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *ContextService) ListMembers(ctx context.Context, params members.ListParams) ([]gym.Member, error) {
	return s.members.List(ctx, params)
}

func (s *ContextService) RevenueSummary(ctx context.Context, dr gym.DateRange) (*gym.RevenueSummary, error) {
	return s.reports.RevenueSummary(ctx, dr)
}

func (s *ContextService) RevenueByTrainer(ctx context.Context, dr gym.DateRange) (*gym.RevenueByTrainer, error) {
	return s.reports.RevenueByTrainer(ctx, dr)
}

func (s *ContextService) ClassAttendance(ctx context.Context, params managers.AttendanceParams) ([]gym.ClassAttendanceRecord, error) {
	return s.reports.ClassAttendance(ctx, params)
}
