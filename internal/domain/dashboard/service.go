package dashboard

import (
	"context"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/auth"
)

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard builds the weekly view for req.UserID, or the caller when empty.
	GetDashboard(ctx context.Context, caller auth.Caller, req IndexRequest) (*DashboardResponse, error)
}
