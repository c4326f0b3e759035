package dto

import (
	"time"

	"github.com/octobees/contact-site/api/internal/entity"
)

// ActionAddTestData is the only action accepted by POST /admin/database.
const ActionAddTestData = "add_test_data"

// DatabaseSnapshotResponse wraps a snapshot for GET /admin/database.
type DatabaseSnapshotResponse struct {
	Success   bool                    `json:"success"`
	Data      entity.DatabaseSnapshot `json:"data"`
	Timestamp time.Time               `json:"timestamp"`
}

// DatabaseActionRequest carries the requested diagnostics action.
type DatabaseActionRequest struct {
	Action string `json:"action"`
}

// DatabaseActionResponse confirms a diagnostics action.
type DatabaseActionResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Contacts []entity.Contact `json:"contacts"`
}

// AdminErrorResponse exposes the underlying failure to operators.
type AdminErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
