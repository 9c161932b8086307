package workflow

import (
	"context"

	"github.com/docflow/docflow/internal/models"
)

// Workflow 把校验链和处理策略串成一次完整的文档处理流程
type Workflow interface {
	// Run validates docType through the chain and, on success, executes
	// the active strategy. The verdict is the chain's verdict: false
	// means the strategy was never invoked.
	Run(ctx context.Context, docType models.DocumentType) bool

	// SetStrategyName resolves and installs the strategy for later runs
	SetStrategyName(name string) error
}
