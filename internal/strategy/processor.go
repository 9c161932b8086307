package strategy

import (
	"fmt"
	"io"

	"github.com/docflow/docflow/internal/models"
	"github.com/docflow/docflow/pkg/logger"
)

// DocumentProcessor 策略上下文，持有当前激活的处理策略
// 同一时刻最多只有一个策略，设置新策略会直接替换旧策略
type DocumentProcessor struct {
	strategy ProcessingStrategy
	out      io.Writer
	log      logger.Logger
}

// NewDocumentProcessor creates a processor with no strategy selected
func NewDocumentProcessor(out io.Writer, log logger.Logger) *DocumentProcessor {
	return &DocumentProcessor{
		out: out,
		log: log,
	}
}

// SetStrategy replaces the active strategy unconditionally, last write wins
func (p *DocumentProcessor) SetStrategy(s ProcessingStrategy) {
	p.strategy = s
}

// ExecuteStrategy delegates to the active strategy. With no strategy set
// this is a no-op, surfaced only as a printed notice: a disabled state,
// not an error.
func (p *DocumentProcessor) ExecuteStrategy(docType models.DocumentType) {
	if p.strategy == nil {
		p.log.Warn("Strategy execution requested with no strategy configured",
			logger.String("docType", docType.String()),
		)
		fmt.Fprintln(p.out, "No strategy selected.")
		return
	}
	p.strategy.Process(docType)
}
