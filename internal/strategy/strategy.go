package strategy

import (
	"fmt"
	"io"

	"github.com/docflow/docflow/internal/models"
	"github.com/docflow/docflow/pkg/logger"
)

// ProcessingStrategy 文档处理策略接口
// Process 对指定类型标签执行处理动作，不做任何校验：
// 不认识的标签原样回显，由上游的校验链负责拦截
type ProcessingStrategy interface {
	Process(docType models.DocumentType)
}

// PrintStrategy 打印策略
type PrintStrategy struct {
	out io.Writer
	log logger.Logger
}

func NewPrintStrategy(out io.Writer, log logger.Logger) *PrintStrategy {
	return &PrintStrategy{
		out: out,
		log: log,
	}
}

func (s *PrintStrategy) Process(docType models.DocumentType) {
	s.log.Debug("Executing print strategy",
		logger.String("docType", docType.String()),
	)
	fmt.Fprintf(s.out, "[Strategy] Printing %s document...\n", docType)
}

// SaveStrategy 保存策略
type SaveStrategy struct {
	out io.Writer
	log logger.Logger
}

func NewSaveStrategy(out io.Writer, log logger.Logger) *SaveStrategy {
	return &SaveStrategy{
		out: out,
		log: log,
	}
}

func (s *SaveStrategy) Process(docType models.DocumentType) {
	s.log.Debug("Executing save strategy",
		logger.String("docType", docType.String()),
	)
	fmt.Fprintf(s.out, "[Strategy] Saving %s document...\n", docType)
}
