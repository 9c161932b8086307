package workflow

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/docflow/docflow/internal/chain"
	"github.com/docflow/docflow/internal/models"
	"github.com/docflow/docflow/internal/strategy"
	"github.com/docflow/docflow/pkg/logger"
)

type WorkflowService struct {
	entry     chain.Handler
	processor *strategy.DocumentProcessor
	out       io.Writer
	logger    logger.Logger
}

// NewService 组装一个处理流程
// entry 是责任链的第一个环节，processor 是策略上下文
func NewService(entry chain.Handler, processor *strategy.DocumentProcessor, out io.Writer, log logger.Logger) Workflow {
	return &WorkflowService{
		entry:     entry,
		processor: processor,
		out:       out,
		logger:    log,
	}
}

// GetService 用标准校验链（格式 → 安全）和空策略上下文构建流程
// formats 为空时格式校验器放行全部已知类型
func GetService(out io.Writer, log logger.Logger, formats ...models.DocumentType) Workflow {
	formatChecker := chain.NewFormatChecker(out, log, formats...)
	formatChecker.SetNext(chain.NewSecurityChecker(out, log))

	processor := strategy.NewDocumentProcessor(out, log)

	return NewService(formatChecker, processor, out, log)
}

// Run 执行一次完整流程：先过链，链通过才执行策略
func (s *WorkflowService) Run(ctx context.Context, docType models.DocumentType) bool {
	runID := uuid.New().String()
	ctx = context.WithValue(ctx, logger.CtxRunID, runID)
	ctx = context.WithValue(ctx, logger.CtxDocType, docType.String())
	log := logger.FromContext(ctx, s.logger)

	log.Info("Starting document workflow")

	if !s.entry.Handle(docType) {
		log.Info("Document rejected by validation chain")
		return false
	}

	s.processor.ExecuteStrategy(docType)

	log.Info("Document workflow completed")
	return true
}

// SetStrategyName 按名称解析策略并安装到上下文
func (s *WorkflowService) SetStrategyName(name string) error {
	strat, err := strategy.ForName(name, s.out, s.logger)
	if err != nil {
		return err
	}

	s.processor.SetStrategy(strat)
	return nil
}
