package chain

import (
	"fmt"
	"io"

	"github.com/docflow/docflow/internal/models"
	"github.com/docflow/docflow/pkg/logger"
)

// Handler 责任链上的一个校验环节
// Handle 先执行本环节的检查，失败立即返回 false；
// 成功时交给后继环节，没有后继则本环节的成功就是整条链的成功
type Handler interface {
	// SetNext installs the successor, replacing any previous one, and
	// returns it so links compose fluently. Callers must not introduce
	// cycles.
	SetNext(next Handler) Handler
	Handle(docType models.DocumentType) bool
}

// next 保存后继环节，嵌入到具体的校验器里
type next struct {
	handler Handler
}

func (n *next) SetNext(h Handler) Handler {
	n.handler = h
	return h
}

// delegate passes the verdict downstream; at a terminal link local
// success is chain success
func (n *next) delegate(docType models.DocumentType) bool {
	if n.handler != nil {
		return n.handler.Handle(docType)
	}
	return true
}

// FormatChecker 格式校验器，只放行已知格式
type FormatChecker struct {
	next
	accepted map[models.DocumentType]struct{}
	out      io.Writer
	log      logger.Logger
}

// NewFormatChecker creates a format checker. With no types given the
// accepted set is exactly the known types: PDF, TXT and DOCX.
func NewFormatChecker(out io.Writer, log logger.Logger, types ...models.DocumentType) *FormatChecker {
	if len(types) == 0 {
		types = models.KnownTypes()
	}

	accepted := make(map[models.DocumentType]struct{}, len(types))
	for _, t := range types {
		accepted[t] = struct{}{}
	}

	return &FormatChecker{
		accepted: accepted,
		out:      out,
		log:      log,
	}
}

func (c *FormatChecker) Handle(docType models.DocumentType) bool {
	fmt.Fprintf(c.out, "[Chain] Checking format of %s...\n", docType)

	if _, ok := c.accepted[docType]; !ok {
		c.log.Warn("Unsupported document format",
			logger.String("docType", docType.String()),
		)
		fmt.Fprintln(c.out, "Format not supported.")
		return false
	}

	return c.delegate(docType)
}

// SecurityChecker 安全校验器
// 目前全部放行，占位给将来的真实安全检查
type SecurityChecker struct {
	next
	out io.Writer
	log logger.Logger
}

func NewSecurityChecker(out io.Writer, log logger.Logger) *SecurityChecker {
	return &SecurityChecker{
		out: out,
		log: log,
	}
}

func (c *SecurityChecker) Handle(docType models.DocumentType) bool {
	c.log.Debug("Security check",
		logger.String("docType", docType.String()),
	)
	fmt.Fprintf(c.out, "[Chain] Security check passed for %s.\n", docType)
	return c.delegate(docType)
}
