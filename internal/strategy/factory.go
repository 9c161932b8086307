package strategy

import (
	"fmt"
	"io"
	"strings"

	"github.com/docflow/docflow/pkg/logger"
)

// 策略名称
const (
	NamePrint = "print"
	NameSave  = "save"
)

// ForName 按名称解析处理策略
func ForName(name string, out io.Writer, log logger.Logger) (ProcessingStrategy, error) {
	switch strings.ToLower(name) {
	case NamePrint:
		return NewPrintStrategy(out, log), nil
	case NameSave:
		return NewSaveStrategy(out, log), nil
	}

	log.Error("Unsupported strategy name",
		logger.String("strategy", name),
	)
	return nil, fmt.Errorf("unsupported strategy: %s", name)
}
