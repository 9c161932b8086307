package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/docflow/docflow/config"
	"github.com/docflow/docflow/internal/document"
	"github.com/docflow/docflow/internal/models"
	"github.com/docflow/docflow/internal/service/workflow"
	"github.com/docflow/docflow/pkg/logger"
)

func main() {
	cfg := config.GetDemoConfig()

	// init logger
	log, err := logger.NewLogger(
		logger.WithLevel(cfg.Logging.Level),
		logger.WithEncoding(cfg.Logging.Encoding),
		logger.WithOutputPaths(cfg.Logging.OutputPaths),
	)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	out := os.Stdout

	// 责任链 + 策略：校验通过才执行处理策略
	formats := make([]models.DocumentType, 0, len(cfg.Formats))
	for _, f := range cfg.Formats {
		formats = append(formats, models.DocumentType(f))
	}

	wf := workflow.GetService(out, log, formats...)
	if err := wf.SetStrategyName(cfg.Strategy); err != nil {
		log.Fatal("Failed to configure strategy", logger.Error(err))
	}

	wf.Run(context.Background(), models.TypePDF)

	fmt.Fprintln(out, "------------------------")

	// 访问者：对集合里的每个文档做类型相关的展示
	structure := document.NewStructure()
	for _, name := range cfg.Documents {
		doc, ok := document.New(models.DocumentType(name))
		if !ok {
			log.Warn("Skipping unknown document type in config",
				logger.String("docType", name),
			)
			continue
		}
		structure.Add(doc)
	}

	visitor := document.NewDisplayVisitor(out, log)
	structure.Process(visitor)

	// pause before exit
	fmt.Fprint(out, "\nPress Enter to exit...")
	bufio.NewReader(os.Stdin).ReadString('\n')
}
