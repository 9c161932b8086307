package strategy

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docflow/docflow/internal/models"
	"github.com/docflow/docflow/pkg/logger"
)

func TestExecuteWithNoStrategy(t *testing.T) {
	var out bytes.Buffer
	log := logger.NewTestLogger()

	processor := NewDocumentProcessor(&out, log)
	processor.ExecuteStrategy(models.TypePDF)

	// the notice is the only output
	assert.Equal(t, "No strategy selected.\n", out.String())
	assert.True(t, log.HasMessage("no strategy configured"))
}

func TestPrintStrategy(t *testing.T) {
	var out bytes.Buffer
	log := logger.NewTestLogger()

	processor := NewDocumentProcessor(&out, log)
	processor.SetStrategy(NewPrintStrategy(&out, log))
	processor.ExecuteStrategy(models.TypePDF)

	assert.Equal(t, "[Strategy] Printing PDF document...\n", out.String())
}

func TestSaveStrategy(t *testing.T) {
	var out bytes.Buffer
	log := logger.NewTestLogger()

	processor := NewDocumentProcessor(&out, log)
	processor.SetStrategy(NewSaveStrategy(&out, log))
	processor.ExecuteStrategy(models.TypePDF)

	assert.Equal(t, "[Strategy] Saving PDF document...\n", out.String())
}

func TestSetStrategyLastWriteWins(t *testing.T) {
	var out bytes.Buffer
	log := logger.NewTestLogger()

	processor := NewDocumentProcessor(&out, log)
	processor.SetStrategy(NewPrintStrategy(&out, log))
	processor.SetStrategy(NewSaveStrategy(&out, log))
	processor.ExecuteStrategy(models.TypeTXT)

	assert.Equal(t, "[Strategy] Saving TXT document...\n", out.String())
}

func TestUnsupportedLabelIsEchoedVerbatim(t *testing.T) {
	// strategies do no validation, the chain upstream does
	var out bytes.Buffer
	log := logger.NewTestLogger()

	processor := NewDocumentProcessor(&out, log)
	processor.SetStrategy(NewPrintStrategy(&out, log))
	processor.ExecuteStrategy("EXE")

	assert.Equal(t, "[Strategy] Printing EXE document...\n", out.String())
}

func TestForName(t *testing.T) {
	var out bytes.Buffer
	log := logger.NewTestLogger()

	tests := []struct {
		name string
		want string
	}{
		{NamePrint, "Printing"},
		{NameSave, "Saving"},
		{"Print", "Printing"}, // case-insensitive
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out.Reset()

			strat, err := ForName(tt.name, &out, log)
			require.NoError(t, err)

			strat.Process(models.TypePDF)
			assert.True(t, strings.Contains(out.String(), tt.want))
		})
	}
}

func TestForNameUnknown(t *testing.T) {
	var out bytes.Buffer

	_, err := ForName("shred", &out, logger.NewTestLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported strategy")
}
