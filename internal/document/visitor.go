package document

import (
	"fmt"
	"io"

	"github.com/docflow/docflow/pkg/logger"
)

// Visitor represents an operation applied to documents. To implement a
// visitor, implement one method per concrete document type. The set of
// variants is closed: adding a new document type means extending this
// interface and every visitor with it.
type Visitor interface {
	VisitPDF(d *PDFDocument)
	VisitTXT(d *TXTDocument)
	VisitDOCX(d *DOCXDocument)
}

// DisplayVisitor 展示访问者，把每种文档的内容提示写到输出流
type DisplayVisitor struct {
	out io.Writer
	log logger.Logger
}

// NewDisplayVisitor creates a display visitor writing to out
func NewDisplayVisitor(out io.Writer, log logger.Logger) *DisplayVisitor {
	return &DisplayVisitor{
		out: out,
		log: log,
	}
}

func (v *DisplayVisitor) VisitPDF(d *PDFDocument) {
	v.display(d)
}

func (v *DisplayVisitor) VisitTXT(d *TXTDocument) {
	v.display(d)
}

func (v *DisplayVisitor) VisitDOCX(d *DOCXDocument) {
	v.display(d)
}

func (v *DisplayVisitor) display(d Document) {
	v.log.Debug("Displaying document",
		logger.String("docType", d.Type().String()),
	)
	fmt.Fprintf(v.out, "[Visitor] Displaying %s content.\n", d.Type())
}
