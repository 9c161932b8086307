package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingVisitor 记录哪个变体方法被调用
type recordingVisitor struct {
	visited []string
}

func (v *recordingVisitor) VisitPDF(d *PDFDocument)   { v.visited = append(v.visited, "pdf") }
func (v *recordingVisitor) VisitTXT(d *TXTDocument)   { v.visited = append(v.visited, "txt") }
func (v *recordingVisitor) VisitDOCX(d *DOCXDocument) { v.visited = append(v.visited, "docx") }

func TestAcceptDispatchesByVariant(t *testing.T) {
	v := &recordingVisitor{}

	var docs []Document = []Document{
		NewDOCXDocument(),
		NewPDFDocument(),
		NewTXTDocument(),
	}
	for _, doc := range docs {
		// dispatch follows the document's runtime variant, not the
		// static Document type
		doc.Accept(v)
	}

	assert.Equal(t, []string{"docx", "pdf", "txt"}, v.visited)
}
