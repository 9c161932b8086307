package document

import (
	"github.com/docflow/docflow/internal/models"
)

// Document 文档接口
// Type 返回文档的类型标签，Accept 把自己分发给访问者
type Document interface {
	Type() models.DocumentType
	Accept(v Visitor)
}

// PDFDocument PDF 文档
type PDFDocument struct{}

func NewPDFDocument() *PDFDocument {
	return &PDFDocument{}
}

func (d *PDFDocument) Type() models.DocumentType {
	return models.TypePDF
}

func (d *PDFDocument) Accept(v Visitor) {
	v.VisitPDF(d)
}

// TXTDocument 纯文本文档
type TXTDocument struct{}

func NewTXTDocument() *TXTDocument {
	return &TXTDocument{}
}

func (d *TXTDocument) Type() models.DocumentType {
	return models.TypeTXT
}

func (d *TXTDocument) Accept(v Visitor) {
	v.VisitTXT(d)
}

// DOCXDocument Word 文档
type DOCXDocument struct{}

func NewDOCXDocument() *DOCXDocument {
	return &DOCXDocument{}
}

func (d *DOCXDocument) Type() models.DocumentType {
	return models.TypeDOCX
}

func (d *DOCXDocument) Accept(v Visitor) {
	v.VisitDOCX(d)
}

// New 根据类型标签创建对应的文档实例
func New(t models.DocumentType) (Document, bool) {
	switch t {
	case models.TypePDF:
		return NewPDFDocument(), true
	case models.TypeTXT:
		return NewTXTDocument(), true
	case models.TypeDOCX:
		return NewDOCXDocument(), true
	}
	return nil, false
}
