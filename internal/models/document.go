package models

// DocumentType 文档类型标签
type DocumentType string

const (
	TypePDF  DocumentType = "PDF"
	TypeTXT  DocumentType = "TXT"
	TypeDOCX DocumentType = "DOCX"
)

// String returns the raw label
func (t DocumentType) String() string {
	return string(t)
}

// KnownTypes 返回所有已知的文档类型
func KnownTypes() []DocumentType {
	return []DocumentType{TypePDF, TypeTXT, TypeDOCX}
}
