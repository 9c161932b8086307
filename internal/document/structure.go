package document

// Structure 文档集合，保持插入顺序
type Structure struct {
	docs []Document
}

// NewStructure creates an empty document collection
func NewStructure() *Structure {
	return &Structure{
		docs: make([]Document, 0),
	}
}

// Add appends a document at the end of the collection
func (s *Structure) Add(doc Document) {
	s.docs = append(s.docs, doc)
}

// Process dispatches every stored document to the visitor in insertion order
func (s *Structure) Process(v Visitor) {
	for _, doc := range s.docs {
		doc.Accept(v)
	}
}

// All returns a read-only view of the stored documents. The returned
// slice is a copy: mutating it does not affect the collection.
func (s *Structure) All() []Document {
	result := make([]Document, len(s.docs))
	copy(result, s.docs)
	return result
}

// Len returns the number of stored documents
func (s *Structure) Len() int {
	return len(s.docs)
}
