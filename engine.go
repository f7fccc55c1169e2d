package pagetrail

// PagePayload carries the extracted fields for a page-visit event. The
// content hash is computed from MDContent at indexing time.
type PagePayload struct {
	Title           string `json:"title"`
	Excerpt         string `json:"excerpt"`
	MDContent       string `json:"mdContent"`
	PublicationDate string `json:"publicationDate"`
	Extractor       string `json:"extractor"`
}

// VisitMeta carries the visit bookkeeping for a page-visit event.
type VisitMeta struct {
	LastVisit     int64  `json:"lastVisit"` // epoch milliseconds
	LastVisitDate string `json:"lastVisitDate"`
}

// StatusReport reports whether the engine completed initialization
// without error.
type StatusReport struct {
	OK  bool   `json:"ok"`
	Err string `json:"error,omitempty"`
}

// PageStatus is the answer to "should this URL be (re)indexed?".
type PageStatus struct {
	ShouldIndex bool `json:"shouldIndex"`
}

// IndexResult reports the outcome of an indexing operation.
type IndexResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// Ack is a bare acknowledgment.
type Ack struct {
	OK bool `json:"ok"`
}
