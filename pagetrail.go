// Package pagetrail provides the local indexing and retrieval engine
// behind a personal web-page archive. Pages a user visits are normalized
// into documents, decomposed into searchable fragments, and made
// queryable through full-text search with highlighted results.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/,
// htmltomarkdown/, bloom/).
package pagetrail
