// Package fileqa provides an interactive question-answering tool for local
// documents. It loads PDF and text files, extracts their content, and answers
// natural language questions about them using a large language model, either
// over all files combined or over each file independently.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, pdf/).
package fileqa
