// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (board, content, catalog, artifacts) and contracts
// (interfaces) only, re-exported from the types and interfaces subpackages.
package domain
