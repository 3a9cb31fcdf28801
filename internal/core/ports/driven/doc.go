// Package driven defines the interfaces the analysis core consumes.
// Adapters for the document API and for report output implement these;
// the core itself holds no API client or rendering code.
package driven
