// Package wikipedia extracts series descriptors and episode records from
// Wikipedia episode list pages. It reads the page heading and the tables
// marked with the wikiepisodetable class, classifying columns by their
// heading text with fallback heuristics for the many table layouts in use.
package wikipedia
