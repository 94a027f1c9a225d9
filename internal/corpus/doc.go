// Package corpus loads a directory of HTML documents into a link graph.
//
// # Components
//
//   - Parser: extracts anchor link targets from a single HTML document
//   - Loader: walks a corpus directory, parses each .html file, and
//     builds the model.Graph the estimators consume
//
// Only links that target other pages within the same corpus survive
// loading; self-links and external links are dropped. This guarantees
// the graph invariant the rank package relies on: every link target is
// itself a page of the graph.
package corpus
