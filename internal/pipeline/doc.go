// Package pipeline implements the LaTeX-to-Markdown math rewrite stages.
//
// A conversion is an ordered list of string-to-string stages selected by a
// profile:
//   - front matter and --- rule removal
//   - [2pt] spacing markers to forced line breaks (full profile)
//   - bare [ ... ] blocks, \[ \], \( \) and display environments to $ / $$
//   - \big, \Bigl, \left, \right sizing to plain parentheses
//   - parenthesized math to $...$, with existing math left intact
//   - \label and % comment removal
//   - cleanup of transcription artifacts inside math
//   - whitespace normalization and heading demotion (full profile)
//
// Stages never fail: input they do not recognize passes through unchanged.
//
// The package also renders converted Markdown to a standalone HTML preview
// via Goldmark, with math regions passed through for MathJax.
package pipeline
