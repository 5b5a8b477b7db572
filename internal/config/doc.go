// Package config loads and validates the YAML configuration of doc2pdf.
//
// A config file mirrors the conversion options of the CLI:
//
//	output:
//	  dir: ~/Documents
//	  namingPattern: "{name}_{num}"
//	  combinedName: combined_document
//	page:
//	  size: a4
//	  orientation: portrait
//	  margin: 50
//	  lineHeight: 14
//	image:
//	  quality: 90
//	combine: false
//
// Unknown keys are rejected so typos surface as errors.
package config
