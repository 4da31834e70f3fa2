// Package mapping reads and writes YAML enum declaration files.
//
// A declaration file is the second frontend of the generator: it describes
// the same declarations the Go source frontend reads from extenum-tagged
// files, and converts them to the same syntax tree.
//
// # Schema Overview
//
//	version: "1"
//	package: paint
//	imports:
//	  - extenum-generator/extenum
//	enums:
//	  - name: Color
//	    doc: Color is a paint color.
//	    conformances: [extenum.Hashable]
//	    options:
//	      unknown: Unknown
//	      marshal: true
//	    known_cases:
//	      visibility: private      # private (default) or public
//	      raw_type: string
//	      raw_kind: int            # underlying kind, only for named raw types
//	      cases:
//	        - Red: thecolorred     # explicit raw value
//	        - Green                # implicit raw value
//	        - {name: Blue, raw: blue}
//	    cases:
//	      - name: Unknown
//	        params: [{rawValue: RawValue}]
//	    funcs:
//	      - name: IsWarm
//	        results: bool
//	    vars:
//	      - {name: label, type: string}
//
// Raw value scalars keep their YAML kind: 1 is an integer literal, "1" is a
// string literal and 1.5 is a float literal. The raw type decides which of
// them are accepted.
//
// # Key capabilities
//
//   - Parse and validate declaration files with file:line:col positions
//   - Convert definitions to syntax trees (ToSyntax, ToDeclarations)
//   - Export Go source declarations back to YAML (FromDeclarations, WriteFile)
package mapping
