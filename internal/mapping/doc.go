// Package mapping provides the mapping configuration schema, its loader
// and structural validation.
//
// A mapping tells the converter where specifications and requirement nodes
// live in the input JSON, which variant a node belongs to and how every
// output attribute is derived and typed.
//
// # Dialects
//
// Two dialects are accepted and resolved once at load time into the same
// MappingConfig. Detection is structural: the file is decoded strictly as each
// dialect in turn.
//
// Standard:
//
//	version: "1.0"
//	config:
//	  tool: Polarion
//	  toolVersion: "22"
//	  repository: main
//	specification:
//	  type: Document
//	  id: $.id
//	  selector: $
//	  attributes:
//	    ReqIF_Name:
//	      attributeType: XHTML
//	      longName: ReqIF.Name
//	      selector: $.title
//	requirements:
//	  selector: $.children
//	  variants:
//	    - type: Requirement
//	      match: $[?(@.type == 'Requirement')]
//	      attributes:
//	        Status:
//	          attributeType: ENUMERATION
//	          type: status
//	          selector: $.status
//	          values:
//	            - {key: 0, value: Open, content: Open}
//
// Capella wraps every structural query as {root: ...}, lists attributes as
// entries with a "key" and keeps tool metadata under "header":
//
//	header: {tool: Capella, toolVersion: "6", repository: model}
//	specification:
//	  type: Document
//	  id: {root: $.id}
//	  selector: {root: $}
//	  attributes:
//	    - key: ReqIF_Name
//	      attributeType: XHTML
//	      selector: $.name
//
// JSON files are accepted as well; they are decoded by the same YAML decoder.
//
// # Conventions
//
// The optional version must satisfy SupportedVersions. The specification's
// display name comes from the attribute named by nameAttribute (ReqIF_Name by
// default). Leaf classification reads requirements.childrenField ("children")
// and descriptions read requirements.captionField ("Caption").
package mapping
