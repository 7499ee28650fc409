// Package reqif holds the ReqIF record model produced by a conversion and
// the assembler that serializes it to ReqIF 1.0 XML.
//
// Records refer to each other by identifier, the same way the XML does:
// a SpecObject names its SpecObjectType, an AttributeValue names its
// AttributeDefinition, an AttributeDefinition names its DataType.
package reqif
