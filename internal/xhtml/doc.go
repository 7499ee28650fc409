// Package xhtml turns rich text captured from source tools into the XHTML
// subset accepted inside ReqIF ATTRIBUTE-VALUE-XHTML elements.
//
// Sanitize applies an ordered list of textual rewrites. Each step runs on the
// output of the previous one, so the order of the rules matters.
// Fragment then parses the result as HTML and renders it as well-formed XML
// with every element in the xhtml namespace prefix.
package xhtml
