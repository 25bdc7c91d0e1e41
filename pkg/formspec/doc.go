// Package formspec declares verification forms in YAML and binds them to a
// value source.
//
// A form document lists fields with the rule each must satisfy:
//
//	name: signup
//	fields:
//	  - name: name
//	    error: name must not be empty
//	    max_length: 20
//	  - name: phone
//	    kind: phone_cn
//	    order: 2
//	    error: phone number is invalid
//	  - name: id
//	    source: ID_NUMBER
//	    kind: id_cn
//	    order: 3
//	    report: false
//
// Parse or Load turn the document into a Form, and Form.Bindings produces the
// verify.Binding list for a Source such as MapSource or EnvSource. A key
// missing from the source reads as an absent value.
package formspec
